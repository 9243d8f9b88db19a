package domain

import "sort"

// ToolType classifies a physical tool bit. The type decides which phase an
// operation lands in once the tool is matched.
type ToolType string

const (
	ToolEndMill   ToolType = "end_mill"
	ToolMillDrill ToolType = "mill_drill"
	ToolDrill     ToolType = "drill"
	ToolTap       ToolType = "tap"
	ToolDowel     ToolType = "dowel"
	ToolSlide     ToolType = "slide"
)

// Tool is one physical bit in a machine's carousel. Priorities is the
// tool-supplied preference score per operation kind; kinds without an entry
// are not offered by this tool. More negative scores are preferred.
type Tool struct {
	Number       int
	Type         ToolType
	Diameter     float64
	UsableLength float64
	Priorities   map[Kind]float64
}

// PriorityFor returns the tool's priority score for the given kind and
// whether the tool supports that kind at all.
func (t *Tool) PriorityFor(kind Kind) (float64, bool) {
	p, ok := t.Priorities[kind]
	return p, ok
}

// Kinds returns the operation kinds this tool supports, sorted for
// deterministic iteration.
func (t *Tool) Kinds() []Kind {
	kinds := make([]Kind, 0, len(t.Priorities))
	for k := range t.Priorities {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Machine is one machine tool within a shop. Controller names the feed and
// speed controller bound to operations scheduled on this machine.
type Machine struct {
	ID         int
	Name       string
	Controller string
	Tools      []Tool
}

// Shop groups the machines of one physical location.
type Shop struct {
	ID       int
	Name     string
	Machines []Machine
}

// Catalog is the static shop configuration a resource pool is built from.
// It is read-only after loading.
type Catalog struct {
	Shops []Shop
}

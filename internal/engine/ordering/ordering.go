// Package ordering derives the canonical phase of an operation from the
// tool that will cut it and builds the comparable keys that fix the
// baseline operation sequence.
package ordering

import (
	"sort"

	"go.trai.ch/camplan/internal/core/domain"
	"go.trai.ch/zerr"
)

// PhaseFor maps an operation kind and the matched tool's type to the
// operation's canonical phase. It is pure. A tool type outside the kind's
// allowed set means the pool was built wrong and is reported as
// ErrUnsupportedToolType.
func PhaseFor(kind domain.Kind, toolType domain.ToolType) (domain.Phase, error) {
	switch kind {
	case domain.KindContour:
		switch toolType {
		case domain.ToolEndMill:
			return domain.PhaseContourEndMill, nil
		case domain.ToolMillDrill:
			return domain.PhaseContourMillDrill, nil
		}
	case domain.KindPocket:
		switch toolType {
		case domain.ToolEndMill, domain.ToolMillDrill:
			return domain.PhasePocket, nil
		}
	case domain.KindDrill:
		switch toolType {
		case domain.ToolDrill:
			return domain.PhaseDrill, nil
		case domain.ToolTap:
			return domain.PhaseTap, nil
		}
	}
	err := zerr.With(domain.ErrUnsupportedToolType, "kind", string(kind))
	return 0, zerr.With(err, "tool_type", string(toolType))
}

// KeyFor builds the ordering key of an operation given its best candidate.
func KeyFor(op domain.Operation, phase domain.Phase, best domain.Candidate) domain.OrderingKey {
	return domain.OrderingKey{
		Fence:      op.Fence,
		Phase:      phase,
		Priority:   best.Priority,
		ShopID:     best.ShopID,
		MachineID:  best.MachineID,
		ToolNumber: best.ToolNumber,
	}
}

// Keyed is an element sortable by its ordering key.
type Keyed interface {
	OrderingKey() domain.OrderingKey
}

// SortStable orders the slice by ordering key, preserving the declared
// order of equal keys.
func SortStable[T Keyed](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].OrderingKey().Less(items[j].OrderingKey())
	})
}

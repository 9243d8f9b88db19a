package domain

// Phase is an operation's position in the canonical machining order of a
// setup. The numeric values are the order: mounting first, dowel pinning,
// exterior milling (straight end mills before mill-drills), pocketing,
// through holes (drilling before tapping), slide work last.
type Phase int

const (
	PhaseMount Phase = iota
	PhaseDowel
	PhaseContourEndMill
	PhaseContourMillDrill
	PhasePocket
	PhaseDrill
	PhaseTap
	PhaseSlide
)

// String returns the phase name for logs and error metadata.
func (p Phase) String() string {
	switch p {
	case PhaseMount:
		return "mount"
	case PhaseDowel:
		return "dowel"
	case PhaseContourEndMill:
		return "contour-end-mill"
	case PhaseContourMillDrill:
		return "contour-mill-drill"
	case PhasePocket:
		return "pocket"
	case PhaseDrill:
		return "drill"
	case PhaseTap:
		return "tap"
	case PhaseSlide:
		return "slide"
	default:
		return "unknown"
	}
}

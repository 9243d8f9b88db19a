// Package domain contains the core domain models for operation planning:
// operations, resources, ordering keys, batches and the parameter trees
// that feed artifact fingerprints.
package domain

// Kind identifies what a machining operation does to the stock.
// Every Kind has its own candidate list in the resource pool.
type Kind string

const (
	// KindContour is an exterior or interior profile cut.
	KindContour Kind = "contour"
	// KindPocket is a closed-area clearing cut.
	KindPocket Kind = "pocket"
	// KindDrill is a hole group, plain or threaded.
	KindDrill Kind = "drill"
)

// Operation is one unit of work within a setup. It is immutable: the
// scheduler never writes resource choices back onto it, a Binding record
// carries those instead.
type Operation struct {
	Name    InternedString
	SetupID InternedString

	// Fence keeps user-declared sub-groups together during the sort.
	// Lower fences are machined first.
	Fence int

	Kind Kind

	// Depth is the computed cutting depth. A candidate tool must expose at
	// least this much usable length.
	Depth float64

	// HoleDiameter is the target diameter for drill operations. Zero for
	// contour and pocket operations.
	HoleDiameter float64

	// Threaded marks a drill operation that ends in a tapped thread.
	Threaded bool

	// MinInternalRadius is the tightest inside corner of the resolved
	// profile. It bounds the tool diameter for contour and pocket cuts;
	// zero means the profile has no inside corners.
	MinInternalRadius float64

	// MinExternalRadius is the tightest outside corner. Carried for
	// completeness of the geometry summary, it does not bound tool choice.
	MinExternalRadius float64

	// Active operations are scheduled; inactive ones are skipped but kept
	// in the plan so fences stay meaningful.
	Active bool

	// Params is the parameter tree that defines the produced artifact.
	// Its fingerprint is the artifact cache key.
	Params Param
}

// Setup is one fixed orientation of a part on a machine, grouping the
// operations that share that workholding.
type Setup struct {
	ID         InternedString
	Operations []Operation
}

// Part is an independent piece of stock with an ordered list of setups.
// Parts share no scheduler state with each other.
type Part struct {
	Name   InternedString
	Setups []Setup
}

// Plan is the loaded input of one planning run.
type Plan struct {
	Catalog  Catalog
	Parts    []Part
	CacheDir string
}

// AsPocket returns the pocket-equivalent of a drill operation whose
// diameter matched no drill bit. Depth, position parameters and fence are
// preserved; the hole diameter becomes the pocket's tool diameter bound.
func (o Operation) AsPocket() Operation {
	p := o
	p.Kind = KindPocket
	p.MinInternalRadius = o.HoleDiameter / 2
	return p
}

package domain

// Binding records the scheduler's resource choice for one operation. It is
// produced alongside the operation rather than written onto it, so
// re-sorting or re-batching never aliases shared state.
type Binding struct {
	Candidate Candidate

	// Controller is the feed/speed controller bound together with the
	// machine choice.
	Controller string
}

// ScheduledOperation pairs an operation with its binding and, once the app
// has activated the cache entry, the artifact path.
type ScheduledOperation struct {
	Operation Operation
	Binding   Binding

	// Phase the operation landed in given the bound tool's type.
	Phase Phase

	// Downgraded marks a drill operation that was converted to a pocket
	// because no drill bit matched its diameter.
	Downgraded bool

	// ArtifactPath is filled in by the production loop after cache
	// activation. Empty while scheduling.
	ArtifactPath string
}

// Batch is a maximal run of operations bound to one (shop, machine) pair.
// Every member's binding carries the batch's shop and machine.
type Batch struct {
	ShopID     int
	MachineID  int
	Operations []ScheduledOperation
}

// Cursor is the machine-affinity state threaded through consecutive
// setups. It is explicit scheduler input and output, never ambient.
type Cursor struct {
	ShopID    int
	MachineID int
	Valid     bool
}

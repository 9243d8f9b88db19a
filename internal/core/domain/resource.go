package domain

// Candidate is one concrete (shop, machine, tool) triple able to perform an
// operation kind, scored by the tool's priority for that kind. Candidates
// are owned by the resource pool; schedulers and batches only reference
// them.
type Candidate struct {
	Priority  float64
	ShopID    int
	MachineID int

	// Tool points into the catalog; it is never copied or mutated.
	Tool       *Tool
	ToolNumber int

	// Controller is the feed/speed controller of the candidate's machine.
	Controller string
}

// Less defines the total candidate order: ascending priority (more negative
// is preferred), ties broken by shop, machine, then tool number.
func (c Candidate) Less(other Candidate) bool {
	if c.Priority != other.Priority {
		return c.Priority < other.Priority
	}
	if c.ShopID != other.ShopID {
		return c.ShopID < other.ShopID
	}
	if c.MachineID != other.MachineID {
		return c.MachineID < other.MachineID
	}
	return c.ToolNumber < other.ToolNumber
}

// SameMachine reports whether the candidate runs on the given shop and
// machine pair.
func (c Candidate) SameMachine(shopID, machineID int) bool {
	return c.ShopID == shopID && c.MachineID == machineID
}

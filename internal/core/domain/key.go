package domain

// OrderingKey is the comparable sort key that fixes the baseline operation
// sequence before the machine-affinity sweep runs. It combines the user
// fence, the canonical phase and the best candidate's identity into a
// strict total order.
type OrderingKey struct {
	Fence      int
	Phase      Phase
	Priority   float64
	ShopID     int
	MachineID  int
	ToolNumber int
}

// Less compares keys field by field in declaration order.
func (k OrderingKey) Less(other OrderingKey) bool {
	if k.Fence != other.Fence {
		return k.Fence < other.Fence
	}
	if k.Phase != other.Phase {
		return k.Phase < other.Phase
	}
	if k.Priority != other.Priority {
		return k.Priority < other.Priority
	}
	if k.ShopID != other.ShopID {
		return k.ShopID < other.ShopID
	}
	if k.MachineID != other.MachineID {
		return k.MachineID < other.MachineID
	}
	return k.ToolNumber < other.ToolNumber
}

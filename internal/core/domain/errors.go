package domain

import "go.trai.ch/zerr"

var (
	// ErrNoCandidateResource is returned when an operation's geometric
	// requirements match no tool on any machine. It aborts the whole setup.
	ErrNoCandidateResource = zerr.New("no candidate resource")

	// ErrUnsupportedToolType is returned when a selected tool's type is not
	// in the operation kind's allowed set. This indicates a pool
	// construction bug, not a recoverable condition.
	ErrUnsupportedToolType = zerr.New("unsupported tool type")

	// ErrCacheInconsistent is returned when an activated artifact exists on
	// disk but fails verification a second time after being rebuilt.
	ErrCacheInconsistent = zerr.New("cache entry inconsistent")

	// ErrInvalidOperationName is returned for operation names that would
	// not survive the cache filename encoding.
	ErrInvalidOperationName = zerr.New("invalid operation name")

	// ErrPlanNotFound is returned when no plan file exists at the given
	// path.
	ErrPlanNotFound = zerr.New("plan file not found")

	// ErrDuplicateName is returned when a plan declares two parts, setups
	// or operations under the same name.
	ErrDuplicateName = zerr.New("duplicate name in plan")

	// ErrUnknownKind is returned for operation kinds the planner does not
	// know.
	ErrUnknownKind = zerr.New("unknown operation kind")

	// ErrUnknownToolType is returned for tool types the catalog parser does
	// not know.
	ErrUnknownToolType = zerr.New("unknown tool type")

	// ErrNoPartsMatched is returned when run targets name no part in the
	// plan.
	ErrNoPartsMatched = zerr.New("no parts matched")
)

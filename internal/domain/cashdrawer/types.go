package cashdrawer

// State is the operational state of a drawer session. Deletion is tracked
// separately in record.Status.
type State string

const (
	StateOpen  State = "OPEN"
	StatePause State = "PAUSE"
	StateClose State = "CLOSE"
)

func (s State) IsValid() bool {
	switch s {
	case StateOpen, StatePause, StateClose:
		return true
	default:
		return false
	}
}

// IsActive reports whether the state counts toward the one-active-drawer-per-shift rule.
func (s State) IsActive() bool {
	return s == StateOpen || s == StatePause
}

func (s State) String() string { return string(s) }

// StatusDeleted is the externally visible status of a soft-deleted drawer.
const StatusDeleted = "DELETED"

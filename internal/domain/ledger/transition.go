package ledger

import (
	"time"

	"cashdrawer-api/internal/domain/cashdrawer"
)

// Outcome reports what applying a transaction did to its drawer.
type Outcome struct {
	// SessionClosed is set when the transaction ended a session and the
	// session must be archived.
	SessionClosed bool
}

// RequiredState is the drawer state a transaction type can be applied in.
func (t Type) RequiredState() cashdrawer.State {
	switch t.Effect() {
	case EffectOpen:
		return cashdrawer.StateClose
	case EffectUnpause:
		return cashdrawer.StatePause
	default:
		return cashdrawer.StateOpen
	}
}

// Apply runs the drawer state machine for one transaction. It either mutates
// the drawer completely or leaves it untouched and returns the precondition
// error.
func Apply(d *cashdrawer.Drawer, tx *Transaction, now time.Time) (Outcome, error) {
	actor := tx.CollaboratorID()
	switch tx.Type().Effect() {
	case EffectCredit:
		return Outcome{}, d.Credit(tx.Amount(), now)
	case EffectDebit:
		return Outcome{}, d.Debit(tx.Amount(), now)
	case EffectOpen:
		return Outcome{}, d.Reopen(actor, now)
	case EffectClose:
		if err := d.Close(actor, now); err != nil {
			return Outcome{}, err
		}
		return Outcome{SessionClosed: true}, nil
	case EffectPause:
		return Outcome{}, d.Pause(now)
	case EffectUnpause:
		return Outcome{}, d.Unpause(now)
	default:
		return Outcome{}, ErrInvalidType
	}
}

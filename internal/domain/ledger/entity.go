package ledger

import (
	"strings"
	"time"

	"cashdrawer-api/internal/domain/money"
	"cashdrawer-api/internal/domain/record"
	"cashdrawer-api/internal/pkg/errs"
	"cashdrawer-api/internal/pkg/patch"

	"github.com/google/uuid"
)

const MaxNotesLength = 500

var (
	ErrInvalidType          = errs.New("invalid transaction type")
	ErrAmountRequired       = errs.New("amount is required for this transaction type")
	ErrNotesTooLong         = errs.New("notes exceed maximum length")
	ErrAlreadyDeleted       = errs.New("cash transaction is already deleted")
	ErrTransactionDeleted   = errs.New("cash transaction is deleted")
	ErrMonetaryNotRemovable = errs.New("transactions that moved the balance cannot be deleted")
	ErrBoundaryNotRemovable = errs.New("OPENING and CLOSE transactions bound a session and cannot be deleted")
)

// Transaction is an append-only ledger row. Its type and amount never change
// after creation.
type Transaction struct {
	id             uuid.UUID
	drawerID       uuid.UUID
	orderID        *uuid.UUID
	collaboratorID uuid.UUID
	txType         Type
	amount         money.Money
	notes          *string
	status         record.Status
	createdAt      time.Time
	updatedAt      time.Time
}

type NewParams struct {
	DrawerID       uuid.UUID
	OrderID        *uuid.UUID
	CollaboratorID uuid.UUID
	Type           Type
	Amount         *money.Money
	Notes          *string
}

// New validates the row shape. Non-monetary types always store a zero amount.
func New(p NewParams, now time.Time) (*Transaction, error) {
	if !p.Type.IsValid() {
		return nil, ErrInvalidType
	}
	amount := money.Zero
	if p.Type.IsMonetary() {
		if p.Amount == nil {
			return nil, ErrAmountRequired
		}
		amount = *p.Amount
	}
	notes, err := normalizeNotes(p.Notes)
	if err != nil {
		return nil, err
	}
	return &Transaction{
		id:             uuid.New(),
		drawerID:       p.DrawerID,
		orderID:        p.OrderID,
		collaboratorID: p.CollaboratorID,
		txType:         p.Type,
		amount:         amount,
		notes:          notes,
		status:         record.StatusActive,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

type Snapshot struct {
	ID             uuid.UUID
	DrawerID       uuid.UUID
	OrderID        *uuid.UUID
	CollaboratorID uuid.UUID
	Type           Type
	Amount         money.Money
	Notes          *string
	Status         record.Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func Reconstruct(s Snapshot) *Transaction {
	return &Transaction{
		id:             s.ID,
		drawerID:       s.DrawerID,
		orderID:        s.OrderID,
		collaboratorID: s.CollaboratorID,
		txType:         s.Type,
		amount:         s.Amount,
		notes:          s.Notes,
		status:         s.Status,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}
}

func (t *Transaction) Snapshot() Snapshot {
	return Snapshot{
		ID:             t.id,
		DrawerID:       t.drawerID,
		OrderID:        t.orderID,
		CollaboratorID: t.collaboratorID,
		Type:           t.txType,
		Amount:         t.amount,
		Notes:          t.notes,
		Status:         t.status,
		CreatedAt:      t.createdAt,
		UpdatedAt:      t.updatedAt,
	}
}

func (t *Transaction) ID() uuid.UUID             { return t.id }
func (t *Transaction) DrawerID() uuid.UUID       { return t.drawerID }
func (t *Transaction) OrderID() *uuid.UUID       { return t.orderID }
func (t *Transaction) CollaboratorID() uuid.UUID { return t.collaboratorID }
func (t *Transaction) Type() Type                { return t.txType }
func (t *Transaction) Amount() money.Money       { return t.amount }
func (t *Transaction) Notes() *string            { return t.notes }
func (t *Transaction) Status() record.Status     { return t.status }
func (t *Transaction) CreatedAt() time.Time      { return t.createdAt }
func (t *Transaction) UpdatedAt() time.Time      { return t.updatedAt }

// Describe replaces the descriptive fields. A nil argument keeps the current value.
func (t *Transaction) Describe(orderID *uuid.UUID, notes *string, now time.Time) error {
	if t.status.IsDeleted() {
		return ErrTransactionDeleted
	}
	t.orderID = patch.CoalescePtr(orderID, t.orderID)
	if notes != nil {
		n, err := normalizeNotes(notes)
		if err != nil {
			return err
		}
		t.notes = n
	}
	t.updatedAt = now
	return nil
}

// MarkDeleted hides the row. Rows that moved the balance or bound a session
// stay, otherwise the drawer would no longer reconcile with its ledger.
func (t *Transaction) MarkDeleted(now time.Time) error {
	if t.status.IsDeleted() {
		return ErrAlreadyDeleted
	}
	if !t.amount.IsZero() {
		return ErrMonetaryNotRemovable
	}
	if e := t.txType.Effect(); e == EffectOpen || e == EffectClose {
		return ErrBoundaryNotRemovable
	}
	t.status = record.StatusDeleted
	t.updatedAt = now
	return nil
}

func normalizeNotes(notes *string) (*string, error) {
	if notes == nil {
		return nil, nil
	}
	n := strings.TrimSpace(*notes)
	if n == "" {
		return nil, nil
	}
	if len([]rune(n)) > MaxNotesLength {
		return nil, ErrNotesTooLong
	}
	return &n, nil
}

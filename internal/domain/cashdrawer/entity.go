package cashdrawer

import (
	"time"

	"cashdrawer-api/internal/domain/money"
	"cashdrawer-api/internal/domain/record"
	"cashdrawer-api/internal/pkg/errs"
	"cashdrawer-api/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrPartialClosing      = errs.New("closing balance and closing collaborator must be provided together")
	ErrAlreadyDeleted      = errs.New("cash drawer is already deleted")
	ErrDrawerDeleted       = errs.New("cash drawer is deleted")
	ErrMustBeOpen          = errs.New("drawer must be open")
	ErrMustBePaused        = errs.New("drawer must be paused")
	ErrMustBeClosed        = errs.New("drawer must be closed")
	ErrInsufficientBalance = errs.New("insufficient balance in cash drawer")
)

type Drawer struct {
	id             uuid.UUID
	merchantID     uuid.UUID
	shiftID        uuid.UUID
	openingBalance money.Money
	currentBalance money.Money
	closingBalance *money.Money
	openedBy       uuid.UUID
	closedBy       *uuid.UUID
	state          State
	recordStatus   record.Status
	version        int64
	createdAt      time.Time
	updatedAt      time.Time
}

type OpenParams struct {
	MerchantID     uuid.UUID
	ShiftID        uuid.UUID
	OpeningBalance money.Money
	OpenedBy       uuid.UUID
	ClosingBalance *money.Money
	ClosedBy       *uuid.UUID
}

// Open creates a drawer session. Supplying both closing fields creates an
// already closed drawer, used when backfilling data.
func Open(p OpenParams, now time.Time) (*Drawer, error) {
	if (p.ClosingBalance == nil) != (p.ClosedBy == nil) {
		return nil, ErrPartialClosing
	}

	d := &Drawer{
		id:             uuid.New(),
		merchantID:     p.MerchantID,
		shiftID:        p.ShiftID,
		openingBalance: p.OpeningBalance,
		currentBalance: p.OpeningBalance,
		openedBy:       p.OpenedBy,
		state:          StateOpen,
		recordStatus:   record.StatusActive,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}
	if p.ClosingBalance != nil {
		closing := *p.ClosingBalance
		closedBy := *p.ClosedBy
		d.currentBalance = closing
		d.closingBalance = &closing
		d.closedBy = &closedBy
		d.state = StateClose
	}
	return d, nil
}

// Snapshot is the flat persisted form of a drawer.
type Snapshot struct {
	ID             uuid.UUID
	MerchantID     uuid.UUID
	ShiftID        uuid.UUID
	OpeningBalance money.Money
	CurrentBalance money.Money
	ClosingBalance *money.Money
	OpenedBy       uuid.UUID
	ClosedBy       *uuid.UUID
	State          State
	RecordStatus   record.Status
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func Reconstruct(s Snapshot) *Drawer {
	return &Drawer{
		id:             s.ID,
		merchantID:     s.MerchantID,
		shiftID:        s.ShiftID,
		openingBalance: s.OpeningBalance,
		currentBalance: s.CurrentBalance,
		closingBalance: copyMoney(s.ClosingBalance),
		openedBy:       s.OpenedBy,
		closedBy:       copyID(s.ClosedBy),
		state:          s.State,
		recordStatus:   s.RecordStatus,
		version:        s.Version,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}
}

func (d *Drawer) Snapshot() Snapshot {
	return Snapshot{
		ID:             d.id,
		MerchantID:     d.merchantID,
		ShiftID:        d.shiftID,
		OpeningBalance: d.openingBalance,
		CurrentBalance: d.currentBalance,
		ClosingBalance: copyMoney(d.closingBalance),
		OpenedBy:       d.openedBy,
		ClosedBy:       copyID(d.closedBy),
		State:          d.state,
		RecordStatus:   d.recordStatus,
		Version:        d.version,
		CreatedAt:      d.createdAt,
		UpdatedAt:      d.updatedAt,
	}
}

func (d *Drawer) ID() uuid.UUID                { return d.id }
func (d *Drawer) MerchantID() uuid.UUID        { return d.merchantID }
func (d *Drawer) ShiftID() uuid.UUID           { return d.shiftID }
func (d *Drawer) OpeningBalance() money.Money  { return d.openingBalance }
func (d *Drawer) CurrentBalance() money.Money  { return d.currentBalance }
func (d *Drawer) ClosingBalance() *money.Money { return copyMoney(d.closingBalance) }
func (d *Drawer) OpenedBy() uuid.UUID          { return d.openedBy }
func (d *Drawer) ClosedBy() *uuid.UUID         { return copyID(d.closedBy) }
func (d *Drawer) State() State                 { return d.state }
func (d *Drawer) RecordStatus() record.Status  { return d.recordStatus }
func (d *Drawer) Version() int64               { return d.version }
func (d *Drawer) CreatedAt() time.Time         { return d.createdAt }
func (d *Drawer) UpdatedAt() time.Time         { return d.updatedAt }

func (d *Drawer) IsDeleted() bool { return d.recordStatus.IsDeleted() }

// HoldsActiveSession reports whether the drawer blocks another drawer from opening on its shift.
func (d *Drawer) HoldsActiveSession() bool {
	return !d.IsDeleted() && d.state.IsActive()
}

// Status is the externally visible status: DELETED wins over the operational state.
func (d *Drawer) Status() string {
	if d.IsDeleted() {
		return StatusDeleted
	}
	return d.state.String()
}

// Reassign changes descriptive references only; balances and state are untouched.
func (d *Drawer) Reassign(shiftID, openedBy *uuid.UUID, now time.Time) error {
	if d.IsDeleted() {
		return ErrDrawerDeleted
	}
	d.shiftID = patch.Coalesce(shiftID, d.shiftID)
	d.openedBy = patch.Coalesce(openedBy, d.openedBy)
	d.updatedAt = now
	return nil
}

func (d *Drawer) MarkDeleted(now time.Time) error {
	if d.IsDeleted() {
		return ErrAlreadyDeleted
	}
	d.recordStatus = record.StatusDeleted
	d.updatedAt = now
	return nil
}

// Reopen starts a new session seeded from the previous closing balance.
func (d *Drawer) Reopen(actor uuid.UUID, now time.Time) error {
	if err := d.require(StateClose, ErrMustBeClosed); err != nil {
		return err
	}
	seed := money.Zero
	if d.closingBalance != nil {
		seed = *d.closingBalance
	}
	d.openingBalance = seed
	d.currentBalance = seed
	d.closingBalance = nil
	d.openedBy = actor
	d.closedBy = nil
	d.state = StateOpen
	d.updatedAt = now
	return nil
}

func (d *Drawer) Close(actor uuid.UUID, now time.Time) error {
	if err := d.require(StateOpen, ErrMustBeOpen); err != nil {
		return err
	}
	closing := d.currentBalance
	d.closingBalance = &closing
	d.closedBy = &actor
	d.state = StateClose
	d.updatedAt = now
	return nil
}

func (d *Drawer) Pause(now time.Time) error {
	if err := d.require(StateOpen, ErrMustBeOpen); err != nil {
		return err
	}
	d.state = StatePause
	d.updatedAt = now
	return nil
}

func (d *Drawer) Unpause(now time.Time) error {
	if err := d.require(StatePause, ErrMustBePaused); err != nil {
		return err
	}
	d.state = StateOpen
	d.updatedAt = now
	return nil
}

func (d *Drawer) Credit(amount money.Money, now time.Time) error {
	if err := d.require(StateOpen, ErrMustBeOpen); err != nil {
		return err
	}
	d.currentBalance = d.currentBalance.Add(amount)
	d.updatedAt = now
	return nil
}

func (d *Drawer) Debit(amount money.Money, now time.Time) error {
	if err := d.require(StateOpen, ErrMustBeOpen); err != nil {
		return err
	}
	next, err := d.currentBalance.Sub(amount)
	if err != nil {
		return ErrInsufficientBalance
	}
	d.currentBalance = next
	d.updatedAt = now
	return nil
}

func (d *Drawer) require(state State, err error) error {
	if d.IsDeleted() {
		return ErrDrawerDeleted
	}
	if d.state != state {
		return err
	}
	return nil
}

func copyMoney(m *money.Money) *money.Money {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

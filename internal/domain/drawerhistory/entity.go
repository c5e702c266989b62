package drawerhistory

import (
	"time"

	"cashdrawer-api/internal/domain/money"
	"cashdrawer-api/internal/domain/record"
	"cashdrawer-api/internal/pkg/errs"
	"cashdrawer-api/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrAlreadyDeleted = errs.New("cash drawer history is already deleted")
	ErrEntryDeleted   = errs.New("cash drawer history is deleted")
)

// Entry is the audit snapshot of one closed drawer session. Balances are
// fixed at creation.
type Entry struct {
	id             uuid.UUID
	drawerID       uuid.UUID
	openingBalance money.Money
	closingBalance money.Money
	openedBy       uuid.UUID
	closedBy       uuid.UUID
	status         record.Status
	createdAt      time.Time
	updatedAt      time.Time
}

type NewParams struct {
	DrawerID       uuid.UUID
	OpeningBalance money.Money
	ClosingBalance money.Money
	OpenedBy       uuid.UUID
	ClosedBy       uuid.UUID
}

func New(p NewParams, now time.Time) *Entry {
	return &Entry{
		id:             uuid.New(),
		drawerID:       p.DrawerID,
		openingBalance: p.OpeningBalance,
		closingBalance: p.ClosingBalance,
		openedBy:       p.OpenedBy,
		closedBy:       p.ClosedBy,
		status:         record.StatusActive,
		createdAt:      now,
		updatedAt:      now,
	}
}

type Snapshot struct {
	ID             uuid.UUID
	DrawerID       uuid.UUID
	OpeningBalance money.Money
	ClosingBalance money.Money
	OpenedBy       uuid.UUID
	ClosedBy       uuid.UUID
	Status         record.Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func Reconstruct(s Snapshot) *Entry {
	return &Entry{
		id:             s.ID,
		drawerID:       s.DrawerID,
		openingBalance: s.OpeningBalance,
		closingBalance: s.ClosingBalance,
		openedBy:       s.OpenedBy,
		closedBy:       s.ClosedBy,
		status:         s.Status,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}
}

func (e *Entry) Snapshot() Snapshot {
	return Snapshot{
		ID:             e.id,
		DrawerID:       e.drawerID,
		OpeningBalance: e.openingBalance,
		ClosingBalance: e.closingBalance,
		OpenedBy:       e.openedBy,
		ClosedBy:       e.closedBy,
		Status:         e.status,
		CreatedAt:      e.createdAt,
		UpdatedAt:      e.updatedAt,
	}
}

func (e *Entry) ID() uuid.UUID               { return e.id }
func (e *Entry) DrawerID() uuid.UUID         { return e.drawerID }
func (e *Entry) OpeningBalance() money.Money { return e.openingBalance }
func (e *Entry) ClosingBalance() money.Money { return e.closingBalance }
func (e *Entry) OpenedBy() uuid.UUID         { return e.openedBy }
func (e *Entry) ClosedBy() uuid.UUID         { return e.closedBy }
func (e *Entry) Status() record.Status       { return e.status }
func (e *Entry) CreatedAt() time.Time        { return e.createdAt }
func (e *Entry) UpdatedAt() time.Time        { return e.updatedAt }

// CorrectActors fixes who opened or closed the session. Balances stay as recorded.
func (e *Entry) CorrectActors(openedBy, closedBy *uuid.UUID, now time.Time) error {
	if e.status.IsDeleted() {
		return ErrEntryDeleted
	}
	e.openedBy = patch.Coalesce(openedBy, e.openedBy)
	e.closedBy = patch.Coalesce(closedBy, e.closedBy)
	e.updatedAt = now
	return nil
}

func (e *Entry) MarkDeleted(now time.Time) error {
	if e.status.IsDeleted() {
		return ErrAlreadyDeleted
	}
	e.status = record.StatusDeleted
	e.updatedAt = now
	return nil
}

package commands

//go:generate mockgen -source=drawer_history.go -destination=../../../tests/mock/commands/drawer_history.go -package=commandsmock

import (
	"context"

	"cashdrawer-api/internal/domain/drawerhistory"
	"cashdrawer-api/internal/pkg/clock"
	"cashdrawer-api/internal/pkg/errs"
	"cashdrawer-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type DrawerHistoryCommands interface {
	Create(ctx context.Context, merchantID uuid.UUID, in CreateHistoryInput) (uuid.UUID, error)
	Update(ctx context.Context, merchantID, historyID uuid.UUID, in UpdateHistoryInput) error
	Delete(ctx context.Context, merchantID, historyID uuid.UUID) error
}

// SessionArchiver records a closed session inside an existing unit of work.
type SessionArchiver interface {
	Archive(ctx context.Context, tx shared.Tx, merchantID uuid.UUID, in CreateHistoryInput) (uuid.UUID, error)
}

// HistoryArchive owns the audit trail of closed drawer sessions.
type HistoryArchive struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewHistoryArchive(uow shared.UnitOfWork, clk clock.Clock) *HistoryArchive {
	return &HistoryArchive{uow: uow, clock: clk}
}

// Create backfills a history entry outside the ledger.
func (a *HistoryArchive) Create(ctx context.Context, merchantID uuid.UUID, in CreateHistoryInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := a.Archive(ctx, tx, merchantID, in)
		if derr != nil {
			return derr
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, shared.Classify(err)
	}
	return id, nil
}

func (a *HistoryArchive) Archive(ctx context.Context, tx shared.Tx, merchantID uuid.UUID, in CreateHistoryInput) (uuid.UUID, error) {
	opening, err := toMoney("opening balance", in.OpeningBalance)
	if err != nil {
		return uuid.Nil, err
	}
	closing, err := toMoney("closing balance", in.ClosingBalance)
	if err != nil {
		return uuid.Nil, err
	}

	reads := tx.Reads()
	if err = shared.AssertOwned(ctx, reads, merchantID, shared.KindCashDrawer, in.CashDrawerID); err != nil {
		return uuid.Nil, err
	}
	if err = shared.AssertOwned(ctx, reads, merchantID, shared.KindCollaborator, in.OpenedBy); err != nil {
		return uuid.Nil, err
	}
	if err = shared.AssertOwned(ctx, reads, merchantID, shared.KindCollaborator, in.ClosedBy); err != nil {
		return uuid.Nil, err
	}
	drawer, err := reads.DrawerByID(ctx, in.CashDrawerID)
	if err != nil {
		return uuid.Nil, err
	}
	if drawer.IsDeleted() {
		return uuid.Nil, errs.NotFound(string(shared.KindCashDrawer) + " not found")
	}

	entry := drawerhistory.New(drawerhistory.NewParams{
		DrawerID:       in.CashDrawerID,
		OpeningBalance: opening,
		ClosingBalance: closing,
		OpenedBy:       in.OpenedBy,
		ClosedBy:       in.ClosedBy,
	}, a.clock.Now())
	if err = tx.History().Create(ctx, entry); err != nil {
		return uuid.Nil, err
	}
	return entry.ID(), nil
}

func (a *HistoryArchive) Update(ctx context.Context, merchantID, historyID uuid.UUID, in UpdateHistoryInput) error {
	reads := a.uow.CommandReads()
	if err := shared.AssertOwned(ctx, reads, merchantID, shared.KindDrawerHistory, historyID); err != nil {
		return err
	}
	if err := shared.AssertOwnedIfSet(ctx, reads, merchantID, shared.KindCollaborator, in.OpenedBy); err != nil {
		return err
	}
	if err := shared.AssertOwnedIfSet(ctx, reads, merchantID, shared.KindCollaborator, in.ClosedBy); err != nil {
		return err
	}

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entry, derr := tx.Reads().HistoryByID(ctx, historyID)
		if derr != nil {
			return derr
		}
		if derr = entry.CorrectActors(in.OpenedBy, in.ClosedBy, a.clock.Now()); derr != nil {
			return derr
		}
		return tx.History().Update(ctx, entry)
	})
	return shared.Classify(err)
}

func (a *HistoryArchive) Delete(ctx context.Context, merchantID, historyID uuid.UUID) error {
	if err := shared.AssertOwned(ctx, a.uow.CommandReads(), merchantID, shared.KindDrawerHistory, historyID); err != nil {
		return err
	}

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entry, derr := tx.Reads().HistoryByID(ctx, historyID)
		if derr != nil {
			return derr
		}
		if derr = entry.MarkDeleted(a.clock.Now()); derr != nil {
			return derr
		}
		return tx.History().Update(ctx, entry)
	})
	return shared.Classify(err)
}

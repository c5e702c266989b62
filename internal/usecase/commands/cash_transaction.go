package commands

//go:generate mockgen -source=cash_transaction.go -destination=../../../tests/mock/commands/cash_transaction.go -package=commandsmock

import (
	"context"
	"log/slog"

	"cashdrawer-api/internal/domain/cashdrawer"
	"cashdrawer-api/internal/domain/ledger"
	"cashdrawer-api/internal/domain/money"
	"cashdrawer-api/internal/pkg/clock"
	"cashdrawer-api/internal/pkg/errs"
	"cashdrawer-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// CashTransactionCommands is the transaction ledger. It is the only writer of
// drawer balances and operational state.
type CashTransactionCommands interface {
	Create(ctx context.Context, merchantID uuid.UUID, in CreateTransactionInput) (uuid.UUID, error)
	Update(ctx context.Context, merchantID, transactionID uuid.UUID, in UpdateTransactionInput) error
	Delete(ctx context.Context, merchantID, transactionID uuid.UUID) error
}

type cashTransactionCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	archiver SessionArchiver
}

func NewCashTransactionCommands(uow shared.UnitOfWork, clk clock.Clock, archiver SessionArchiver) CashTransactionCommands {
	return &cashTransactionCommandsImpl{uow: uow, clock: clk, archiver: archiver}
}

func (uc *cashTransactionCommandsImpl) Create(ctx context.Context, merchantID uuid.UUID, in CreateTransactionInput) (uuid.UUID, error) {
	if merchantID == uuid.Nil {
		return uuid.Nil, shared.ErrMerchantRequired
	}

	reads := uc.uow.CommandReads()
	if err := shared.AssertOwned(ctx, reads, merchantID, shared.KindCashDrawer, in.CashDrawerID); err != nil {
		return uuid.Nil, err
	}
	if err := shared.AssertOwned(ctx, reads, merchantID, shared.KindCollaborator, in.CollaboratorID); err != nil {
		return uuid.Nil, err
	}
	if err := shared.AssertOwnedIfSet(ctx, reads, merchantID, shared.KindOrder, in.OrderID); err != nil {
		return uuid.Nil, err
	}

	// state types ignore any amount sent with them and store 0
	var amount *money.Money
	if ledger.Type(in.Type).IsMonetary() {
		m, err := toMoneyPtr("amount", in.Amount)
		if err != nil {
			return uuid.Nil, err
		}
		amount = m
	}
	now := uc.clock.Now()
	row, err := ledger.New(ledger.NewParams{
		DrawerID:       in.CashDrawerID,
		OrderID:        in.OrderID,
		CollaboratorID: in.CollaboratorID,
		Type:           ledger.Type(in.Type),
		Amount:         amount,
		Notes:          in.Notes,
	}, now)
	if err != nil {
		return uuid.Nil, shared.Classify(err)
	}

	drawer, err := reads.DrawerByID(ctx, in.CashDrawerID)
	if err != nil {
		return uuid.Nil, shared.Classify(err)
	}
	if drawer.IsDeleted() {
		return uuid.Nil, errs.NotFound(string(shared.KindCashDrawer) + " not found")
	}
	// Precondition check on a copy; nothing is written if it fails.
	probe := cashdrawer.Reconstruct(drawer.Snapshot())
	if _, err = ledger.Apply(probe, row, now); err != nil {
		return uuid.Nil, shared.Classify(err)
	}
	validatedState := drawer.State()

	var applied *cashdrawer.Drawer
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, derr := tx.Drawers().LockByID(ctx, in.CashDrawerID)
		if derr != nil {
			return derr
		}
		if locked.IsDeleted() {
			return errs.NotFound(string(shared.KindCashDrawer) + " not found")
		}
		expectedVersion := locked.Version()

		outcome, derr := ledger.Apply(locked, row, now)
		if derr != nil {
			if locked.State() != validatedState {
				return shared.ErrConcurrentTransition
			}
			return derr
		}

		if row.Type() == ledger.TypeOpening {
			active, aerr := tx.Reads().ShiftHasActiveDrawer(ctx, locked.ShiftID(), locked.ID())
			if aerr != nil {
				return aerr
			}
			if active {
				return shared.ErrActiveDrawerExists
			}
		}

		if derr = tx.Transactions().Create(ctx, row); derr != nil {
			return derr
		}
		if derr = tx.Drawers().ApplyMutation(ctx, locked, expectedVersion); derr != nil {
			return derr
		}

		if outcome.SessionClosed {
			closing := locked.ClosingBalance()
			closedBy := locked.ClosedBy()
			if _, derr = uc.archiver.Archive(ctx, tx, merchantID, CreateHistoryInput{
				CashDrawerID:   locked.ID(),
				OpeningBalance: locked.OpeningBalance().Decimal(),
				ClosingBalance: closing.Decimal(),
				OpenedBy:       locked.OpenedBy(),
				ClosedBy:       *closedBy,
			}); derr != nil {
				return derr
			}
		}
		applied = locked
		return nil
	})
	if err != nil {
		return uuid.Nil, shared.Classify(err)
	}

	slog.Info("cash transaction applied",
		"transaction_id", row.ID().String(),
		"drawer_id", applied.ID().String(),
		"type", row.Type().String(),
		"amount", row.Amount().String(),
		"state", applied.State().String(),
		"current_balance", applied.CurrentBalance().String())
	return row.ID(), nil
}

func (uc *cashTransactionCommandsImpl) Update(ctx context.Context, merchantID, transactionID uuid.UUID, in UpdateTransactionInput) error {
	reads := uc.uow.CommandReads()
	if err := shared.AssertOwned(ctx, reads, merchantID, shared.KindCashTransaction, transactionID); err != nil {
		return err
	}
	if err := shared.AssertOwnedIfSet(ctx, reads, merchantID, shared.KindOrder, in.OrderID); err != nil {
		return err
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		row, derr := tx.Reads().TransactionByID(ctx, transactionID)
		if derr != nil {
			return derr
		}
		if derr = row.Describe(in.OrderID, in.Notes, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Transactions().Update(ctx, row)
	})
	return shared.Classify(err)
}

func (uc *cashTransactionCommandsImpl) Delete(ctx context.Context, merchantID, transactionID uuid.UUID) error {
	if err := shared.AssertOwned(ctx, uc.uow.CommandReads(), merchantID, shared.KindCashTransaction, transactionID); err != nil {
		return err
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		row, derr := tx.Reads().TransactionByID(ctx, transactionID)
		if derr != nil {
			return derr
		}
		if derr = row.MarkDeleted(uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Transactions().Update(ctx, row)
	})
	return shared.Classify(err)
}

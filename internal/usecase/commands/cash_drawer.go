package commands

//go:generate mockgen -source=cash_drawer.go -destination=../../../tests/mock/commands/cash_drawer.go -package=commandsmock

import (
	"context"
	"log/slog"

	"cashdrawer-api/internal/domain/cashdrawer"
	"cashdrawer-api/internal/infra"
	"cashdrawer-api/internal/pkg/clock"
	"cashdrawer-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// CashDrawerCommands is the public write surface of the drawer store. It never
// touches balances or the operational state of an existing drawer.
type CashDrawerCommands interface {
	Open(ctx context.Context, merchantID uuid.UUID, in OpenDrawerInput) (uuid.UUID, error)
	Update(ctx context.Context, merchantID, drawerID uuid.UUID, in UpdateDrawerInput) error
	Delete(ctx context.Context, merchantID, drawerID uuid.UUID) error
}

type cashDrawerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCashDrawerCommands(uow shared.UnitOfWork, clk clock.Clock) CashDrawerCommands {
	return &cashDrawerCommandsImpl{uow: uow, clock: clk}
}

func (uc *cashDrawerCommandsImpl) Open(ctx context.Context, merchantID uuid.UUID, in OpenDrawerInput) (uuid.UUID, error) {
	if merchantID == uuid.Nil {
		return uuid.Nil, shared.ErrMerchantRequired
	}
	opening, err := toMoney("opening balance", in.OpeningBalance)
	if err != nil {
		return uuid.Nil, err
	}
	closing, err := toMoneyPtr("closing balance", in.ClosingBalance)
	if err != nil {
		return uuid.Nil, err
	}
	drawer, err := cashdrawer.Open(cashdrawer.OpenParams{
		MerchantID:     merchantID,
		ShiftID:        in.ShiftID,
		OpeningBalance: opening,
		OpenedBy:       in.OpenedBy,
		ClosingBalance: closing,
		ClosedBy:       in.ClosedBy,
	}, uc.clock.Now())
	if err != nil {
		return uuid.Nil, shared.Classify(err)
	}

	reads := uc.uow.CommandReads()
	if err = shared.AssertOwned(ctx, reads, merchantID, shared.KindShift, in.ShiftID); err != nil {
		return uuid.Nil, err
	}
	if err = shared.AssertOwned(ctx, reads, merchantID, shared.KindCollaborator, in.OpenedBy); err != nil {
		return uuid.Nil, err
	}
	if err = shared.AssertOwnedIfSet(ctx, reads, merchantID, shared.KindCollaborator, in.ClosedBy); err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if drawer.HoldsActiveSession() {
			active, derr := tx.Reads().ShiftHasActiveDrawer(ctx, drawer.ShiftID(), uuid.Nil)
			if derr != nil {
				return derr
			}
			if active {
				return shared.ErrActiveDrawerExists
			}
		}
		return tx.Drawers().Create(ctx, drawer)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, shared.ErrActiveDrawerExists
		}
		return uuid.Nil, shared.Classify(err)
	}

	slog.Info("cash drawer opened",
		"drawer_id", drawer.ID().String(),
		"shift_id", drawer.ShiftID().String(),
		"state", drawer.State().String(),
		"opening_balance", drawer.OpeningBalance().String())
	return drawer.ID(), nil
}

func (uc *cashDrawerCommandsImpl) Update(ctx context.Context, merchantID, drawerID uuid.UUID, in UpdateDrawerInput) error {
	reads := uc.uow.CommandReads()
	if err := shared.AssertOwned(ctx, reads, merchantID, shared.KindCashDrawer, drawerID); err != nil {
		return err
	}
	if err := shared.AssertOwnedIfSet(ctx, reads, merchantID, shared.KindShift, in.ShiftID); err != nil {
		return err
	}
	if err := shared.AssertOwnedIfSet(ctx, reads, merchantID, shared.KindCollaborator, in.OpenedBy); err != nil {
		return err
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		drawer, derr := tx.Drawers().LockByID(ctx, drawerID)
		if derr != nil {
			return derr
		}
		movesShift := in.ShiftID != nil && *in.ShiftID != drawer.ShiftID()
		if movesShift && drawer.HoldsActiveSession() {
			active, aerr := tx.Reads().ShiftHasActiveDrawer(ctx, *in.ShiftID, drawer.ID())
			if aerr != nil {
				return aerr
			}
			if active {
				return shared.ErrActiveDrawerExists
			}
		}
		if derr = drawer.Reassign(in.ShiftID, in.OpenedBy, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Drawers().UpdateDetails(ctx, drawer)
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return shared.ErrActiveDrawerExists
	}
	return shared.Classify(err)
}

func (uc *cashDrawerCommandsImpl) Delete(ctx context.Context, merchantID, drawerID uuid.UUID) error {
	if err := shared.AssertOwned(ctx, uc.uow.CommandReads(), merchantID, shared.KindCashDrawer, drawerID); err != nil {
		return err
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		drawer, derr := tx.Drawers().LockByID(ctx, drawerID)
		if derr != nil {
			return derr
		}
		if derr = drawer.MarkDeleted(uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Drawers().SoftDelete(ctx, drawer)
	})
	return shared.Classify(err)
}

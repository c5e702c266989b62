//go:build unit

package commands_test

import (
	"context"
	"testing"

	"cashdrawer-api/internal/domain/record"
	"cashdrawer-api/internal/pkg/clock"
	"cashdrawer-api/internal/pkg/errs"
	"cashdrawer-api/internal/usecase/commands"
	"cashdrawer-api/internal/usecase/shared"
	"cashdrawer-api/tests/common/builder"
	"cashdrawer-api/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DrawerHistoryCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memstore.Store
	clock    *clock.MockClock
	tenant   memstore.Tenant
	drawerID uuid.UUID
	cmds     commands.DrawerHistoryCommands
}

func (s *DrawerHistoryCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.clock = clock.NewMockClock(fixedNow)
	s.tenant = s.store.AddTenant()
	s.cmds = commands.NewHistoryArchive(s.store, s.clock)

	drawer := builder.NewCashDrawerBuilder().
		Owned(s.tenant.MerchantID, s.tenant.ShiftID, s.tenant.CollaboratorID).
		Closed(s.tenant.CollaboratorID).
		BuildDomain()
	s.store.PutDrawer(drawer)
	s.drawerID = drawer.ID()
}

func TestDrawerHistoryCommandsSuite(t *testing.T) {
	suite.Run(t, new(DrawerHistoryCommandsTestSuite))
}

func (s *DrawerHistoryCommandsTestSuite) input() commands.CreateHistoryInput {
	return commands.CreateHistoryInput{
		CashDrawerID:   s.drawerID,
		OpeningBalance: decimal.RequireFromString("100.00"),
		ClosingBalance: decimal.RequireFromString("180.00"),
		OpenedBy:       s.tenant.CollaboratorID,
		ClosedBy:       s.tenant.CollaboratorID,
	}
}

func (s *DrawerHistoryCommandsTestSuite) TestCreate() {
	s.Run("success: backfilled entry is stored active", func() {
		s.SetupTest()
		id, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, s.input())
		s.Require().NoError(err)

		got, ok := s.store.History(id)
		s.Require().True(ok)
		s.Equal(s.drawerID, got.DrawerID)
		s.Equal("100.00", got.OpeningBalance.String())
		s.Equal("180.00", got.ClosingBalance.String())
		s.Equal(record.StatusActive, got.Status)
		s.Equal(fixedNow, got.CreatedAt)
	})

	s.Run("error: 404 for a deleted drawer", func() {
		s.SetupTest()
		deleted := builder.NewCashDrawerBuilder().
			Owned(s.tenant.MerchantID, s.tenant.ShiftID, s.tenant.CollaboratorID).
			Deleted().
			BuildDomain()
		s.store.PutDrawer(deleted)
		in := s.input()
		in.CashDrawerID = deleted.ID()

		_, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, in)
		s.True(errs.IsNotFound(err), "got %v", err)
	})

	s.Run("error: 404 for an unknown drawer", func() {
		s.SetupTest()
		in := s.input()
		in.CashDrawerID = uuid.New()

		_, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, in)
		s.True(errs.IsNotFound(err), "got %v", err)
	})

	s.Run("error: 400 for a negative closing balance", func() {
		s.SetupTest()
		in := s.input()
		in.ClosingBalance = decimal.RequireFromString("-1.00")

		_, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, in)
		s.True(errs.IsBadRequest(err), "got %v", err)
		s.Empty(s.store.HistoriesOf(s.drawerID))
	})

	s.Run("error: 403 for a collaborator of another merchant", func() {
		s.SetupTest()
		other := s.store.AddTenant()
		in := s.input()
		in.ClosedBy = other.CollaboratorID

		_, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, in)
		s.True(errs.IsForbidden(err), "got %v", err)
		s.Empty(s.store.HistoriesOf(s.drawerID))
	})

	s.Run("error: 403 without merchant", func() {
		s.SetupTest()
		_, err := s.cmds.Create(s.ctx, uuid.Nil, s.input())
		s.True(errs.IsForbidden(err), "got %v", err)
	})
}

func (s *DrawerHistoryCommandsTestSuite) TestUpdate() {
	s.Run("success: actors are corrected, balances stay", func() {
		s.SetupTest()
		id, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, s.input())
		s.Require().NoError(err)
		corrected := s.store.AddReference(shared.KindCollaborator, s.tenant.MerchantID)

		err = s.cmds.Update(s.ctx, s.tenant.MerchantID, id, commands.UpdateHistoryInput{ClosedBy: &corrected})
		s.Require().NoError(err)

		got, _ := s.store.History(id)
		s.Equal(s.tenant.CollaboratorID, got.OpenedBy)
		s.Equal(corrected, got.ClosedBy)
		s.Equal("180.00", got.ClosingBalance.String())
	})

	s.Run("error: 403 for another merchant", func() {
		s.SetupTest()
		id, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, s.input())
		s.Require().NoError(err)
		other := s.store.AddTenant()

		err = s.cmds.Update(s.ctx, other.MerchantID, id, commands.UpdateHistoryInput{OpenedBy: &other.CollaboratorID})
		s.True(errs.IsForbidden(err), "got %v", err)
	})
}

func (s *DrawerHistoryCommandsTestSuite) TestDelete() {
	s.Run("success then 409 on the second delete", func() {
		s.SetupTest()
		id, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, s.input())
		s.Require().NoError(err)

		s.Require().NoError(s.cmds.Delete(s.ctx, s.tenant.MerchantID, id))
		got, _ := s.store.History(id)
		s.Equal(record.StatusDeleted, got.Status)

		err = s.cmds.Delete(s.ctx, s.tenant.MerchantID, id)
		s.True(errs.IsConflict(err), "got %v", err)
	})

	s.Run("error: 404 updating a deleted entry", func() {
		s.SetupTest()
		id, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, s.input())
		s.Require().NoError(err)
		s.Require().NoError(s.cmds.Delete(s.ctx, s.tenant.MerchantID, id))

		err = s.cmds.Update(s.ctx, s.tenant.MerchantID, id, commands.UpdateHistoryInput{})
		s.True(errs.IsNotFound(err), "got %v", err)
	})
}

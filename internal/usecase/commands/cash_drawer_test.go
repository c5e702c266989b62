//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"cashdrawer-api/internal/domain/cashdrawer"
	"cashdrawer-api/internal/domain/record"
	"cashdrawer-api/internal/pkg/clock"
	"cashdrawer-api/internal/pkg/errs"
	"cashdrawer-api/internal/usecase/commands"
	"cashdrawer-api/internal/usecase/shared"
	"cashdrawer-api/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

type CashDrawerCommandsTestSuite struct {
	suite.Suite
	ctx    context.Context
	store  *memstore.Store
	clock  *clock.MockClock
	tenant memstore.Tenant
	cmds   commands.CashDrawerCommands
}

func (s *CashDrawerCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.clock = clock.NewMockClock(fixedNow)
	s.tenant = s.store.AddTenant()
	s.cmds = commands.NewCashDrawerCommands(s.store, s.clock)
}

func TestCashDrawerCommandsSuite(t *testing.T) {
	suite.Run(t, new(CashDrawerCommandsTestSuite))
}

func (s *CashDrawerCommandsTestSuite) openInput() commands.OpenDrawerInput {
	return commands.OpenDrawerInput{
		ShiftID:        s.tenant.ShiftID,
		OpeningBalance: decimal.RequireFromString("100.00"),
		OpenedBy:       s.tenant.CollaboratorID,
	}
}

func (s *CashDrawerCommandsTestSuite) TestOpen() {
	s.Run("success: drawer is OPEN with current balance equal to opening balance", func() {
		s.SetupTest()
		id, err := s.cmds.Open(s.ctx, s.tenant.MerchantID, s.openInput())
		s.Require().NoError(err)

		d, ok := s.store.Drawer(id)
		s.Require().True(ok)
		s.Equal(cashdrawer.StateOpen, d.State)
		s.Equal("100.00", d.CurrentBalance.String())
		s.Equal(s.tenant.MerchantID, d.MerchantID)
		s.Equal(fixedNow, d.CreatedAt)
	})

	s.Run("success: backfill with closing fields creates a closed drawer without history", func() {
		s.SetupTest()
		in := s.openInput()
		closing := decimal.RequireFromString("75.25")
		in.ClosingBalance = &closing
		in.ClosedBy = &s.tenant.CollaboratorID

		id, err := s.cmds.Open(s.ctx, s.tenant.MerchantID, in)
		s.Require().NoError(err)

		d, _ := s.store.Drawer(id)
		s.Equal(cashdrawer.StateClose, d.State)
		s.Equal("75.25", d.CurrentBalance.String())
		s.Empty(s.store.HistoriesOf(id))
	})

	s.Run("success: closed drawer does not block a new session on the shift", func() {
		s.SetupTest()
		in := s.openInput()
		closing := decimal.RequireFromString("75.25")
		in.ClosingBalance = &closing
		in.ClosedBy = &s.tenant.CollaboratorID
		_, err := s.cmds.Open(s.ctx, s.tenant.MerchantID, in)
		s.Require().NoError(err)

		_, err = s.cmds.Open(s.ctx, s.tenant.MerchantID, s.openInput())
		s.NoError(err)
	})

	s.Run("error: 409 when the shift already has an active drawer", func() {
		s.SetupTest()
		_, err := s.cmds.Open(s.ctx, s.tenant.MerchantID, s.openInput())
		s.Require().NoError(err)

		_, err = s.cmds.Open(s.ctx, s.tenant.MerchantID, s.openInput())
		s.True(errs.IsConflict(err), "got %v", err)
	})

	s.Run("error: 403 without merchant", func() {
		s.SetupTest()
		_, err := s.cmds.Open(s.ctx, uuid.Nil, s.openInput())
		s.True(errs.IsForbidden(err), "got %v", err)
	})

	s.Run("error: 403 when the shift belongs to another merchant", func() {
		s.SetupTest()
		other := s.store.AddTenant()
		in := s.openInput()
		in.ShiftID = other.ShiftID

		_, err := s.cmds.Open(s.ctx, s.tenant.MerchantID, in)
		s.True(errs.IsForbidden(err), "got %v", err)
	})

	s.Run("error: 404 for an unknown collaborator", func() {
		s.SetupTest()
		in := s.openInput()
		in.OpenedBy = uuid.New()

		_, err := s.cmds.Open(s.ctx, s.tenant.MerchantID, in)
		s.True(errs.IsNotFound(err), "got %v", err)
	})

	invalid := []struct {
		name   string
		mutate func(*commands.OpenDrawerInput)
	}{
		{name: "negative opening balance", mutate: func(in *commands.OpenDrawerInput) {
			in.OpeningBalance = decimal.RequireFromString("-1")
		}},
		{name: "three decimals", mutate: func(in *commands.OpenDrawerInput) {
			in.OpeningBalance = decimal.RequireFromString("1.001")
		}},
		{name: "closing balance without collaborator", mutate: func(in *commands.OpenDrawerInput) {
			c := decimal.RequireFromString("10")
			in.ClosingBalance = &c
		}},
		{name: "closing collaborator without balance", mutate: func(in *commands.OpenDrawerInput) {
			id := uuid.New()
			in.ClosedBy = &id
		}},
	}
	for _, tc := range invalid {
		s.Run("error: 400 "+tc.name, func() {
			s.SetupTest()
			in := s.openInput()
			tc.mutate(&in)

			_, err := s.cmds.Open(s.ctx, s.tenant.MerchantID, in)
			s.True(errs.IsBadRequest(err), "got %v", err)
		})
	}
}

func (s *CashDrawerCommandsTestSuite) TestUpdate() {
	s.Run("success: moves the drawer to another shift", func() {
		s.SetupTest()
		id, err := s.cmds.Open(s.ctx, s.tenant.MerchantID, s.openInput())
		s.Require().NoError(err)
		shiftID := s.store.AddReference(shared.KindShift, s.tenant.MerchantID)
		s.clock.Add(time.Hour)

		err = s.cmds.Update(s.ctx, s.tenant.MerchantID, id, commands.UpdateDrawerInput{ShiftID: &shiftID})
		s.Require().NoError(err)

		d, _ := s.store.Drawer(id)
		s.Equal(shiftID, d.ShiftID)
		s.Equal("100.00", d.CurrentBalance.String())
		s.Equal(fixedNow.Add(time.Hour), d.UpdatedAt)
	})

	s.Run("error: 409 when the target shift already has an active drawer", func() {
		s.SetupTest()
		id, err := s.cmds.Open(s.ctx, s.tenant.MerchantID, s.openInput())
		s.Require().NoError(err)
		busyShift := s.store.AddReference(shared.KindShift, s.tenant.MerchantID)
		in := s.openInput()
		in.ShiftID = busyShift
		_, err = s.cmds.Open(s.ctx, s.tenant.MerchantID, in)
		s.Require().NoError(err)

		err = s.cmds.Update(s.ctx, s.tenant.MerchantID, id, commands.UpdateDrawerInput{ShiftID: &busyShift})
		s.True(errs.IsConflict(err), "got %v", err)
	})

	s.Run("error: 404 for a deleted drawer", func() {
		s.SetupTest()
		id, err := s.cmds.Open(s.ctx, s.tenant.MerchantID, s.openInput())
		s.Require().NoError(err)
		s.Require().NoError(s.cmds.Delete(s.ctx, s.tenant.MerchantID, id))

		err = s.cmds.Update(s.ctx, s.tenant.MerchantID, id, commands.UpdateDrawerInput{OpenedBy: &s.tenant.CollaboratorID})
		s.True(errs.IsNotFound(err), "got %v", err)
	})

	s.Run("error: 403 for another merchant's drawer", func() {
		s.SetupTest()
		id, err := s.cmds.Open(s.ctx, s.tenant.MerchantID, s.openInput())
		s.Require().NoError(err)
		other := s.store.AddTenant()

		err = s.cmds.Update(s.ctx, other.MerchantID, id, commands.UpdateDrawerInput{})
		s.True(errs.IsForbidden(err), "got %v", err)
	})
}

func (s *CashDrawerCommandsTestSuite) TestDelete() {
	s.Run("success: soft delete keeps the row and frees the shift", func() {
		s.SetupTest()
		id, err := s.cmds.Open(s.ctx, s.tenant.MerchantID, s.openInput())
		s.Require().NoError(err)

		s.Require().NoError(s.cmds.Delete(s.ctx, s.tenant.MerchantID, id))

		d, ok := s.store.Drawer(id)
		s.Require().True(ok)
		s.Equal(record.StatusDeleted, d.RecordStatus)

		_, err = s.cmds.Open(s.ctx, s.tenant.MerchantID, s.openInput())
		s.NoError(err)
	})

	s.Run("error: 409 on second delete", func() {
		s.SetupTest()
		id, err := s.cmds.Open(s.ctx, s.tenant.MerchantID, s.openInput())
		s.Require().NoError(err)
		s.Require().NoError(s.cmds.Delete(s.ctx, s.tenant.MerchantID, id))

		err = s.cmds.Delete(s.ctx, s.tenant.MerchantID, id)
		s.True(errs.IsConflict(err), "got %v", err)
	})

	s.Run("error: 404 for an unknown drawer", func() {
		s.SetupTest()
		err := s.cmds.Delete(s.ctx, s.tenant.MerchantID, uuid.New())
		s.True(errs.IsNotFound(err), "got %v", err)
	})
}

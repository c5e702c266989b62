//go:build unit

package commands_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"cashdrawer-api/internal/domain/cashdrawer"
	"cashdrawer-api/internal/domain/ledger"
	"cashdrawer-api/internal/domain/money"
	"cashdrawer-api/internal/domain/record"
	"cashdrawer-api/internal/pkg/clock"
	"cashdrawer-api/internal/pkg/errs"
	"cashdrawer-api/internal/pkg/ptr"
	"cashdrawer-api/internal/usecase/commands"
	"cashdrawer-api/internal/usecase/shared"
	"cashdrawer-api/tests/common/builder"
	"cashdrawer-api/tests/common/memstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CashTransactionCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memstore.Store
	tenant   memstore.Tenant
	drawerID uuid.UUID
	cmds     commands.CashTransactionCommands
}

func (s *CashTransactionCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.tenant = s.store.AddTenant()

	clk := clock.NewMockClock(fixedNow)
	archive := commands.NewHistoryArchive(s.store, clk)
	s.cmds = commands.NewCashTransactionCommands(s.store, clk, archive)

	drawer := builder.NewCashDrawerBuilder().
		Owned(s.tenant.MerchantID, s.tenant.ShiftID, s.tenant.CollaboratorID).
		BuildDomain()
	s.store.PutDrawer(drawer)
	s.drawerID = drawer.ID()
}

func TestCashTransactionCommandsSuite(t *testing.T) {
	suite.Run(t, new(CashTransactionCommandsTestSuite))
}

func (s *CashTransactionCommandsTestSuite) input(typ ledger.Type, amount string) commands.CreateTransactionInput {
	in := commands.CreateTransactionInput{
		CashDrawerID:   s.drawerID,
		CollaboratorID: s.tenant.CollaboratorID,
		Type:           string(typ),
	}
	if amount != "" {
		in.Amount = ptr.To(decimal.RequireFromString(amount))
	}
	return in
}

func (s *CashTransactionCommandsTestSuite) apply(typ ledger.Type, amount string) uuid.UUID {
	id, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, s.input(typ, amount))
	s.Require().NoError(err, "%s %s", typ, amount)
	return id
}

func (s *CashTransactionCommandsTestSuite) drawer() cashdrawer.Snapshot {
	d, ok := s.store.Drawer(s.drawerID)
	s.Require().True(ok)
	return d
}

func (s *CashTransactionCommandsTestSuite) TestCreate_Balances() {
	s.Run("success: sale credits the drawer and stores the row", func() {
		s.SetupTest()
		id := s.apply(ledger.TypeSale, "25.50")

		s.Equal("125.50", s.drawer().CurrentBalance.String())
		row, ok := s.store.Transaction(id)
		s.Require().True(ok)
		s.Equal(ledger.TypeSale, row.Type)
		s.Equal("25.50", row.Amount.String())
		s.Equal(record.StatusActive, row.Status)
		s.Equal(int64(2), s.drawer().Version)
	})

	s.Run("success: ledger reconciles with the drawer", func() {
		s.SetupTest()
		s.apply(ledger.TypeSale, "40.00")
		s.apply(ledger.TypeTip, "2.50")
		s.apply(ledger.TypeRefund, "15.00")
		s.apply(ledger.TypeAdjustmentUp, "0.10")
		s.apply(ledger.TypeWithdrawal, "50.00")
		s.apply(ledger.TypeAdjustmentDown, "0.60")
		s.apply(ledger.TypePause, "")
		s.apply(ledger.TypeUnpause, "")

		d := s.drawer()
		sum := d.OpeningBalance
		for _, row := range s.store.TransactionsOf(s.drawerID) {
			switch row.Type.Effect() {
			case ledger.EffectCredit:
				sum = sum.Add(row.Amount)
			case ledger.EffectDebit:
				next, err := sum.Sub(row.Amount)
				s.Require().NoError(err)
				sum = next
			}
		}
		s.Equal("77.00", d.CurrentBalance.String())
		s.True(sum.Equal(d.CurrentBalance), "ledger %s drawer %s", sum, d.CurrentBalance)
	})

	s.Run("error: 400 and nothing written when a debit exceeds the balance", func() {
		s.SetupTest()
		_, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, s.input(ledger.TypeWithdrawal, "100.01"))
		s.True(errs.IsBadRequest(err), "got %v", err)
		s.Equal("100.00", s.drawer().CurrentBalance.String())
		s.Empty(s.store.TransactionsOf(s.drawerID))
	})

	s.Run("success: state type ignores a sent amount and stores 0", func() {
		s.SetupTest()
		id := s.apply(ledger.TypePause, "-5.00")

		row, ok := s.store.Transaction(id)
		s.Require().True(ok)
		s.True(row.Amount.IsZero())
		s.Equal(cashdrawer.StatePause, s.drawer().State)
		s.Equal("100.00", s.drawer().CurrentBalance.String())
	})

	invalid := []struct {
		name string
		in   func(s *CashTransactionCommandsTestSuite) commands.CreateTransactionInput
	}{
		{name: "unknown type", in: func(s *CashTransactionCommandsTestSuite) commands.CreateTransactionInput {
			return s.input("DEPOSIT", "1.00")
		}},
		{name: "sale without amount", in: func(s *CashTransactionCommandsTestSuite) commands.CreateTransactionInput {
			return s.input(ledger.TypeSale, "")
		}},
		{name: "negative amount", in: func(s *CashTransactionCommandsTestSuite) commands.CreateTransactionInput {
			return s.input(ledger.TypeSale, "-5.00")
		}},
		{name: "amount with three decimals", in: func(s *CashTransactionCommandsTestSuite) commands.CreateTransactionInput {
			return s.input(ledger.TypeSale, "5.005")
		}},
		{name: "unpause an open drawer", in: func(s *CashTransactionCommandsTestSuite) commands.CreateTransactionInput {
			return s.input(ledger.TypeUnpause, "")
		}},
		{name: "opening an open drawer", in: func(s *CashTransactionCommandsTestSuite) commands.CreateTransactionInput {
			return s.input(ledger.TypeOpening, "")
		}},
	}
	for _, tc := range invalid {
		s.Run("error: 400 "+tc.name, func() {
			s.SetupTest()
			_, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, tc.in(s))
			s.True(errs.IsBadRequest(err), "got %v", err)
			s.Empty(s.store.TransactionsOf(s.drawerID))
		})
	}
}

func (s *CashTransactionCommandsTestSuite) TestCreate_StateMachine() {
	s.Run("success: pause blocks sales until unpaused", func() {
		s.SetupTest()
		s.apply(ledger.TypePause, "")
		s.Equal(cashdrawer.StatePause, s.drawer().State)

		_, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, s.input(ledger.TypeSale, "1.00"))
		s.True(errs.IsBadRequest(err), "got %v", err)

		s.apply(ledger.TypeUnpause, "")
		s.apply(ledger.TypeSale, "1.00")
		s.Equal("101.00", s.drawer().CurrentBalance.String())
	})

	s.Run("success: close archives the session in the same unit of work", func() {
		s.SetupTest()
		s.apply(ledger.TypeSale, "80.00")
		s.apply(ledger.TypeClose, "")

		d := s.drawer()
		s.Equal(cashdrawer.StateClose, d.State)
		s.Require().NotNil(d.ClosingBalance)
		s.Equal("180.00", d.ClosingBalance.String())
		s.Equal(s.tenant.CollaboratorID, *d.ClosedBy)

		histories := s.store.HistoriesOf(s.drawerID)
		s.Require().Len(histories, 1)
		got := histories[0]
		s.Empty(cmp.Diff(
			[]string{"100.00", "180.00"},
			[]string{got.OpeningBalance.String(), got.ClosingBalance.String()},
		))
		s.Equal(s.tenant.CollaboratorID, got.OpenedBy)
		s.Equal(s.tenant.CollaboratorID, got.ClosedBy)
		s.Equal(record.StatusActive, got.Status)
	})

	s.Run("success: opening after close seeds the next session", func() {
		s.SetupTest()
		s.apply(ledger.TypeSale, "80.00")
		s.apply(ledger.TypeClose, "")

		s.apply(ledger.TypeOpening, "")

		d := s.drawer()
		s.Equal(cashdrawer.StateOpen, d.State)
		s.Equal("180.00", d.OpeningBalance.String())
		s.Equal("180.00", d.CurrentBalance.String())
		s.Nil(d.ClosingBalance)
		s.Nil(d.ClosedBy)
	})

	s.Run("error: 409 when reopening while another drawer holds the shift", func() {
		s.SetupTest()
		s.apply(ledger.TypeClose, "")
		other := builder.NewCashDrawerBuilder().
			Owned(s.tenant.MerchantID, s.tenant.ShiftID, s.tenant.CollaboratorID).
			BuildDomain()
		s.store.PutDrawer(other)

		_, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, s.input(ledger.TypeOpening, ""))
		s.True(errs.IsConflict(err), "got %v", err)
		s.Equal(cashdrawer.StateClose, s.drawer().State)
	})

	s.Run("error: 404 on a deleted drawer", func() {
		s.SetupTest()
		deleted := builder.NewCashDrawerBuilder().
			Owned(s.tenant.MerchantID, s.tenant.ShiftID, s.tenant.CollaboratorID).
			Deleted().
			BuildDomain()
		s.store.PutDrawer(deleted)
		in := s.input(ledger.TypeSale, "1.00")
		in.CashDrawerID = deleted.ID()

		_, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, in)
		s.True(errs.IsNotFound(err), "got %v", err)
	})

	s.Run("error: 403 for another merchant's order", func() {
		s.SetupTest()
		other := s.store.AddTenant()
		in := s.input(ledger.TypeSale, "1.00")
		in.OrderID = &other.OrderID

		_, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, in)
		s.True(errs.IsForbidden(err), "got %v", err)
	})

	s.Run("error: 403 without merchant", func() {
		s.SetupTest()
		_, err := s.cmds.Create(s.ctx, uuid.Nil, s.input(ledger.TypeSale, "1.00"))
		s.True(errs.IsForbidden(err), "got %v", err)
	})
}

func (s *CashTransactionCommandsTestSuite) TestCreate_Concurrency() {
	s.Run("concurrent sales lose no update", func() {
		s.SetupTest()
		const n = 25
		var wg sync.WaitGroup
		errCh := make(chan error, n)
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, s.input(ledger.TypeSale, "2.00"))
				errCh <- err
			}()
		}
		wg.Wait()
		close(errCh)
		for err := range errCh {
			s.Require().NoError(err)
		}

		s.Equal("150.00", s.drawer().CurrentBalance.String())
		s.Len(s.store.TransactionsOf(s.drawerID), n)
	})

	s.Run("concurrent closes archive exactly once", func() {
		s.SetupTest()
		var wg sync.WaitGroup
		results := make([]error, 2)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, results[i] = s.cmds.Create(s.ctx, s.tenant.MerchantID, s.input(ledger.TypeClose, ""))
			}()
		}
		wg.Wait()

		succeeded := 0
		for _, err := range results {
			if err == nil {
				succeeded++
				continue
			}
			s.True(errs.IsConflict(err) || errs.IsBadRequest(err), "got %v", err)
		}
		s.Equal(1, succeeded)
		s.Len(s.store.HistoriesOf(s.drawerID), 1)
	})

	s.Run("transition lost between validation and lock reports 409", func() {
		s.SetupTest()
		var fired atomic.Bool
		s.store.BeforeWithin = func() {
			if fired.CompareAndSwap(false, true) {
				s.apply(ledger.TypePause, "")
			}
		}

		_, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, s.input(ledger.TypeClose, ""))
		s.True(errs.IsConflict(err), "got %v", err)
		s.True(errs.Is(err, shared.ErrConcurrentTransition))
		s.Equal(cashdrawer.StatePause, s.drawer().State)
		s.Empty(s.store.HistoriesOf(s.drawerID))
	})

	s.Run("balance change between validation and lock re-applies on fresh state", func() {
		s.SetupTest()
		var fired atomic.Bool
		s.store.BeforeWithin = func() {
			if fired.CompareAndSwap(false, true) {
				s.apply(ledger.TypeWithdrawal, "60.00")
			}
		}

		_, err := s.cmds.Create(s.ctx, s.tenant.MerchantID, s.input(ledger.TypeRefund, "50.00"))
		s.True(errs.IsBadRequest(err), "got %v", err)
		s.Equal("40.00", s.drawer().CurrentBalance.String())
	})
}

func (s *CashTransactionCommandsTestSuite) TestUpdate() {
	s.Run("success: order and notes change, type and amount stay", func() {
		s.SetupTest()
		id := s.apply(ledger.TypeSale, "10.00")

		err := s.cmds.Update(s.ctx, s.tenant.MerchantID, id, commands.UpdateTransactionInput{
			OrderID: &s.tenant.OrderID,
			Notes:   ptr.To("table 7"),
		})
		s.Require().NoError(err)

		row, _ := s.store.Transaction(id)
		s.Equal(s.tenant.OrderID, *row.OrderID)
		s.Equal("table 7", *row.Notes)
		s.Equal(ledger.TypeSale, row.Type)
		s.True(row.Amount.Equal(money.MustParse("10.00")))
		s.Equal("110.00", s.drawer().CurrentBalance.String())
	})

	s.Run("error: 404 for a deleted row", func() {
		s.SetupTest()
		id := s.apply(ledger.TypePause, "")
		s.Require().NoError(s.cmds.Delete(s.ctx, s.tenant.MerchantID, id))

		err := s.cmds.Update(s.ctx, s.tenant.MerchantID, id, commands.UpdateTransactionInput{Notes: ptr.To("x")})
		s.True(errs.IsNotFound(err), "got %v", err)
	})

	s.Run("error: 403 for another merchant", func() {
		s.SetupTest()
		id := s.apply(ledger.TypeSale, "10.00")
		other := s.store.AddTenant()

		err := s.cmds.Update(s.ctx, other.MerchantID, id, commands.UpdateTransactionInput{})
		s.True(errs.IsForbidden(err), "got %v", err)
	})
}

func (s *CashTransactionCommandsTestSuite) TestDelete() {
	s.Run("error: 400 for a row that moved the balance", func() {
		s.SetupTest()
		id := s.apply(ledger.TypeSale, "10.00")

		err := s.cmds.Delete(s.ctx, s.tenant.MerchantID, id)
		s.True(errs.IsBadRequest(err), "got %v", err)
		row, _ := s.store.Transaction(id)
		s.Equal(record.StatusActive, row.Status)
	})

	s.Run("error: 400 for the OPENING and CLOSE rows of a session", func() {
		s.SetupTest()
		s.apply(ledger.TypeSale, "50.00")
		closeID := s.apply(ledger.TypeClose, "")
		openID := s.apply(ledger.TypeOpening, "")

		for _, id := range []uuid.UUID{openID, closeID} {
			err := s.cmds.Delete(s.ctx, s.tenant.MerchantID, id)
			s.True(errs.IsBadRequest(err), "got %v", err)
			row, _ := s.store.Transaction(id)
			s.Equal(record.StatusActive, row.Status)
		}
		d := s.drawer()
		s.Equal("150.00", d.OpeningBalance.String())
		s.Equal("150.00", d.CurrentBalance.String())
	})

	s.Run("success then 409 for a state row", func() {
		s.SetupTest()
		id := s.apply(ledger.TypePause, "")

		s.Require().NoError(s.cmds.Delete(s.ctx, s.tenant.MerchantID, id))
		row, _ := s.store.Transaction(id)
		s.Equal(record.StatusDeleted, row.Status)

		err := s.cmds.Delete(s.ctx, s.tenant.MerchantID, id)
		s.True(errs.IsConflict(err), "got %v", err)
	})

	s.Run("error: 404 for an unknown row", func() {
		s.SetupTest()
		err := s.cmds.Delete(s.ctx, s.tenant.MerchantID, uuid.New())
		s.True(errs.IsNotFound(err), "got %v", err)
	})
}

//go:build e2e

package cashdrawer_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"cashdrawer-api/internal/domain/ledger"
	reqdto "cashdrawer-api/internal/handler/dto/request"
	resdto "cashdrawer-api/internal/handler/dto/response"
	"cashdrawer-api/tests/common/authtest"
	"cashdrawer-api/tests/common/builder"
	"cashdrawer-api/tests/common/dbtest"
	"cashdrawer-api/tests/common/httptest"
	"cashdrawer-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	drawersURL      = "/api/cash-drawers"
	transactionsURL = "/api/cash-transactions"
	historyURL      = "/api/cash-drawer-history"
)

type CashDrawerSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestCashDrawerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CashDrawerSuite))
}

func (s *CashDrawerSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *CashDrawerSuite) token(tenant dbtest.Tenant) string {
	return s.jwt.GenerateToken(s.T(), tenant.CollaboratorID, tenant.MerchantID, "cashier")
}

func (s *CashDrawerSuite) openDrawer(tenant dbtest.Tenant, token, opening string) resdto.CashDrawerResponse {
	t := s.T()
	req := builder.NewCashDrawerBuilder().
		Owned(tenant.MerchantID, tenant.ShiftID, tenant.CollaboratorID).
		With(func(b *builder.CashDrawerBuilder) { b.OpeningBalance = decimal.RequireFromString(opening) }).
		BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, drawersURL, req, token)
	var res resdto.Envelope[resdto.CashDrawerResponse]
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res.Data
}

func (s *CashDrawerSuite) postTransaction(tenant dbtest.Tenant, token string, drawerID uuid.UUID, txType ledger.Type, amount string) *resdto.Envelope[resdto.CashTransactionResponse] {
	req := builder.NewCashTransactionBuilder().
		With(func(b *builder.CashTransactionBuilder) {
			b.CashDrawerID = drawerID
			b.CollaboratorID = tenant.CollaboratorID
		}).
		OfType(txType, amount).
		BuildCreateRequestDTO()

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, transactionsURL, req, token)
	if w.Code != http.StatusCreated {
		return nil
	}
	var res resdto.Envelope[resdto.CashTransactionResponse]
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
	return &res
}

func (s *CashDrawerSuite) getDrawer(token string, id string) resdto.CashDrawerResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, drawersURL+"/"+id, nil, token)
	var res resdto.Envelope[resdto.CashDrawerResponse]
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res.Data
}

func (s *CashDrawerSuite) TestSessionLifecycle() {
	s.Run("open, sell, pause, close and reopen a drawer", func() {
		t := s.T()
		tenant := dbtest.SeedTenant(t, s.DB, "Corner Cafe")
		token := s.token(tenant)

		drawer := s.openDrawer(tenant, token, "100.00")
		require.Equal(t, "OPEN", drawer.Status)
		require.Equal(t, "100.00", drawer.CurrentBalance)
		drawerID := uuid.MustParse(drawer.ID)

		require.NotNil(t, s.postTransaction(tenant, token, drawerID, ledger.TypeSale, "25.50"))
		require.NotNil(t, s.postTransaction(tenant, token, drawerID, ledger.TypeTip, "4.50"))
		require.NotNil(t, s.postTransaction(tenant, token, drawerID, ledger.TypeWithdrawal, "10.00"))
		require.Equal(t, "120.00", s.getDrawer(token, drawer.ID).CurrentBalance)

		require.NotNil(t, s.postTransaction(tenant, token, drawerID, ledger.TypePause, "0"))
		require.Equal(t, "PAUSE", s.getDrawer(token, drawer.ID).Status)
		require.Nil(t, s.postTransaction(tenant, token, drawerID, ledger.TypeSale, "1.00"), "sale on a paused drawer")
		require.NotNil(t, s.postTransaction(tenant, token, drawerID, ledger.TypeUnpause, "0"))

		require.NotNil(t, s.postTransaction(tenant, token, drawerID, ledger.TypeClose, "0"))
		closed := s.getDrawer(token, drawer.ID)
		require.Equal(t, "CLOSE", closed.Status)
		require.NotNil(t, closed.ClosingBalance)
		require.Equal(t, "120.00", *closed.ClosingBalance)
		require.NotNil(t, closed.ClosedBy)
		require.Equal(t, tenant.CollaboratorID.String(), *closed.ClosedBy)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s?cashDrawerId=%s", historyURL, drawer.ID), nil, token)
		var history resdto.ListEnvelope[resdto.DrawerHistoryResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &history)
		require.Len(t, history.Data, 1)

		expected := resdto.DrawerHistoryResponse{
			CashDrawerID:   drawer.ID,
			OpeningBalance: "100.00",
			ClosingBalance: "120.00",
			OpenedBy:       tenant.CollaboratorID.String(),
			ClosedBy:       tenant.CollaboratorID.String(),
			Status:         "ACTIVE",
		}
		opts := cmpopts.IgnoreFields(resdto.DrawerHistoryResponse{}, "ID", "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(expected, history.Data[0], opts); diff != "" {
			t.Errorf("history entry mismatch (-want +got):\n%s", diff)
		}

		require.NotNil(t, s.postTransaction(tenant, token, drawerID, ledger.TypeOpening, "0"))
		reopened := s.getDrawer(token, drawer.ID)
		require.Equal(t, "OPEN", reopened.Status)
		require.Equal(t, "120.00", reopened.OpeningBalance)
		require.Nil(t, reopened.ClosingBalance)
	})

	s.Run("ledger reads list every transaction of the drawer", func() {
		t := s.T()
		tenant := dbtest.SeedTenant(t, s.DB, "Book Shop")
		token := s.token(tenant)
		drawer := s.openDrawer(tenant, token, "50.00")
		drawerID := uuid.MustParse(drawer.ID)

		for range 3 {
			require.NotNil(t, s.postTransaction(tenant, token, drawerID, ledger.TypeSale, "2.00"))
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s?cashDrawerId=%s&type=SALE&limit=2", transactionsURL, drawer.ID), nil, token)
		var list resdto.ListEnvelope[resdto.CashTransactionResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)

		want := resdto.PaginationMeta{Page: 1, Limit: 2, Total: 3, TotalPages: 2, HasNext: true, HasPrev: false}
		if diff := cmp.Diff(want, list.PaginationMeta); diff != "" {
			t.Errorf("pagination mismatch (-want +got):\n%s", diff)
		}
		require.Len(t, list.Data, 2)
	})
}

func (s *CashDrawerSuite) TestRejections() {
	s.Run("overdraft leaves the balance untouched", func() {
		t := s.T()
		tenant := dbtest.SeedTenant(t, s.DB, "Bakery")
		token := s.token(tenant)
		drawer := s.openDrawer(tenant, token, "20.00")

		req := builder.NewCashTransactionBuilder().
			With(func(b *builder.CashTransactionBuilder) {
				b.CashDrawerID = uuid.MustParse(drawer.ID)
				b.CollaboratorID = tenant.CollaboratorID
			}).
			OfType(ledger.TypeRefund, "20.01").
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, req, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
		require.Equal(t, "20.00", s.getDrawer(token, drawer.ID).CurrentBalance)
	})

	s.Run("ledger rows cannot change type or amount", func() {
		t := s.T()
		tenant := dbtest.SeedTenant(t, s.DB, "Noodle Bar")
		token := s.token(tenant)
		drawer := s.openDrawer(tenant, token, "10.00")
		sale := s.postTransaction(tenant, token, uuid.MustParse(drawer.ID), ledger.TypeSale, "5.00")
		require.NotNil(t, sale)

		body := map[string]any{"notes": "fixed", "amount": "500.00"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, transactionsURL+"/"+sale.Data.ID, body, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "invalid request body")
		require.Equal(t, "15.00", s.getDrawer(token, drawer.ID).CurrentBalance)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, transactionsURL+"/"+sale.Data.ID, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("second active drawer for a shift conflicts", func() {
		t := s.T()
		tenant := dbtest.SeedTenant(t, s.DB, "Florist")
		token := s.token(tenant)
		s.openDrawer(tenant, token, "10.00")

		req := builder.NewCashDrawerBuilder().
			Owned(tenant.MerchantID, tenant.ShiftID, tenant.CollaboratorID).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, drawersURL, req, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("another merchant cannot read or post to the drawer", func() {
		t := s.T()
		owner := dbtest.SeedTenant(t, s.DB, "Owner")
		other := dbtest.SeedTenant(t, s.DB, "Other")
		drawer := s.openDrawer(owner, s.token(owner), "10.00")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, drawersURL+"/"+drawer.ID, nil, s.token(other))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")

		res := s.postTransaction(other, s.token(other), uuid.MustParse(drawer.ID), ledger.TypeSale, "1.00")
		require.Nil(t, res)
	})

	s.Run("token without merchant context is forbidden", func() {
		t := s.T()
		tenant := dbtest.SeedTenant(t, s.DB, "Kiosk")
		token := s.jwt.GenerateToken(t, tenant.CollaboratorID, uuid.Nil, "cashier")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, drawersURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "merchant context required")
	})

	s.Run("deleted drawer rejects transactions", func() {
		t := s.T()
		tenant := dbtest.SeedTenant(t, s.DB, "Deli")
		token := s.token(tenant)
		drawer := s.openDrawer(tenant, token, "10.00")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, drawersURL+"/"+drawer.ID, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		req := reqdto.CreateCashTransactionRequest{
			CashDrawerID:   uuid.MustParse(drawer.ID),
			CollaboratorID: tenant.CollaboratorID,
			Type:           string(ledger.TypePause),
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, req, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}

func (s *CashDrawerSuite) TestConcurrentSales() {
	s.Run("concurrent sales are all applied", func() {
		t := s.T()
		tenant := dbtest.SeedTenant(t, s.DB, "Stadium Bar")
		token := s.token(tenant)
		drawer := s.openDrawer(tenant, token, "0.00")
		drawerID := uuid.MustParse(drawer.ID)

		const workers = 10
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			created int
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if s.postTransaction(tenant, token, drawerID, ledger.TypeSale, "1.50") != nil {
					mu.Lock()
					created++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		require.Equal(t, workers, created)
		require.Equal(t, "15.00", s.getDrawer(token, drawer.ID).CurrentBalance)
	})
}

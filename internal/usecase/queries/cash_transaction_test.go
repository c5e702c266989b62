//go:build unit

package queries_test

import (
	"context"
	"testing"

	"cashdrawer-api/internal/infra"
	"cashdrawer-api/internal/pkg/errs"
	"cashdrawer-api/internal/usecase/queries"
	"cashdrawer-api/tests/common/builder"
	queriesmock "cashdrawer-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CashTransactionQueriesTestSuite struct {
	suite.Suite
	ctx        context.Context
	mockCtrl   *gomock.Controller
	mockStore  *queriesmock.MockCashTransactionReadStore
	q          queries.CashTransactionQueries
	merchantID uuid.UUID
}

func (s *CashTransactionQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockCashTransactionReadStore(s.mockCtrl)
	s.q = queries.NewCashTransactionQueries(s.mockStore)
	s.merchantID = uuid.New()
}

func (s *CashTransactionQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCashTransactionQueriesSuite(t *testing.T) {
	suite.Run(t, new(CashTransactionQueriesTestSuite))
}

func (s *CashTransactionQueriesTestSuite) TestGetByID() {
	view := builder.NewCashTransactionBuilder().
		With(func(b *builder.CashTransactionBuilder) { b.MerchantID = s.merchantID }).
		BuildView()

	s.Run("success", func() {
		s.mockStore.EXPECT().FindByID(s.ctx, view.ID).Return(view, nil).Times(1)

		got, err := s.q.GetByID(s.ctx, s.merchantID, view.ID)
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("error: 403 for another merchant", func() {
		s.mockStore.EXPECT().FindByID(s.ctx, view.ID).Return(view, nil).Times(1)

		_, err := s.q.GetByID(s.ctx, uuid.New(), view.ID)
		s.True(errs.IsForbidden(err), "got %v", err)
	})

	s.Run("error: 404 when the store has no row", func() {
		s.mockStore.EXPECT().FindByID(s.ctx, view.ID).
			Return(nil, infra.WrapRepoErr("cash transaction not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.q.GetByID(s.ctx, s.merchantID, view.ID)
		s.True(errs.Is(err, queries.ErrCashTransactionNotFound))
	})

	s.Run("error: 403 without merchant, store untouched", func() {
		_, err := s.q.GetByID(s.ctx, uuid.Nil, view.ID)
		s.True(errs.IsForbidden(err), "got %v", err)
	})
}

func (s *CashTransactionQueriesTestSuite) TestList() {
	s.Run("success: resolves paging and builds meta", func() {
		items := []*queries.CashTransactionView{builder.NewCashTransactionBuilder().BuildView()}
		filter := queries.CashTransactionFilter{Type: "REFUND", Status: "DELETED"}
		want := queries.ListParams{Page: 2, Limit: 1, Offset: 1, SortKey: "amount", Desc: false}
		s.mockStore.EXPECT().List(s.ctx, s.merchantID, filter, want).Return(items, int64(3), nil).Times(1)

		got, err := s.q.List(s.ctx, s.merchantID, filter, queries.PageRequest{Page: 2, Limit: 1, SortBy: "amount", SortOrder: "ASC"})
		s.Require().NoError(err)
		s.Equal(items, got.Items)
		s.Equal(queries.PageMeta{Page: 2, Limit: 1, Total: 3, TotalPages: 3, HasNext: true, HasPrev: true}, got.Meta)
	})

	invalid := []struct {
		name   string
		filter queries.CashTransactionFilter
		page   queries.PageRequest
	}{
		{name: "unknown type", filter: queries.CashTransactionFilter{Type: "DEPOSIT"}},
		{name: "unknown status", filter: queries.CashTransactionFilter{Status: "ARCHIVED"}},
		{name: "unsupported sort", page: queries.PageRequest{SortBy: "notes"}},
	}
	for _, tc := range invalid {
		s.Run("error: 400 for "+tc.name, func() {
			_, err := s.q.List(s.ctx, s.merchantID, tc.filter, tc.page)
			s.True(errs.IsBadRequest(err), "got %v", err)
		})
	}
}

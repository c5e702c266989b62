//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"cashdrawer-api/internal/domain/ledger"
	"cashdrawer-api/internal/infra/pgsql"
	"cashdrawer-api/internal/infra/readstore"
	"cashdrawer-api/internal/pkg/ptr"
	"cashdrawer-api/internal/usecase/queries"
	"cashdrawer-api/tests/common/builder"
	readstoremock "cashdrawer-api/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCashTransactionReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	b := builder.NewCashTransactionBuilder().OfType(ledger.TypeWithdrawal, "40").With(func(b *builder.CashTransactionBuilder) {
		b.OrderID = &orderID
		b.Notes = ptr.To("bank run")
	})

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockCashTransactionReadQueries(ctrl)
	store := readstore.NewCashTransactionReadStore(mockQueries, &mockDBTX{})
	mockQueries.EXPECT().GetCashTransactionView(ctx, gomock.Any(), b.ID).Return(b.BuildInfra(), nil)

	view, err := store.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.MerchantID, view.MerchantID)
	assert.Equal(t, "WITHDRAWAL", view.Type)
	assert.Equal(t, "40.00", view.Amount.StringFixed(2))
	assert.Equal(t, &orderID, view.OrderID)
	assert.Equal(t, "bank run", *view.Notes)
}

func TestCashTransactionReadStore_List(t *testing.T) {
	ctx := context.Background()
	merchantID := uuid.New()
	params := queries.ListParams{Page: 1, Limit: 10, SortKey: "amount", Desc: true}

	testCases := []struct {
		name         string
		filterStatus string
		expectStatus string
	}{
		{name: "active rows by default", filterStatus: "", expectStatus: "ACTIVE"},
		{name: "deleted rows on request", filterStatus: "DELETED", expectStatus: "DELETED"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockCashTransactionReadQueries(ctrl)
			store := readstore.NewCashTransactionReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().ListCashTransactions(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ pgsql.DBTX, arg pgsql.ListCashTransactionsParams) ([]pgsql.CashTransactionView, int64, error) {
					assert.Equal(t, tc.expectStatus, arg.Status)
					assert.True(t, arg.Page.Desc)
					assert.Equal(t, int32(10), arg.Page.Limit)
					return []pgsql.CashTransactionView{builder.NewCashTransactionBuilder().BuildInfra()}, 1, nil
				})

			views, total, err := store.List(ctx, merchantID, queries.CashTransactionFilter{Status: tc.filterStatus}, params)
			require.NoError(t, err)
			assert.Equal(t, int64(1), total)
			assert.Len(t, views, 1)
		})
	}
}

//go:build unit

package queries_test

import (
	"context"
	"testing"

	"cashdrawer-api/internal/pkg/errs"
	"cashdrawer-api/internal/usecase/queries"
	"cashdrawer-api/tests/common/builder"
	queriesmock "cashdrawer-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCashDrawerQueries_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCashDrawerReadStore(ctrl)
	q := queries.NewCashDrawerQueries(store)

	merchantID := uuid.New()
	deleted := builder.NewCashDrawerBuilder().
		With(func(b *builder.CashDrawerBuilder) { b.MerchantID = merchantID }).
		Deleted().
		BuildView()

	store.EXPECT().FindByID(gomock.Any(), deleted.ID).Return(deleted, nil)

	got, err := q.GetByID(context.Background(), merchantID, deleted.ID)
	require.NoError(t, err)
	assert.Equal(t, "DELETED", got.Status)
}

func TestCashDrawerQueries_List(t *testing.T) {
	merchantID := uuid.New()

	t.Run("status filter accepts states and DELETED", func(t *testing.T) {
		for _, status := range []string{"", "OPEN", "PAUSE", "CLOSE", "DELETED"} {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockCashDrawerReadStore(ctrl)
			filter := queries.CashDrawerFilter{Status: status}
			store.EXPECT().List(gomock.Any(), merchantID, filter, gomock.Any()).Return(nil, int64(0), nil)

			got, err := queries.NewCashDrawerQueries(store).List(context.Background(), merchantID, filter, queries.PageRequest{})
			require.NoError(t, err, status)
			assert.Empty(t, got.Items)
			assert.Equal(t, 0, got.Meta.TotalPages)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewCashDrawerQueries(queriesmock.NewMockCashDrawerReadStore(ctrl))

		_, err := q.List(context.Background(), merchantID, queries.CashDrawerFilter{Status: "ACTIVE"}, queries.PageRequest{})
		assert.True(t, errs.Is(err, queries.ErrInvalidStatus))
	})
}

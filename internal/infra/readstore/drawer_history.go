package readstore

//go:generate mockgen -source=drawer_history.go -destination=../../../tests/mock/readstore/drawer_history.go -package=readstoremock

import (
	"context"

	"cashdrawer-api/internal/domain/record"
	"cashdrawer-api/internal/infra"
	"cashdrawer-api/internal/infra/pgsql"
	"cashdrawer-api/internal/pkg/pgconv"
	"cashdrawer-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var drawerHistorySortColumns = map[string]string{
	queries.SortCreatedAt: "h.created_at",
	"opening_balance":     "h.opening_balance",
	"closing_balance":     "h.closing_balance",
	"status":              "h.status",
}

type DrawerHistoryReadQueries interface {
	GetCashDrawerHistoryView(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.CashDrawerHistoryView, error)
	ListCashDrawerHistories(ctx context.Context, db pgsql.DBTX, arg pgsql.ListCashDrawerHistoriesParams) ([]pgsql.CashDrawerHistoryView, int64, error)
}

type DrawerHistoryReadStore struct {
	queries DrawerHistoryReadQueries
	db      pgsql.DBTX
}

func NewDrawerHistoryReadStore(queries DrawerHistoryReadQueries, db pgsql.DBTX) *DrawerHistoryReadStore {
	return &DrawerHistoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DrawerHistoryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DrawerHistoryView, error) {
	row, err := r.queries.GetCashDrawerHistoryView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cash drawer history not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cash drawer history view", err)
	}
	return toDrawerHistoryView(row), nil
}

func (r *DrawerHistoryReadStore) List(ctx context.Context, merchantID uuid.UUID, filter queries.DrawerHistoryFilter, params queries.ListParams) ([]*queries.DrawerHistoryView, int64, error) {
	status := filter.Status
	if status == "" {
		status = record.StatusActive.String()
	}
	rows, total, err := r.queries.ListCashDrawerHistories(ctx, r.db, pgsql.ListCashDrawerHistoriesParams{
		MerchantID:   merchantID,
		CashDrawerID: filter.CashDrawerID,
		OpenedBy:     filter.OpenedBy,
		ClosedBy:     filter.ClosedBy,
		Status:       status,
		CreatedDate:  filter.CreatedDate,
		Page:         toPage(params, drawerHistorySortColumns, "h.created_at"),
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list cash drawer history", err)
	}
	views := make([]*queries.DrawerHistoryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toDrawerHistoryView(row))
	}
	return views, total, nil
}

func toDrawerHistoryView(row pgsql.CashDrawerHistoryView) *queries.DrawerHistoryView {
	return &queries.DrawerHistoryView{
		ID:             row.ID,
		MerchantID:     row.MerchantID,
		CashDrawerID:   row.CashDrawerID,
		OpeningBalance: row.OpeningBalance,
		ClosingBalance: row.ClosingBalance,
		OpenedBy:       row.OpenedBy,
		ClosedBy:       row.ClosedBy,
		Status:         row.Status,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

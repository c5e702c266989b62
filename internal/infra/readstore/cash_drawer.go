package readstore

//go:generate mockgen -source=cash_drawer.go -destination=../../../tests/mock/readstore/cash_drawer.go -package=readstoremock

import (
	"context"

	"cashdrawer-api/internal/domain/cashdrawer"
	"cashdrawer-api/internal/domain/record"
	"cashdrawer-api/internal/infra"
	"cashdrawer-api/internal/infra/pgsql"
	"cashdrawer-api/internal/pkg/pgconv"
	"cashdrawer-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var cashDrawerSortColumns = map[string]string{
	queries.SortCreatedAt: "created_at",
	"opening_balance":     "opening_balance",
	"current_balance":     "current_balance",
	"status":              pgsql.CashDrawerStatusExpr,
}

type CashDrawerReadQueries interface {
	GetCashDrawer(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.CashDrawer, error)
	ListCashDrawers(ctx context.Context, db pgsql.DBTX, arg pgsql.ListCashDrawersParams) ([]pgsql.CashDrawer, int64, error)
}

type CashDrawerReadStore struct {
	queries CashDrawerReadQueries
	db      pgsql.DBTX
}

func NewCashDrawerReadStore(queries CashDrawerReadQueries, db pgsql.DBTX) *CashDrawerReadStore {
	return &CashDrawerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CashDrawerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CashDrawerView, error) {
	row, err := r.queries.GetCashDrawer(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cash drawer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cash drawer view", err)
	}
	return toCashDrawerView(row), nil
}

func (r *CashDrawerReadStore) List(ctx context.Context, merchantID uuid.UUID, filter queries.CashDrawerFilter, params queries.ListParams) ([]*queries.CashDrawerView, int64, error) {
	arg := pgsql.ListCashDrawersParams{
		MerchantID:     merchantID,
		ShiftID:        filter.ShiftID,
		CollaboratorID: filter.CollaboratorID,
		OpenedBy:       filter.OpenedBy,
		ClosedBy:       filter.ClosedBy,
		CreatedDate:    filter.CreatedDate,
		Page:           toPage(params, cashDrawerSortColumns, "created_at"),
	}
	if filter.Status == cashdrawer.StatusDeleted {
		arg.Deleted = true
	} else {
		arg.State = filter.Status
	}

	rows, total, err := r.queries.ListCashDrawers(ctx, r.db, arg)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list cash drawers", err)
	}
	views := make([]*queries.CashDrawerView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toCashDrawerView(row))
	}
	return views, total, nil
}

func toCashDrawerView(row pgsql.CashDrawer) *queries.CashDrawerView {
	status := row.State
	if record.Status(row.RecordStatus).IsDeleted() {
		status = cashdrawer.StatusDeleted
	}
	return &queries.CashDrawerView{
		ID:             row.ID,
		MerchantID:     row.MerchantID,
		ShiftID:        row.ShiftID,
		OpeningBalance: row.OpeningBalance,
		CurrentBalance: row.CurrentBalance,
		ClosingBalance: pgconv.DecimalPtrFromNullable(row.ClosingBalance),
		OpenedBy:       row.OpenedBy,
		ClosedBy:       pgconv.UUIDPtrFromPgtype(row.ClosedBy),
		Status:         status,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

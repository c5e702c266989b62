package readstore

//go:generate mockgen -source=cash_transaction.go -destination=../../../tests/mock/readstore/cash_transaction.go -package=readstoremock

import (
	"context"

	"cashdrawer-api/internal/domain/record"
	"cashdrawer-api/internal/infra"
	"cashdrawer-api/internal/infra/pgsql"
	"cashdrawer-api/internal/pkg/pgconv"
	"cashdrawer-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var cashTransactionSortColumns = map[string]string{
	queries.SortCreatedAt: "t.created_at",
	"amount":              "t.amount",
	"type":                "t.type",
	"status":              "t.status",
}

type CashTransactionReadQueries interface {
	GetCashTransactionView(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.CashTransactionView, error)
	ListCashTransactions(ctx context.Context, db pgsql.DBTX, arg pgsql.ListCashTransactionsParams) ([]pgsql.CashTransactionView, int64, error)
}

type CashTransactionReadStore struct {
	queries CashTransactionReadQueries
	db      pgsql.DBTX
}

func NewCashTransactionReadStore(queries CashTransactionReadQueries, db pgsql.DBTX) *CashTransactionReadStore {
	return &CashTransactionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CashTransactionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CashTransactionView, error) {
	row, err := r.queries.GetCashTransactionView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cash transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cash transaction view", err)
	}
	return toCashTransactionView(row), nil
}

func (r *CashTransactionReadStore) List(ctx context.Context, merchantID uuid.UUID, filter queries.CashTransactionFilter, params queries.ListParams) ([]*queries.CashTransactionView, int64, error) {
	status := filter.Status
	if status == "" {
		status = record.StatusActive.String()
	}
	rows, total, err := r.queries.ListCashTransactions(ctx, r.db, pgsql.ListCashTransactionsParams{
		MerchantID:   merchantID,
		CashDrawerID: filter.CashDrawerID,
		OrderID:      filter.OrderID,
		Type:         filter.Type,
		Status:       status,
		Page:         toPage(params, cashTransactionSortColumns, "t.created_at"),
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list cash transactions", err)
	}
	views := make([]*queries.CashTransactionView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toCashTransactionView(row))
	}
	return views, total, nil
}

func toCashTransactionView(row pgsql.CashTransactionView) *queries.CashTransactionView {
	return &queries.CashTransactionView{
		ID:             row.ID,
		MerchantID:     row.MerchantID,
		CashDrawerID:   row.CashDrawerID,
		OrderID:        pgconv.UUIDPtrFromPgtype(row.OrderID),
		CollaboratorID: row.CollaboratorID,
		Type:           row.Type,
		Amount:         row.Amount,
		Notes:          pgconv.StringPtrFromPgtype(row.Notes),
		Status:         row.Status,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

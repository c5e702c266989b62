package repository

//go:generate mockgen -source=cash_transaction.go -destination=../../../tests/mock/repository/cash_transaction.go -package=repositorymock

import (
	"context"

	"cashdrawer-api/internal/domain/ledger"
	"cashdrawer-api/internal/infra"
	"cashdrawer-api/internal/infra/pgsql"
	"cashdrawer-api/internal/infra/repository/converter"
	"cashdrawer-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CashTransactionWriteQueries interface {
	CreateCashTransaction(ctx context.Context, db pgsql.DBTX, arg pgsql.CashTransaction) error
	GetCashTransactionView(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.CashTransactionView, error)
	UpdateCashTransaction(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateCashTransactionParams) error
}

type CashTransactionRepository struct {
	queries CashTransactionWriteQueries
	db      pgsql.DBTX
}

func NewCashTransactionRepository(queries CashTransactionWriteQueries, db pgsql.DBTX) *CashTransactionRepository {
	return &CashTransactionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CashTransactionRepository) Create(ctx context.Context, t *ledger.Transaction) error {
	if err := r.queries.CreateCashTransaction(ctx, r.db, converter.CashTransactionToRow(t)); err != nil {
		return infra.WrapRepoErr("failed to create cash transaction", err)
	}
	return nil
}

func (r *CashTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	row, err := r.queries.GetCashTransactionView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cash transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cash transaction", err)
	}
	t, err := converter.CashTransactionFromRow(row.CashTransaction)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid cash transaction row", err, infra.KindDBFailure)
	}
	return t, nil
}

func (r *CashTransactionRepository) Update(ctx context.Context, t *ledger.Transaction) error {
	if err := r.queries.UpdateCashTransaction(ctx, r.db, converter.CashTransactionToUpdateParams(t)); err != nil {
		return infra.WrapRepoErr("failed to update cash transaction", err)
	}
	return nil
}

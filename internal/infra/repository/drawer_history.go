package repository

//go:generate mockgen -source=drawer_history.go -destination=../../../tests/mock/repository/drawer_history.go -package=repositorymock

import (
	"context"

	"cashdrawer-api/internal/domain/drawerhistory"
	"cashdrawer-api/internal/infra"
	"cashdrawer-api/internal/infra/pgsql"
	"cashdrawer-api/internal/infra/repository/converter"
	"cashdrawer-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DrawerHistoryWriteQueries interface {
	CreateCashDrawerHistory(ctx context.Context, db pgsql.DBTX, arg pgsql.CashDrawerHistory) error
	GetCashDrawerHistoryView(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.CashDrawerHistoryView, error)
	UpdateCashDrawerHistory(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateCashDrawerHistoryParams) error
}

type DrawerHistoryRepository struct {
	queries DrawerHistoryWriteQueries
	db      pgsql.DBTX
}

func NewDrawerHistoryRepository(queries DrawerHistoryWriteQueries, db pgsql.DBTX) *DrawerHistoryRepository {
	return &DrawerHistoryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DrawerHistoryRepository) Create(ctx context.Context, e *drawerhistory.Entry) error {
	if err := r.queries.CreateCashDrawerHistory(ctx, r.db, converter.HistoryToRow(e)); err != nil {
		return infra.WrapRepoErr("failed to create cash drawer history", err)
	}
	return nil
}

func (r *DrawerHistoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*drawerhistory.Entry, error) {
	row, err := r.queries.GetCashDrawerHistoryView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cash drawer history not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cash drawer history", err)
	}
	e, err := converter.HistoryFromRow(row.CashDrawerHistory)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid cash drawer history row", err, infra.KindDBFailure)
	}
	return e, nil
}

func (r *DrawerHistoryRepository) Update(ctx context.Context, e *drawerhistory.Entry) error {
	if err := r.queries.UpdateCashDrawerHistory(ctx, r.db, converter.HistoryToUpdateParams(e)); err != nil {
		return infra.WrapRepoErr("failed to update cash drawer history", err)
	}
	return nil
}

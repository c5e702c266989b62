package repository

//go:generate mockgen -source=cash_drawer.go -destination=../../../tests/mock/repository/cash_drawer.go -package=repositorymock

import (
	"context"

	"cashdrawer-api/internal/domain/cashdrawer"
	"cashdrawer-api/internal/infra"
	"cashdrawer-api/internal/infra/pgsql"
	"cashdrawer-api/internal/infra/repository/converter"
	"cashdrawer-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CashDrawerWriteQueries interface {
	CreateCashDrawer(ctx context.Context, db pgsql.DBTX, arg pgsql.CashDrawer) error
	GetCashDrawer(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.CashDrawer, error)
	GetCashDrawerForUpdate(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.CashDrawer, error)
	UpdateCashDrawerBalances(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateCashDrawerBalancesParams) (int64, error)
	UpdateCashDrawerDetails(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateCashDrawerDetailsParams) error
	SoftDeleteCashDrawer(ctx context.Context, db pgsql.DBTX, id uuid.UUID, at pgtype.Timestamptz) (int64, error)
}

type CashDrawerRepository struct {
	queries CashDrawerWriteQueries
	db      pgsql.DBTX
}

func NewCashDrawerRepository(queries CashDrawerWriteQueries, db pgsql.DBTX) *CashDrawerRepository {
	return &CashDrawerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CashDrawerRepository) Create(ctx context.Context, d *cashdrawer.Drawer) error {
	if err := r.queries.CreateCashDrawer(ctx, r.db, converter.CashDrawerToRow(d)); err != nil {
		return infra.WrapRepoErr("failed to create cash drawer", err)
	}
	return nil
}

func (r *CashDrawerRepository) FindByID(ctx context.Context, id uuid.UUID) (*cashdrawer.Drawer, error) {
	row, err := r.queries.GetCashDrawer(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cash drawer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cash drawer", err)
	}
	return toDrawer(row)
}

func (r *CashDrawerRepository) LockByID(ctx context.Context, id uuid.UUID) (*cashdrawer.Drawer, error) {
	row, err := r.queries.GetCashDrawerForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cash drawer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock cash drawer", err)
	}
	return toDrawer(row)
}

func (r *CashDrawerRepository) ApplyMutation(ctx context.Context, d *cashdrawer.Drawer, expectedVersion int64) error {
	n, err := r.queries.UpdateCashDrawerBalances(ctx, r.db, converter.CashDrawerToBalanceParams(d, expectedVersion))
	if err != nil {
		return infra.WrapRepoErr("failed to apply cash drawer mutation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("cash drawer version changed", nil, infra.KindStaleVersion)
	}
	return nil
}

func (r *CashDrawerRepository) UpdateDetails(ctx context.Context, d *cashdrawer.Drawer) error {
	params := pgsql.UpdateCashDrawerDetailsParams{
		ID:        d.ID(),
		ShiftID:   d.ShiftID(),
		OpenedBy:  d.OpenedBy(),
		UpdatedAt: pgconv.TimeToPgtype(d.UpdatedAt()),
	}
	if err := r.queries.UpdateCashDrawerDetails(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to update cash drawer", err)
	}
	return nil
}

func (r *CashDrawerRepository) SoftDelete(ctx context.Context, d *cashdrawer.Drawer) error {
	n, err := r.queries.SoftDeleteCashDrawer(ctx, r.db, d.ID(), pgconv.TimeToPgtype(d.UpdatedAt()))
	if err != nil {
		return infra.WrapRepoErr("failed to delete cash drawer", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("cash drawer already deleted", nil, infra.KindStaleVersion)
	}
	return nil
}

func toDrawer(row pgsql.CashDrawer) (*cashdrawer.Drawer, error) {
	d, err := converter.CashDrawerFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid cash drawer row", err, infra.KindDBFailure)
	}
	return d, nil
}

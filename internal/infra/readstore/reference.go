package readstore

//go:generate mockgen -source=reference.go -destination=../../../tests/mock/readstore/reference.go -package=readstoremock

import (
	"context"

	"cashdrawer-api/internal/infra"
	"cashdrawer-api/internal/infra/pgsql"
	"cashdrawer-api/internal/pkg/errs"
	"cashdrawer-api/internal/pkg/pgconv"
	"cashdrawer-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReferenceQueries interface {
	GetShiftMerchant(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (uuid.UUID, error)
	GetCollaboratorMerchant(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (uuid.UUID, error)
	GetOrderMerchant(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (uuid.UUID, error)
	GetCashDrawerMerchant(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (uuid.UUID, error)
	GetCashTransactionMerchant(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (uuid.UUID, error)
	GetCashDrawerHistoryMerchant(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (uuid.UUID, error)
	ShiftHasActiveDrawer(ctx context.Context, db pgsql.DBTX, shiftID, excludeID uuid.UUID) (bool, error)
}

var errUnknownEntityKind = errs.New("unknown entity kind")

// ReferenceReadStore resolves owning merchants for the ownership guard.
type ReferenceReadStore struct {
	queries ReferenceQueries
	db      pgsql.DBTX
}

func NewReferenceReadStore(queries ReferenceQueries, db pgsql.DBTX) *ReferenceReadStore {
	return &ReferenceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReferenceReadStore) MerchantOf(ctx context.Context, kind shared.EntityKind, id uuid.UUID) (uuid.UUID, error) {
	var lookup func(context.Context, pgsql.DBTX, uuid.UUID) (uuid.UUID, error)
	switch kind {
	case shared.KindShift:
		lookup = r.queries.GetShiftMerchant
	case shared.KindCollaborator:
		lookup = r.queries.GetCollaboratorMerchant
	case shared.KindOrder:
		lookup = r.queries.GetOrderMerchant
	case shared.KindCashDrawer:
		lookup = r.queries.GetCashDrawerMerchant
	case shared.KindCashTransaction:
		lookup = r.queries.GetCashTransactionMerchant
	case shared.KindDrawerHistory:
		lookup = r.queries.GetCashDrawerHistoryMerchant
	default:
		return uuid.Nil, errs.Wrapf(errUnknownEntityKind, "%s", kind)
	}

	merchantID, err := lookup(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr(string(kind)+" not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to resolve merchant of "+string(kind), err)
	}
	return merchantID, nil
}

func (r *ReferenceReadStore) ShiftHasActiveDrawer(ctx context.Context, shiftID, excludeDrawerID uuid.UUID) (bool, error) {
	exists, err := r.queries.ShiftHasActiveDrawer(ctx, r.db, shiftID, excludeDrawerID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active drawers of shift", err)
	}
	return exists, nil
}

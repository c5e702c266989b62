package queries

//go:generate mockgen -source=cash_drawer.go -destination=../../../tests/mock/queries/cash_drawer.go -package=queriesmock

import (
	"context"
	"time"

	"cashdrawer-api/internal/domain/cashdrawer"
	"cashdrawer-api/internal/infra"
	"cashdrawer-api/internal/pkg/errs"
	"cashdrawer-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrCashDrawerNotFound = errs.NotFound("cash drawer not found")

// CashDrawerSortKeys are the columns a drawer list can be ordered by.
var CashDrawerSortKeys = []string{SortCreatedAt, "opening_balance", "current_balance", "status"}

type CashDrawerView struct {
	ID             uuid.UUID
	MerchantID     uuid.UUID
	ShiftID        uuid.UUID
	OpeningBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	ClosingBalance *decimal.Decimal
	OpenedBy       uuid.UUID
	ClosedBy       *uuid.UUID
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CashDrawerFilter struct {
	ShiftID *uuid.UUID
	// CollaboratorID matches drawers opened or closed by the collaborator.
	CollaboratorID *uuid.UUID
	OpenedBy       *uuid.UUID
	ClosedBy       *uuid.UUID
	// Status is OPEN, PAUSE, CLOSE or DELETED. Empty lists every
	// non-deleted drawer.
	Status      string
	CreatedDate *time.Time
}

type CashDrawerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CashDrawerView, error)
	List(ctx context.Context, merchantID uuid.UUID, filter CashDrawerFilter, params ListParams) ([]*CashDrawerView, int64, error)
}

type CashDrawerQueries interface {
	GetByID(ctx context.Context, merchantID, id uuid.UUID) (*CashDrawerView, error)
	List(ctx context.Context, merchantID uuid.UUID, filter CashDrawerFilter, page PageRequest) (*Page[CashDrawerView], error)
}

type cashDrawerQueriesImpl struct {
	store CashDrawerReadStore
}

func NewCashDrawerQueries(store CashDrawerReadStore) CashDrawerQueries {
	return &cashDrawerQueriesImpl{store: store}
}

func (q *cashDrawerQueriesImpl) GetByID(ctx context.Context, merchantID, id uuid.UUID) (*CashDrawerView, error) {
	if merchantID == uuid.Nil {
		return nil, shared.ErrMerchantRequired
	}
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCashDrawerNotFound
		}
		return nil, err
	}
	if err = shared.CheckOwner(shared.KindCashDrawer, v.MerchantID, merchantID); err != nil {
		return nil, err
	}
	return v, nil
}

func (q *cashDrawerQueriesImpl) List(ctx context.Context, merchantID uuid.UUID, filter CashDrawerFilter, page PageRequest) (*Page[CashDrawerView], error) {
	if merchantID == uuid.Nil {
		return nil, shared.ErrMerchantRequired
	}
	if filter.Status != "" && filter.Status != cashdrawer.StatusDeleted && !cashdrawer.State(filter.Status).IsValid() {
		return nil, ErrInvalidStatus
	}
	params, err := page.Resolve(CashDrawerSortKeys)
	if err != nil {
		return nil, err
	}
	items, total, err := q.store.List(ctx, merchantID, filter, params)
	if err != nil {
		return nil, err
	}
	return &Page[CashDrawerView]{Items: items, Meta: NewPageMeta(params, total)}, nil
}

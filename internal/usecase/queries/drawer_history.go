package queries

//go:generate mockgen -source=drawer_history.go -destination=../../../tests/mock/queries/drawer_history.go -package=queriesmock

import (
	"context"
	"time"

	"cashdrawer-api/internal/domain/record"
	"cashdrawer-api/internal/infra"
	"cashdrawer-api/internal/pkg/errs"
	"cashdrawer-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrDrawerHistoryNotFound = errs.NotFound("cash drawer history not found")

var DrawerHistorySortKeys = []string{SortCreatedAt, "opening_balance", "closing_balance", "status"}

type DrawerHistoryView struct {
	ID             uuid.UUID
	MerchantID     uuid.UUID
	CashDrawerID   uuid.UUID
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	OpenedBy       uuid.UUID
	ClosedBy       uuid.UUID
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type DrawerHistoryFilter struct {
	CashDrawerID *uuid.UUID
	OpenedBy     *uuid.UUID
	ClosedBy     *uuid.UUID
	Status       string
	CreatedDate  *time.Time
}

type DrawerHistoryReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DrawerHistoryView, error)
	List(ctx context.Context, merchantID uuid.UUID, filter DrawerHistoryFilter, params ListParams) ([]*DrawerHistoryView, int64, error)
}

type DrawerHistoryQueries interface {
	GetByID(ctx context.Context, merchantID, id uuid.UUID) (*DrawerHistoryView, error)
	List(ctx context.Context, merchantID uuid.UUID, filter DrawerHistoryFilter, page PageRequest) (*Page[DrawerHistoryView], error)
}

type drawerHistoryQueriesImpl struct {
	store DrawerHistoryReadStore
}

func NewDrawerHistoryQueries(store DrawerHistoryReadStore) DrawerHistoryQueries {
	return &drawerHistoryQueriesImpl{store: store}
}

func (q *drawerHistoryQueriesImpl) GetByID(ctx context.Context, merchantID, id uuid.UUID) (*DrawerHistoryView, error) {
	if merchantID == uuid.Nil {
		return nil, shared.ErrMerchantRequired
	}
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDrawerHistoryNotFound
		}
		return nil, err
	}
	if err = shared.CheckOwner(shared.KindDrawerHistory, v.MerchantID, merchantID); err != nil {
		return nil, err
	}
	return v, nil
}

func (q *drawerHistoryQueriesImpl) List(ctx context.Context, merchantID uuid.UUID, filter DrawerHistoryFilter, page PageRequest) (*Page[DrawerHistoryView], error) {
	if merchantID == uuid.Nil {
		return nil, shared.ErrMerchantRequired
	}
	if filter.Status != "" && !record.Status(filter.Status).IsValid() {
		return nil, ErrInvalidStatus
	}
	params, err := page.Resolve(DrawerHistorySortKeys)
	if err != nil {
		return nil, err
	}
	items, total, err := q.store.List(ctx, merchantID, filter, params)
	if err != nil {
		return nil, err
	}
	return &Page[DrawerHistoryView]{Items: items, Meta: NewPageMeta(params, total)}, nil
}

package queries

//go:generate mockgen -source=cash_transaction.go -destination=../../../tests/mock/queries/cash_transaction.go -package=queriesmock

import (
	"context"
	"time"

	"cashdrawer-api/internal/domain/ledger"
	"cashdrawer-api/internal/domain/record"
	"cashdrawer-api/internal/infra"
	"cashdrawer-api/internal/pkg/errs"
	"cashdrawer-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCashTransactionNotFound = errs.NotFound("cash transaction not found")
	ErrInvalidTypeFilter       = errs.BadRequest("unsupported transaction type filter")
)

var CashTransactionSortKeys = []string{SortCreatedAt, "amount", "type", "status"}

type CashTransactionView struct {
	ID             uuid.UUID
	MerchantID     uuid.UUID
	CashDrawerID   uuid.UUID
	OrderID        *uuid.UUID
	CollaboratorID uuid.UUID
	Type           string
	Amount         decimal.Decimal
	Notes          *string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CashTransactionFilter struct {
	CashDrawerID *uuid.UUID
	OrderID      *uuid.UUID
	Type         string
	// Status is ACTIVE or DELETED. Empty lists active rows only.
	Status string
}

type CashTransactionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CashTransactionView, error)
	List(ctx context.Context, merchantID uuid.UUID, filter CashTransactionFilter, params ListParams) ([]*CashTransactionView, int64, error)
}

type CashTransactionQueries interface {
	GetByID(ctx context.Context, merchantID, id uuid.UUID) (*CashTransactionView, error)
	List(ctx context.Context, merchantID uuid.UUID, filter CashTransactionFilter, page PageRequest) (*Page[CashTransactionView], error)
}

type cashTransactionQueriesImpl struct {
	store CashTransactionReadStore
}

func NewCashTransactionQueries(store CashTransactionReadStore) CashTransactionQueries {
	return &cashTransactionQueriesImpl{store: store}
}

func (q *cashTransactionQueriesImpl) GetByID(ctx context.Context, merchantID, id uuid.UUID) (*CashTransactionView, error) {
	if merchantID == uuid.Nil {
		return nil, shared.ErrMerchantRequired
	}
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCashTransactionNotFound
		}
		return nil, err
	}
	if err = shared.CheckOwner(shared.KindCashTransaction, v.MerchantID, merchantID); err != nil {
		return nil, err
	}
	return v, nil
}

func (q *cashTransactionQueriesImpl) List(ctx context.Context, merchantID uuid.UUID, filter CashTransactionFilter, page PageRequest) (*Page[CashTransactionView], error) {
	if merchantID == uuid.Nil {
		return nil, shared.ErrMerchantRequired
	}
	if filter.Type != "" && !ledger.Type(filter.Type).IsValid() {
		return nil, ErrInvalidTypeFilter
	}
	if filter.Status != "" && !record.Status(filter.Status).IsValid() {
		return nil, ErrInvalidStatus
	}
	params, err := page.Resolve(CashTransactionSortKeys)
	if err != nil {
		return nil, err
	}
	items, total, err := q.store.List(ctx, merchantID, filter, params)
	if err != nil {
		return nil, err
	}
	return &Page[CashTransactionView]{Items: items, Meta: NewPageMeta(params, total)}, nil
}

package commands

import (
	"cashdrawer-api/internal/domain/money"
	"cashdrawer-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OpenDrawerInput struct {
	ShiftID        uuid.UUID
	OpeningBalance decimal.Decimal
	OpenedBy       uuid.UUID
	ClosingBalance *decimal.Decimal
	ClosedBy       *uuid.UUID
}

type UpdateDrawerInput struct {
	ShiftID  *uuid.UUID
	OpenedBy *uuid.UUID
}

type CreateTransactionInput struct {
	CashDrawerID   uuid.UUID
	CollaboratorID uuid.UUID
	OrderID        *uuid.UUID
	Type           string
	Amount         *decimal.Decimal
	Notes          *string
}

type UpdateTransactionInput struct {
	OrderID *uuid.UUID
	Notes   *string
}

type CreateHistoryInput struct {
	CashDrawerID   uuid.UUID
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	OpenedBy       uuid.UUID
	ClosedBy       uuid.UUID
}

type UpdateHistoryInput struct {
	OpenedBy *uuid.UUID
	ClosedBy *uuid.UUID
}

func toMoney(field string, d decimal.Decimal) (money.Money, error) {
	m, err := money.New(d)
	if err != nil {
		return money.Money{}, errs.Class(errs.Wrap(err, field), errs.ErrBadRequest)
	}
	return m, nil
}

func toMoneyPtr(field string, d *decimal.Decimal) (*money.Money, error) {
	if d == nil {
		return nil, nil
	}
	m, err := toMoney(field, *d)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

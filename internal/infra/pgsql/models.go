package pgsql

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type CashDrawer struct {
	ID             uuid.UUID
	MerchantID     uuid.UUID
	ShiftID        uuid.UUID
	OpeningBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	ClosingBalance decimal.NullDecimal
	OpenedBy       uuid.UUID
	ClosedBy       pgtype.UUID
	State          string
	RecordStatus   string
	Version        int64
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

type CashTransaction struct {
	ID             uuid.UUID
	CashDrawerID   uuid.UUID
	OrderID        pgtype.UUID
	CollaboratorID uuid.UUID
	Type           string
	Amount         decimal.Decimal
	Notes          pgtype.Text
	Status         string
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

// CashTransactionView is a cash transaction joined with its drawer's merchant.
type CashTransactionView struct {
	CashTransaction
	MerchantID uuid.UUID
}

type CashDrawerHistory struct {
	ID             uuid.UUID
	CashDrawerID   uuid.UUID
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	OpenedBy       uuid.UUID
	ClosedBy       uuid.UUID
	Status         string
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

type CashDrawerHistoryView struct {
	CashDrawerHistory
	MerchantID uuid.UUID
}

//go:build unit || e2e

package builder

import (
	"time"

	"cashdrawer-api/internal/domain/cashdrawer"
	"cashdrawer-api/internal/domain/money"
	"cashdrawer-api/internal/domain/record"
	reqdto "cashdrawer-api/internal/handler/dto/request"
	"cashdrawer-api/internal/infra/pgsql"
	"cashdrawer-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type CashDrawerBuilder struct {
	ID             uuid.UUID
	MerchantID     uuid.UUID
	ShiftID        uuid.UUID
	OpeningBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	ClosingBalance *decimal.Decimal
	OpenedBy       uuid.UUID
	ClosedBy       *uuid.UUID
	State          cashdrawer.State
	RecordStatus   record.Status
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewCashDrawerBuilder() *CashDrawerBuilder {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	return &CashDrawerBuilder{
		ID:             uuid.New(),
		MerchantID:     uuid.New(),
		ShiftID:        uuid.New(),
		OpeningBalance: decimal.RequireFromString("100.00"),
		CurrentBalance: decimal.RequireFromString("100.00"),
		OpenedBy:       uuid.New(),
		State:          cashdrawer.StateOpen,
		RecordStatus:   record.StatusActive,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *CashDrawerBuilder) With(mutate func(*CashDrawerBuilder)) *CashDrawerBuilder {
	mutate(b)
	return b
}

// Owned points the drawer at an existing merchant, shift and collaborator.
func (b *CashDrawerBuilder) Owned(merchantID, shiftID, collaboratorID uuid.UUID) *CashDrawerBuilder {
	b.MerchantID = merchantID
	b.ShiftID = shiftID
	b.OpenedBy = collaboratorID
	return b
}

func (b *CashDrawerBuilder) WithBalance(current string) *CashDrawerBuilder {
	b.CurrentBalance = decimal.RequireFromString(current)
	return b
}

// Closed puts the drawer in CLOSE with the current balance as closing balance.
func (b *CashDrawerBuilder) Closed(closedBy uuid.UUID) *CashDrawerBuilder {
	closing := b.CurrentBalance
	b.ClosingBalance = &closing
	b.ClosedBy = &closedBy
	b.State = cashdrawer.StateClose
	return b
}

func (b *CashDrawerBuilder) InState(state cashdrawer.State) *CashDrawerBuilder {
	b.State = state
	return b
}

func (b *CashDrawerBuilder) Deleted() *CashDrawerBuilder {
	b.RecordStatus = record.StatusDeleted
	return b
}

// Build methods
func (b *CashDrawerBuilder) BuildDomain() *cashdrawer.Drawer {
	var closing *money.Money
	if b.ClosingBalance != nil {
		m := mustMoney(*b.ClosingBalance)
		closing = &m
	}
	return cashdrawer.Reconstruct(cashdrawer.Snapshot{
		ID:             b.ID,
		MerchantID:     b.MerchantID,
		ShiftID:        b.ShiftID,
		OpeningBalance: mustMoney(b.OpeningBalance),
		CurrentBalance: mustMoney(b.CurrentBalance),
		ClosingBalance: closing,
		OpenedBy:       b.OpenedBy,
		ClosedBy:       b.ClosedBy,
		State:          b.State,
		RecordStatus:   b.RecordStatus,
		Version:        b.Version,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	})
}

func (b *CashDrawerBuilder) BuildInfra() pgsql.CashDrawer {
	row := pgsql.CashDrawer{
		ID:             b.ID,
		MerchantID:     b.MerchantID,
		ShiftID:        b.ShiftID,
		OpeningBalance: b.OpeningBalance,
		CurrentBalance: b.CurrentBalance,
		OpenedBy:       b.OpenedBy,
		State:          string(b.State),
		RecordStatus:   string(b.RecordStatus),
		Version:        b.Version,
		CreatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
	if b.ClosingBalance != nil {
		row.ClosingBalance = decimal.NewNullDecimal(*b.ClosingBalance)
	}
	if b.ClosedBy != nil {
		row.ClosedBy = pgtype.UUID{Bytes: *b.ClosedBy, Valid: true}
	}
	return row
}

func (b *CashDrawerBuilder) BuildView() *queries.CashDrawerView {
	status := string(b.State)
	if b.RecordStatus.IsDeleted() {
		status = cashdrawer.StatusDeleted
	}
	return &queries.CashDrawerView{
		ID:             b.ID,
		MerchantID:     b.MerchantID,
		ShiftID:        b.ShiftID,
		OpeningBalance: b.OpeningBalance,
		CurrentBalance: b.CurrentBalance,
		ClosingBalance: b.ClosingBalance,
		OpenedBy:       b.OpenedBy,
		ClosedBy:       b.ClosedBy,
		Status:         status,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *CashDrawerBuilder) BuildCreateRequestDTO() reqdto.CreateCashDrawerRequest {
	opening := b.OpeningBalance
	return reqdto.CreateCashDrawerRequest{
		ShiftID:        b.ShiftID,
		OpeningBalance: &opening,
		OpenedBy:       b.OpenedBy,
		ClosingBalance: b.ClosingBalance,
		ClosedBy:       b.ClosedBy,
	}
}

func mustMoney(d decimal.Decimal) money.Money {
	m, err := money.New(d)
	if err != nil {
		panic(err)
	}
	return m
}

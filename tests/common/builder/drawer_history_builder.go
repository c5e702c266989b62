//go:build unit || e2e

package builder

import (
	"time"

	"cashdrawer-api/internal/domain/drawerhistory"
	"cashdrawer-api/internal/domain/record"
	reqdto "cashdrawer-api/internal/handler/dto/request"
	"cashdrawer-api/internal/infra/pgsql"
	"cashdrawer-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type DrawerHistoryBuilder struct {
	ID             uuid.UUID
	MerchantID     uuid.UUID
	CashDrawerID   uuid.UUID
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	OpenedBy       uuid.UUID
	ClosedBy       uuid.UUID
	Status         record.Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewDrawerHistoryBuilder() *DrawerHistoryBuilder {
	now := time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)
	return &DrawerHistoryBuilder{
		ID:             uuid.New(),
		MerchantID:     uuid.New(),
		CashDrawerID:   uuid.New(),
		OpeningBalance: decimal.RequireFromString("100.00"),
		ClosingBalance: decimal.RequireFromString("180.00"),
		OpenedBy:       uuid.New(),
		ClosedBy:       uuid.New(),
		Status:         record.StatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *DrawerHistoryBuilder) With(mutate func(*DrawerHistoryBuilder)) *DrawerHistoryBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *DrawerHistoryBuilder) BuildDomain() *drawerhistory.Entry {
	return drawerhistory.Reconstruct(drawerhistory.Snapshot{
		ID:             b.ID,
		DrawerID:       b.CashDrawerID,
		OpeningBalance: mustMoney(b.OpeningBalance),
		ClosingBalance: mustMoney(b.ClosingBalance),
		OpenedBy:       b.OpenedBy,
		ClosedBy:       b.ClosedBy,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	})
}

func (b *DrawerHistoryBuilder) BuildInfra() pgsql.CashDrawerHistoryView {
	return pgsql.CashDrawerHistoryView{
		CashDrawerHistory: pgsql.CashDrawerHistory{
			ID:             b.ID,
			CashDrawerID:   b.CashDrawerID,
			OpeningBalance: b.OpeningBalance,
			ClosingBalance: b.ClosingBalance,
			OpenedBy:       b.OpenedBy,
			ClosedBy:       b.ClosedBy,
			Status:         string(b.Status),
			CreatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
			UpdatedAt:      pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
		},
		MerchantID: b.MerchantID,
	}
}

func (b *DrawerHistoryBuilder) BuildView() *queries.DrawerHistoryView {
	return &queries.DrawerHistoryView{
		ID:             b.ID,
		MerchantID:     b.MerchantID,
		CashDrawerID:   b.CashDrawerID,
		OpeningBalance: b.OpeningBalance,
		ClosingBalance: b.ClosingBalance,
		OpenedBy:       b.OpenedBy,
		ClosedBy:       b.ClosedBy,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *DrawerHistoryBuilder) BuildCreateRequestDTO() reqdto.CreateDrawerHistoryRequest {
	opening, closing := b.OpeningBalance, b.ClosingBalance
	return reqdto.CreateDrawerHistoryRequest{
		CashDrawerID:   b.CashDrawerID,
		OpeningBalance: &opening,
		ClosingBalance: &closing,
		OpenedBy:       b.OpenedBy,
		ClosedBy:       b.ClosedBy,
	}
}

//go:build unit || e2e

package builder

import (
	"time"

	"cashdrawer-api/internal/domain/ledger"
	"cashdrawer-api/internal/domain/record"
	reqdto "cashdrawer-api/internal/handler/dto/request"
	"cashdrawer-api/internal/infra/pgsql"
	"cashdrawer-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type CashTransactionBuilder struct {
	ID             uuid.UUID
	MerchantID     uuid.UUID
	CashDrawerID   uuid.UUID
	OrderID        *uuid.UUID
	CollaboratorID uuid.UUID
	Type           ledger.Type
	Amount         decimal.Decimal
	Notes          *string
	Status         record.Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewCashTransactionBuilder() *CashTransactionBuilder {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	return &CashTransactionBuilder{
		ID:             uuid.New(),
		MerchantID:     uuid.New(),
		CashDrawerID:   uuid.New(),
		CollaboratorID: uuid.New(),
		Type:           ledger.TypeSale,
		Amount:         decimal.RequireFromString("25.50"),
		Status:         record.StatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *CashTransactionBuilder) With(mutate func(*CashTransactionBuilder)) *CashTransactionBuilder {
	mutate(b)
	return b
}

func (b *CashTransactionBuilder) OfType(t ledger.Type, amount string) *CashTransactionBuilder {
	b.Type = t
	b.Amount = decimal.RequireFromString(amount)
	return b
}

// Build methods
func (b *CashTransactionBuilder) BuildDomain() *ledger.Transaction {
	return ledger.Reconstruct(ledger.Snapshot{
		ID:             b.ID,
		DrawerID:       b.CashDrawerID,
		OrderID:        b.OrderID,
		CollaboratorID: b.CollaboratorID,
		Type:           b.Type,
		Amount:         mustMoney(b.Amount),
		Notes:          b.Notes,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	})
}

func (b *CashTransactionBuilder) BuildInfra() pgsql.CashTransactionView {
	row := pgsql.CashTransactionView{
		CashTransaction: pgsql.CashTransaction{
			ID:             b.ID,
			CashDrawerID:   b.CashDrawerID,
			CollaboratorID: b.CollaboratorID,
			Type:           string(b.Type),
			Amount:         b.Amount,
			Status:         string(b.Status),
			CreatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
			UpdatedAt:      pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
		},
		MerchantID: b.MerchantID,
	}
	if b.OrderID != nil {
		row.OrderID = pgtype.UUID{Bytes: *b.OrderID, Valid: true}
	}
	if b.Notes != nil {
		row.Notes = pgtype.Text{String: *b.Notes, Valid: true}
	}
	return row
}

func (b *CashTransactionBuilder) BuildView() *queries.CashTransactionView {
	return &queries.CashTransactionView{
		ID:             b.ID,
		MerchantID:     b.MerchantID,
		CashDrawerID:   b.CashDrawerID,
		OrderID:        b.OrderID,
		CollaboratorID: b.CollaboratorID,
		Type:           string(b.Type),
		Amount:         b.Amount,
		Notes:          b.Notes,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *CashTransactionBuilder) BuildCreateRequestDTO() reqdto.CreateCashTransactionRequest {
	req := reqdto.CreateCashTransactionRequest{
		CashDrawerID:   b.CashDrawerID,
		CollaboratorID: b.CollaboratorID,
		OrderID:        b.OrderID,
		Type:           string(b.Type),
		Notes:          b.Notes,
	}
	if b.Type.IsMonetary() {
		amount := b.Amount
		req.Amount = &amount
	}
	return req
}

package request

import (
	"cashdrawer-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCashTransactionRequest struct {
	CashDrawerID   uuid.UUID        `json:"cashDrawerId" binding:"required"`
	CollaboratorID uuid.UUID        `json:"collaboratorId" binding:"required"`
	OrderID        *uuid.UUID       `json:"orderId"`
	Type           string           `json:"type" binding:"required" example:"SALE"`
	Amount         *decimal.Decimal `json:"amount" swaggertype:"string" example:"12.50"`
	Notes          *string          `json:"notes" binding:"omitempty,max=500"`
}

func (r *CreateCashTransactionRequest) ToInput() commands.CreateTransactionInput {
	return commands.CreateTransactionInput{
		CashDrawerID:   r.CashDrawerID,
		CollaboratorID: r.CollaboratorID,
		OrderID:        r.OrderID,
		Type:           r.Type,
		Amount:         r.Amount,
		Notes:          r.Notes,
	}
}

// UpdateCashTransactionRequest has no type or amount: with unknown fields
// disallowed, a body carrying them fails to bind.
type UpdateCashTransactionRequest struct {
	OrderID *uuid.UUID `json:"orderId"`
	Notes   *string    `json:"notes" binding:"omitempty,max=500"`
}

func (r *UpdateCashTransactionRequest) ToInput() commands.UpdateTransactionInput {
	return commands.UpdateTransactionInput{
		OrderID: r.OrderID,
		Notes:   r.Notes,
	}
}

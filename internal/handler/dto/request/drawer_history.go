package request

import (
	"cashdrawer-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateDrawerHistoryRequest struct {
	CashDrawerID   uuid.UUID        `json:"cashDrawerId" binding:"required"`
	OpeningBalance *decimal.Decimal `json:"openingBalance" binding:"required" swaggertype:"string" example:"100.00"`
	ClosingBalance *decimal.Decimal `json:"closingBalance" binding:"required" swaggertype:"string" example:"180.00"`
	OpenedBy       uuid.UUID        `json:"openedBy" binding:"required"`
	ClosedBy       uuid.UUID        `json:"closedBy" binding:"required"`
}

func (r *CreateDrawerHistoryRequest) ToInput() commands.CreateHistoryInput {
	return commands.CreateHistoryInput{
		CashDrawerID:   r.CashDrawerID,
		OpeningBalance: *r.OpeningBalance,
		ClosingBalance: *r.ClosingBalance,
		OpenedBy:       r.OpenedBy,
		ClosedBy:       r.ClosedBy,
	}
}

type UpdateDrawerHistoryRequest struct {
	OpenedBy *uuid.UUID `json:"openedBy"`
	ClosedBy *uuid.UUID `json:"closedBy"`
}

func (r *UpdateDrawerHistoryRequest) ToInput() commands.UpdateHistoryInput {
	return commands.UpdateHistoryInput{
		OpenedBy: r.OpenedBy,
		ClosedBy: r.ClosedBy,
	}
}

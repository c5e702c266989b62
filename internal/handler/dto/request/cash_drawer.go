package request

import (
	"cashdrawer-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCashDrawerRequest struct {
	ShiftID        uuid.UUID        `json:"shiftId" binding:"required"`
	OpeningBalance *decimal.Decimal `json:"openingBalance" binding:"required" swaggertype:"string" example:"100.00"`
	OpenedBy       uuid.UUID        `json:"openedBy" binding:"required"`
	ClosingBalance *decimal.Decimal `json:"closingBalance" swaggertype:"string" example:"250.00"`
	ClosedBy       *uuid.UUID       `json:"closedBy"`
}

func (r *CreateCashDrawerRequest) ToInput() commands.OpenDrawerInput {
	return commands.OpenDrawerInput{
		ShiftID:        r.ShiftID,
		OpeningBalance: *r.OpeningBalance,
		OpenedBy:       r.OpenedBy,
		ClosingBalance: r.ClosingBalance,
		ClosedBy:       r.ClosedBy,
	}
}

// UpdateCashDrawerRequest carries descriptive fields only. Balances and state
// change through cash transactions.
type UpdateCashDrawerRequest struct {
	ShiftID  *uuid.UUID `json:"shiftId"`
	OpenedBy *uuid.UUID `json:"openedBy"`
}

func (r *UpdateCashDrawerRequest) ToInput() commands.UpdateDrawerInput {
	return commands.UpdateDrawerInput{
		ShiftID:  r.ShiftID,
		OpenedBy: r.OpenedBy,
	}
}

package response

import (
	"time"

	"cashdrawer-api/internal/usecase/queries"
)

type CashDrawerResponse struct {
	ID             string    `json:"id"`
	ShiftID        string    `json:"shiftId"`
	OpeningBalance string    `json:"openingBalance" example:"100.00"`
	CurrentBalance string    `json:"currentBalance" example:"135.50"`
	ClosingBalance *string   `json:"closingBalance" example:"135.50"`
	OpenedBy       string    `json:"openedBy"`
	ClosedBy       *string   `json:"closedBy"`
	Status         string    `json:"status" example:"OPEN"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromCashDrawerView(v *queries.CashDrawerView) (*CashDrawerResponse, error) {
	return copyView[CashDrawerResponse](v)
}

func FromCashDrawerList(items []*queries.CashDrawerView) ([]*CashDrawerResponse, error) {
	return copyViews[CashDrawerResponse](items)
}

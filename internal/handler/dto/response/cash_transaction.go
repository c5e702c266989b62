package response

import (
	"time"

	"cashdrawer-api/internal/usecase/queries"
)

type CashTransactionResponse struct {
	ID             string    `json:"id"`
	CashDrawerID   string    `json:"cashDrawerId"`
	OrderID        *string   `json:"orderId"`
	CollaboratorID string    `json:"collaboratorId"`
	Type           string    `json:"type" example:"SALE"`
	Amount         string    `json:"amount" example:"12.50"`
	Notes          *string   `json:"notes"`
	Status         string    `json:"status" example:"ACTIVE"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromCashTransactionView(v *queries.CashTransactionView) (*CashTransactionResponse, error) {
	return copyView[CashTransactionResponse](v)
}

func FromCashTransactionList(items []*queries.CashTransactionView) ([]*CashTransactionResponse, error) {
	return copyViews[CashTransactionResponse](items)
}

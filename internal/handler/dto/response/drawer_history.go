package response

import (
	"time"

	"cashdrawer-api/internal/usecase/queries"
)

type DrawerHistoryResponse struct {
	ID             string    `json:"id"`
	CashDrawerID   string    `json:"cashDrawerId"`
	OpeningBalance string    `json:"openingBalance" example:"100.00"`
	ClosingBalance string    `json:"closingBalance" example:"180.00"`
	OpenedBy       string    `json:"openedBy"`
	ClosedBy       string    `json:"closedBy"`
	Status         string    `json:"status" example:"ACTIVE"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromDrawerHistoryView(v *queries.DrawerHistoryView) (*DrawerHistoryResponse, error) {
	return copyView[DrawerHistoryResponse](v)
}

func FromDrawerHistoryList(items []*queries.DrawerHistoryView) ([]*DrawerHistoryResponse, error) {
	return copyViews[DrawerHistoryResponse](items)
}

package converter

import (
	"cashdrawer-api/internal/domain/drawerhistory"
	"cashdrawer-api/internal/domain/money"
	"cashdrawer-api/internal/domain/record"
	"cashdrawer-api/internal/infra/pgsql"
	"cashdrawer-api/internal/pkg/pgconv"
)

func HistoryToRow(e *drawerhistory.Entry) pgsql.CashDrawerHistory {
	return pgsql.CashDrawerHistory{
		ID:             e.ID(),
		CashDrawerID:   e.DrawerID(),
		OpeningBalance: e.OpeningBalance().Decimal(),
		ClosingBalance: e.ClosingBalance().Decimal(),
		OpenedBy:       e.OpenedBy(),
		ClosedBy:       e.ClosedBy(),
		Status:         e.Status().String(),
		CreatedAt:      pgconv.TimeToPgtype(e.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(e.UpdatedAt()),
	}
}

func HistoryFromRow(row pgsql.CashDrawerHistory) (*drawerhistory.Entry, error) {
	opening, err := money.New(row.OpeningBalance)
	if err != nil {
		return nil, err
	}
	closing, err := money.New(row.ClosingBalance)
	if err != nil {
		return nil, err
	}
	return drawerhistory.Reconstruct(drawerhistory.Snapshot{
		ID:             row.ID,
		DrawerID:       row.CashDrawerID,
		OpeningBalance: opening,
		ClosingBalance: closing,
		OpenedBy:       row.OpenedBy,
		ClosedBy:       row.ClosedBy,
		Status:         record.Status(row.Status),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func HistoryToUpdateParams(e *drawerhistory.Entry) pgsql.UpdateCashDrawerHistoryParams {
	return pgsql.UpdateCashDrawerHistoryParams{
		ID:        e.ID(),
		OpenedBy:  e.OpenedBy(),
		ClosedBy:  e.ClosedBy(),
		Status:    e.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(e.UpdatedAt()),
	}
}

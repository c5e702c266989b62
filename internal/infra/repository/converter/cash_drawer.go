package converter

import (
	"cashdrawer-api/internal/domain/cashdrawer"
	"cashdrawer-api/internal/domain/money"
	"cashdrawer-api/internal/domain/record"
	"cashdrawer-api/internal/infra/pgsql"
	"cashdrawer-api/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
)

func CashDrawerToRow(d *cashdrawer.Drawer) pgsql.CashDrawer {
	return pgsql.CashDrawer{
		ID:             d.ID(),
		MerchantID:     d.MerchantID(),
		ShiftID:        d.ShiftID(),
		OpeningBalance: d.OpeningBalance().Decimal(),
		CurrentBalance: d.CurrentBalance().Decimal(),
		ClosingBalance: moneyPtrToNullable(d.ClosingBalance()),
		OpenedBy:       d.OpenedBy(),
		ClosedBy:       pgconv.UUIDPtrToPgtype(d.ClosedBy()),
		State:          d.State().String(),
		RecordStatus:   d.RecordStatus().String(),
		Version:        d.Version(),
		CreatedAt:      pgconv.TimeToPgtype(d.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(d.UpdatedAt()),
	}
}

func CashDrawerFromRow(row pgsql.CashDrawer) (*cashdrawer.Drawer, error) {
	opening, err := money.New(row.OpeningBalance)
	if err != nil {
		return nil, err
	}
	current, err := money.New(row.CurrentBalance)
	if err != nil {
		return nil, err
	}
	closing, err := nullableToMoneyPtr(row.ClosingBalance)
	if err != nil {
		return nil, err
	}
	return cashdrawer.Reconstruct(cashdrawer.Snapshot{
		ID:             row.ID,
		MerchantID:     row.MerchantID,
		ShiftID:        row.ShiftID,
		OpeningBalance: opening,
		CurrentBalance: current,
		ClosingBalance: closing,
		OpenedBy:       row.OpenedBy,
		ClosedBy:       pgconv.UUIDPtrFromPgtype(row.ClosedBy),
		State:          cashdrawer.State(row.State),
		RecordStatus:   record.Status(row.RecordStatus),
		Version:        row.Version,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func CashDrawerToBalanceParams(d *cashdrawer.Drawer, expectedVersion int64) pgsql.UpdateCashDrawerBalancesParams {
	return pgsql.UpdateCashDrawerBalancesParams{
		ID:              d.ID(),
		ExpectedVersion: expectedVersion,
		OpeningBalance:  d.OpeningBalance().Decimal(),
		CurrentBalance:  d.CurrentBalance().Decimal(),
		ClosingBalance:  moneyPtrToNullable(d.ClosingBalance()),
		OpenedBy:        d.OpenedBy(),
		ClosedBy:        pgconv.UUIDPtrToPgtype(d.ClosedBy()),
		State:           d.State().String(),
		UpdatedAt:       pgconv.TimeToPgtype(d.UpdatedAt()),
	}
}

func moneyPtrToNullable(m *money.Money) decimal.NullDecimal {
	if m == nil {
		return decimal.NullDecimal{}
	}
	d := m.Decimal()
	return pgconv.DecimalPtrToNullable(&d)
}

func nullableToMoneyPtr(nd decimal.NullDecimal) (*money.Money, error) {
	d := pgconv.DecimalPtrFromNullable(nd)
	if d == nil {
		return nil, nil
	}
	m, err := money.New(*d)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

package converter

import (
	"cashdrawer-api/internal/domain/ledger"
	"cashdrawer-api/internal/domain/money"
	"cashdrawer-api/internal/domain/record"
	"cashdrawer-api/internal/infra/pgsql"
	"cashdrawer-api/internal/pkg/pgconv"
)

func CashTransactionToRow(t *ledger.Transaction) pgsql.CashTransaction {
	return pgsql.CashTransaction{
		ID:             t.ID(),
		CashDrawerID:   t.DrawerID(),
		OrderID:        pgconv.UUIDPtrToPgtype(t.OrderID()),
		CollaboratorID: t.CollaboratorID(),
		Type:           t.Type().String(),
		Amount:         t.Amount().Decimal(),
		Notes:          pgconv.StringPtrToPgtype(t.Notes()),
		Status:         t.Status().String(),
		CreatedAt:      pgconv.TimeToPgtype(t.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(t.UpdatedAt()),
	}
}

func CashTransactionFromRow(row pgsql.CashTransaction) (*ledger.Transaction, error) {
	amount, err := money.New(row.Amount)
	if err != nil {
		return nil, err
	}
	return ledger.Reconstruct(ledger.Snapshot{
		ID:             row.ID,
		DrawerID:       row.CashDrawerID,
		OrderID:        pgconv.UUIDPtrFromPgtype(row.OrderID),
		CollaboratorID: row.CollaboratorID,
		Type:           ledger.Type(row.Type),
		Amount:         amount,
		Notes:          pgconv.StringPtrFromPgtype(row.Notes),
		Status:         record.Status(row.Status),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func CashTransactionToUpdateParams(t *ledger.Transaction) pgsql.UpdateCashTransactionParams {
	return pgsql.UpdateCashTransactionParams{
		ID:        t.ID(),
		OrderID:   pgconv.UUIDPtrToPgtype(t.OrderID()),
		Notes:     pgconv.StringPtrToPgtype(t.Notes()),
		Status:    t.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(t.UpdatedAt()),
	}
}

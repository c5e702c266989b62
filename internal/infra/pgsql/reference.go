package pgsql

import (
	"context"

	"github.com/google/uuid"
)

// Merchant lookups, one per entity kind that can be referenced by a command.
const (
	merchantOfShift        = `SELECT merchant_id FROM shifts WHERE id = $1`
	merchantOfCollaborator = `SELECT merchant_id FROM collaborators WHERE id = $1`
	merchantOfOrder        = `SELECT merchant_id FROM orders WHERE id = $1`
	merchantOfCashDrawer   = `SELECT merchant_id FROM cash_drawers WHERE id = $1`
	merchantOfTransaction  = `SELECT d.merchant_id FROM cash_transactions t
JOIN cash_drawers d ON d.id = t.cash_drawer_id WHERE t.id = $1`
	merchantOfHistory = `SELECT d.merchant_id FROM cash_drawer_histories h
JOIN cash_drawers d ON d.id = h.cash_drawer_id WHERE h.id = $1`
)

func (q *Queries) merchantOf(ctx context.Context, db DBTX, sql string, id uuid.UUID) (uuid.UUID, error) {
	var merchantID uuid.UUID
	err := db.QueryRow(ctx, sql, id).Scan(&merchantID)
	return merchantID, err
}

func (q *Queries) GetShiftMerchant(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	return q.merchantOf(ctx, db, merchantOfShift, id)
}

func (q *Queries) GetCollaboratorMerchant(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	return q.merchantOf(ctx, db, merchantOfCollaborator, id)
}

func (q *Queries) GetOrderMerchant(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	return q.merchantOf(ctx, db, merchantOfOrder, id)
}

func (q *Queries) GetCashDrawerMerchant(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	return q.merchantOf(ctx, db, merchantOfCashDrawer, id)
}

func (q *Queries) GetCashTransactionMerchant(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	return q.merchantOf(ctx, db, merchantOfTransaction, id)
}

func (q *Queries) GetCashDrawerHistoryMerchant(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	return q.merchantOf(ctx, db, merchantOfHistory, id)
}

package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const cashTransactionColumns = `t.id, t.cash_drawer_id, t.order_id, t.collaborator_id, t.type, t.amount,
	t.notes, t.status, t.created_at, t.updated_at`

func scanCashTransaction(row pgx.Row, extra ...any) (CashTransaction, error) {
	var t CashTransaction
	dest := []any{
		&t.ID, &t.CashDrawerID, &t.OrderID, &t.CollaboratorID, &t.Type, &t.Amount,
		&t.Notes, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return t, err
}

const createCashTransaction = `INSERT INTO cash_transactions (
	id, cash_drawer_id, order_id, collaborator_id, type, amount, notes, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (q *Queries) CreateCashTransaction(ctx context.Context, db DBTX, arg CashTransaction) error {
	_, err := db.Exec(ctx, createCashTransaction,
		arg.ID, arg.CashDrawerID, arg.OrderID, arg.CollaboratorID, arg.Type, arg.Amount,
		arg.Notes, arg.Status, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const getCashTransactionView = `SELECT ` + cashTransactionColumns + `, d.merchant_id
FROM cash_transactions t
JOIN cash_drawers d ON d.id = t.cash_drawer_id
WHERE t.id = $1`

func (q *Queries) GetCashTransactionView(ctx context.Context, db DBTX, id uuid.UUID) (CashTransactionView, error) {
	var v CashTransactionView
	t, err := scanCashTransaction(db.QueryRow(ctx, getCashTransactionView, id), &v.MerchantID)
	v.CashTransaction = t
	return v, err
}

const updateCashTransaction = `UPDATE cash_transactions
SET order_id = $2, notes = $3, status = $4, updated_at = $5
WHERE id = $1`

type UpdateCashTransactionParams struct {
	ID        uuid.UUID
	OrderID   pgtype.UUID
	Notes     pgtype.Text
	Status    string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateCashTransaction(ctx context.Context, db DBTX, arg UpdateCashTransactionParams) error {
	_, err := db.Exec(ctx, updateCashTransaction, arg.ID, arg.OrderID, arg.Notes, arg.Status, arg.UpdatedAt)
	return err
}

type ListCashTransactionsParams struct {
	MerchantID   uuid.UUID
	CashDrawerID *uuid.UUID
	OrderID      *uuid.UUID
	Type         string
	Status       string
	Page         Page
}

func (q *Queries) ListCashTransactions(ctx context.Context, db DBTX, arg ListCashTransactionsParams) ([]CashTransactionView, int64, error) {
	var w where
	w.add("d.merchant_id = $%d", arg.MerchantID)
	w.add("t.status = $%d", arg.Status)
	if arg.CashDrawerID != nil {
		w.add("t.cash_drawer_id = $%d", *arg.CashDrawerID)
	}
	if arg.OrderID != nil {
		w.add("t.order_id = $%d", *arg.OrderID)
	}
	if arg.Type != "" {
		w.add("t.type = $%d", arg.Type)
	}

	const from = ` FROM cash_transactions t JOIN cash_drawers d ON d.id = t.cash_drawer_id`
	var total int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*)`+from+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, args := w.window(arg.Page)
	rows, err := db.Query(ctx, `SELECT `+cashTransactionColumns+`, d.merchant_id`+from+w.sql()+arg.Page.orderBy("t.id")+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []CashTransactionView
	for rows.Next() {
		var v CashTransactionView
		t, err := scanCashTransaction(rows, &v.MerchantID)
		if err != nil {
			return nil, 0, err
		}
		v.CashTransaction = t
		items = append(items, v)
	}
	return items, total, rows.Err()
}

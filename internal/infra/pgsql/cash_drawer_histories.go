package pgsql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const historyColumns = `h.id, h.cash_drawer_id, h.opening_balance, h.closing_balance, h.opened_by, h.closed_by,
	h.status, h.created_at, h.updated_at`

func scanHistory(row pgx.Row, extra ...any) (CashDrawerHistory, error) {
	var h CashDrawerHistory
	dest := []any{
		&h.ID, &h.CashDrawerID, &h.OpeningBalance, &h.ClosingBalance, &h.OpenedBy, &h.ClosedBy,
		&h.Status, &h.CreatedAt, &h.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return h, err
}

const createCashDrawerHistory = `INSERT INTO cash_drawer_histories (
	id, cash_drawer_id, opening_balance, closing_balance, opened_by, closed_by, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (q *Queries) CreateCashDrawerHistory(ctx context.Context, db DBTX, arg CashDrawerHistory) error {
	_, err := db.Exec(ctx, createCashDrawerHistory,
		arg.ID, arg.CashDrawerID, arg.OpeningBalance, arg.ClosingBalance, arg.OpenedBy, arg.ClosedBy,
		arg.Status, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const getCashDrawerHistoryView = `SELECT ` + historyColumns + `, d.merchant_id
FROM cash_drawer_histories h
JOIN cash_drawers d ON d.id = h.cash_drawer_id
WHERE h.id = $1`

func (q *Queries) GetCashDrawerHistoryView(ctx context.Context, db DBTX, id uuid.UUID) (CashDrawerHistoryView, error) {
	var v CashDrawerHistoryView
	h, err := scanHistory(db.QueryRow(ctx, getCashDrawerHistoryView, id), &v.MerchantID)
	v.CashDrawerHistory = h
	return v, err
}

const updateCashDrawerHistory = `UPDATE cash_drawer_histories
SET opened_by = $2, closed_by = $3, status = $4, updated_at = $5
WHERE id = $1`

type UpdateCashDrawerHistoryParams struct {
	ID        uuid.UUID
	OpenedBy  uuid.UUID
	ClosedBy  uuid.UUID
	Status    string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateCashDrawerHistory(ctx context.Context, db DBTX, arg UpdateCashDrawerHistoryParams) error {
	_, err := db.Exec(ctx, updateCashDrawerHistory, arg.ID, arg.OpenedBy, arg.ClosedBy, arg.Status, arg.UpdatedAt)
	return err
}

type ListCashDrawerHistoriesParams struct {
	MerchantID   uuid.UUID
	CashDrawerID *uuid.UUID
	OpenedBy     *uuid.UUID
	ClosedBy     *uuid.UUID
	Status       string
	CreatedDate  *time.Time
	Page         Page
}

func (q *Queries) ListCashDrawerHistories(ctx context.Context, db DBTX, arg ListCashDrawerHistoriesParams) ([]CashDrawerHistoryView, int64, error) {
	var w where
	w.add("d.merchant_id = $%d", arg.MerchantID)
	w.add("h.status = $%d", arg.Status)
	if arg.CashDrawerID != nil {
		w.add("h.cash_drawer_id = $%d", *arg.CashDrawerID)
	}
	if arg.OpenedBy != nil {
		w.add("h.opened_by = $%d", *arg.OpenedBy)
	}
	if arg.ClosedBy != nil {
		w.add("h.closed_by = $%d", *arg.ClosedBy)
	}
	w.addDay("h.created_at", arg.CreatedDate)

	const from = ` FROM cash_drawer_histories h JOIN cash_drawers d ON d.id = h.cash_drawer_id`
	var total int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*)`+from+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, args := w.window(arg.Page)
	rows, err := db.Query(ctx, `SELECT `+historyColumns+`, d.merchant_id`+from+w.sql()+arg.Page.orderBy("h.id")+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []CashDrawerHistoryView
	for rows.Next() {
		var v CashDrawerHistoryView
		h, err := scanHistory(rows, &v.MerchantID)
		if err != nil {
			return nil, 0, err
		}
		v.CashDrawerHistory = h
		items = append(items, v)
	}
	return items, total, rows.Err()
}

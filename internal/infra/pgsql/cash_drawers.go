package pgsql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const cashDrawerColumns = `id, merchant_id, shift_id, opening_balance, current_balance, closing_balance,
	opened_by, closed_by, state, record_status, version, created_at, updated_at`

func scanCashDrawer(row pgx.Row) (CashDrawer, error) {
	var d CashDrawer
	err := row.Scan(
		&d.ID, &d.MerchantID, &d.ShiftID, &d.OpeningBalance, &d.CurrentBalance, &d.ClosingBalance,
		&d.OpenedBy, &d.ClosedBy, &d.State, &d.RecordStatus, &d.Version, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

const createCashDrawer = `INSERT INTO cash_drawers (` + cashDrawerColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func (q *Queries) CreateCashDrawer(ctx context.Context, db DBTX, arg CashDrawer) error {
	_, err := db.Exec(ctx, createCashDrawer,
		arg.ID, arg.MerchantID, arg.ShiftID, arg.OpeningBalance, arg.CurrentBalance, arg.ClosingBalance,
		arg.OpenedBy, arg.ClosedBy, arg.State, arg.RecordStatus, arg.Version, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const getCashDrawer = `SELECT ` + cashDrawerColumns + ` FROM cash_drawers WHERE id = $1`

func (q *Queries) GetCashDrawer(ctx context.Context, db DBTX, id uuid.UUID) (CashDrawer, error) {
	return scanCashDrawer(db.QueryRow(ctx, getCashDrawer, id))
}

const getCashDrawerForUpdate = getCashDrawer + ` FOR UPDATE`

func (q *Queries) GetCashDrawerForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (CashDrawer, error) {
	return scanCashDrawer(db.QueryRow(ctx, getCashDrawerForUpdate, id))
}

const updateCashDrawerBalances = `UPDATE cash_drawers
SET opening_balance = $3, current_balance = $4, closing_balance = $5,
	opened_by = $6, closed_by = $7, state = $8, version = version + 1, updated_at = $9
WHERE id = $1 AND version = $2`

type UpdateCashDrawerBalancesParams struct {
	ID              uuid.UUID
	ExpectedVersion int64
	OpeningBalance  decimal.Decimal
	CurrentBalance  decimal.Decimal
	ClosingBalance  decimal.NullDecimal
	OpenedBy        uuid.UUID
	ClosedBy        pgtype.UUID
	State           string
	UpdatedAt       pgtype.Timestamptz
}

// UpdateCashDrawerBalances returns the number of rows written; zero means the
// version moved on.
func (q *Queries) UpdateCashDrawerBalances(ctx context.Context, db DBTX, arg UpdateCashDrawerBalancesParams) (int64, error) {
	tag, err := db.Exec(ctx, updateCashDrawerBalances,
		arg.ID, arg.ExpectedVersion, arg.OpeningBalance, arg.CurrentBalance, arg.ClosingBalance,
		arg.OpenedBy, arg.ClosedBy, arg.State, arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const updateCashDrawerDetails = `UPDATE cash_drawers
SET shift_id = $2, opened_by = $3, updated_at = $4
WHERE id = $1`

type UpdateCashDrawerDetailsParams struct {
	ID        uuid.UUID
	ShiftID   uuid.UUID
	OpenedBy  uuid.UUID
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateCashDrawerDetails(ctx context.Context, db DBTX, arg UpdateCashDrawerDetailsParams) error {
	_, err := db.Exec(ctx, updateCashDrawerDetails, arg.ID, arg.ShiftID, arg.OpenedBy, arg.UpdatedAt)
	return err
}

const softDeleteCashDrawer = `UPDATE cash_drawers
SET record_status = 'DELETED', updated_at = $2
WHERE id = $1 AND record_status = 'ACTIVE'`

func (q *Queries) SoftDeleteCashDrawer(ctx context.Context, db DBTX, id uuid.UUID, at pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, softDeleteCashDrawer, id, at)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const shiftHasActiveDrawer = `SELECT EXISTS (
	SELECT 1 FROM cash_drawers
	WHERE shift_id = $1 AND id <> $2
	  AND state IN ('OPEN', 'PAUSE') AND record_status = 'ACTIVE'
)`

func (q *Queries) ShiftHasActiveDrawer(ctx context.Context, db DBTX, shiftID, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, shiftHasActiveDrawer, shiftID, excludeID).Scan(&exists)
	return exists, err
}

type ListCashDrawersParams struct {
	MerchantID     uuid.UUID
	ShiftID        *uuid.UUID
	CollaboratorID *uuid.UUID
	OpenedBy       *uuid.UUID
	ClosedBy       *uuid.UUID
	// State filters on the operational state of active drawers.
	State       string
	Deleted     bool
	CreatedDate *time.Time
	Page        Page
}

// CashDrawerStatusExpr is the API status of a drawer row.
const CashDrawerStatusExpr = `(CASE WHEN record_status = 'DELETED' THEN 'DELETED' ELSE state END)`

func (q *Queries) ListCashDrawers(ctx context.Context, db DBTX, arg ListCashDrawersParams) ([]CashDrawer, int64, error) {
	var w where
	w.add("merchant_id = $%d", arg.MerchantID)
	if arg.Deleted {
		w.add("record_status = 'DELETED'")
	} else {
		w.add("record_status = 'ACTIVE'")
	}
	if arg.State != "" {
		w.add("state = $%d", arg.State)
	}
	if arg.ShiftID != nil {
		w.add("shift_id = $%d", *arg.ShiftID)
	}
	if arg.CollaboratorID != nil {
		w.add("(opened_by = $%d OR closed_by = $%d)", *arg.CollaboratorID, *arg.CollaboratorID)
	}
	if arg.OpenedBy != nil {
		w.add("opened_by = $%d", *arg.OpenedBy)
	}
	if arg.ClosedBy != nil {
		w.add("closed_by = $%d", *arg.ClosedBy)
	}
	w.addDay("created_at", arg.CreatedDate)

	var total int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM cash_drawers`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, args := w.window(arg.Page)
	rows, err := db.Query(ctx, `SELECT `+cashDrawerColumns+` FROM cash_drawers`+w.sql()+arg.Page.orderBy("id")+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []CashDrawer
	for rows.Next() {
		d, err := scanCashDrawer(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, rows.Err()
}

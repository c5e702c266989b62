//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool and by a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Tenant is the reference data one merchant needs to run a cash drawer.
type Tenant struct {
	MerchantID     uuid.UUID
	ShiftID        uuid.UUID
	CollaboratorID uuid.UUID
	OrderID        uuid.UUID
}

func SeedTenant(t *testing.T, db DBLike, name string) Tenant {
	t.Helper()

	tenant := Tenant{
		MerchantID:     uuid.New(),
		ShiftID:        uuid.New(),
		OrderID:        uuid.New(),
	}
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO merchants (id, name) VALUES ($1, $2)", tenant.MerchantID, name)
	require.NoError(t, err)
	_, err = db.Exec(ctx, "INSERT INTO shifts (id, merchant_id) VALUES ($1, $2)", tenant.ShiftID, tenant.MerchantID)
	require.NoError(t, err)
	tenant.CollaboratorID = CreateCollaborator(t, db, tenant.MerchantID, name+" cashier")
	_, err = db.Exec(ctx, "INSERT INTO orders (id, merchant_id) VALUES ($1, $2)", tenant.OrderID, tenant.MerchantID)
	require.NoError(t, err)

	return tenant
}

func CreateCollaborator(t *testing.T, db DBLike, merchantID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO collaborators (id, merchant_id, name) VALUES ($1, $2, $3)", id, merchantID, name)
	require.NoError(t, err)
	return id
}

func CreateShift(t *testing.T, db DBLike, merchantID uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO shifts (id, merchant_id) VALUES ($1, $2)", id, merchantID)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}

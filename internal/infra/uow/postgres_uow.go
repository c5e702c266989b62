package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"cashdrawer-api/internal/domain/cashdrawer"
	"cashdrawer-api/internal/domain/drawerhistory"
	"cashdrawer-api/internal/domain/ledger"
	"cashdrawer-api/internal/infra/pgsql"
	"cashdrawer-api/internal/infra/readstore"
	"cashdrawer-api/internal/infra/repository"
	"cashdrawer-api/internal/pkg/config"
	"cashdrawer-api/internal/pkg/errs"
	"cashdrawer-api/internal/pkg/pgconv"
	"cashdrawer-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	q          *pgsql.Queries
	maxRetries int
	baseDelay  time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgsql.Queries, cfg config.LedgerConfig) shared.UnitOfWork {
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		maxRetries: cfg.TxMaxRetries,
		baseDelay:  cfg.TxRetryBaseDelay,
	}
}

// ReadCommitted plus row locks on the drawer serialize ledger writes per drawer
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	maxRetries := u.maxRetries

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			q:    u.q,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, u.baseDelay)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	switch pgconv.ErrorCode(err) {
	case pgconv.CodeSerializationFailure, pgconv.CodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx pgsql.DBTX
	q    *pgsql.Queries

	// Lazy-initialized repositories
	drawerRepo      *repository.CashDrawerRepository
	transactionRepo *repository.CashTransactionRepository
	historyRepo     *repository.DrawerHistoryRepository
	commandReads    *commandReads
}

func (t *pgTx) Drawers() shared.DrawerRepository {
	if t.drawerRepo == nil {
		t.drawerRepo = repository.NewCashDrawerRepository(t.q, t.dbtx)
	}
	return t.drawerRepo
}

func (t *pgTx) Transactions() shared.TransactionRepository {
	if t.transactionRepo == nil {
		t.transactionRepo = repository.NewCashTransactionRepository(t.q, t.dbtx)
	}
	return t.transactionRepo
}

func (t *pgTx) History() shared.HistoryRepository {
	if t.historyRepo == nil {
		t.historyRepo = repository.NewDrawerHistoryRepository(t.q, t.dbtx)
	}
	return t.historyRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.q, t.dbtx)
	}
	return t.commandReads
}

// commandReads serves validation reads on either the pool or an open
// transaction.
type commandReads struct {
	*readstore.ReferenceReadStore
	drawers      *repository.CashDrawerRepository
	transactions *repository.CashTransactionRepository
	history      *repository.DrawerHistoryRepository
}

func newCommandReads(q *pgsql.Queries, db pgsql.DBTX) *commandReads {
	return &commandReads{
		ReferenceReadStore: readstore.NewReferenceReadStore(q, db),
		drawers:            repository.NewCashDrawerRepository(q, db),
		transactions:       repository.NewCashTransactionRepository(q, db),
		history:            repository.NewDrawerHistoryRepository(q, db),
	}
}

func (r *commandReads) DrawerByID(ctx context.Context, id uuid.UUID) (*cashdrawer.Drawer, error) {
	return r.drawers.FindByID(ctx, id)
}

func (r *commandReads) TransactionByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	return r.transactions.FindByID(ctx, id)
}

func (r *commandReads) HistoryByID(ctx context.Context, id uuid.UUID) (*drawerhistory.Entry, error) {
	return r.history.FindByID(ctx, id)
}

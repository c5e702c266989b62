package shared

import (
	"context"

	"cashdrawer-api/internal/domain/cashdrawer"
	"cashdrawer-api/internal/domain/drawerhistory"
	"cashdrawer-api/internal/domain/ledger"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Drawers() DrawerRepository
	Transactions() TransactionRepository
	History() HistoryRepository
	Reads() CommandReads
}

// CommandReads load aggregates for validation. Missing rows are reported as
// infra.KindNotFound repository errors. Soft-deleted rows are returned as is.
type CommandReads interface {
	MerchantResolver
	DrawerByID(ctx context.Context, id uuid.UUID) (*cashdrawer.Drawer, error)
	TransactionByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)
	HistoryByID(ctx context.Context, id uuid.UUID) (*drawerhistory.Entry, error)
	// ShiftHasActiveDrawer reports whether another non-deleted drawer of the
	// shift is OPEN or PAUSE. excludeDrawerID may be uuid.Nil.
	ShiftHasActiveDrawer(ctx context.Context, shiftID, excludeDrawerID uuid.UUID) (bool, error)
}

// DrawerRepository is the write side of the drawer store. ApplyMutation is
// reserved for the transaction ledger.
type DrawerRepository interface {
	Create(ctx context.Context, d *cashdrawer.Drawer) error
	// LockByID reads the drawer and holds a row lock until the unit of work ends.
	LockByID(ctx context.Context, id uuid.UUID) (*cashdrawer.Drawer, error)
	// ApplyMutation writes balances, state and actors if the stored version
	// still equals expectedVersion, and bumps the version.
	ApplyMutation(ctx context.Context, d *cashdrawer.Drawer, expectedVersion int64) error
	UpdateDetails(ctx context.Context, d *cashdrawer.Drawer) error
	SoftDelete(ctx context.Context, d *cashdrawer.Drawer) error
}

type TransactionRepository interface {
	Create(ctx context.Context, t *ledger.Transaction) error
	Update(ctx context.Context, t *ledger.Transaction) error
}

type HistoryRepository interface {
	Create(ctx context.Context, e *drawerhistory.Entry) error
	Update(ctx context.Context, e *drawerhistory.Entry) error
}

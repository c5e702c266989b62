//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork. A unit of work holds the
// store lock for its whole duration and restores the previous contents when
// the callback fails, so it behaves like a serializable transaction.
package memstore

import (
	"context"
	"maps"
	"sync"

	"cashdrawer-api/internal/domain/cashdrawer"
	"cashdrawer-api/internal/domain/drawerhistory"
	"cashdrawer-api/internal/domain/ledger"
	"cashdrawer-api/internal/infra"
	"cashdrawer-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.Mutex

	owners       map[shared.EntityKind]map[uuid.UUID]uuid.UUID
	drawers      map[uuid.UUID]cashdrawer.Snapshot
	transactions map[uuid.UUID]ledger.Snapshot
	histories    map[uuid.UUID]drawerhistory.Snapshot

	// BeforeWithin runs before a unit of work takes the store lock. Tests use
	// it to interleave a competing write between validation and commit.
	BeforeWithin func()
}

func New() *Store {
	return &Store{
		owners: map[shared.EntityKind]map[uuid.UUID]uuid.UUID{
			shared.KindShift:        {},
			shared.KindCollaborator: {},
			shared.KindOrder:        {},
		},
		drawers:      map[uuid.UUID]cashdrawer.Snapshot{},
		transactions: map[uuid.UUID]ledger.Snapshot{},
		histories:    map[uuid.UUID]drawerhistory.Snapshot{},
	}
}

// Tenant is a merchant with one of each reference entity.
type Tenant struct {
	MerchantID     uuid.UUID
	ShiftID        uuid.UUID
	CollaboratorID uuid.UUID
	OrderID        uuid.UUID
}

func (s *Store) AddTenant() Tenant {
	t := Tenant{MerchantID: uuid.New()}
	t.ShiftID = s.AddReference(shared.KindShift, t.MerchantID)
	t.CollaboratorID = s.AddReference(shared.KindCollaborator, t.MerchantID)
	t.OrderID = s.AddReference(shared.KindOrder, t.MerchantID)
	return t
}

// AddReference registers a shift, collaborator or order owned by merchantID.
func (s *Store) AddReference(kind shared.EntityKind, merchantID uuid.UUID) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.owners[kind][id] = merchantID
	return id
}

// PutDrawer stores a drawer as is, bypassing every rule.
func (s *Store) PutDrawer(d *cashdrawer.Drawer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawers[d.ID()] = d.Snapshot()
}

func (s *Store) Drawer(id uuid.UUID) (cashdrawer.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drawers[id]
	return d, ok
}

func (s *Store) Transaction(id uuid.UUID) (ledger.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transactions[id]
	return t, ok
}

func (s *Store) History(id uuid.UUID) (drawerhistory.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.histories[id]
	return h, ok
}

func (s *Store) TransactionsOf(drawerID uuid.UUID) []ledger.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []ledger.Snapshot
	for _, t := range s.transactions {
		if t.DrawerID == drawerID {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) HistoriesOf(drawerID uuid.UUID) []drawerhistory.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []drawerhistory.Snapshot
	for _, h := range s.histories {
		if h.DrawerID == drawerID {
			out = append(out, h)
		}
	}
	return out
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if s.BeforeWithin != nil {
		s.BeforeWithin()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	drawers := maps.Clone(s.drawers)
	transactions := maps.Clone(s.transactions)
	histories := maps.Clone(s.histories)

	if err := fn(ctx, &tx{s: s}); err != nil {
		s.drawers = drawers
		s.transactions = transactions
		s.histories = histories
		return err
	}
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockingReads{s: s}
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// reads assume the caller holds s.mu.
type reads struct{ s *Store }

func (r reads) MerchantOf(_ context.Context, kind shared.EntityKind, id uuid.UUID) (uuid.UUID, error) {
	s := r.s
	switch kind {
	case shared.KindCashDrawer:
		if d, ok := s.drawers[id]; ok {
			return d.MerchantID, nil
		}
	case shared.KindCashTransaction:
		if t, ok := s.transactions[id]; ok {
			return s.drawers[t.DrawerID].MerchantID, nil
		}
	case shared.KindDrawerHistory:
		if h, ok := s.histories[id]; ok {
			return s.drawers[h.DrawerID].MerchantID, nil
		}
	default:
		if owner, ok := s.owners[kind][id]; ok {
			return owner, nil
		}
	}
	return uuid.Nil, notFound(string(kind) + " not found")
}

func (r reads) DrawerByID(_ context.Context, id uuid.UUID) (*cashdrawer.Drawer, error) {
	d, ok := r.s.drawers[id]
	if !ok {
		return nil, notFound("cash drawer not found")
	}
	return cashdrawer.Reconstruct(d), nil
}

func (r reads) TransactionByID(_ context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	t, ok := r.s.transactions[id]
	if !ok {
		return nil, notFound("cash transaction not found")
	}
	return ledger.Reconstruct(t), nil
}

func (r reads) HistoryByID(_ context.Context, id uuid.UUID) (*drawerhistory.Entry, error) {
	h, ok := r.s.histories[id]
	if !ok {
		return nil, notFound("cash drawer history not found")
	}
	return drawerhistory.Reconstruct(h), nil
}

func (r reads) ShiftHasActiveDrawer(_ context.Context, shiftID, excludeDrawerID uuid.UUID) (bool, error) {
	for id, d := range r.s.drawers {
		if id == excludeDrawerID || d.ShiftID != shiftID {
			continue
		}
		if cashdrawer.Reconstruct(d).HoldsActiveSession() {
			return true, nil
		}
	}
	return false, nil
}

// lockingReads serve CommandReads outside a unit of work.
type lockingReads struct{ s *Store }

func (r *lockingReads) MerchantOf(ctx context.Context, kind shared.EntityKind, id uuid.UUID) (uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads(*r).MerchantOf(ctx, kind, id)
}

func (r *lockingReads) DrawerByID(ctx context.Context, id uuid.UUID) (*cashdrawer.Drawer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads(*r).DrawerByID(ctx, id)
}

func (r *lockingReads) TransactionByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads(*r).TransactionByID(ctx, id)
}

func (r *lockingReads) HistoryByID(ctx context.Context, id uuid.UUID) (*drawerhistory.Entry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads(*r).HistoryByID(ctx, id)
}

func (r *lockingReads) ShiftHasActiveDrawer(ctx context.Context, shiftID, excludeDrawerID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads(*r).ShiftHasActiveDrawer(ctx, shiftID, excludeDrawerID)
}

type tx struct{ s *Store }

func (t *tx) Drawers() shared.DrawerRepository           { return drawerRepo(*t) }
func (t *tx) Transactions() shared.TransactionRepository { return transactionRepo(*t) }
func (t *tx) History() shared.HistoryRepository          { return historyRepo(*t) }
func (t *tx) Reads() shared.CommandReads                 { return reads(*t) }

type drawerRepo struct{ s *Store }

func (r drawerRepo) Create(_ context.Context, d *cashdrawer.Drawer) error {
	if _, exists := r.s.drawers[d.ID()]; exists {
		return infra.WrapRepoErr("cash drawer already exists", nil, infra.KindDuplicateKey)
	}
	r.s.drawers[d.ID()] = d.Snapshot()
	return nil
}

func (r drawerRepo) LockByID(ctx context.Context, id uuid.UUID) (*cashdrawer.Drawer, error) {
	return reads(r).DrawerByID(ctx, id)
}

func (r drawerRepo) ApplyMutation(_ context.Context, d *cashdrawer.Drawer, expectedVersion int64) error {
	stored, ok := r.s.drawers[d.ID()]
	if !ok || stored.Version != expectedVersion {
		return infra.WrapRepoErr("cash drawer version changed", nil, infra.KindStaleVersion)
	}
	next := d.Snapshot()
	next.Version = expectedVersion + 1
	r.s.drawers[d.ID()] = next
	return nil
}

func (r drawerRepo) UpdateDetails(_ context.Context, d *cashdrawer.Drawer) error {
	stored, ok := r.s.drawers[d.ID()]
	if !ok {
		return notFound("cash drawer not found")
	}
	stored.ShiftID = d.ShiftID()
	stored.OpenedBy = d.OpenedBy()
	stored.UpdatedAt = d.UpdatedAt()
	r.s.drawers[d.ID()] = stored
	return nil
}

func (r drawerRepo) SoftDelete(_ context.Context, d *cashdrawer.Drawer) error {
	stored, ok := r.s.drawers[d.ID()]
	if !ok || stored.RecordStatus.IsDeleted() {
		return infra.WrapRepoErr("cash drawer already deleted", nil, infra.KindStaleVersion)
	}
	stored.RecordStatus = d.RecordStatus()
	stored.UpdatedAt = d.UpdatedAt()
	r.s.drawers[d.ID()] = stored
	return nil
}

type transactionRepo struct{ s *Store }

func (r transactionRepo) Create(_ context.Context, t *ledger.Transaction) error {
	r.s.transactions[t.ID()] = t.Snapshot()
	return nil
}

func (r transactionRepo) Update(_ context.Context, t *ledger.Transaction) error {
	if _, ok := r.s.transactions[t.ID()]; !ok {
		return notFound("cash transaction not found")
	}
	r.s.transactions[t.ID()] = t.Snapshot()
	return nil
}

type historyRepo struct{ s *Store }

func (r historyRepo) Create(_ context.Context, e *drawerhistory.Entry) error {
	r.s.histories[e.ID()] = e.Snapshot()
	return nil
}

func (r historyRepo) Update(_ context.Context, e *drawerhistory.Entry) error {
	if _, ok := r.s.histories[e.ID()]; !ok {
		return notFound("cash drawer history not found")
	}
	r.s.histories[e.ID()] = e.Snapshot()
	return nil
}

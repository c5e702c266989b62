package shared

import (
	"context"

	"cashdrawer-api/internal/infra"
	"cashdrawer-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// EntityKind names an entity whose owning merchant can be resolved.
type EntityKind string

const (
	KindCashDrawer      EntityKind = "cash drawer"
	KindShift           EntityKind = "shift"
	KindCollaborator    EntityKind = "collaborator"
	KindOrder           EntityKind = "order"
	KindCashTransaction EntityKind = "cash transaction"
	KindDrawerHistory   EntityKind = "cash drawer history"
)

var ErrMerchantRequired = errs.Forbidden("merchant context required")

type MerchantResolver interface {
	// MerchantOf returns the owning merchant. Cash transactions and history
	// entries resolve through their drawer.
	MerchantOf(ctx context.Context, kind EntityKind, id uuid.UUID) (uuid.UUID, error)
}

// AssertOwned fails with NotFound when the entity does not exist and with
// Forbidden when it belongs to another merchant.
func AssertOwned(ctx context.Context, r MerchantResolver, merchantID uuid.UUID, kind EntityKind, id uuid.UUID) error {
	if merchantID == uuid.Nil {
		return ErrMerchantRequired
	}
	owner, err := r.MerchantOf(ctx, kind, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.NotFound(string(kind) + " not found")
		}
		return err
	}
	return CheckOwner(kind, owner, merchantID)
}

// AssertOwnedIfSet is AssertOwned for optional references.
func AssertOwnedIfSet(ctx context.Context, r MerchantResolver, merchantID uuid.UUID, kind EntityKind, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	return AssertOwned(ctx, r, merchantID, kind, *id)
}

func CheckOwner(kind EntityKind, owner, merchantID uuid.UUID) error {
	if merchantID == uuid.Nil {
		return ErrMerchantRequired
	}
	if owner != merchantID {
		return errs.Forbidden(string(kind) + " belongs to another merchant")
	}
	return nil
}

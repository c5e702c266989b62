package shared

import (
	"cashdrawer-api/internal/domain/cashdrawer"
	"cashdrawer-api/internal/domain/drawerhistory"
	"cashdrawer-api/internal/domain/ledger"
	"cashdrawer-api/internal/domain/money"
	"cashdrawer-api/internal/infra"
	"cashdrawer-api/internal/pkg/errs"
)

var (
	ErrActiveDrawerExists   = errs.Conflict("shift already has an open or paused cash drawer")
	ErrConcurrentTransition = errs.Conflict("cash drawer state changed by a concurrent request")
)

var badRequestCauses = []error{
	money.ErrNegativeAmount,
	money.ErrTooPrecise,
	cashdrawer.ErrPartialClosing,
	cashdrawer.ErrMustBeOpen,
	cashdrawer.ErrMustBePaused,
	cashdrawer.ErrMustBeClosed,
	cashdrawer.ErrInsufficientBalance,
	ledger.ErrInvalidType,
	ledger.ErrAmountRequired,
	ledger.ErrNotesTooLong,
	ledger.ErrMonetaryNotRemovable,
	ledger.ErrBoundaryNotRemovable,
}

var conflictCauses = []error{
	cashdrawer.ErrAlreadyDeleted,
	ledger.ErrAlreadyDeleted,
	drawerhistory.ErrAlreadyDeleted,
}

var notFoundCauses = []error{
	cashdrawer.ErrDrawerDeleted,
	ledger.ErrTransactionDeleted,
	drawerhistory.ErrEntryDeleted,
}

// Classify marks domain and persistence errors with their error class.
// Errors that already carry a class, and unknown errors, pass through.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errs.IsBadRequest(err) || errs.IsForbidden(err) || errs.IsNotFound(err) || errs.IsConflict(err) {
		return err
	}
	for _, cause := range badRequestCauses {
		if errs.Is(err, cause) {
			return errs.Class(err, errs.ErrBadRequest)
		}
	}
	for _, cause := range conflictCauses {
		if errs.Is(err, cause) {
			return errs.Class(err, errs.ErrConflict)
		}
	}
	for _, cause := range notFoundCauses {
		if errs.Is(err, cause) {
			return errs.Class(err, errs.ErrNotFound)
		}
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Class(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Class(err, errs.ErrConflict)
	case infra.IsKind(err, infra.KindStaleVersion):
		return errs.Class(err, errs.ErrConflict)
	}
	return err
}

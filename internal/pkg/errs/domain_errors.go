package errs

import cr "github.com/cockroachdb/errors"

// Error classes. Specific errors are marked with exactly one of these so the
// transport layer can map them without knowing every cause.
var (
	ErrBadRequest = cr.New("bad request")
	ErrForbidden  = cr.New("forbidden")
	ErrNotFound   = cr.New("not found")
	ErrConflict   = cr.New("conflict")
)

// Class marks err as belonging to class. Both errors.Is(err, class) and
// errors.Is(err, <original cause>) hold afterwards.
func Class(err, class error) error {
	if err == nil {
		return nil
	}
	return cr.Mark(err, class)
}

func BadRequest(msg string) error { return cr.Mark(cr.New(msg), ErrBadRequest) }
func Forbidden(msg string) error  { return cr.Mark(cr.New(msg), ErrForbidden) }
func NotFound(msg string) error   { return cr.Mark(cr.New(msg), ErrNotFound) }
func Conflict(msg string) error   { return cr.Mark(cr.New(msg), ErrConflict) }

func IsBadRequest(err error) bool { return cr.Is(err, ErrBadRequest) }
func IsForbidden(err error) bool  { return cr.Is(err, ErrForbidden) }
func IsNotFound(err error) bool   { return cr.Is(err, ErrNotFound) }
func IsConflict(err error) bool   { return cr.Is(err, ErrConflict) }

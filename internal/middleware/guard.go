package middleware

import (
	"context" // context is passed through to the wrapped action
	"errors"  // errors lets callers detect a failed precondition
)

// ErrPrecondition is returned by Require when an action cannot start.
var ErrPrecondition = errors.New("precondition failed")

// Require returns a middleware that runs the action only when ok reports
// true.  Otherwise the action is skipped and reason is returned wrapped in
// ErrPrecondition, e.g. "no reservations found" for a search on an empty
// hotel.
func Require(ok func() bool, reason string) Middleware {
	return func(next Action) Action {
		return func(ctx context.Context) error {
			if !ok() {
				return &PreconditionError{Reason: reason}
			}
			return next(ctx)
		}
	}
}

// PreconditionError carries the operator-facing reason an action was
// skipped.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string { return e.Reason }

func (e *PreconditionError) Unwrap() error { return ErrPrecondition }

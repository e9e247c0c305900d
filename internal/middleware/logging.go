package middleware

import (
	"context" // context carries the action name
	"errors"  // errors unwraps the outcome for classification
	"time"    // time measures how long the action took

	"github.com/sirupsen/logrus"
)

// Logging records the start and outcome of every action.  Validation and
// rule failures are expected at a front desk and log at info; only
// unexpected errors log at warn.
func Logging(log logrus.FieldLogger, expected func(error) bool) Middleware {
	return func(next Action) Action {
		return func(ctx context.Context) error {
			entry := log.WithField("action", ActionName(ctx))
			entry.Debug("action started")
			start := time.Now()

			err := next(ctx)

			entry = entry.WithField("duration", time.Since(start).String())
			switch {
			case err == nil:
				entry.Info("action finished")
			case errors.Is(err, ErrPrecondition) || (expected != nil && expected(err)):
				entry.WithError(err).Info("action refused")
			default:
				entry.WithError(err).Warn("action failed")
			}
			return err
		}
	}
}

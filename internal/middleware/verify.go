package middleware

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Verify runs check after the action returns and logs any inconsistency
// it reports.  The action's own result is passed through unchanged.
func Verify(log logrus.FieldLogger, check Action) Middleware {
	return func(next Action) Action {
		return func(ctx context.Context) error {
			err := next(ctx)
			if cerr := check(ctx); cerr != nil {
				log.WithError(cerr).WithField("action", ActionName(ctx)).Error("consistency check failed")
			}
			return err
		}
	}
}

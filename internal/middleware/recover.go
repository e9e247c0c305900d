package middleware

import (
	"context"       // context is passed through to the wrapped action
	"fmt"           // fmt turns a panic value into an error
	"runtime/debug" // debug captures the stack of a panicking action

	"github.com/sirupsen/logrus"
)

// Recover turns a panic inside an action into an error so the operator is
// returned to the menu instead of losing the session.
func Recover(log logrus.FieldLogger) Middleware {
	return func(next Action) Action {
		return func(ctx context.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(logrus.Fields{
						"action": ActionName(ctx),
						"panic":  r,
						"stack":  string(debug.Stack()),
					}).Error("action panicked")
					err = fmt.Errorf("unexpected error: %v", r)
				}
			}()
			return next(ctx)
		}
	}
}

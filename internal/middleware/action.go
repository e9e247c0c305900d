package middleware // middleware wraps menu actions with shared behaviour

import "context"

// Action is one menu command.  It returns an error when the command could
// not be completed; the menu reports it and carries on.
type Action func(ctx context.Context) error

// Middleware decorates an Action.
type Middleware func(next Action) Action

// Chain applies mws to a so that the first one listed runs outermost.
func Chain(a Action, mws ...Middleware) Action {
	for i := len(mws) - 1; i >= 0; i-- {
		a = mws[i](a)
	}
	return a
}

type actionKey struct{}

// WithAction stores the running action's name in ctx.
func WithAction(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, actionKey{}, name)
}

// ActionName returns the running action's name, or "unknown" when none
// was stored.
func ActionName(ctx context.Context) string {
	if v, ok := ctx.Value(actionKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}

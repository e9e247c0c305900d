package router // package router registers the desk's menu actions and runs the dispatch loop

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/hotel-reservation/internal/console"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/service"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

// Entry is one numbered menu line.
type Entry struct {
	Key     int
	Section string
	Label   string
	Name    string // action name used in logs
	Action  middleware.Action
}

// Menu is the numbered main menu.  Entries are shown grouped by section in
// key order; 0 always exits.
type Menu struct {
	title   string
	in      *console.Prompter
	out     *console.Screen
	log     logrus.FieldLogger
	use     []middleware.Middleware
	entries map[int]Entry
}

// NewMenu returns an empty menu.  mws wrap every action registered later,
// the first one outermost.
func NewMenu(title string, in *console.Prompter, out *console.Screen, log logrus.FieldLogger, mws ...middleware.Middleware) *Menu {
	return &Menu{title: title, in: in, out: out, log: log, use: mws, entries: map[int]Entry{}}
}

// Handle registers a on key.  Extra middleware runs inside the menu-wide
// middleware.  Registering a key twice, or key 0, panics.
func (m *Menu) Handle(key int, section, label, name string, a middleware.Action, mws ...middleware.Middleware) {
	if key <= 0 {
		panic(fmt.Sprintf("router: menu key %d is reserved", key))
	}
	if _, dup := m.entries[key]; dup {
		panic(fmt.Sprintf("router: menu key %d registered twice", key))
	}
	chain := append(append([]middleware.Middleware(nil), m.use...), mws...)
	m.entries[key] = Entry{Key: key, Section: section, Label: label, Name: name, Action: middleware.Chain(a, chain...)}
}

// Entries returns the registered entries in key order.
func (m *Menu) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Run shows the menu and dispatches choices until the operator picks 0,
// the input ends or ctx is cancelled.  A failing action is reported and
// the menu is shown again.
func (m *Menu) Run(ctx context.Context) error {
	entries := m.Entries()
	last := 0
	if len(entries) > 0 {
		last = entries[len(entries)-1].Key
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.render(entries)
		choice, err := m.in.Int(fmt.Sprintf("\nEnter your choice (0-%d): ", last), 0, last)
		if errors.Is(err, console.ErrInputClosed) {
			m.log.Info("input closed; leaving menu")
			return nil
		}
		if err != nil {
			return err
		}
		if choice == 0 {
			m.out.Clear()
			m.out.Header("THANK YOU")
			m.out.Println("\nThank you for using the Hotel Reservation Desk!")
			m.out.Println("Goodbye!")
			return nil
		}
		e, ok := m.entries[choice]
		if !ok {
			m.out.Error("Option %d is not available.", choice)
			continue
		}

		err = e.Action(middleware.WithAction(ctx, e.Name))
		if errors.Is(err, console.ErrInputClosed) {
			m.log.WithField("action", e.Name).Info("input closed during action; leaving menu")
			return nil
		}
		m.report(err)
		m.in.Pause()
	}
}

func (m *Menu) render(entries []Entry) {
	m.out.Clear()
	m.out.Header(m.title)
	section := ""
	for _, e := range entries {
		if e.Section != section {
			section = e.Section
			m.out.Printf("\n[%s]\n", section)
		}
		m.out.Printf("%3d. %s\n", e.Key, e.Label)
	}
	m.out.Println("  0. Exit")
}

// report prints an action's outcome for the operator.
func (m *Menu) report(err error) {
	var verr *utils.ValidationError
	var perr *middleware.PreconditionError
	switch {
	case err == nil:
	case errors.Is(err, console.ErrAborted):
		m.out.Println("\nOperation cancelled.")
	case errors.As(err, &perr):
		m.out.Println("\n" + perr.Reason)
	case errors.As(err, &verr):
		m.out.Error("Invalid input: %s", verr.Error())
	case service.IsNotFound(err):
		m.out.Error("Not found: %s", err)
	case service.IsRuleViolation(err):
		m.out.Error("Not allowed: %s", err)
	default:
		m.out.Error("Unexpected error: %s", err)
	}
}

// Expected reports whether err is an outcome the desk anticipates: bad
// input, a failed lookup, a refused rule or the operator backing out.
func Expected(err error) bool {
	var verr *utils.ValidationError
	return errors.As(err, &verr) || service.IsNotFound(err) || service.IsRuleViolation(err) ||
		errors.Is(err, console.ErrAborted)
}

// Package console reads operator input and writes the desk screens.  Every
// typed value goes through a parser from utils; a parse failure prints the
// rule that was broken and asks again.
package console

import (
	"bufio"   // bufio reads one answer per line
	"errors"  // errors separates validation failures from real ones
	"fmt"     // fmt prints prompts and error lines
	"io"      // io abstracts the terminal streams
	"strings" // strings trims answers

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

// ErrInputClosed is returned once the input stream ends.  The menu loop
// treats it as an exit request.
var ErrInputClosed = errors.New("input closed")

// ErrAborted is returned when the operator backs out of an action.
var ErrAborted = errors.New("operation cancelled")

// Prompter asks questions on out and reads the answers from in, one line
// per answer.
type Prompter struct {
	in    *bufio.Scanner
	out   io.Writer
	dates utils.DateRules
}

// NewPrompter returns a prompter reading from in.  Dates outside rules'
// year range are refused.
func NewPrompter(in io.Reader, out io.Writer, rules utils.DateRules) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out, dates: rules}
}

// Line prints prompt and returns the next input line, trimmed.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// ask keeps prompting until parse accepts the answer.  Only validation
// failures are retried; any other error is returned.
func ask[T any](p *Prompter, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		raw, err := p.Line(prompt)
		if err != nil {
			return zero, err
		}
		v, err := parse(raw)
		if err == nil {
			return v, nil
		}
		var verr *utils.ValidationError
		if !errors.As(err, &verr) {
			return zero, err
		}
		fmt.Fprintf(p.out, "Error: %s\n", verr.Message)
	}
}

// Int asks for a whole number in [min, max].
func (p *Prompter) Int(prompt string, min, max int) (int, error) {
	return ask(p, prompt, func(s string) (int, error) { return utils.ParseInt("number", s, min, max) })
}

// Amount asks for a money amount in [min, max]; max <= 0 is unbounded.
func (p *Prompter) Amount(prompt string, min, max float64) (float64, error) {
	return ask(p, prompt, func(s string) (float64, error) { return utils.ParseAmount("amount", s, min, max) })
}

// Name asks for a guest name.
func (p *Prompter) Name(prompt string) (string, error) {
	return ask(p, prompt, func(s string) (string, error) { return utils.ParseName("name", s, 2, 50) })
}

// Text asks for free text of minLen..maxLen characters.
func (p *Prompter) Text(prompt string, minLen, maxLen int) (string, error) {
	return ask(p, prompt, func(s string) (string, error) { return utils.ParseText("text", s, minLen, maxLen) })
}

// Phone asks for a phone number and returns its digits.
func (p *Prompter) Phone(prompt string) (string, error) {
	return ask(p, prompt, func(s string) (string, error) { return utils.ParsePhone("phone", s) })
}

// Email asks for an email address and returns it lower-cased.
func (p *Prompter) Email(prompt string) (string, error) {
	return ask(p, prompt, func(s string) (string, error) { return utils.ParseEmail("email", s) })
}

// Date asks for a DD/MM/YYYY date.
func (p *Prompter) Date(prompt string) (model.Date, error) {
	return ask(p, prompt, func(s string) (model.Date, error) { return utils.ParseDate("date", s, p.dates) })
}

// Time asks for a 24-hour HH:MM time.
func (p *Prompter) Time(prompt string) (model.TimeOfDay, error) {
	return ask(p, prompt, func(s string) (model.TimeOfDay, error) { return utils.ParseTime("time", s) })
}

// Optional returns the answer as typed, which may be empty.
func (p *Prompter) Optional(prompt string) (string, error) {
	return p.Line(prompt)
}

// Skippable is like the typed prompts but accepts a blank answer, which is
// returned as "".
func (p *Prompter) Skippable(prompt string, parse func(string) (string, error)) (string, error) {
	return ask(p, prompt, func(s string) (string, error) {
		if s == "" {
			return "", nil
		}
		return parse(s)
	})
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	return ask(p, prompt+" (yes/no): ", func(s string) (bool, error) {
		switch strings.ToLower(s) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		return false, &utils.ValidationError{Field: "answer", Message: "please answer yes or no"}
	})
}

// Choose prints options numbered from 1 and returns the chosen index.
func (p *Prompter) Choose(title string, options []string) (int, error) {
	if title != "" {
		fmt.Fprintf(p.out, "\n%s\n", title)
	}
	for i, o := range options {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, o)
	}
	n, err := p.Int(fmt.Sprintf("Select (1-%d): ", len(options)), 1, len(options))
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

// Pause waits for Enter.  A closed input does not block.
func (p *Prompter) Pause() {
	_, _ = p.Line("\nPress Enter to continue...")
}

package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/mattn/go-isatty"
)

// Width is the column count screens are laid out for.
const Width = 70

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Screen writes formatted output for the operator.  Colors and screen
// clearing are only used when the output is a terminal.
type Screen struct {
	out   io.Writer
	clear bool
	c     *color.Color
}

// NewScreen returns a screen writing to out.  styled turns on colors;
// clear additionally enables clearing between screens.
func NewScreen(out io.Writer, styled, clear bool) *Screen {
	c := color.New()
	// SetOutput disables colors for anything but an *os.File terminal, so
	// the caller's decision is applied afterwards.
	c.SetOutput(out)
	if styled {
		c.Enable()
	} else {
		c.Disable()
	}
	return &Screen{out: out, clear: styled && clear, c: c}
}

// Writer exposes the underlying writer for tabular output.
func (s *Screen) Writer() io.Writer { return s.out }

// Clear wipes the terminal when clearing is enabled.
func (s *Screen) Clear() {
	if s.clear {
		fmt.Fprint(s.out, "\033[H\033[2J")
	}
}

// Header prints a boxed, centred title.
func (s *Screen) Header(title string) {
	bar := strings.Repeat("=", Width)
	fmt.Fprintln(s.out, bar)
	fmt.Fprintln(s.out, s.c.Bold(s.c.Cyan(center(title, Width))))
	fmt.Fprintln(s.out, bar)
}

// Section prints a sub-heading framed by separators.
func (s *Screen) Section(title string) {
	fmt.Fprintln(s.out)
	s.Separator()
	fmt.Fprintln(s.out, s.c.Bold(title))
	s.Separator()
}

// Separator prints a thin rule.
func (s *Screen) Separator() {
	fmt.Fprintln(s.out, strings.Repeat("-", Width))
}

func (s *Screen) Printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Screen) Println(args ...any) {
	fmt.Fprintln(s.out, args...)
}

// Success prints a confirmation line.
func (s *Screen) Success(format string, args ...any) {
	fmt.Fprintln(s.out, s.c.Green("✓ "+fmt.Sprintf(format, args...)))
}

// Warn prints a warning line.
func (s *Screen) Warn(format string, args ...any) {
	fmt.Fprintln(s.out, s.c.Yellow("⚠ "+fmt.Sprintf(format, args...)))
}

// Error prints a failure line.
func (s *Screen) Error(format string, args ...any) {
	fmt.Fprintln(s.out, s.c.Red("✗ "+fmt.Sprintf(format, args...)))
}

// Badge colors a status word: settled states green, open ones yellow and
// cancelled or refunded red.
func (s *Screen) Badge(status string) string {
	switch status {
	case "Paid", "Active", "Completed":
		return s.c.Green(status)
	case "Partial", "Pending":
		return s.c.Yellow(status)
	case "Cancelled", "Refunded", "Partial Refund":
		return s.c.Red(status)
	}
	return status
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s
}

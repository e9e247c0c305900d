package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

var rules = utils.DateRules{MinYear: 2024, MaxYear: 2030}

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out, rules), &out
}

func TestPrompter_RepromptsOnInvalidInput(t *testing.T) {
	t.Parallel()

	p, out := newTestPrompter("abc\n42\n7\n")
	n, err := p.Int("Guests: ", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, 3, strings.Count(out.String(), "Guests: "))
	assert.Contains(t, out.String(), "Error: please enter a valid number")
	assert.Contains(t, out.String(), "Error: value must be at most 10")
}

func TestPrompter_TypedValues(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("  Maria Santos \n0917-123-4567\nMaria@Example.com\n29/02/2028\n14:30\n1500.50\n")

	name, err := p.Name("Name: ")
	require.NoError(t, err)
	assert.Equal(t, "Maria Santos", name)

	phone, err := p.Phone("Phone: ")
	require.NoError(t, err)
	assert.Equal(t, "09171234567", phone)

	email, err := p.Email("Email: ")
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", email)

	date, err := p.Date("Date: ")
	require.NoError(t, err)
	assert.Equal(t, model.Date{Day: 29, Month: 2, Year: 2028}, date)

	tm, err := p.Time("Time: ")
	require.NoError(t, err)
	assert.Equal(t, model.TimeOfDay{Hour: 14, Minute: 30}, tm)

	amount, err := p.Amount("Amount: ", 0.01, 0)
	require.NoError(t, err)
	assert.Equal(t, 1500.5, amount)
}

func TestPrompter_AmountRejectsNonFinite(t *testing.T) {
	t.Parallel()

	p, out := newTestPrompter("inf\nNaN\n1e400\n250\n")
	amount, err := p.Amount("Amount: ", 0.01, 0)
	require.NoError(t, err)
	assert.Equal(t, 250.0, amount)
	assert.Equal(t, 3, strings.Count(out.String(), "Error: please enter a valid number"))
}

func TestPrompter_DateOutsideRange(t *testing.T) {
	t.Parallel()

	p, out := newTestPrompter("01/01/2031\n01/01/2030\n")
	date, err := p.Date("Date: ")
	require.NoError(t, err)
	assert.Equal(t, 2030, date.Year)
	assert.Contains(t, out.String(), "year must be between 2024 and 2030")
}

func TestPrompter_InputClosed(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("not a number\n")
	_, err := p.Int("n: ", 1, 3)
	assert.ErrorIs(t, err, ErrInputClosed)

	p, _ = newTestPrompter("")
	_, err = p.Line("> ")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestPrompter_Confirm(t *testing.T) {
	t.Parallel()

	p, out := newTestPrompter("maybe\nY\nno\n")
	ok, err := p.Confirm("Delete?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "Delete? (yes/no): ")
	assert.Contains(t, out.String(), "please answer yes or no")

	ok, err = p.Confirm("Again?")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPrompter_Skippable(t *testing.T) {
	t.Parallel()

	parse := func(s string) (string, error) { return utils.ParsePhone("phone", s) }
	p, out := newTestPrompter("\n123\n09171234567\n")

	v, err := p.Skippable("Phone: ", parse)
	require.NoError(t, err)
	assert.Empty(t, v)

	v, err = p.Skippable("Phone: ", parse)
	require.NoError(t, err)
	assert.Equal(t, "09171234567", v)
	assert.Contains(t, out.String(), "10-15 digits")
}

func TestPrompter_ChooseAndOptional(t *testing.T) {
	t.Parallel()

	p, out := newTestPrompter("3\n2\n\n")
	i, err := p.Choose("Methods:", []string{"Cash", "Card"})
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Contains(t, out.String(), "  1. Cash\n  2. Card\n")
	assert.Contains(t, out.String(), "Select (1-2): ")

	v, err := p.Optional("Notes: ")
	require.NoError(t, err)
	assert.Empty(t, v)

	p.Pause()
	assert.Contains(t, out.String(), "Press Enter to continue...")
}

func TestPrompter_ParseErrorsOtherThanValidationStop(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	p, _ := newTestPrompter("x\n")
	_, err := ask(p, "> ", func(string) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
}

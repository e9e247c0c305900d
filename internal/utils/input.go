package utils // package utils provides parsing and validation for operator input

import (
	"fmt"     // fmt formats validation messages
	"math"    // math rounds amounts to cents
	"strconv" // strconv parses numbers typed by the operator
	"strings" // strings trims and splits raw input
	"unicode" // unicode classifies name and phone characters

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ValidationError describes a single rule a typed value broke.  Field names
// the input and Message is shown to the operator before re-prompting.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ParseInt reads a whole number within [min, max].
func ParseInt(field, raw string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, invalid(field, "please enter a valid number")
	}
	if n < min {
		return 0, invalid(field, "value must be at least %d", min)
	}
	if n > max {
		return 0, invalid(field, "value must be at most %d", max)
	}
	return n, nil
}

// ParseAmount reads a money amount within [min, max] and rounds it to
// cents.  A max of zero or less means unbounded.  Bounds are compared at
// cent precision, so an amount typed as displayed always fits.
func ParseAmount(field, raw string, min, max float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, invalid(field, "please enter a valid number")
	}
	v = cents(v)
	if v < cents(min) {
		return 0, invalid(field, "value must be at least %.2f", min)
	}
	if max > 0 && v > cents(max) {
		return 0, invalid(field, "value must be at most %.2f", max)
	}
	return v, nil
}

func cents(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseName checks a person's name: minLen..maxLen characters made of
// letters, spaces, hyphens and periods.
func ParseName(field, raw string, minLen, maxLen int) (string, error) {
	v := strings.TrimSpace(raw)
	n := len([]rune(v))
	if n < minLen {
		return "", invalid(field, "input must be at least %d character(s)", minLen)
	}
	if n > maxLen {
		return "", invalid(field, "input must be at most %d characters", maxLen)
	}
	for _, c := range v {
		if !unicode.IsLetter(c) && !unicode.IsSpace(c) && c != '-' && c != '.' {
			return "", invalid(field, "please use only letters, spaces, hyphens, and periods")
		}
	}
	return v, nil
}

// ParseText checks free text length only.
func ParseText(field, raw string, minLen, maxLen int) (string, error) {
	v := strings.TrimSpace(raw)
	n := len([]rune(v))
	if n < minLen {
		return "", invalid(field, "input must be at least %d character(s)", minLen)
	}
	if n > maxLen {
		return "", invalid(field, "input must be at most %d characters", maxLen)
	}
	return v, nil
}

// ParsePhone strips common separators and requires 10 to 15 digits.  The
// returned value is the digits only.
func ParsePhone(field, raw string) (string, error) {
	cleaned := strings.NewReplacer("-", "", " ", "", "(", "", ")", "").Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return "", invalid(field, "phone number must contain only digits")
	}
	for _, c := range cleaned {
		if c < '0' || c > '9' {
			return "", invalid(field, "phone number must contain only digits")
		}
	}
	if len(cleaned) < 10 || len(cleaned) > 15 {
		return "", invalid(field, "phone number must be 10-15 digits")
	}
	return cleaned, nil
}

// ParseEmail lower-cases the address and applies the desk's basic rules:
// at least five characters, exactly one @, a non-empty local part and a
// dotted domain of three or more characters.
func ParseEmail(field, raw string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if len(v) < 5 {
		return "", invalid(field, "email is too short")
	}
	if strings.Count(v, "@") != 1 {
		return "", invalid(field, "email must contain exactly one @ symbol")
	}
	local, domain, _ := strings.Cut(v, "@")
	if local == "" {
		return "", invalid(field, "email must have characters before @")
	}
	if len(domain) < 3 || !strings.Contains(domain, ".") {
		return "", invalid(field, "email domain must be valid (e.g., example.com)")
	}
	return v, nil
}

// DateRules bounds the years accepted by ParseDate.
type DateRules struct {
	MinYear int
	MaxYear int
}

// ParseDate reads DD/MM/YYYY and checks the year range, the month and the
// day count of that month, leap years included.
func ParseDate(field, raw string, rules DateRules) (model.Date, error) {
	v := strings.TrimSpace(raw)
	parts := strings.Split(v, "/")
	if len(parts) != 3 {
		return model.Date{}, invalid(field, "date must be in format DD/MM/YYYY")
	}
	nums := make([]int, 3)
	for i, p := range parts {
		if !isDigits(p) {
			return model.Date{}, invalid(field, "date must contain only numbers")
		}
		nums[i], _ = strconv.Atoi(p)
	}
	d := model.Date{Day: nums[0], Month: nums[1], Year: nums[2]}
	if d.Year < rules.MinYear || d.Year > rules.MaxYear {
		return model.Date{}, invalid(field, "year must be between %d and %d", rules.MinYear, rules.MaxYear)
	}
	if d.Month < 1 || d.Month > 12 {
		return model.Date{}, invalid(field, "month must be between 1 and 12")
	}
	if last := model.DaysInMonth(d.Month, d.Year); d.Day < 1 || d.Day > last {
		return model.Date{}, invalid(field, "day must be between 1 and %d for month %d", last, d.Month)
	}
	return d, nil
}

// ParseTime reads HH:MM on a 24-hour clock.
func ParseTime(field, raw string) (model.TimeOfDay, error) {
	v := strings.TrimSpace(raw)
	parts := strings.Split(v, ":")
	if len(parts) != 2 {
		return model.TimeOfDay{}, invalid(field, "time must be in format HH:MM (e.g., 14:30)")
	}
	if !isDigits(parts[0]) || !isDigits(parts[1]) {
		return model.TimeOfDay{}, invalid(field, "time must contain only numbers")
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	if h > 23 {
		return model.TimeOfDay{}, invalid(field, "hour must be between 0 and 23")
	}
	if m > 59 {
		return model.TimeOfDay{}, invalid(field, "minute must be between 0 and 59")
	}
	return model.TimeOfDay{Hour: h, Minute: m}, nil
}

// OrNA returns "N/A" for blank optional text.
func OrNA(raw string) string {
	if v := strings.TrimSpace(raw); v != "" {
		return v
	}
	return "N/A"
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

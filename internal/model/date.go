package model

import "fmt"

// Date is a calendar day as typed at the front desk (DD/MM/YYYY).  Dates
// are compared field by field and never converted to time.Time, so the
// nights arithmetic below stays the same approximation guests are billed
// with.
type Date struct {
	Day   int
	Month int
	Year  int
}

// TimeOfDay is an HH:MM 24-hour clock reading.
type TimeOfDay struct {
	Hour   int
	Minute int
}

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear applies the Gregorian rule: divisible by 4, except centuries
// unless divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month (1-12) of year, or 0 when
// month is out of range.
func DaysInMonth(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// Valid reports whether d names a real calendar day.
func (d Date) Valid() bool {
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Month, d.Year)
}

// Compare returns -1, 0 or 1 comparing year, then month, then day.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	case d.Day != o.Day:
		return sign(d.Day - o.Day)
	}
	return 0
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// Between reports whether start <= d <= end.
func (d Date) Between(start, end Date) bool {
	return d.Compare(start) >= 0 && d.Compare(end) <= 0
}

func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// dayNumber maps d onto a day count using 365-day years.  Leap days are
// only counted inside d's own year, so spans crossing the end of a leap
// year come out one short; billing depends on exactly this behaviour.
func (d Date) dayNumber() int {
	total := d.Year * 365
	for m := 1; m < d.Month; m++ {
		total += DaysInMonth(m, d.Year)
	}
	return total + d.Day
}

// Nights returns the number of nights between checkIn and checkOut,
// floored at 1.
func Nights(checkIn, checkOut Date) int {
	n := checkOut.dayNumber() - checkIn.dayNumber()
	if n < 1 {
		return 1
	}
	return n
}

// Valid reports whether t is a real 24-hour clock reading.
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}

package lovedays

import (
	"strings"
	"time"

	"github.com/matzehuels/lovewall/pkg/errors"
)

// DateLayout is the input format for start dates.
const DateLayout = "2006-01-02"

// Couple is the input of a count.
type Couple struct {
	Name1 string
	Name2 string
	Since time.Time
}

// Result is a validated count.
type Result struct {
	Couple
	Today      time.Time
	Days       int
	Milestones []Milestone
}

// Count validates c and returns the whole days between c.Since and today.
// Both names are required, and a start date after today is rejected with a
// FUTURE_DATE advisory.
func Count(c Couple, today time.Time) (Result, error) {
	name1, err := validName(c.Name1)
	if err != nil {
		return Result{}, err
	}
	name2, err := validName(c.Name2)
	if err != nil {
		return Result{}, err
	}
	if c.Since.IsZero() {
		return Result{}, errors.New(errors.ErrCodeInvalidDate, "pick the day you got together")
	}

	since, now := Date(c.Since), Date(today)
	if since.After(now) {
		return Result{}, errors.New(errors.ErrCodeFutureDate,
			"%s is in the future", since.Format(DateLayout))
	}

	days := DaysBetween(since, now)
	return Result{
		Couple:     Couple{Name1: name1, Name2: name2, Since: since},
		Today:      now,
		Days:       days,
		Milestones: Milestones(since, days),
	}, nil
}

func validName(name string) (string, error) {
	if err := errors.ValidateName(name); err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

// DaysBetween returns the number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Date(b).Sub(Date(a)).Hours() / 24)
}

// Date truncates t to midnight UTC of its calendar day.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultStartDate is the date one year before today.
func DefaultStartDate(today time.Time) time.Time {
	return Date(today).AddDate(-1, 0, 0)
}

// ParseDate parses a YYYY-MM-DD start date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.Wrap(errors.ErrCodeInvalidDate, err, "date %q must look like %s", s, DateLayout)
	}
	return t, nil
}

// FormatDate renders a date for milestone cards, e.g. "Mon, January 2, 2006".
func FormatDate(t time.Time) string {
	return t.Format("Mon, January 2, 2006")
}

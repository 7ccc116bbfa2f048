package timeutil

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD or RFC3339")

// Clock is injected wherever "now" decides the result.
type Clock func() time.Time

func SystemClock() time.Time { return time.Now() }

// StartOfDay is the local calendar day of t with the time of day zeroed.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// ParseDate accepts a bare date or an RFC3339 timestamp and returns the local day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return StartOfDay(t.In(time.Local)), nil
	}
	return time.Time{}, ErrInvalidDate
}

// Range is an inclusive span of calendar days. A zero Range matches everything.
type Range struct {
	From time.Time
	To   time.Time
}

func (r Range) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// ParseRange only filters when both ends are supplied.
func ParseRange(start, end string) (Range, error) {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return Range{}, nil
	}
	from, err := ParseDate(start)
	if err != nil {
		return Range{}, err
	}
	to, err := ParseDate(end)
	if err != nil {
		return Range{}, err
	}
	if to.Before(from) {
		return Range{}, errors.New("endDate must not be before startDate")
	}
	return Range{From: from, To: to}, nil
}

// MonthRange covers the whole calendar month containing t.
func MonthRange(t time.Time) Range {
	first := StartOfMonth(t)
	return Range{From: first, To: first.AddDate(0, 1, -1)}
}

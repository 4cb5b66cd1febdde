// Package datewindow resolves symbolic date ranges ("today", "weekend")
// into concrete half-open instant windows and provides the overlap
// predicate used to filter sale occurrences against a window.
package datewindow

import (
	"errors"
	"fmt"
	"time"
)

// Kind names a symbolic date range
type Kind string

// Supported range kinds
const (
	KindAny         Kind = "any"
	KindToday       Kind = "today"
	KindWeekend     Kind = "weekend"
	KindNextWeekend Kind = "next_weekend"
	KindCustom      Kind = "custom"
)

// dateLayout is the wire format for explicit bounds
const dateLayout = "2006-01-02"

// ErrInvalidRange reports unparseable or inverted explicit bounds
var ErrInvalidRange = errors.New("invalid date range")

// Window is a concrete [Start, End) instant interval derived from a
// date-range filter. Never persisted; computed once per request.
type Window struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Label   string    `json:"label"`
	Display string    `json:"display"`
}

// Resolve maps a range kind (plus explicit bounds for KindCustom) to a
// window, using now as the reference instant. Returns nil for KindAny.
//
// Weekend semantics: the upcoming Saturday 00:00 through the following
// Monday 00:00. If now already falls on Saturday or Sunday the window
// covers the current weekend, not the next one.
func Resolve(kind Kind, start, end string, now time.Time) (*Window, error) {
	switch kind {
	case "", KindAny:
		return nil, nil

	case KindToday:
		day := midnight(now)
		return &Window{
			Start:   day,
			End:     day.AddDate(0, 0, 1),
			Label:   string(KindToday),
			Display: "Today",
		}, nil

	case KindWeekend:
		sat := weekendStart(now)
		return &Window{
			Start:   sat,
			End:     sat.AddDate(0, 0, 2),
			Label:   string(KindWeekend),
			Display: "This Weekend",
		}, nil

	case KindNextWeekend:
		sat := weekendStart(now).AddDate(0, 0, 7)
		return &Window{
			Start:   sat,
			End:     sat.AddDate(0, 0, 2),
			Label:   string(KindNextWeekend),
			Display: "Next Weekend",
		}, nil

	case KindCustom:
		s, err := time.ParseInLocation(dateLayout, start, now.Location())
		if err != nil {
			return nil, fmt.Errorf("%w: start %q", ErrInvalidRange, start)
		}
		e, err := time.ParseInLocation(dateLayout, end, now.Location())
		if err != nil {
			return nil, fmt.Errorf("%w: end %q", ErrInvalidRange, end)
		}
		if e.Before(s) {
			return nil, fmt.Errorf("%w: end before start", ErrInvalidRange)
		}
		// the end date is inclusive on the wire; the window stays half-open
		// by pushing the bound to the following midnight
		return &Window{
			Start:   s,
			End:     e.AddDate(0, 0, 1),
			Label:   string(KindCustom),
			Display: start + " – " + end,
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown range %q", ErrInvalidRange, kind)
	}
}

// Overlaps reports whether the sale interval [saleStart, saleEnd]
// intersects w. A nil window matches everything. A zero saleEnd means
// the sale has no stated end and is treated as running to the end of
// its start day.
func Overlaps(saleStart, saleEnd time.Time, w *Window) bool {
	if w == nil {
		return true
	}
	if saleEnd.IsZero() {
		saleEnd = EndOfDay(saleStart)
	}
	return saleStart.Before(w.End) && !saleEnd.Before(w.Start)
}

// EndOfDay returns the last instant of t's day. Used as the implied end
// for sales that state no end time, so a Friday sale never leaks into a
// Saturday window.
func EndOfDay(t time.Time) time.Time {
	return midnight(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// midnight truncates t to the start of its day in its own location
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekendStart returns Saturday 00:00 of the weekend now belongs to:
// the upcoming Saturday on weekdays, the current one on Saturday, and
// the one that already started when now is Sunday.
func weekendStart(now time.Time) time.Time {
	day := midnight(now)
	switch wd := now.Weekday(); {
	case wd == time.Sunday:
		return day.AddDate(0, 0, -1)
	default:
		return day.AddDate(0, 0, int(time.Saturday-wd))
	}
}

// Package compose merges independently edited date and time parts into a
// single timestamp and sequences the open/edit/commit cycle of a picker.
package compose

import (
	"fmt"
	"time"

	"datetime-picker/internal/calendar"
)

// DatePart is the calendar half of a pick.
type DatePart struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// TimePart is the clock half of a pick. Hour 24 is accepted and means 0.
type TimePart struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func DatePartOf(t time.Time) DatePart {
	y, m, d := t.Date()
	return DatePart{Year: y, Month: m, Day: d}
}

func TimePartOf(t time.Time) TimePart {
	return TimePart{Hour: t.Hour(), Minute: t.Minute()}
}

func (d DatePart) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (p TimePart) String() string {
	n := p.normalized()
	return fmt.Sprintf("%02d:%02d", n.Hour, n.Minute)
}

func (p TimePart) normalized() TimePart {
	h := ((p.Hour % 24) + 24) % 24
	m := p.Minute
	if m < 0 {
		m = 0
	}
	if m > 59 {
		m = 59
	}
	return TimePart{Hour: h, Minute: m}
}

// MergeDatePart replaces year, month and day of working. The day is clamped
// to the target month; every clock field and the location are kept.
func MergeDatePart(working time.Time, d DatePart) time.Time {
	m := d.Month
	if m < time.January {
		m = time.January
	}
	if m > time.December {
		m = time.December
	}
	day := calendar.ClampDay(d.Year, m, d.Day)
	return time.Date(d.Year, m, day,
		working.Hour(), working.Minute(), working.Second(), working.Nanosecond(),
		working.Location())
}

// MergeTimePart replaces hour and minute of working, keeping the date,
// seconds, sub-second fields and location.
func MergeTimePart(working time.Time, p TimePart) time.Time {
	n := p.normalized()
	y, m, d := working.Date()
	return time.Date(y, m, d, n.Hour, n.Minute, working.Second(), working.Nanosecond(), working.Location())
}

// Commit returns the value emitted when a pick is confirmed, without the
// monotonic clock reading a working value seeded from time.Now carries.
func Commit(working time.Time) time.Time {
	return working.Round(0)
}

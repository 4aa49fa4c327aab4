package calendar

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// MinWeeks keeps every month at the same grid height.
const MinWeeks = 6

type Day struct {
	Date         time.Time `json:"date"`
	IsToday      bool      `json:"isToday"`
	IsSelected   bool      `json:"isSelected"`
	IsOutOfMonth bool      `json:"isOutOfMonth"`
}

// Week is seven consecutive days starting on the grid's week start.
type Week [7]Day

// Grid is a month view: at least MinWeeks weeks in chronological order.
type Grid struct {
	Month     time.Time    `json:"month"`
	WeekStart time.Weekday `json:"weekStart"`
	Weeks     []Week       `json:"weeks"`
}

// Build lays out the month containing ref.
//
// The walk starts at the week containing the first of the month and runs at
// least to the end of the week containing its last day; it keeps going until
// MinWeeks weeks exist. A zero selected marks no day as selected.
func Build(ref, selected time.Time, ws time.Weekday, today time.Time) Grid {
	ws = normalizeWeekday(ws)
	month := StartOfMonth(ref)
	first := StartOfWeek(month, ws)
	last := EndOfWeek(EndOfMonth(month), ws)

	g := Grid{Month: month, WeekStart: ws}
	cur := first
	for {
		var w Week
		for i := range w {
			w[i] = Day{
				Date:         cur,
				IsToday:      SameDay(cur, today),
				IsSelected:   !selected.IsZero() && SameDay(cur, selected),
				IsOutOfMonth: !SameMonth(cur, month),
			}
			cur = cur.AddDate(0, 0, 1)
		}
		g.Weeks = append(g.Weeks, w)
		if cur.After(last) && len(g.Weeks) >= MinWeeks {
			break
		}
	}
	return g
}

func (g Grid) First() time.Time {
	if len(g.Weeks) == 0 {
		return time.Time{}
	}
	return g.Weeks[0][0].Date
}

func (g Grid) Last() time.Time {
	if len(g.Weeks) == 0 {
		return time.Time{}
	}
	return g.Weeks[len(g.Weeks)-1][6].Date
}

// Days flattens the grid in chronological order.
func (g Grid) Days() []Day {
	out := make([]Day, 0, len(g.Weeks)*7)
	for _, w := range g.Weeks {
		out = append(out, w[:]...)
	}
	return out
}

func (g Grid) Selected() (Day, bool) {
	for _, w := range g.Weeks {
		for _, d := range w {
			if d.IsSelected {
				return d, true
			}
		}
	}
	return Day{}, false
}

// Find returns the (week, weekday column) cell holding date.
func (g Grid) Find(date time.Time) (row, col int, ok bool) {
	for r, w := range g.Weeks {
		for c, d := range w {
			if SameDay(d.Date, date) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

var weekdayShort = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// WeekdayHeaders returns short column labels starting at ws.
func WeekdayHeaders(ws time.Weekday) []string {
	ws = normalizeWeekday(ws)
	out := make([]string, 7)
	for i := range out {
		out[i] = weekdayShort[(int(ws)+i)%7]
	}
	return out
}

var ErrInvalidWeekStart = errors.New("invalid week start (expected 0-6 or a weekday name)")

// ParseWeekStart accepts 0..6 (0 = Sunday) or an English weekday name or
// prefix of at least three letters.
func ParseWeekStart(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, ErrInvalidWeekStart
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 6 {
			return 0, ErrInvalidWeekStart
		}
		return time.Weekday(n), nil
	}
	if len(s) < 3 {
		return 0, ErrInvalidWeekStart
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.HasPrefix(strings.ToLower(d.String()), s) {
			return d, nil
		}
	}
	return 0, ErrInvalidWeekStart
}

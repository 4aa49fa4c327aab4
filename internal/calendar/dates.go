package calendar

import "time"

// Civil strips t down to its calendar day, as UTC midnight. Location and
// clock fields of t are read in t's own location.
func Civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func DaysInMonth(y int, m time.Month) int {
	// Day 0 of next month is last day of this month.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func ClampDay(y int, m time.Month, d int) int {
	if d < 1 {
		return 1
	}
	max := DaysInMonth(y, m)
	if d > max {
		return max
	}
	return d
}

func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func EndOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, DaysInMonth(y, m), 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the civil day on or before t that falls on ws.
func StartOfWeek(t time.Time, ws time.Weekday) time.Time {
	c := Civil(t)
	back := (int(c.Weekday()) - int(normalizeWeekday(ws)) + 7) % 7
	return c.AddDate(0, 0, -back)
}

// EndOfWeek returns the last civil day of the week containing t.
func EndOfWeek(t time.Time, ws time.Weekday) time.Time {
	return StartOfWeek(t, ws).AddDate(0, 0, 6)
}

// AddMonths moves n months from t's month and lands on the first day, so
// month navigation never skips a short month.
func AddMonths(t time.Time, n int) time.Time {
	return StartOfMonth(t).AddDate(0, n, 0)
}

func normalizeWeekday(ws time.Weekday) time.Weekday {
	return time.Weekday(((int(ws) % 7) + 7) % 7)
}

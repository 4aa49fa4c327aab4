package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuild_February2023SundayStart(t *testing.T) {
	t.Parallel()

	g := Build(day(2023, 2, 14), day(2023, 2, 14), time.Sunday, day(2023, 2, 20))

	require.Len(t, g.Weeks, 6)
	assert.Equal(t, day(2023, 1, 29), g.First())
	assert.Equal(t, day(2023, 3, 11), g.Last())
	assert.False(t, g.First().After(day(2023, 1, 29)))
	assert.False(t, g.Last().Before(day(2023, 2, 28)))

	for _, w := range g.Weeks {
		assert.Equal(t, time.Sunday, w[0].Date.Weekday())
	}

	sel, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, day(2023, 2, 14), sel.Date)

	row, col, ok := g.Find(day(2023, 2, 20))
	require.True(t, ok)
	assert.True(t, g.Weeks[row][col].IsToday)
	assert.Equal(t, 3, row)
	assert.Equal(t, 1, col)
}

func TestBuild_InvariantsAcrossMonthsAndWeekStarts(t *testing.T) {
	t.Parallel()

	for y := 2020; y <= 2025; y++ {
		for m := time.January; m <= time.December; m++ {
			for ws := time.Sunday; ws <= time.Saturday; ws++ {
				ref := day(y, m, 15)
				g := Build(ref, ref, ws, day(2000, 1, 1))

				require.GreaterOrEqual(t, len(g.Weeks), MinWeeks)
				days := g.Days()
				require.Equal(t, 0, len(days)%7)
				require.False(t, g.First().After(StartOfMonth(ref)))
				require.False(t, g.Last().Before(EndOfMonth(ref)))

				selected := 0
				inMonth := 0
				for i, d := range days {
					if i > 0 {
						require.Equal(t, days[i-1].Date.AddDate(0, 0, 1), d.Date, "grid must be contiguous")
					}
					if i%7 == 0 {
						require.Equal(t, ws, d.Date.Weekday())
					}
					if d.IsSelected {
						selected++
					}
					if !d.IsOutOfMonth {
						inMonth++
					}
					require.False(t, d.IsToday)
				}
				require.Equal(t, 1, selected)
				require.Equal(t, DaysInMonth(y, m), inMonth)
			}
		}
	}
}

func TestBuild_ExactFourWeekMonthPadsToSix(t *testing.T) {
	t.Parallel()

	// February 2021 starts on a Monday and has 28 days.
	g := Build(day(2021, 2, 1), time.Time{}, time.Monday, day(2021, 2, 1))
	require.Len(t, g.Weeks, 6)
	assert.Equal(t, day(2021, 2, 1), g.First())
	assert.Equal(t, day(2021, 3, 14), g.Last())

	for _, d := range g.Weeks[4] {
		assert.True(t, d.IsOutOfMonth)
	}
	_, ok := g.Selected()
	assert.False(t, ok)
}

func TestBuild_SixWeekMonthIsNotExtended(t *testing.T) {
	t.Parallel()

	// July 2023 starts on a Saturday and spans six Sunday-first weeks.
	g := Build(day(2023, 7, 1), day(2023, 7, 31), time.Sunday, time.Time{})
	require.Len(t, g.Weeks, 6)
	assert.Equal(t, day(2023, 6, 25), g.First())
	assert.Equal(t, day(2023, 8, 5), g.Last())

	// Same month with Saturday-first weeks needs only five rows of its own.
	g = Build(day(2023, 7, 1), time.Time{}, time.Saturday, time.Time{})
	require.Len(t, g.Weeks, 6)
	assert.Equal(t, day(2023, 7, 1), g.First())
}

func TestBuild_SelectedOutsideGrid(t *testing.T) {
	t.Parallel()

	g := Build(day(2023, 2, 1), day(2024, 5, 5), time.Sunday, day(2023, 2, 1))
	_, ok := g.Selected()
	assert.False(t, ok)

	// Out-of-month padding days can still carry the selection.
	g = Build(day(2023, 2, 1), day(2023, 1, 30), time.Sunday, time.Time{})
	sel, ok := g.Selected()
	require.True(t, ok)
	assert.True(t, sel.IsOutOfMonth)
}

func TestBuild_UsesCivilDayOfNonUTCInputs(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+13", 13*3600)
	selected := time.Date(2023, 3, 1, 0, 30, 0, 0, loc) // still Feb 28 in UTC
	g := Build(time.Date(2023, 3, 10, 23, 0, 0, 0, loc), selected, time.Sunday, time.Time{})
	sel, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, day(2023, 3, 1), sel.Date)
}

func TestBuild_NormalizesWeekStart(t *testing.T) {
	t.Parallel()

	g := Build(day(2023, 2, 1), time.Time{}, time.Weekday(8), time.Time{})
	assert.Equal(t, time.Monday, g.WeekStart)
	assert.Equal(t, time.Monday, g.First().Weekday())
}

func TestWeekdayHeaders(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}, WeekdayHeaders(time.Sunday))
	assert.Equal(t, []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}, WeekdayHeaders(time.Monday))
	assert.Equal(t, []string{"Sa", "Su", "Mo", "Tu", "We", "Th", "Fr"}, WeekdayHeaders(time.Saturday))
}

func TestParseWeekStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    time.Weekday
		wantErr bool
	}{
		{in: "0", want: time.Sunday},
		{in: "1", want: time.Monday},
		{in: "6", want: time.Saturday},
		{in: "mon", want: time.Monday},
		{in: "Saturday", want: time.Saturday},
		{in: " thu ", want: time.Thursday},
		{in: "7", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "mo", wantErr: true},
		{in: "", wantErr: true},
		{in: "funday", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseWeekStart(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidWeekStart, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

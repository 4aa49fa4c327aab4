package cli

import (
	"strings"
	"time"

	"datetime-picker/internal/calendar"

	"github.com/spf13/cobra"
)

type gridDayView struct {
	Date         string `json:"date"`
	Day          int    `json:"day"`
	IsToday      bool   `json:"isToday"`
	IsSelected   bool   `json:"isSelected"`
	IsOutOfMonth bool   `json:"isOutOfMonth"`
}

// gridCellView locates a day in the grid: week row and weekday column.
type gridCellView struct {
	Date   string `json:"date"`
	Week   int    `json:"week"`
	Column int    `json:"column"`
}

type gridView struct {
	Month       string          `json:"month"`
	WeekStart   int             `json:"weekStart"`
	Headers     []string        `json:"headers"`
	First       string          `json:"first"`
	Last        string          `json:"last"`
	InMonthDays int             `json:"inMonthDays"`
	Selected    *gridCellView   `json:"selected,omitempty"`
	Weeks       [][]gridDayView `json:"weeks"`
}

func gridViewOf(g calendar.Grid) gridView {
	v := gridView{
		Month:     g.Month.Format("2006-01"),
		WeekStart: int(g.WeekStart),
		Headers:   calendar.WeekdayHeaders(g.WeekStart),
		First:     g.First().Format("2006-01-02"),
		Last:      g.Last().Format("2006-01-02"),
		Weeks:     make([][]gridDayView, 0, len(g.Weeks)),
	}
	for _, d := range g.Days() {
		if !d.IsOutOfMonth {
			v.InMonthDays++
		}
	}
	if sel, ok := g.Selected(); ok {
		if r, c, ok := g.Find(sel.Date); ok {
			v.Selected = &gridCellView{Date: sel.Date.Format("2006-01-02"), Week: r, Column: c}
		}
	}
	for _, w := range g.Weeks {
		row := make([]gridDayView, 0, len(w))
		for _, d := range w {
			row = append(row, gridDayView{
				Date:         d.Date.Format("2006-01-02"),
				Day:          d.Date.Day(),
				IsToday:      d.IsToday,
				IsSelected:   d.IsSelected,
				IsOutOfMonth: d.IsOutOfMonth,
			})
		}
		v.Weeks = append(v.Weeks, row)
	}
	return v
}

func newGridCmd(app *App) *cobra.Command {
	var (
		month     string
		selected  string
		today     string
		weekStart string
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the calendar grid for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			todayT := calendar.Civil(now)
			if strings.TrimSpace(today) != "" {
				t, err := parseValue(today, time.Local)
				if err != nil {
					return writeErr(cmd, flagError{flag: "--today", value: today, err: err})
				}
				todayT = calendar.Civil(t)
			}

			var selectedT time.Time
			if strings.TrimSpace(selected) != "" {
				t, err := parseValue(selected, time.Local)
				if err != nil {
					return writeErr(cmd, flagError{flag: "--selected", value: selected, err: err})
				}
				selectedT = calendar.Civil(t)
			}

			// The shown month: --month, else the selected day's month, else today's.
			ref := todayT
			if !selectedT.IsZero() {
				ref = selectedT
			}
			if strings.TrimSpace(month) != "" {
				m, err := parseMonth(month)
				if err != nil {
					return writeErr(cmd, flagError{flag: "--month", value: month, err: err})
				}
				ref = m
			}

			ws, err := resolveWeekStart(app, weekStart)
			if err != nil {
				return writeErr(cmd, err)
			}

			g := calendar.Build(ref, selectedT, ws, todayT)
			return writeOut(cmd, app, gridViewOf(g))
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM; default: selected or current month)")
	cmd.Flags().StringVar(&selected, "selected", "", "Selected date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&today, "today", "", "Override today's date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&weekStart, "week-start", "", "First weekday column (0-6 or name; default: env/config/Sunday)")

	return cmd
}

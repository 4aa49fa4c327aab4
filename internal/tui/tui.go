// Package tui is the interactive picker: a calendar grid with a clock dialog
// for the time of day, driven by keyboard and mouse.
package tui

import (
	"context"
	"errors"
	"io"
	"time"

	"datetime-picker/internal/compose"
	"datetime-picker/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

type Options struct {
	// Session is opened by Run; its committed/initial value seeds the picker.
	Session   *compose.Session
	WeekStart time.Weekday
	// Today defaults to the current local date.
	Today time.Time
	Title string

	Theme  string
	DarkBG string
	Glyphs string

	Log    logrus.FieldLogger
	Input  io.Reader
	Output io.Writer
}

type Result struct {
	Value   time.Time
	Outcome compose.Outcome
}

func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Session == nil {
		return Result{}, errors.New("tui: nil session")
	}
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}
	if opts.Today.IsZero() {
		opts.Today = time.Now()
	}

	applyColorProfilePreference()
	applyThemePreference(opts.Theme, opts.DarkBG)
	applyGlyphPreference(opts.Glyphs)

	m := newPickerModel(opts.Session, opts.WeekStart, opts.Today, opts.Title, opts.Log)

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	if _, err := tea.NewProgram(m, progOpts...).Run(); err != nil {
		return Result{}, err
	}
	return resultOf(opts.Session), nil
}

func resultOf(s *compose.Session) Result {
	res := Result{Outcome: s.Outcome()}
	if res.Outcome == compose.OutcomeCommitted {
		res.Value, _ = s.Committed()
	}
	return res
}

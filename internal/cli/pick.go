package cli

import (
	"os"
	"strings"
	"time"

	"datetime-picker/internal/compose"
	"datetime-picker/internal/format"
	"datetime-picker/internal/store"
	"datetime-picker/internal/tui"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type pickOptions struct {
	slot      string
	value     string
	weekStart string
}

func newPickCmd(app *App) *cobra.Command {
	var opts pickOptions

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a date and time interactively and store it in a slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.slot, "slot", "", "Slot to read and write (default: config defaultSlot or \"default\")")
	cmd.Flags().StringVar(&opts.value, "value", "", "Start from this value instead of the slot's last committed one")
	cmd.Flags().StringVar(&opts.weekStart, "week-start", "", "First weekday column (0-6 or name; default: env/config/Sunday)")

	return cmd
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runPick(cmd *cobra.Command, app *App, opts pickOptions) error {
	// The picker draws on stderr so stdout stays clean for the result.
	if !isTerminal(os.Stdin) || !isTerminal(os.Stderr) {
		return writeErr(cmd, errNotTerminal)
	}

	ws, err := resolveWeekStart(app, opts.weekStart)
	if err != nil {
		return writeErr(cmd, err)
	}
	slot := resolveSlot(opts.slot)
	st, err := openStore(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	ctx := cmd.Context()

	var sessOpts []compose.Option
	if strings.TrimSpace(opts.value) != "" {
		v, err := parseValue(opts.value, time.Local)
		if err != nil {
			return writeErr(cmd, flagError{flag: "--value", value: opts.value, err: err})
		}
		sessOpts = append(sessOpts, compose.WithInitial(v))
	} else {
		last, ok, err := st.LastCommitted(ctx, slot)
		if err != nil {
			return writeErr(cmd, err)
		}
		if ok {
			sessOpts = append(sessOpts, compose.WithCommitted(last.In(time.Local)))
		}
	}

	theme, glyphs := tuiPreferences(app)
	res, err := tui.Run(ctx, tui.Options{
		Session:   compose.NewSession(sessOpts...),
		WeekStart: ws,
		Title:     slot,
		Theme:     theme,
		DarkBG:    app.Env.TUIDarkBG,
		Glyphs:    glyphs,
		Log:       app.logger(),
		Input:     os.Stdin,
		Output:    os.Stderr,
	})
	if err != nil {
		return writeErr(cmd, err)
	}
	if res.Outcome != compose.OutcomeCommitted {
		app.logger().WithField("slot", slot).Debug("pick cancelled")
		return format.Write(cmd.OutOrStdout(), format.Envelope{Meta: map[string]any{"cancelled": true, "slot": slot}}, app.Format, app.PrettyJSON)
	}

	p, err := st.SaveCommit(ctx, slot, res.Value, "tui")
	if err != nil {
		return writeErr(cmd, err)
	}
	app.logger().WithFields(logrus.Fields{"slot": slot, "id": p.ID}).Debug("pick stored")

	view := viewOf(slot, res.Value)
	view.ID = p.ID
	return writeOut(cmd, app, view)
}

// tuiPreferences applies env > config file for the picker's theme and glyphs.
func tuiPreferences(app *App) (theme, glyphs string) {
	theme, glyphs = app.Env.TUITheme, app.Env.TUIGlyphs
	cfg, err := store.LoadConfig()
	if err != nil || cfg.TUI == nil {
		return theme, glyphs
	}
	return envOr(theme, cfg.TUI.Theme), envOr(glyphs, cfg.TUI.Glyphs)
}

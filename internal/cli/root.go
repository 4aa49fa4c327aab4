package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"datetime-picker/internal/calendar"
	"datetime-picker/internal/config"
	"datetime-picker/internal/format"
	"datetime-picker/internal/logging"
	"datetime-picker/internal/model"
	"datetime-picker/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string

	Env config.Env
	Log *logrus.Logger

	envErr    error
	logCloser io.Closer
}

// Execute runs the command tree on os.Args and closes the debug log, which
// cobra's post-run hooks skip when a command fails.
func Execute() error {
	cmd, app := newRootCmd()
	return execute(cmd, app)
}

func execute(cmd *cobra.Command, app *App) error {
	defer func() { _ = app.closeLog() }()
	return cmd.Execute()
}

func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *App) {
	app := &App{}
	app.Env, app.envErr = config.Load(config.DefaultEnvFiles)

	cmd := &cobra.Command{
		Use:          "dtpick",
		Short:        "Date/time picker: calendar grid, clock dial, persisted picks",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Pick interactively (same as: dtpick pick)
  dtpick

  # Pick into a named slot
  dtpick pick --slot due

  # Print the February 2023 grid with weeks starting on Monday
  dtpick grid --month 2023-02 --week-start mon

  # Which hour is under a pointer at the top of the clock?
  dtpick dial clock --mode hour --x 0.5 --y 0.05
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive picker.
			if len(args) == 0 {
				return runPick(cmd, app, pickOptions{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if app.envErr != nil {
			return writeErr(cmd, fmt.Errorf("read environment: %w", app.envErr))
		}
		if _, err := format.Normalize(app.Format); err != nil {
			return writeErr(cmd, err)
		}
		l, closer, err := logging.New(app.Env.DebugLog, logging.ParseLevel(app.Env.LogLevel))
		if err != nil {
			return writeErr(cmd, fmt.Errorf("open debug log: %w", err))
		}
		app.Log, app.logCloser = l, closer
		app.Log.WithFields(logrus.Fields{"cmd": cmd.CommandPath(), "args": args}).Debug("command start")
		return nil
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.closeLog()
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", app.Env.Dir, "Path to store dir (default: <config dir>/store)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr(app.Env.Format, format.JSON), "Output format (json|edn)")

	cmd.AddCommand(newPickCmd(app))
	cmd.AddCommand(newGridCmd(app))
	cmd.AddCommand(newDialCmd(app))
	cmd.AddCommand(newComposeCmd(app))
	cmd.AddCommand(newHistoryCmd(app))
	cmd.AddCommand(newSlotsCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd, app
}

// closeLog closes the debug log once; later calls are no-ops.
func (app *App) closeLog() error {
	if app.logCloser == nil {
		return nil
	}
	c := app.logCloser
	app.logCloser = nil
	return c.Close()
}

func openStore(app *App) (store.Store, error) {
	dir := strings.TrimSpace(app.Dir)
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return store.Store{}, err
		}
		dir = d
		app.Dir = dir
	}
	return store.Store{Dir: dir, Log: app.logger()}, nil
}

func (app *App) logger() logrus.FieldLogger {
	if app.Log == nil {
		return logging.Discard()
	}
	return app.Log
}

// resolveWeekStart applies flag > DTPICK_WEEK_START > config file > Sunday.
func resolveWeekStart(app *App, flagVal string) (time.Weekday, error) {
	if v := strings.TrimSpace(flagVal); v != "" {
		ws, err := calendar.ParseWeekStart(v)
		if err != nil {
			return 0, flagError{flag: "--week-start", value: v, err: err}
		}
		return ws, nil
	}
	if v := strings.TrimSpace(app.Env.WeekStart); v != "" {
		ws, err := calendar.ParseWeekStart(v)
		if err != nil {
			return 0, fmt.Errorf("DTPICK_WEEK_START=%q: %w", v, err)
		}
		return ws, nil
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return 0, err
	}
	if cfg.WeekStart != nil {
		return time.Weekday(((*cfg.WeekStart % 7) + 7) % 7), nil
	}
	return time.Sunday, nil
}

// resolveSlot applies flag > config defaultSlot > model.DefaultSlot.
func resolveSlot(flagVal string) string {
	if v := strings.TrimSpace(flagVal); v != "" {
		return v
	}
	if cfg, err := store.LoadConfig(); err == nil && strings.TrimSpace(cfg.DefaultSlot) != "" {
		return strings.TrimSpace(cfg.DefaultSlot)
	}
	return model.DefaultSlot
}

func envOr(v, d string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, data any) error {
	return format.Write(cmd.OutOrStdout(), format.Envelope{Data: data}, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

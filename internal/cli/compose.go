package cli

import (
	"strings"
	"time"

	"datetime-picker/internal/compose"

	"github.com/spf13/cobra"
)

func newComposeCmd(app *App) *cobra.Command {
	var (
		value  string
		date   string
		clock  string
		slot   string
		commit bool
	)

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Merge a date and/or time into a value without the picker",
		Example: strings.TrimSpace(`
  dtpick compose --value 2023-05-01 --time 14:30 --date 2023-06-02
  dtpick compose --slot due --time 09:00 --commit
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			slotName := resolveSlot(slot)

			var sessOpts []compose.Option
			if strings.TrimSpace(value) != "" {
				v, err := parseValue(value, time.Local)
				if err != nil {
					return writeErr(cmd, flagError{flag: "--value", value: value, err: err})
				}
				sessOpts = append(sessOpts, compose.WithInitial(v))
			} else {
				st, err := openStore(app)
				if err != nil {
					return writeErr(cmd, err)
				}
				last, ok, err := st.LastCommitted(ctx, slotName)
				if err != nil {
					return writeErr(cmd, err)
				}
				if ok {
					sessOpts = append(sessOpts, compose.WithCommitted(last.In(time.Local)))
				}
			}

			var (
				dp      compose.DatePart
				tp      compose.TimePart
				hasDate = strings.TrimSpace(date) != ""
				hasTime = strings.TrimSpace(clock) != ""
			)
			if hasDate {
				d, err := parseDatePart(date)
				if err != nil {
					return writeErr(cmd, flagError{flag: "--date", value: date, err: err})
				}
				dp = d
			}
			if hasTime {
				p, err := parseTimePart(clock)
				if err != nil {
					return writeErr(cmd, flagError{flag: "--time", value: clock, err: err})
				}
				tp = p
			}

			sess := compose.NewSession(sessOpts...)
			sess.Open()
			// The merged result does not depend on the order of the two parts.
			if hasTime {
				if _, err := sess.PickTime(tp); err != nil {
					return writeErr(cmd, err)
				}
			}
			if hasDate {
				if _, err := sess.PickDate(dp); err != nil {
					return writeErr(cmd, err)
				}
			}
			v, err := sess.Commit()
			if err != nil {
				return writeErr(cmd, err)
			}

			view := viewOf(slotName, v)
			if commit {
				st, err := openStore(app)
				if err != nil {
					return writeErr(cmd, err)
				}
				p, err := st.SaveCommit(ctx, slotName, v, "compose")
				if err != nil {
					return writeErr(cmd, err)
				}
				view.ID = p.ID
			}
			return writeOut(cmd, app, view)
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Starting value (default: slot's last committed value, else now)")
	cmd.Flags().StringVar(&date, "date", "", "Date part to apply (YYYY-MM-DD; day clamped to the month)")
	cmd.Flags().StringVar(&clock, "time", "", "Time part to apply (HH:MM; 24:00 is midnight)")
	cmd.Flags().StringVar(&slot, "slot", "", "Slot to read (and with --commit, write)")
	cmd.Flags().BoolVar(&commit, "commit", false, "Store the result as the slot's committed value")

	return cmd
}

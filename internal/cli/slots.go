package cli

import (
	"time"

	"github.com/spf13/cobra"
)

type slotView struct {
	valueView
	UpdatedAt string `json:"updatedAt"`
}

func newSlotsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots [slot]",
		Short: "List slots and their last committed values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if len(args) == 1 {
				v, ok, err := st.LastCommitted(cmd.Context(), args[0])
				if err != nil {
					return writeErr(cmd, err)
				}
				if !ok {
					return writeErr(cmd, errNotFound("slot", args[0]))
				}
				return writeOut(cmd, app, viewOf(args[0], v))
			}

			slots, err := st.Slots(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			out := make([]slotView, 0, len(slots))
			for _, s := range slots {
				out = append(out, slotView{
					valueView: viewOf(s.Name, s.Value),
					UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
				})
			}
			return writeOut(cmd, app, out)
		},
	}
	return cmd
}

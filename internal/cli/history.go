package cli

import (
	"datetime-picker/internal/model"

	"github.com/spf13/cobra"
)

type pickView struct {
	valueView
	CommittedAt string `json:"committedAt"`
	Source      string `json:"source,omitempty"`
}

func newHistoryCmd(app *App) *cobra.Command {
	var (
		slot  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List committed picks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			picks, err := st.History(cmd.Context(), slot, limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			out := make([]pickView, 0, len(picks))
			for _, p := range picks {
				out = append(out, pickViewOf(p))
			}
			return writeOut(cmd, app, out)
		},
	}

	cmd.Flags().StringVar(&slot, "slot", "", "Only this slot (default: all slots)")
	cmd.Flags().IntVar(&limit, "limit", 20, "Max picks to list (0 = all)")

	return cmd
}

func pickViewOf(p model.Pick) pickView {
	v := viewOf(p.Slot, p.Value)
	v.ID = p.ID
	return pickView{
		valueView:   v,
		CommittedAt: p.CommittedAt.Format("2006-01-02T15:04:05.000Z07:00"),
		Source:      p.Source,
	}
}

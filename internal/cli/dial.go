package cli

import (
	"errors"
	"fmt"
	"strings"

	"datetime-picker/internal/dial"

	"github.com/spf13/cobra"
)

type rangeFlags struct {
	from, to, shift, every int
}

func (f *rangeFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.from, "from", 0, "First value on the dial")
	cmd.Flags().IntVar(&f.to, "to", 0, "Last value on the dial (inclusive)")
	cmd.Flags().IntVar(&f.shift, "shift", 0, "Rotate the ring by whole steps")
	cmd.Flags().IntVar(&f.every, "every", 1, "Major tick interval")
	_ = cmd.MarkFlagRequired("to")
}

func (f rangeFlags) build(cmd *cobra.Command) (dial.Range, error) {
	r, err := dial.NewRange(f.from, f.to, f.shift, f.every)
	if err != nil {
		return dial.Range{}, writeErr(cmd, err)
	}
	return r, nil
}

func newDialCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dial",
		Short: "Circular selector geometry (resolve, place, ticks, clock)",
	}
	cmd.AddCommand(newDialResolveCmd(app))
	cmd.AddCommand(newDialPlaceCmd(app))
	cmd.AddCommand(newDialTicksCmd(app))
	cmd.AddCommand(newDialClockCmd(app))
	return cmd
}

func newDialResolveCmd(app *App) *cobra.Command {
	var (
		rf   rangeFlags
		x, y float64
	)
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a normalized pointer position to the nearest dial value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rf.build(cmd)
			if err != nil {
				return err
			}
			p := dial.Pointer{X: x, Y: y}
			v, err := dial.Resolve(r, p)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"value":    v,
				"angle":    dial.AngleFromCoordinate(0.5-x, 0.5-y),
				"rotation": r.Rotation(v),
				"distance": p.Distance(),
			})
		},
	}
	rf.bind(cmd)
	cmd.Flags().Float64Var(&x, "x", 0.5, "Pointer x in [0,1], left to right")
	cmd.Flags().Float64Var(&y, "y", 0.5, "Pointer y in [0,1], top to bottom")
	return cmd
}

func newDialPlaceCmd(app *App) *cobra.Command {
	var (
		rf     rangeFlags
		value  int
		radius float64
	)
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Print where a value sits on the dial (normalized x/y)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rf.build(cmd)
			if err != nil {
				return err
			}
			if !r.Contains(value) {
				return writeErr(cmd, errNotFound("dial value", fmt.Sprint(value)))
			}
			rot := r.Rotation(value)
			p := dial.Place(rot, radius)
			return writeOut(cmd, app, map[string]any{
				"value":    value,
				"rotation": rot,
				"x":        p.X,
				"y":        p.Y,
			})
		},
	}
	rf.bind(cmd)
	cmd.Flags().IntVar(&value, "value", 0, "Value to place")
	cmd.Flags().Float64Var(&radius, "radius", 0.5, "Distance from the centre (0.5 = edge)")
	return cmd
}

func newDialTicksCmd(app *App) *cobra.Command {
	var rf rangeFlags
	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "List every value with its rotation and major flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rf.build(cmd)
			if err != nil {
				return err
			}
			ticks, err := dial.Ticks(r)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, ticks)
		},
	}
	rf.bind(cmd)
	return cmd
}

func newDialClockCmd(app *App) *cobra.Command {
	var (
		mode string
		x, y float64
	)
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Resolve a pointer on the clock face to an hour or minute",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := dial.Pointer{X: x, Y: y}
			switch strings.ToLower(strings.TrimSpace(mode)) {
			case "hour", "hours", "h":
				hour, ring := dial.ResolveHour(p)
				_, v := dial.HourValue(hour)
				return writeOut(cmd, app, map[string]any{
					"mode":  "hour",
					"hour":  hour,
					"ring":  ring.String(),
					"value": v,
				})
			case "minute", "minutes", "m":
				return writeOut(cmd, app, map[string]any{
					"mode":   "minute",
					"minute": dial.ResolveMinute(p),
				})
			default:
				return writeErr(cmd, flagError{flag: "--mode", value: mode, err: errors.New("expected hour or minute")})
			}
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "hour", "Which hand to resolve (hour|minute)")
	cmd.Flags().Float64Var(&x, "x", 0.5, "Pointer x in [0,1], left to right")
	cmd.Flags().Float64Var(&y, "y", 0.5, "Pointer y in [0,1], top to bottom")
	return cmd
}

package cli

import (
	"fmt"
	"strings"

	"datetime-picker/internal/calendar"
	"datetime-picker/internal/store"

	"github.com/spf13/cobra"
)

var configKeys = []string{"week-start", "theme", "glyphs", "default-slot"}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the global config file",
	}
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigSetCmd(app))
	cmd.AddCommand(newConfigUnsetCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the config file and the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := store.ConfigPath()
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			ws, err := resolveWeekStart(app, "")
			if err != nil {
				return writeErr(cmd, err)
			}
			theme, glyphs := tuiPreferences(app)
			return writeOut(cmd, app, map[string]any{
				"path":   path,
				"config": cfg,
				"effective": map[string]any{
					"weekStart":   int(ws),
					"weekStartOn": ws.String(),
					"defaultSlot": resolveSlot(""),
					"theme":       envOr(theme, "auto"),
					"glyphs":      envOr(glyphs, "unicode"),
				},
			})
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config key (" + strings.Join(configKeys, ", ") + ")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(strings.TrimSpace(args[0]))
			val := strings.TrimSpace(args[1])

			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			switch key {
			case "week-start":
				ws, err := calendar.ParseWeekStart(val)
				if err != nil {
					return writeErr(cmd, err)
				}
				n := int(ws)
				cfg.WeekStart = &n
			case "theme":
				v := strings.ToLower(val)
				if v != "auto" && v != "light" && v != "dark" {
					return writeErr(cmd, fmt.Errorf("invalid theme %q (expected auto, light or dark)", val))
				}
				tuiConfig(cfg).Theme = v
			case "glyphs":
				v := strings.ToLower(val)
				if v != "unicode" && v != "ascii" {
					return writeErr(cmd, fmt.Errorf("invalid glyphs %q (expected unicode or ascii)", val))
				}
				tuiConfig(cfg).Glyphs = v
			case "default-slot":
				if val == "" {
					return writeErr(cmd, fmt.Errorf("default-slot must not be empty"))
				}
				cfg.DefaultSlot = val
			default:
				return writeErr(cmd, errNotFound("config key", key))
			}
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			app.logger().WithField("key", key).Debug("config updated")
			return writeOut(cmd, app, cfg)
		},
	}
}

func newConfigUnsetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a config key so env or defaults apply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(strings.TrimSpace(args[0]))
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			switch key {
			case "week-start":
				cfg.WeekStart = nil
			case "theme":
				if cfg.TUI != nil {
					cfg.TUI.Theme = ""
				}
			case "glyphs":
				if cfg.TUI != nil {
					cfg.TUI.Glyphs = ""
				}
			case "default-slot":
				cfg.DefaultSlot = ""
			default:
				return writeErr(cmd, errNotFound("config key", key))
			}
			if cfg.TUI != nil && *cfg.TUI == (store.TUIConfig{}) {
				cfg.TUI = nil
			}
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, cfg)
		},
	}
}

func tuiConfig(cfg *store.GlobalConfig) *store.TUIConfig {
	if cfg.TUI == nil {
		cfg.TUI = &store.TUIConfig{}
	}
	return cfg.TUI
}

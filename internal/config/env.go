// Package config reads process configuration from the environment.
package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFiles are loaded (when present) before the environment is parsed.
// Variables already set in the process win over the files.
var DefaultEnvFiles = []string{".env", ".env.local"}

// Env is the DTPICK_* environment.
type Env struct {
	Dir       string `env:"DTPICK_DIR"`
	ConfigDir string `env:"DTPICK_CONFIG_DIR"`
	Format    string `env:"DTPICK_FORMAT" envDefault:"json"`

	// WeekStart accepts 0..6 or a weekday name; parsed by the caller.
	WeekStart string `env:"DTPICK_WEEK_START"`

	TUITheme  string `env:"DTPICK_TUI_THEME"`
	TUIDarkBG string `env:"DTPICK_TUI_DARKBG"`
	TUIGlyphs string `env:"DTPICK_TUI_GLYPHS"`

	DebugLog string `env:"DTPICK_DEBUG_LOG"`
	LogLevel string `env:"DTPICK_LOG_LEVEL" envDefault:"debug"`
}

// LoadEnvFiles loads the env files that exist and returns how many were loaded.
func LoadEnvFiles(files []string) (int, error) {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if st, err := os.Stat(f); err == nil && !st.IsDir() {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

// Load reads the env files, then parses the environment.
func Load(files []string) (Env, error) {
	var e Env
	if _, err := LoadEnvFiles(files); err != nil {
		return e, err
	}
	if err := env.Parse(&e); err != nil {
		return e, err
	}
	return e, nil
}

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
)

func TestLoadConfig_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("DTPICK_CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.WeekStart != nil || cfg.TUI != nil || cfg.DefaultSlot != "" {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestSaveConfig_RoundTripAndBackup(t *testing.T) {
	t.Setenv("DTPICK_CONFIG_DIR", t.TempDir())

	ws := 1
	if err := SaveConfig(&GlobalConfig{WeekStart: &ws}); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.WeekStart == nil || *cfg.WeekStart != 1 {
		t.Fatalf("expected weekStart=1, got %+v", cfg.WeekStart)
	}

	cfg.TUI = &TUIConfig{Theme: "dark", Glyphs: "ascii"}
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig(second): %v", err)
	}

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath: %v", err)
	}
	bak, err := os.ReadFile(path + ".bak")
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	var prev GlobalConfig
	if err := json.Unmarshal(bak, &prev); err != nil {
		t.Fatalf("backup unparseable: %v", err)
	}
	if prev.TUI != nil {
		t.Fatalf("expected backup to hold the previous config, got %+v", prev.TUI)
	}
}

func TestLoadConfig_CorruptFileErrors(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DTPICK_CONFIG_DIR", dir)
	path, _ := ConfigPath()
	if err := os.WriteFile(path, []byte("{nope"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestSaveConfig_ConcurrentWriters_DoesNotCorruptConfig(t *testing.T) {
	cfgDir := t.TempDir()
	t.Setenv("DTPICK_CONFIG_DIR", cfgDir)

	if err := SaveConfig(&GlobalConfig{DefaultSlot: "seed"}); err != nil {
		t.Fatalf("SaveConfig(seed): %v", err)
	}

	const n = 64
	errCh := make(chan error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			cfg, err := LoadConfig()
			if err != nil {
				errCh <- err
				return
			}
			ws := i % 7
			cfg.WeekStart = &ws
			cfg.DefaultSlot = fmt.Sprintf("slot-%d", i)
			if err := SaveConfig(cfg); err != nil {
				errCh <- err
			}
		}(i)
	}

	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Errorf("concurrent SaveConfig: %v", err)
	}
	if t.Failed() {
		return
	}

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config.json: %v", err)
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		t.Fatalf("config.json corrupted/unparseable: %v\nraw:\n%s", err, string(raw))
	}

	ents, err := os.ReadDir(cfgDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range ents {
		name := e.Name()
		if strings.HasPrefix(name, "config.json.") && strings.HasSuffix(name, ".tmp") {
			t.Fatalf("leftover temp file: %s", name)
		}
	}
}

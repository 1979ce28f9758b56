package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestEmbeddedDefaultMatchesDefaultConfig(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default differs:\n got %+v\nwant %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "preview:\n  speed: 2.5\nserve:\n  idle_timeout: 90s\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Preview.Speed != 2.5 {
		t.Errorf("speed: got %g, expected 2.5", cfg.Preview.Speed)
	}
	if cfg.Serve.IdleTimeout != 90*time.Second {
		t.Errorf("idle_timeout: got %s, expected 1m30s", cfg.Serve.IdleTimeout)
	}
	// Untouched fields keep their defaults.
	if cfg.Preview.TickRate != DefaultConfig().Preview.TickRate {
		t.Errorf("tick_rate: got %d, expected default", cfg.Preview.TickRate)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "preview: [", "failed to parse"},
		{"bad type", "preview:\n  tick_rate: fast\n", "failed to parse"},
		{"zero tick rate", "preview:\n  tick_rate: 0\n", "tick_rate"},
		{"negative speed", "preview:\n  speed: -1\n", "speed"},
		{"bad log level", "log:\n  level: loud\n", "log.level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			writeFile(t, path, tc.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing custom path")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", FileName), "preview:\n  tick_rate: 12\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Preview.TickRate != 12 {
		t.Errorf("local config: got tick_rate %d, expected 12", cfg.Preview.TickRate)
	}

	writeFile(t, filepath.Join(home, ".sprites", "config.yaml"), "preview:\n  tick_rate: 24\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Preview.TickRate != 24 {
		t.Errorf("user config: got tick_rate %d, expected 24", cfg.Preview.TickRate)
	}

	// An invalid user config is skipped in favor of the next location.
	writeFile(t, filepath.Join(home, ".sprites", "config.yaml"), "preview:\n  tick_rate: -3\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Preview.TickRate != 12 {
		t.Errorf("fallback: got tick_rate %d, expected 12", cfg.Preview.TickRate)
	}
}

func TestLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "debug"
	lvl, err := cfg.LogLevel()
	if err != nil {
		t.Fatalf("LogLevel: %v", err)
	}
	if lvl != log.DebugLevel {
		t.Errorf("got %v, expected debug", lvl)
	}
}

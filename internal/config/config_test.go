package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/connectias/warden/internal/capability"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rates.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultRateConfig(t *testing.T) {
	cfg := DefaultRateConfig()

	for _, class := range []string{capability.ClassRead, capability.ClassWrite, capability.ClassCritical} {
		w, ok := cfg.PerClass[class]
		if !ok {
			t.Fatalf("missing class %s", class)
		}
		if w.Length != DefaultWindowSeconds*time.Second || w.Ceiling != DefaultCeiling {
			t.Fatalf("class %s: unexpected window %+v", class, w)
		}
	}
}

func TestLoadRateConfig_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"classes": {
			"critical": {"window_seconds": 30, "ceiling": 5}
		}
	}`)

	cfg, err := LoadRateConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	crit := cfg.PerClass[capability.ClassCritical]
	if crit.Length != 30*time.Second || crit.Ceiling != 5 {
		t.Fatalf("critical window not applied: %+v", crit)
	}
	// Unmentioned classes keep the defaults.
	read := cfg.PerClass[capability.ClassRead]
	if read.Ceiling != DefaultCeiling {
		t.Fatalf("read class should keep defaults, got %+v", read)
	}
}

func TestLoadRateConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown class", `{"classes": {"admin": {"window_seconds": 30, "ceiling": 5}}}`},
		{"missing ceiling", `{"classes": {"read": {"window_seconds": 30}}}`},
		{"zero window", `{"classes": {"read": {"window_seconds": 0, "ceiling": 5}}}`},
		{"negative ceiling", `{"classes": {"read": {"window_seconds": 30, "ceiling": -1}}}`},
		{"missing classes key", `{}`},
		{"stray key", `{"classes": {}, "extra": true}`},
		{"not json", `window=30`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := LoadRateConfig(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadRateConfig_MissingFile(t *testing.T) {
	if _, err := LoadRateConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

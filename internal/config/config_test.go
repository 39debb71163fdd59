package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Window.Width != 540 || cfg.Window.Height != 540 {
		t.Errorf("Expected 540x540 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Pong" {
		t.Errorf("Expected title 'Pong', got '%s'", cfg.Window.Title)
	}
	if cfg.TPS != 60 {
		t.Errorf("Expected 60 TPS, got %d", cfg.TPS)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `{"window": {"title": "Pong!"}, "tps": 30}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Window.Title != "Pong!" {
		t.Errorf("Expected title 'Pong!', got '%s'", cfg.Window.Title)
	}
	if cfg.TPS != 30 {
		t.Errorf("Expected 30 TPS, got %d", cfg.TPS)
	}
	if cfg.Window.Width != 540 {
		t.Errorf("Expected default width 540 to survive, got %d", cfg.Window.Width)
	}
	if cfg.Fonts.ButtonSize != 25 {
		t.Errorf("Expected default button size 25 to survive, got %v", cfg.Fonts.ButtonSize)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantInvalid bool
	}{
		{"malformed json", `{"window": `, false},
		{"zero width", `{"window": {"width": 0}}`, true},
		{"negative tps", `{"tps": -1}`, true},
		{"zero font", `{"fonts": {"score_size": 0}}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.wantInvalid {
				t.Errorf("Expected errors.Is(err, ErrInvalidConfig) = %v, got %v (%v)", tt.wantInvalid, got, err)
			}
		})
	}
}

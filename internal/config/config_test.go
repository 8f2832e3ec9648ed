package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Orbit.BaseRadius != 40 || cfg.Orbit.Step != 5 {
		t.Errorf("expected radius 40 step 5, got %v step %v", cfg.Orbit.BaseRadius, cfg.Orbit.Step)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults for empty path")
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("orbit:\n  baseRadius: 30\n  ringSamples: 12\nbannerSeconds: 2\n")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Orbit.BaseRadius != 30 {
		t.Errorf("expected base radius 30, got %v", cfg.Orbit.BaseRadius)
	}
	if cfg.Orbit.Step != 5 {
		t.Errorf("expected step default 5 to survive overlay, got %v", cfg.Orbit.Step)
	}
	if cfg.Orbit.RingSamples != MinRingSamples {
		t.Errorf("expected ring samples raised to %d, got %d", MinRingSamples, cfg.Orbit.RingSamples)
	}
	if cfg.Banner != 2 {
		t.Errorf("expected banner 2s, got %v", cfg.Banner)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"negative step", "orbit:\n  step: -1\n", "step"},
		{"zero step", "orbit:\n  step: 0\n", "orbit step must be positive"},
		{"zero radius", "orbit:\n  baseRadius: -2\n", "base radius"},
		{"tiny sprite", "shader:\n  spriteSize: 2\n", "sprite size"},
		{"zero moon radius", "orbit:\n  moonRadius: 0\n", "moon radius"},
		{"zero banner", "bannerSeconds: 0\n", "banner duration"},
		{"negative banner", "bannerSeconds: -1\n", "banner duration"},
		{"bad yaml", "orbit: [\n", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0600); err != nil {
				t.Fatalf("write fixture: %v", err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

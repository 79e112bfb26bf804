package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Galaxy.ArmCount < 1 {
		t.Errorf("default arm_count = %d, want >= 1", cfg.Galaxy.ArmCount)
	}
	if cfg.Galaxy.Radius <= 0 {
		t.Errorf("default radius = %g, want > 0", cfg.Galaxy.Radius)
	}
	if cfg.Derived.MaxDT32 <= 0 {
		t.Errorf("derived MaxDT32 = %g, want > 0", cfg.Derived.MaxDT32)
	}
	if len(cfg.Render.CoreColor) != 3 || len(cfg.Render.CloudTint) != 3 {
		t.Error("derived color triplets missing")
	}
}

func TestLoadUserOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("galaxy:\n  arm_count: 5\n  radius: 20.0\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Galaxy.ArmCount != 5 {
		t.Errorf("arm_count = %d, want 5", cfg.Galaxy.ArmCount)
	}
	if cfg.Galaxy.Radius != 20 {
		t.Errorf("radius = %g, want 20", cfg.Galaxy.Radius)
	}
	// Fields absent from the user file keep their defaults.
	if cfg.Galaxy.StarCount == 0 {
		t.Error("star_count lost its default")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero arm count", "galaxy:\n  arm_count: 0\n"},
		{"negative radius", "galaxy:\n  radius: -3\n"},
		{"negative star count", "galaxy:\n  star_count: -1\n"},
		{"zero max_dt", "physics:\n  max_dt: 0\n"},
		{"negative randomness", "galaxy:\n  randomness: -0.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

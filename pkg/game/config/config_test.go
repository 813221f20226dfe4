package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
	if cfg.ViewportWidth() != 276 || cfg.ViewportHeight() != 156 {
		t.Errorf("viewport = %gx%g, want 276x156", cfg.ViewportWidth(), cfg.ViewportHeight())
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load(missing) error = %v", err)
	}
	if cfg.InitialZoom != 5.5 {
		t.Errorf("InitialZoom = %g, want 5.5", cfg.InitialZoom)
	}
}

func TestLoad_OverridesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minimap.json")
	body := `{"initial_zoom": 2, "renderer": "tui", "key_bindings": {"m": "toggle_minimap"}, "sim": {"seed": 7}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.InitialZoom != 2 || cfg.Renderer != "tui" || cfg.Sim.Seed != 7 {
		t.Errorf("cfg = %+v, want zoom 2, renderer tui, seed 7", cfg)
	}
	if cfg.PanelWidth != 280 {
		t.Errorf("PanelWidth = %g, want default 280", cfg.PanelWidth)
	}
	if cfg.KeyBindings["m"] != "toggle_minimap" {
		t.Errorf("KeyBindings = %v", cfg.KeyBindings)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad json", `{`, "parse config"},
		{"bad renderer", `{"renderer": "sdl"}`, "unknown renderer"},
		{"bad zoom step", `{"zoom_step": 1}`, "zoom_step"},
		{"bad alpha", `{"context_alpha": 2}`, "context_alpha"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.json")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvPath, "/from/env.json")
	if got := ResolvePath("flag.json"); got != "flag.json" {
		t.Errorf("ResolvePath(flag) = %q", got)
	}
	if got := ResolvePath(""); got != "/from/env.json" {
		t.Errorf("ResolvePath(\"\") = %q, want env value", got)
	}
}

func TestCurrentSet(t *testing.T) {
	orig := Current()
	defer Set(orig)
	c := Default()
	c.InitialZoom = 3
	Set(c)
	if Current().InitialZoom != 3 {
		t.Errorf("Current().InitialZoom = %g, want 3", Current().InitialZoom)
	}
}

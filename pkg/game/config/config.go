// Package config holds the overlay's startup settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"
)

// EnvPath names the environment variable that points at a config file
const EnvPath = "MINIMAP_CONFIG"

// Config holds all overlay configuration
type Config struct {
	PanelWidth    float64           `json:"panel_width"`
	PanelHeight   float64           `json:"panel_height"`
	PanelMargin   float64           `json:"panel_margin"`
	ViewportInset float64           `json:"viewport_inset"`
	PlayerDotSize float64           `json:"player_dot_size"`
	InitialZoom   float64           `json:"initial_zoom"`
	ZoomStep      float64           `json:"zoom_step"`
	ContextAlpha  float64           `json:"context_alpha"`
	StartVisible  bool              `json:"start_visible"`
	Debug         bool              `json:"debug"`
	SceneTextMs   int               `json:"scene_text_interval_ms"`
	DebugLogMs    int               `json:"debug_log_interval_ms"`
	Renderer      string            `json:"renderer"`
	Language      string            `json:"language"`
	LocaleDir     string            `json:"locale_dir"`
	DumpDir       string            `json:"dump_dir"`
	KeyBindings   map[string]string `json:"key_bindings"` // code -> action name
	Sim           SimConfig         `json:"sim"`
}

// SimConfig tunes the simulated host
type SimConfig struct {
	Seed          int64   `json:"seed"`
	Zones         int     `json:"zones"`
	ReadyDelay    int     `json:"ready_delay_frames"`
	HeroSpeed     float64 `json:"hero_speed"`
	UnmappedRooms int     `json:"unmapped_rooms"` // rooms per zone generated without a sprite
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		PanelWidth:    280,
		PanelHeight:   160,
		PanelMargin:   16,
		ViewportInset: 2,
		PlayerDotSize: 6,
		InitialZoom:   5.5,
		ZoomStep:      1.1,
		ContextAlpha:  0.55,
		StartVisible:  true,
		SceneTextMs:   500,
		DebugLogMs:    500,
		Renderer:      "ebiten",
		Language:      "en_GB",
		LocaleDir:     "locales",
		DumpDir:       ".",
		Sim: SimConfig{
			Seed:          1,
			Zones:         3,
			ReadyDelay:    30,
			HeroSpeed:     4,
			UnmappedRooms: 1,
		},
	}
}

// ViewportWidth is the panel width minus the inset on both sides
func (c Config) ViewportWidth() float64 {
	return c.PanelWidth - 2*c.ViewportInset
}

// ViewportHeight is the panel height minus the inset on both sides
func (c Config) ViewportHeight() float64 {
	return c.PanelHeight - 2*c.ViewportInset
}

// SceneTextInterval returns SceneTextMs as a duration
func (c Config) SceneTextInterval() time.Duration {
	return time.Duration(c.SceneTextMs) * time.Millisecond
}

// DebugLogInterval returns DebugLogMs as a duration
func (c Config) DebugLogInterval() time.Duration {
	return time.Duration(c.DebugLogMs) * time.Millisecond
}

// Validate rejects settings the overlay cannot run with
func (c Config) Validate() error {
	if c.PanelWidth <= 2*c.ViewportInset || c.PanelHeight <= 2*c.ViewportInset {
		return fmt.Errorf("panel %gx%g too small for inset %g", c.PanelWidth, c.PanelHeight, c.ViewportInset)
	}
	if c.ZoomStep <= 1 {
		return fmt.Errorf("zoom_step must be > 1, got %g", c.ZoomStep)
	}
	if c.ContextAlpha < 0 || c.ContextAlpha > 1 {
		return fmt.Errorf("context_alpha must be in [0,1], got %g", c.ContextAlpha)
	}
	switch c.Renderer {
	case "ebiten", "tui":
	default:
		return fmt.Errorf("unknown renderer %q", c.Renderer)
	}
	return nil
}

// Load reads a JSON config file over the defaults. A missing file yields the
// defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolvePath picks the flag value, then $MINIMAP_CONFIG
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvPath)
}

var (
	current   = Default()
	currentMu sync.RWMutex
)

// Current returns the active configuration
func Current() Config {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// Set replaces the active configuration
func Set(c Config) {
	currentMu.Lock()
	current = c
	currentMu.Unlock()
}

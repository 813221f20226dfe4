package renderer

import (
	"context"
)

// Renderer defines the interface for overlay rendering backends.
// Implementations include Ebiten (window) and TUI (terminal).
type Renderer interface {
	// Init prepares the backend (window, screen, colors)
	Init() error

	// Run drives frames until ctx is done or the user quits
	Run(ctx context.Context) error

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// GetViewportSize returns the minimap viewport size in the backend's units
	GetViewportSize() (width, height int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// ShowMessage displays a message through the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (width, height int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 276, 156 // 280x160 panel minus the inset
}

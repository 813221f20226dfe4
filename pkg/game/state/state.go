package state

import (
	"hkminimap/pkg/engine/geom"
)

// Zoom limits. All container scaling derives from View.Zoom.
const (
	MinZoom = 0.25
	MaxZoom = 6.0
)

// View represents the overlay's view state
type View struct {
	Zoom    float64
	Visible bool
	Debug   bool

	Scene     string    // last scene name seen from the host
	Origin    geom.Vec2 // player world-position baseline for Scene
	HasOrigin bool

	Dirty bool // room layout must be rebuilt

	Messages []string
}

// NewView creates a visible view at the given zoom
func NewView(zoom float64) *View {
	v := &View{
		Visible:  true,
		Messages: make([]string, 0),
	}
	v.SetZoom(zoom)
	return v
}

// SetZoom clamps value into [MinZoom, MaxZoom] and stores it
func (v *View) SetZoom(value float64) float64 {
	v.Zoom = geom.Clamp(value, MinZoom, MaxZoom)
	return v.Zoom
}

// ToggleVisible flips visibility and returns the new value
func (v *View) ToggleVisible() bool {
	v.Visible = !v.Visible
	return v.Visible
}

// ToggleDebug flips debug logging and returns the new value
func (v *View) ToggleDebug() bool {
	v.Debug = !v.Debug
	return v.Debug
}

// ResetOrigin sets the scene-local baseline. Scenes use (0,0).
func (v *View) ResetOrigin() {
	v.Origin = geom.Zero
	v.HasOrigin = true
}

// MarkDirty requests a relayout
func (v *View) MarkDirty() {
	v.Dirty = true
}

// MarkClean cancels a pending relayout
func (v *View) MarkClean() {
	v.Dirty = false
}

// AddMessage adds a message to the HUD log
func (v *View) AddMessage(msg string) {
	const maxMessages = 5
	v.Messages = append(v.Messages, msg)

	// Keep only the last maxMessages
	if len(v.Messages) > maxMessages {
		v.Messages = v.Messages[len(v.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (v *View) ClearMessages() {
	v.Messages = make([]string, 0)
}

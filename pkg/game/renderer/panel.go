package renderer

import (
	"hkminimap/pkg/engine/geom"
	"hkminimap/pkg/game/config"
)

// Map texture limits, per axis
const (
	MinTextureSize = 32
	MaxTextureSize = 1024
)

// Panel is the on-screen minimap frame
type Panel struct {
	Frame    geom.Bounds // outer panel, screen pixels, Y down
	Viewport geom.Bounds // inner clipped area
}

// PanelLayout anchors the panel to the top-right corner of a screen
// screenWidth wide
func PanelLayout(screenWidth float64, cfg config.Config) Panel {
	x := screenWidth - cfg.PanelMargin - cfg.PanelWidth
	y := cfg.PanelMargin
	frame := geom.Bounds{MinX: x, MinY: y, MaxX: x + cfg.PanelWidth, MaxY: y + cfg.PanelHeight}
	inset := cfg.ViewportInset
	return Panel{
		Frame: frame,
		Viewport: geom.Bounds{
			MinX: frame.MinX + inset,
			MinY: frame.MinY + inset,
			MaxX: frame.MaxX - inset,
			MaxY: frame.MaxY - inset,
		},
	}
}

// ClampTextureSize converts a viewport size into a texture size within
// [MinTextureSize, MaxTextureSize] on each axis
func ClampTextureSize(width, height float64) (int, int) {
	return geom.ClampInt(int(width), MinTextureSize, MaxTextureSize),
		geom.ClampInt(int(height), MinTextureSize, MaxTextureSize)
}

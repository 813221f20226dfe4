// Package ebiten provides the Ebiten-based windowed minimap overlay.
package ebiten

import "image/color"

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}   // Dark blue-gray
	colorPanelBackground = color.RGBA{0, 0, 0, 150}      // Translucent black
	colorPanelOutline    = color.RGBA{255, 255, 255, 255}
	colorPlayer          = color.RGBA{255, 255, 255, 255}
)

// Window defaults
const (
	defaultWindowWidth  = 960
	defaultWindowHeight = 540
	windowTitle         = "Minimap"
)

// Text layout; ebitenutil's debug font is 6x16 per glyph
const (
	debugLineHeight = 16
	textMargin      = 8
)

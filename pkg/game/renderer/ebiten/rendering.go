package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"hkminimap/pkg/engine/geom"
	"hkminimap/pkg/game/minimap"
	"hkminimap/pkg/game/renderer"
)

// Draw renders the overlay to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	ctrl := e.session.Controller()
	status := ctrl.Status()

	e.drawMessages(screen, ctrl.View().Messages, screenHeight)

	if !ctrl.View().Visible {
		return
	}

	panel := renderer.PanelLayout(float64(screenWidth), e.cfg)
	e.drawPanel(screen, panel)
	e.drawMap(screen, panel, ctrl)
	e.drawPlayerDot(screen, panel)

	ebitenutil.DebugPrintAt(screen, renderer.SceneLabel(status),
		int(panel.Frame.MinX), int(panel.Frame.MaxY)+2)
	ebitenutil.DebugPrintAt(screen, renderer.StatusLine(status),
		textMargin, screenHeight-debugLineHeight-textMargin)
}

// drawPanel draws the translucent background and 1px outline
func (e *EbitenRenderer) drawPanel(screen *ebiten.Image, p renderer.Panel) {
	f := p.Frame
	vector.DrawFilledRect(screen, float32(f.MinX), float32(f.MinY),
		float32(f.Width()), float32(f.Height()), colorPanelBackground, false)
	vector.StrokeRect(screen, float32(f.MinX), float32(f.MinY),
		float32(f.Width()), float32(f.Height()), 1, colorPanelOutline, false)
}

// drawMap composites the room sprites into the map texture and blits it
// into the panel viewport
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, p renderer.Panel, ctrl *minimap.Controller) {
	tex := e.ensureMapTexture(p.Viewport.Width(), p.Viewport.Height())
	tex.Clear()

	cont := ctrl.Container()
	e.syncSprites(cont)
	vp := geom.V(p.Viewport.Width(), p.Viewport.Height())
	sx, sy := float64(e.texWidth)/vp.X, float64(e.texHeight)/vp.Y

	for _, v := range cont.Visuals {
		img, ok := e.sprites[v.Scene]
		if !ok {
			continue
		}
		sw, sh := img.Bounds().Dx(), img.Bounds().Dy()
		if sw == 0 || sh == 0 {
			continue
		}
		r := cont.ScreenRect(v, vp)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(r.Width()/float64(sw), r.Height()/float64(sh))
		op.GeoM.Translate(r.MinX, r.MinY)
		op.GeoM.Scale(sx, sy)
		op.ColorScale.ScaleAlpha(float32(v.Alpha))
		op.Filter = ebiten.FilterLinear
		tex.DrawImage(img, op)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.Viewport.Width()/float64(e.texWidth), p.Viewport.Height()/float64(e.texHeight))
	op.GeoM.Translate(p.Viewport.MinX, p.Viewport.MinY)
	screen.DrawImage(tex, op)
}

// drawPlayerDot draws the fixed marker at the viewport center
func (e *EbitenRenderer) drawPlayerDot(screen *ebiten.Image, p renderer.Panel) {
	size := e.cfg.PlayerDotSize
	c := p.Viewport.Center()
	vector.DrawFilledRect(screen, float32(c.X-size/2), float32(c.Y-size/2),
		float32(size), float32(size), colorPlayer, false)
}

// drawMessages lists the HUD message log above the bottom-left status line
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, msgs []string, screenHeight int) {
	y := screenHeight - textMargin - debugLineHeight*(len(msgs)+2)
	for _, msg := range msgs {
		ebitenutil.DebugPrintAt(screen, msg, textMargin, y)
		y += debugLineHeight
	}
}

package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"hkminimap/pkg/game/minimap"
	"hkminimap/pkg/game/renderer"
)

// ensureMapTexture returns the map texture, reallocating it only when the
// clamped viewport size changes
func (e *EbitenRenderer) ensureMapTexture(width, height float64) *ebiten.Image {
	w, h := renderer.ClampTextureSize(width, height)
	if e.mapTexture != nil && w == e.texWidth && h == e.texHeight {
		return e.mapTexture
	}
	if e.mapTexture != nil {
		e.mapTexture.Deallocate()
	}
	e.mapTexture = ebiten.NewImage(w, h)
	e.texWidth, e.texHeight = w, h
	return e.mapTexture
}

// clearMapTexture wipes the texture to transparent on scene changes
func (e *EbitenRenderer) clearMapTexture() {
	if e.mapTexture != nil {
		e.mapTexture.Clear()
	}
}

// syncSprites rebuilds the sprite images when the container has been
// cleared since the last frame
func (e *EbitenRenderer) syncSprites(cont *minimap.Container) {
	if cont.Generation == e.spritesGen {
		return
	}
	for scene, img := range e.sprites {
		img.Deallocate()
		delete(e.sprites, scene)
	}
	for _, v := range cont.Visuals {
		if v.Sprite == nil {
			continue
		}
		e.sprites[v.Scene] = ebiten.NewImageFromImage(v.Sprite)
	}
	e.spritesGen = cont.Generation
}

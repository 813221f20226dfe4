package minimap

import (
	"hkminimap/pkg/engine/geom"
)

// PanInput is everything the pan transform needs for one frame
type PanInput struct {
	Dims       geom.Vec2 // current room size in map-space
	TileWidth  int       // backing tile map, pixels
	TileHeight int
	Origin     geom.Vec2 // world-space baseline of the scene
	Player     geom.Vec2 // world-space hero position
	ZoneScale  float64
	Zoom       float64
}

// Pan carries the intermediate values of the transform for debug output
type Pan struct {
	Ratio        geom.Vec2
	WorldDelta   geom.Vec2
	RoomRelative geom.Vec2
	MapDelta     geom.Vec2
	Offset       geom.Vec2
}

// axisRatio is dim/tile, or 0 when the tile axis is empty
func axisRatio(dim float64, tile int) float64 {
	if tile == 0 {
		return 0
	}
	return dim / float64(tile)
}

// PanOffset converts the hero's world displacement into the container
// offset that keeps the hero under the center dot.
//
// The -dims/2 term aligns the room's center (where LayoutRooms puts the
// current room) with a hero standing at the middle of the tile map.
func PanOffset(in PanInput) Pan {
	var p Pan
	p.Ratio = geom.V(axisRatio(in.Dims.X, in.TileWidth), axisRatio(in.Dims.Y, in.TileHeight))
	p.WorldDelta = in.Player.Sub(in.Origin)
	p.RoomRelative = p.WorldDelta.Mul(p.Ratio).Sub(in.Dims.Half())
	p.MapDelta = p.RoomRelative.Scale(in.ZoneScale)
	p.Offset = p.MapDelta.Neg().Scale(in.Zoom)
	return p
}

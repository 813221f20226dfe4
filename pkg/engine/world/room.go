// Package world holds the host-side map records the minimap reads: rooms,
// zones, tile maps and the mapped-room registry.
package world

import (
	"image"

	"hkminimap/pkg/engine/geom"
)

// ZoneID groups rooms that are laid out together
type ZoneID string

// Sprite is the opaque visual handle of a room. Renderers decide how to draw it.
type Sprite = image.Image

// RoomGeometry is a room's placement in its zone's map-space.
// Origin is the room's center; Dimensions is its full width and height.
type RoomGeometry struct {
	Origin     geom.Vec2
	Dimensions geom.Vec2
}

// Room is one mapped scene
type Room struct {
	Scene    string // mapped scene key, unique per room
	Zone     ZoneID
	Geometry RoomGeometry
	Sprite   Sprite // nil when the room has nothing to render
}

// HasSprite reports whether the room can be drawn
func (r *Room) HasSprite() bool {
	return r != nil && r.Sprite != nil
}

// Footprint returns the room's box in map-space
func (r *Room) Footprint() geom.Bounds {
	return geom.BoundsAround(r.Geometry.Origin, r.Geometry.Dimensions)
}

// TileMap is the pixel size of a scene's backing tile map
type TileMap struct {
	Width  int
	Height int
}

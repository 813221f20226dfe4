// Package minimap is the overlay's layout and coordinate-transform engine.
//
// It turns three unrelated coordinate systems into one on-screen space:
// room origins and sizes in a zone's map-space, tile-map pixel sizes, and
// the player's world-space position. Rooms of the current zone are laid
// out once per scene (scaled to fit the viewport), and the layout container
// is panned every frame so the player stays under the fixed center dot.
//
// Everything runs on the host's frame goroutine. Nothing here is safe for
// concurrent use.
package minimap

import (
	"hkminimap/pkg/engine/event"
	"hkminimap/pkg/engine/geom"
	"hkminimap/pkg/engine/world"
)

// Scenes answers which scene the host is showing
type Scenes interface {
	// CurrentSceneName is empty when no game session exists
	CurrentSceneName() string
	// BaseSceneName strips scene-variant suffixes
	BaseSceneName(scene string) string
}

// WorldMap is the host's map registry
type WorldMap interface {
	MappedScene(baseScene string) (string, bool)
	ZoneFor(mappedScene string) world.ZoneID
	// MappedRooms may be nil or empty before a session has a map
	MappedRooms() map[string]*world.Room
	TileMapDimensions(scene string) (width, height int, ok bool)
}

// Player reports the hero's world position; ok is false before spawn
type Player interface {
	WorldPosition() (geom.Vec2, bool)
}

// Host is everything the overlay reads from the game
type Host interface {
	Scenes
	WorldMap
	Player
}

// Subscriber registers lifecycle listeners. *event.Bus implements it.
type Subscriber interface {
	Subscribe(kind event.Kind, fn event.Handler) *event.Subscription
}

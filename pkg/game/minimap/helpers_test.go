package minimap

import (
	"image"
	"strings"

	"hkminimap/pkg/engine/geom"
	"hkminimap/pkg/engine/world"
)

// fakeHost is a registry plus a settable scene and hero
type fakeHost struct {
	*world.Registry
	scene   string
	hero    geom.Vec2
	hasHero bool
}

func (h *fakeHost) CurrentSceneName() string { return h.scene }

func (h *fakeHost) BaseSceneName(scene string) string {
	return strings.TrimSuffix(scene, "_boss")
}

func (h *fakeHost) WorldPosition() (geom.Vec2, bool) { return h.hero, h.hasHero }

func sprite() world.Sprite {
	return image.NewRGBA(image.Rect(0, 0, 8, 8))
}

func room(scene string, zone world.ZoneID, origin, dims geom.Vec2, withSprite bool) *world.Room {
	r := &world.Room{
		Scene:    scene,
		Zone:     zone,
		Geometry: world.RoomGeometry{Origin: origin, Dimensions: dims},
	}
	if withSprite {
		r.Sprite = sprite()
	}
	return r
}

// newFakeHost builds two zones: Town (three rooms, one without a sprite)
// and Caves (one room). The hero stands in Town_01.
func newFakeHost() *fakeHost {
	reg := world.NewRegistry()
	reg.AddRoom(room("Town_01", "Town", geom.V(0, 0), geom.V(10, 10), true), world.TileMap{Width: 100, Height: 100})
	reg.AddRoom(room("Town_02", "Town", geom.V(20, 0), geom.V(10, 10), true), world.TileMap{Width: 100, Height: 100})
	reg.AddRoom(room("Town_03", "Town", geom.V(0, 40), geom.V(10, 10), false), world.TileMap{Width: 100, Height: 100})
	reg.AddRoom(room("Caves_01", "Caves", geom.V(0, 0), geom.V(4, 4), true), world.TileMap{Width: 40, Height: 40})
	reg.SetReady(true)
	return &fakeHost{
		Registry: reg,
		scene:    "Town_01",
		hero:     geom.V(50, 50),
		hasHero:  true,
	}
}

package minimap

import (
	"sort"

	"hkminimap/pkg/engine/geom"
	"hkminimap/pkg/engine/world"
)

// Visual is one room's proxy inside the layout container. Position is the
// room center relative to the current room's center, in container pixels
// before zoom; Y grows upward as in map-space.
type Visual struct {
	Scene    string
	Position geom.Vec2
	Size     geom.Vec2
	Alpha    float64
	Current  bool
	Sprite   world.Sprite
}

// Container holds the laid-out rooms. It is drawn centered in the viewport,
// scaled by Scale and translated by Offset.
type Container struct {
	Visuals []Visual
	Offset  geom.Vec2
	Scale   float64

	// Generation increases on every Clear so renderers can drop cached
	// per-visual resources.
	Generation int
}

// Clear destroys every visual
func (c *Container) Clear() {
	c.Visuals = nil
	c.Generation++
}

// Rebuild replaces all visuals at once: old ones are gone before the new
// set is installed.
func (c *Container) Rebuild(visuals []Visual) {
	c.Clear()
	c.Visuals = visuals
}

// Len returns the number of visuals
func (c *Container) Len() int {
	return len(c.Visuals)
}

// ScreenRect places v in a viewport of the given size: the container is
// centered, zoomed by Scale, panned by Offset and flipped to Y-down.
func (c *Container) ScreenRect(v Visual, viewport geom.Vec2) geom.Bounds {
	p := v.Position.Scale(c.Scale).Add(c.Offset)
	center := geom.V(viewport.X/2+p.X, viewport.Y/2-p.Y)
	return geom.BoundsAround(center, v.Size.Scale(c.Scale))
}

// LayoutRooms places every drawable room relative to current. Rooms without
// a sprite are skipped silently. The current room is opaque, the rest use
// contextAlpha.
func LayoutRooms(rooms []*world.Room, current *world.Room, mappedScene string, zoneScale, contextAlpha float64) []Visual {
	origin := current.Geometry.Origin
	visuals := make([]Visual, 0, len(rooms))
	for _, r := range rooms {
		if !r.HasSprite() {
			continue
		}
		v := Visual{
			Scene:    r.Scene,
			Position: r.Geometry.Origin.Sub(origin).Scale(zoneScale),
			Size:     r.Geometry.Dimensions.Scale(zoneScale),
			Alpha:    contextAlpha,
			Sprite:   r.Sprite,
		}
		if r.Scene == mappedScene {
			v.Alpha = 1
			v.Current = true
		}
		visuals = append(visuals, v)
	}
	return visuals
}

// layoutContext is what one relayout pass captured from the host
type layoutContext struct {
	mappedScene string
	current     *world.Room
	zone        world.ZoneID
	rooms       []*world.Room
}

// zoneRooms collects the registry rooms of zone, ordered by scene key so
// repeated layouts are identical.
func zoneRooms(host WorldMap, mapped map[string]*world.Room, zone world.ZoneID) []*world.Room {
	rooms := make([]*world.Room, 0, len(mapped))
	for _, r := range mapped {
		if r == nil {
			continue
		}
		if host.ZoneFor(r.Scene) == zone {
			rooms = append(rooms, r)
		}
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Scene < rooms[j].Scene })
	return rooms
}

// resolveMappedScene walks current scene -> base scene -> mapped scene
func resolveMappedScene(host Host) (string, bool) {
	scene := host.CurrentSceneName()
	if scene == "" {
		return "", false
	}
	mapped, ok := host.MappedScene(host.BaseSceneName(scene))
	if !ok || mapped == "" {
		return "", false
	}
	return mapped, true
}

// resolveLayoutContext checks every relayout precondition
func resolveLayoutContext(host Host) (layoutContext, bool) {
	mappedScene, ok := resolveMappedScene(host)
	if !ok {
		return layoutContext{}, false
	}
	mapped := host.MappedRooms()
	if len(mapped) == 0 {
		return layoutContext{}, false
	}
	current, ok := mapped[mappedScene]
	if !ok || !current.HasSprite() {
		return layoutContext{}, false
	}
	zone := host.ZoneFor(mappedScene)
	return layoutContext{
		mappedScene: mappedScene,
		current:     current,
		zone:        zone,
		rooms:       zoneRooms(host, mapped, zone),
	}, true
}

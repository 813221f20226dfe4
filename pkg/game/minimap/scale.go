package minimap

import (
	"math"
	"sort"

	"hkminimap/pkg/engine/geom"
	"hkminimap/pkg/engine/world"
)

const (
	minZoneScale = 0.1
	maxZoneScale = 10.0
	// boundsEpsilon keeps zero-area zones from dividing by zero
	boundsEpsilon = 0.001
)

// ScaleCache remembers the fit-scale of every zone seen this process.
//
// Entries are never invalidated. A viewport resize after a zone's first
// layout keeps the old scale; that staleness is accepted.
type ScaleCache struct {
	scales       map[world.ZoneID]float64
	computations int
}

// NewScaleCache creates an empty cache
func NewScaleCache() *ScaleCache {
	return &ScaleCache{scales: make(map[world.ZoneID]float64)}
}

// FitScale is the uncached fit of bounds into viewport, clamped to [0.1, 10]
func FitScale(bounds geom.Bounds, viewport geom.Vec2) float64 {
	w := math.Max(boundsEpsilon, bounds.Width())
	h := math.Max(boundsEpsilon, bounds.Height())
	fit := math.Min(viewport.X/w, viewport.Y/h)
	return geom.Clamp(fit, minZoneScale, maxZoneScale)
}

// ScaleFor returns the cached scale for zone, computing and caching it on
// first use. With no bounds the scale is 1.
func (c *ScaleCache) ScaleFor(zone world.ZoneID, bounds geom.Bounds, hasBounds bool, viewport geom.Vec2) float64 {
	if s, ok := c.scales[zone]; ok {
		return s
	}
	s := 1.0
	if hasBounds {
		s = FitScale(bounds, viewport)
	}
	c.scales[zone] = s
	c.computations++
	return s
}

// ScaleForRooms is ScaleFor with the bounds taken from rooms. Bounds are
// only computed on a cache miss.
func (c *ScaleCache) ScaleForRooms(zone world.ZoneID, rooms []*world.Room, viewport geom.Vec2) float64 {
	if s, ok := c.scales[zone]; ok {
		return s
	}
	b, ok := ZoneBounds(rooms)
	return c.ScaleFor(zone, b, ok, viewport)
}

// Cached returns the stored scale for zone, if any
func (c *ScaleCache) Cached(zone world.ZoneID) (float64, bool) {
	s, ok := c.scales[zone]
	return s, ok
}

// Len returns the number of cached zones
func (c *ScaleCache) Len() int {
	return len(c.scales)
}

// Zones returns the cached zone ids in lexical order
func (c *ScaleCache) Zones() []world.ZoneID {
	ids := make([]world.ZoneID, 0, len(c.scales))
	for id := range c.scales {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Computations counts cache misses since creation
func (c *ScaleCache) Computations() int {
	return c.computations
}

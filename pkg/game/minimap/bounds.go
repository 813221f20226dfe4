package minimap

import (
	"hkminimap/pkg/engine/geom"
	"hkminimap/pkg/engine/world"
)

// ZoneBounds returns the map-space box covering every drawable room's
// footprint. Rooms without a sprite are skipped. ok is false when no room
// qualifies; callers then use a scale of 1.
func ZoneBounds(rooms []*world.Room) (b geom.Bounds, ok bool) {
	for _, r := range rooms {
		if !r.HasSprite() {
			continue
		}
		fp := r.Footprint()
		if !ok {
			b, ok = fp, true
			continue
		}
		b = b.Union(fp)
	}
	return b, ok
}

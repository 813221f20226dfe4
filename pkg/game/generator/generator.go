package generator

import (
	"sort"

	"hkminimap/pkg/engine/world"
)

// Zone describes one generated zone
type Zone struct {
	ID     world.ZoneID
	Scenes []string // generation order
	Start  string   // scene the hero spawns in
	Boss   string   // scene furthest from Start by links
}

// Layout is everything a generator produced besides the registry rooms
type Layout struct {
	Zones []Zone
	Links map[string][]string // scene -> neighbouring scenes
}

// Neighbors returns the linked scenes of scene in lexical order
func (l *Layout) Neighbors(scene string) []string {
	out := append([]string(nil), l.Links[scene]...)
	sort.Strings(out)
	return out
}

// Zone looks up a generated zone by id
func (l *Layout) Zone(id world.ZoneID) (Zone, bool) {
	for _, z := range l.Zones {
		if z.ID == id {
			return z, true
		}
	}
	return Zone{}, false
}

// WorldGenerator is an interface for zone generation algorithms
type WorldGenerator interface {
	Generate(reg *world.Registry, zones int) *Layout
	Name() string
}

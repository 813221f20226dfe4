package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Registry is an in-memory mapped-room registry. It answers the same
// queries a host world map does: scene aliasing, zone membership, tile-map
// sizes and the mapped-room table.
//
// MappedRooms stays empty until SetReady(true), the way a host only fills
// its registry once a map has been set for the session.
type Registry struct {
	rooms    map[string]*Room
	tileMaps map[string]TileMap
	aliases  map[string]string
	zones    map[ZoneID]mapset.Set[string]
	ready    bool
}

// NewRegistry creates an empty, not-ready registry
func NewRegistry() *Registry {
	return &Registry{
		rooms:    make(map[string]*Room),
		tileMaps: make(map[string]TileMap),
		aliases:  make(map[string]string),
		zones:    make(map[ZoneID]mapset.Set[string]),
	}
}

// AddRoom registers a room and its tile map under room.Scene
func (r *Registry) AddRoom(room *Room, tm TileMap) {
	r.rooms[room.Scene] = room
	r.tileMaps[room.Scene] = tm
	r.aliases[room.Scene] = room.Scene

	set, ok := r.zones[room.Zone]
	if !ok {
		set = mapset.New[string]()
		r.zones[room.Zone] = set
	}
	set.Put(room.Scene)
}

// Alias maps a base scene name to a mapped scene
func (r *Registry) Alias(base, mapped string) {
	r.aliases[base] = mapped
}

// SetReady opens or closes the mapped-room table
func (r *Registry) SetReady(ready bool) {
	r.ready = ready
}

// Ready reports whether MappedRooms returns data
func (r *Registry) Ready() bool {
	return r.ready
}

// MappedScene returns the registry key for a base scene name
func (r *Registry) MappedScene(base string) (string, bool) {
	mapped, ok := r.aliases[base]
	if !ok || mapped == "" {
		return "", false
	}
	return mapped, true
}

// ZoneFor returns the zone of a mapped scene, or "" if unknown
func (r *Registry) ZoneFor(mapped string) ZoneID {
	if room, ok := r.rooms[mapped]; ok {
		return room.Zone
	}
	return ""
}

// MappedRooms returns the mapped-room table, or nil before the registry is ready
func (r *Registry) MappedRooms() map[string]*Room {
	if !r.ready {
		return nil
	}
	return r.rooms
}

// Room looks up a room regardless of readiness
func (r *Registry) Room(mapped string) (*Room, bool) {
	room, ok := r.rooms[mapped]
	return room, ok
}

// TileMapDimensions returns the tile-map pixel size of a scene
func (r *Registry) TileMapDimensions(scene string) (width, height int, ok bool) {
	tm, ok := r.tileMaps[scene]
	if !ok {
		return 0, 0, false
	}
	return tm.Width, tm.Height, true
}

// ZoneScenes returns the set of mapped scenes in a zone
func (r *Registry) ZoneScenes(zone ZoneID) mapset.Set[string] {
	if set, ok := r.zones[zone]; ok {
		return set
	}
	return mapset.New[string]()
}

// SortedZoneScenes returns the zone's scenes in lexical order
func (r *Registry) SortedZoneScenes(zone ZoneID) []string {
	set := r.ZoneScenes(zone)
	scenes := make([]string, 0, set.Size())
	set.Each(func(s string) {
		scenes = append(scenes, s)
	})
	sort.Strings(scenes)
	return scenes
}

// Zones returns every zone id in lexical order
func (r *Registry) Zones() []ZoneID {
	ids := make([]ZoneID, 0, len(r.zones))
	for id := range r.zones {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

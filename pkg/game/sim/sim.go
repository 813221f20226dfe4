// Package sim is a stand-in host game for the minimap overlay. It generates
// zones, walks a hero through them, and publishes the lifecycle events a
// real game would.
package sim

import (
	"log"
	"math"
	"math/rand"
	"strings"

	"hkminimap/pkg/engine/event"
	"hkminimap/pkg/engine/geom"
	"hkminimap/pkg/engine/world"
	"hkminimap/pkg/game/config"
	"hkminimap/pkg/game/generator"
)

// VariantSuffix marks the boss variant of a scene. BaseSceneName strips it.
const VariantSuffix = "_boss"

// Publisher is where lifecycle events go. *event.Bus implements it.
type Publisher interface {
	Publish(ev event.Event)
}

// Host simulates a running game. It satisfies minimap.Host through the
// embedded registry plus its scene and hero methods.
type Host struct {
	*world.Registry

	cfg    config.SimConfig
	bus    Publisher
	rng    *rand.Rand
	gen    generator.WorldGenerator
	layout *generator.Layout

	inGame   bool
	frame    int
	zoneIdx  int
	scene    string
	hero     geom.Vec2
	velocity geom.Vec2
	spawned  bool

	logger *log.Logger
}

// New generates the world and returns a host sitting at the main menu
func New(cfg config.SimConfig, bus Publisher) *Host {
	reg := world.NewRegistry()
	gen := generator.NewBSPGenerator(cfg.Seed, cfg.UnmappedRooms)
	zones := cfg.Zones
	if zones < 1 {
		zones = 1
	}
	h := &Host{
		Registry: reg,
		cfg:      cfg,
		bus:      bus,
		rng:      rand.New(rand.NewSource(cfg.Seed + 1)),
		gen:      gen,
		layout:   gen.Generate(reg, zones),
		logger:   log.Default(),
	}
	for _, z := range h.layout.Zones {
		if z.Boss != "" {
			reg.Alias(z.Boss+VariantSuffix, z.Boss)
		}
	}
	return h
}

// SetLogger replaces the host's log destination
func (h *Host) SetLogger(l *log.Logger) {
	h.logger = l
}

// GeneratorName names the algorithm that built the world
func (h *Host) GeneratorName() string {
	return h.gen.Name()
}

// Layout returns the generated zones and links
func (h *Host) Layout() *generator.Layout {
	return h.layout
}

// CurrentSceneName returns the active scene, empty outside a game session
func (h *Host) CurrentSceneName() string {
	if !h.inGame {
		return ""
	}
	return h.scene
}

// BaseSceneName strips the variant suffix
func (h *Host) BaseSceneName(scene string) string {
	return strings.TrimSuffix(scene, VariantSuffix)
}

// WorldPosition returns the hero's position inside the current scene's tile map
func (h *Host) WorldPosition() (geom.Vec2, bool) {
	if !h.inGame || !h.spawned {
		return geom.Zero, false
	}
	return h.hero, true
}

// InGame reports whether a session is running
func (h *Host) InGame() bool {
	return h.inGame
}

// EnterGame starts a session in the first zone. The registry opens after
// ReadyDelay frames.
func (h *Host) EnterGame() {
	if h.inGame {
		return
	}
	h.inGame = true
	h.frame = 0
	h.zoneIdx = 0
	h.spawned = false
	h.scene = h.layout.Zones[0].Start
	h.logger.Printf("sim: entered game at %s", h.scene)
	h.bus.Publish(event.Event{Kind: event.EnteredGame})
}

// QuitToMenu ends the session and closes the registry
func (h *Host) QuitToMenu() {
	if !h.inGame {
		return
	}
	h.inGame = false
	h.spawned = false
	h.SetReady(false)
	h.logger.Printf("sim: quit to menu")
	h.bus.Publish(event.Event{Kind: event.QuitToMenu})
}

// Step advances the simulation one frame
func (h *Host) Step() {
	if !h.inGame {
		return
	}
	h.frame++

	if !h.spawned {
		h.spawnAtCenter()
		return
	}
	if !h.Ready() && h.frame >= h.cfg.ReadyDelay {
		h.SetReady(true)
		h.bus.Publish(event.Event{Kind: event.SceneMapSet})
	}
	h.walk()
}

// Travel moves the hero to the center of scene and announces it. The boss
// room is entered through its variant name.
func (h *Host) Travel(scene string) {
	if zone := h.ZoneFor(scene); zone != "" {
		for i, z := range h.layout.Zones {
			if z.ID == zone {
				h.zoneIdx = i
				if scene == z.Boss {
					scene += VariantSuffix
				}
			}
		}
	}
	h.scene = scene
	h.spawnAtCenter()
	h.bus.Publish(event.Event{Kind: event.SceneChanged, Scene: scene})
}

func (h *Host) spawnAtCenter() {
	w, ht, _ := h.TileMapDimensions(h.BaseSceneName(h.scene))
	h.hero = geom.V(float64(w)/2, float64(ht)/2)
	angle := h.rng.Float64() * 2 * math.Pi
	h.velocity = geom.V(math.Cos(angle), math.Sin(angle)).Scale(h.cfg.HeroSpeed)
	h.spawned = true
}

// walk moves the hero and leaves the room through whichever edge it crosses
func (h *Host) walk() {
	base := h.BaseSceneName(h.scene)
	w, ht, ok := h.TileMapDimensions(base)
	if !ok {
		return
	}
	next := h.hero.Add(h.velocity)
	if next.X >= 0 && next.Y >= 0 && next.X <= float64(w) && next.Y <= float64(ht) {
		h.hero = next
		return
	}

	if dest := h.exitFrom(base); dest != "" {
		h.Travel(dest)
		return
	}
	// dead end: bounce
	if next.X < 0 || next.X > float64(w) {
		h.velocity.X = -h.velocity.X
	}
	if next.Y < 0 || next.Y > float64(ht) {
		h.velocity.Y = -h.velocity.Y
	}
}

// exitFrom picks the next scene. Leaving a zone's boss room leads to the
// next zone's start room.
func (h *Host) exitFrom(base string) string {
	zone := h.layout.Zones[h.zoneIdx]
	if base == zone.Boss && len(h.layout.Zones) > 1 {
		return h.layout.Zones[(h.zoneIdx+1)%len(h.layout.Zones)].Start
	}
	neighbors := h.layout.Neighbors(base)
	if len(neighbors) == 0 {
		return ""
	}
	return neighbors[h.rng.Intn(len(neighbors))]
}

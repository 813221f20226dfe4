// Package generator tests BSP zone generation: room geometry, sprites,
// tile maps, links and determinism.
package generator

import (
	"reflect"
	"strings"
	"testing"

	"hkminimap/pkg/engine/world"
)

func generate(t *testing.T, seed int64, unmapped, zones int) (*world.Registry, *Layout) {
	t.Helper()
	reg := world.NewRegistry()
	layout := NewBSPGenerator(seed, unmapped).Generate(reg, zones)
	if layout == nil {
		t.Fatal("Generate returned nil")
	}
	return reg, layout
}

func TestBSPGenerate_ZonesAndScenes(t *testing.T) {
	reg, layout := generate(t, 1, 1, 3)
	if len(layout.Zones) != 3 {
		t.Fatalf("zones = %d, want 3", len(layout.Zones))
	}
	for _, z := range layout.Zones {
		if len(z.Scenes) < 2 {
			t.Errorf("zone %s has %d rooms, want at least 2", z.ID, len(z.Scenes))
		}
		for _, scene := range z.Scenes {
			if !strings.HasPrefix(scene, string(z.ID)+"_") {
				t.Errorf("scene %q not prefixed with zone %s", scene, z.ID)
			}
			if got := reg.ZoneFor(scene); got != z.ID {
				t.Errorf("ZoneFor(%s) = %s, want %s", scene, got, z.ID)
			}
			if mapped, ok := reg.MappedScene(scene); !ok || mapped != scene {
				t.Errorf("MappedScene(%s) = %q, %v", scene, mapped, ok)
			}
		}
		if got := reg.ZoneScenes(z.ID).Size(); got != len(z.Scenes) {
			t.Errorf("registry zone %s size = %d, want %d", z.ID, got, len(z.Scenes))
		}
	}
}

func TestBSPGenerate_ZoneCountCapped(t *testing.T) {
	_, layout := generate(t, 1, 0, 100)
	if len(layout.Zones) != len(zoneNames) {
		t.Errorf("zones = %d, want %d", len(layout.Zones), len(zoneNames))
	}
}

func TestBSPGenerate_GeometryAndTileMaps(t *testing.T) {
	reg, layout := generate(t, 2, 0, 2)
	for _, z := range layout.Zones {
		for _, scene := range z.Scenes {
			r, ok := reg.Room(scene)
			if !ok {
				t.Fatalf("room %s missing", scene)
			}
			d := r.Geometry.Dimensions
			if d.X < minRoomSize || d.Y < minRoomSize {
				t.Errorf("%s dims = %v, want >= %d", scene, d, minRoomSize)
			}
			if r.Geometry.Origin.Y > 0 {
				t.Errorf("%s origin %v above the zone top", scene, r.Geometry.Origin)
			}
			w, h, ok := reg.TileMapDimensions(scene)
			if !ok || w < int(d.X)*minUnitsPerCell || h < int(d.Y)*minUnitsPerCell {
				t.Errorf("%s tile map = %dx%d, %v for dims %v", scene, w, h, ok, d)
			}
			if !r.HasSprite() {
				t.Errorf("%s has no sprite with unmapped=0", scene)
				continue
			}
			b := r.Sprite.Bounds()
			if b.Dx() != int(d.X)*spritePxPerUnit || b.Dy() != int(d.Y)*spritePxPerUnit {
				t.Errorf("%s sprite %v for dims %v", scene, b, d)
			}
		}
	}
}

func TestBSPGenerate_UnmappedRoomsLast(t *testing.T) {
	reg, layout := generate(t, 3, 1, 1)
	z := layout.Zones[0]
	last := z.Scenes[len(z.Scenes)-1]
	if r, _ := reg.Room(last); r.HasSprite() {
		t.Errorf("last room %s has a sprite, want none", last)
	}
	if r, _ := reg.Room(z.Start); !r.HasSprite() {
		t.Errorf("start room %s has no sprite", z.Start)
	}
}

func TestBSPGenerate_UnmappedNeverCoversStart(t *testing.T) {
	reg, layout := generate(t, 3, 1000, 1)
	z := layout.Zones[0]
	if r, _ := reg.Room(z.Start); !r.HasSprite() {
		t.Error("start room lost its sprite")
	}
}

func TestBSPGenerate_AllScenesReachable(t *testing.T) {
	_, layout := generate(t, 4, 0, 3)
	for _, z := range layout.Zones {
		seen := map[string]bool{z.Start: true}
		queue := []string{z.Start}
		for len(queue) > 0 {
			s := queue[0]
			queue = queue[1:]
			for _, n := range layout.Neighbors(s) {
				if !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
		if len(seen) != len(z.Scenes) {
			t.Errorf("zone %s: reachable %d of %d scenes", z.ID, len(seen), len(z.Scenes))
		}
		if !seen[z.Boss] {
			t.Errorf("zone %s: boss scene %s unreachable", z.ID, z.Boss)
		}
	}
}

func TestBSPGenerate_LinksSymmetric(t *testing.T) {
	_, layout := generate(t, 5, 0, 2)
	for scene, ns := range layout.Links {
		for _, n := range ns {
			found := false
			for _, back := range layout.Links[n] {
				if back == scene {
					found = true
				}
			}
			if !found {
				t.Errorf("link %s -> %s has no reverse", scene, n)
			}
		}
	}
}

func TestBSPGenerate_Deterministic(t *testing.T) {
	regA, a := generate(t, 42, 1, 2)
	regB, b := generate(t, 42, 1, 2)
	if !reflect.DeepEqual(a.Zones, b.Zones) {
		t.Fatalf("zones differ for the same seed:\n%+v\n%+v", a.Zones, b.Zones)
	}
	for _, z := range a.Zones {
		for _, scene := range z.Scenes {
			ra, _ := regA.Room(scene)
			rb, _ := regB.Room(scene)
			if ra.Geometry != rb.Geometry {
				t.Errorf("%s geometry %+v != %+v", scene, ra.Geometry, rb.Geometry)
			}
			if !reflect.DeepEqual(a.Neighbors(scene), b.Neighbors(scene)) {
				t.Errorf("%s neighbours differ", scene)
			}
		}
	}
}

func TestLayout_ZoneLookup(t *testing.T) {
	_, layout := generate(t, 6, 0, 2)
	if _, ok := layout.Zone("Greenpath"); !ok {
		t.Error("Zone(Greenpath) not found")
	}
	if _, ok := layout.Zone("Nowhere"); ok {
		t.Error("Zone(Nowhere) found")
	}
}

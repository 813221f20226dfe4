package minimap

import (
	"bytes"
	"io"
	"log"
	"reflect"
	"strings"
	"testing"
	"time"

	"hkminimap/pkg/engine/event"
	"hkminimap/pkg/engine/geom"
	"hkminimap/pkg/engine/input"
	"hkminimap/pkg/game/config"
)

func newTestController(t *testing.T, h *fakeHost) *Controller {
	t.Helper()
	cfg := config.Default()
	cfg.InitialZoom = 1
	c := NewController(h, cfg)
	c.SetLogger(log.New(io.Discard, "", 0))
	return c
}

func TestController_StartsDirtyAndBuildsOnFirstTick(t *testing.T) {
	h := newFakeHost()
	c := newTestController(t, h)
	if !c.View().Dirty {
		t.Fatal("new controller not dirty")
	}

	c.Tick(time.Unix(0, 0))

	if c.View().Dirty {
		t.Error("Dirty after first tick with data, want clean")
	}
	// Town_03 has no sprite
	if n := c.Container().Len(); n != 2 {
		t.Errorf("visuals = %d, want 2", n)
	}
	if c.View().Scene != "Town_01" {
		t.Errorf("Scene = %q, want Town_01", c.View().Scene)
	}
}

func TestController_FitScaleUsesViewport(t *testing.T) {
	h := newFakeHost()
	c := newTestController(t, h)
	c.SetViewport(300, 100)
	c.Tick(time.Unix(0, 0))
	// Town bounds: x -5..25 (30), y -5..5 (10) -> min(300/30, 100/10) = 10
	if s := c.ZoneScale(); s != 10 {
		t.Errorf("ZoneScale = %g, want 10", s)
	}
	v := c.Container().Visuals[1]
	if v.Scene != "Town_02" || v.Position != geom.V(200, 0) || v.Size != geom.V(100, 100) {
		t.Errorf("Town_02 visual = %+v", v)
	}
}

func TestController_PreconditionsUnmetKeepsDirty(t *testing.T) {
	tests := []struct {
		name  string
		setup func(h *fakeHost)
	}{
		{"no scene", func(h *fakeHost) { h.scene = "" }},
		{"unmapped scene", func(h *fakeHost) { h.scene = "Menu_Title" }},
		{"registry not ready", func(h *fakeHost) { h.SetReady(false) }},
		{"current room has no sprite", func(h *fakeHost) { h.scene = "Town_03" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFakeHost()
			tt.setup(h)
			c := newTestController(t, h)
			for i := 0; i < 3; i++ {
				c.Tick(time.Unix(int64(i), 0))
			}
			if !c.View().Dirty {
				t.Error("Dirty cleared without valid data")
			}
			if c.Container().Len() != 0 {
				t.Errorf("visuals = %d, want 0", c.Container().Len())
			}
			if c.Relayout() {
				t.Error("Relayout() = true, want false")
			}
		})
	}
}

func TestController_RetriesUntilRegistryReady(t *testing.T) {
	h := newFakeHost()
	h.SetReady(false)
	c := newTestController(t, h)

	c.Tick(time.Unix(0, 0))
	c.Tick(time.Unix(1, 0))
	if !c.View().Dirty {
		t.Fatal("clean before registry ready")
	}

	h.SetReady(true)
	c.Tick(time.Unix(2, 0))
	if c.View().Dirty || c.Container().Len() != 2 {
		t.Errorf("after ready: dirty=%v visuals=%d, want clean with 2", c.View().Dirty, c.Container().Len())
	}
}

func TestController_NoHeroSkipsFrame(t *testing.T) {
	h := newFakeHost()
	h.hasHero = false
	c := newTestController(t, h)
	c.Tick(time.Unix(0, 0))
	if !c.View().Dirty || c.View().Scene != "" {
		t.Errorf("frame ran without hero: dirty=%v scene=%q", c.View().Dirty, c.View().Scene)
	}
}

func TestController_ZoomClampAndScale(t *testing.T) {
	c := newTestController(t, newFakeHost())
	if z := c.SetZoom(100); z != 6.0 || c.Container().Scale != 6.0 {
		t.Errorf("SetZoom(100) = %g, container %g; want 6", z, c.Container().Scale)
	}
	if z := c.SetZoom(0); z != 0.25 || c.View().Zoom != 0.25 {
		t.Errorf("SetZoom(0) = %g, want 0.25", z)
	}
}

func TestController_HandleAction(t *testing.T) {
	c := newTestController(t, newFakeHost())

	c.HandleAction(input.ActionZoomIn)
	if z := c.View().Zoom; z < 1.0999 || z > 1.1001 {
		t.Errorf("zoom after ZoomIn = %g, want 1.1", z)
	}
	c.HandleAction(input.ActionZoomReset)
	c.HandleAction(input.ActionZoomOut)
	if z := c.View().Zoom; z < 0.909 || z > 0.910 {
		t.Errorf("zoom after ZoomOut = %g, want ~0.909", z)
	}
	c.HandleAction(input.ActionZoomReset)
	if c.View().Zoom != 1 {
		t.Errorf("zoom after reset = %g, want 1", c.View().Zoom)
	}

	if !c.HandleAction(input.ActionToggleMinimap) || c.View().Visible {
		t.Error("toggle did not hide the minimap")
	}
	if c.HandleAction(input.ActionQuit) || c.HandleAction(input.ActionDumpLayout) {
		t.Error("shell actions reported as handled")
	}
}

func TestController_DebugToggleLogs(t *testing.T) {
	var buf bytes.Buffer
	c := newTestController(t, newFakeHost())
	c.SetLogger(log.New(&buf, "", 0))

	c.HandleAction(input.ActionToggleDebug)
	if !strings.Contains(buf.String(), "debug=on") {
		t.Errorf("log = %q, want debug=on", buf.String())
	}
	buf.Reset()
	c.Tick(time.Unix(0, 0))
	if !strings.Contains(buf.String(), "build zone=Town") || !strings.Contains(buf.String(), "deltaWorld=") {
		t.Errorf("debug log missing build/pan lines: %q", buf.String())
	}
	buf.Reset()
	c.Tick(time.Unix(0, int64(100*time.Millisecond)))
	if strings.Contains(buf.String(), "deltaWorld=") {
		t.Error("pan debug line not throttled")
	}
}

func TestController_SceneChangeEvent(t *testing.T) {
	h := newFakeHost()
	c := newTestController(t, h)
	bus := event.NewBus()
	c.Attach(bus)
	c.Tick(time.Unix(0, 0))

	c.View().Origin = geom.V(9, 9)
	var hooked []string
	c.OnSceneChange(func(s string) { hooked = append(hooked, s) })

	h.scene = "Town_02"
	bus.Publish(event.Event{Kind: event.SceneChanged, Scene: "Town_02"})

	if !c.View().Origin.IsZero() {
		t.Errorf("Origin = %v, want (0,0)", c.View().Origin)
	}
	if !c.View().Dirty {
		t.Error("Dirty = false after scene change")
	}
	if c.Container().Len() != 0 {
		t.Errorf("visuals = %d after scene change, want 0", c.Container().Len())
	}

	// the frame sees the same scene again: no second reset
	c.Tick(time.Unix(1, 0))
	if len(hooked) != 1 {
		t.Errorf("scene hooks ran %d times, want 1", len(hooked))
	}
	if c.View().Dirty {
		t.Error("relayout with valid data did not clear Dirty")
	}
	if v := c.Container().Visuals[1]; !v.Current || v.Scene != "Town_02" {
		t.Errorf("current visual = %+v, want Town_02", v)
	}
}

func TestController_LifecycleEvents(t *testing.T) {
	h := newFakeHost()
	c := newTestController(t, h)
	bus := event.NewBus()
	c.Attach(bus)
	c.Tick(time.Unix(0, 0))

	bus.Publish(event.Event{Kind: event.EnteredGame})
	if !c.View().Dirty {
		t.Error("EnteredGame did not set Dirty")
	}
	bus.Publish(event.Event{Kind: event.QuitToMenu})
	if c.View().Dirty {
		t.Error("QuitToMenu did not clear Dirty")
	}
	bus.Publish(event.Event{Kind: event.SceneMapSet})
	if !c.View().Dirty {
		t.Error("SceneMapSet did not set Dirty")
	}

	c.Detach()
	for _, k := range []event.Kind{event.EnteredGame, event.QuitToMenu, event.SceneMapSet, event.SceneChanged} {
		if n := bus.HandlerCount(k); n != 0 {
			t.Errorf("HandlerCount(%s) = %d after Detach, want 0", k, n)
		}
	}
	c.View().MarkClean()
	bus.Publish(event.Event{Kind: event.EnteredGame})
	if c.View().Dirty {
		t.Error("detached controller still receives events")
	}
}

func TestController_AttachTwiceDoesNotLeak(t *testing.T) {
	c := newTestController(t, newFakeHost())
	bus := event.NewBus()
	c.Attach(bus)
	c.Attach(bus)
	if n := bus.HandlerCount(event.EnteredGame); n != 1 {
		t.Errorf("HandlerCount = %d, want 1", n)
	}
}

func TestController_RelayoutIdempotent(t *testing.T) {
	h := newFakeHost()
	c := newTestController(t, h)
	c.Tick(time.Unix(0, 0))

	if !c.Relayout() {
		t.Fatal("Relayout() = false")
	}
	first := append([]Visual(nil), c.Container().Visuals...)
	offset := c.Container().Offset
	if !c.Relayout() {
		t.Fatal("second Relayout() = false")
	}
	if !reflect.DeepEqual(first, c.Container().Visuals) {
		t.Errorf("layouts differ:\n%+v\n%+v", first, c.Container().Visuals)
	}
	if offset != c.Container().Offset {
		t.Errorf("offset %v != %v", offset, c.Container().Offset)
	}
	if c.Scales().Computations() != 1 {
		t.Errorf("scale computed %d times, want 1", c.Scales().Computations())
	}
}

func TestController_PanFollowsHero(t *testing.T) {
	h := newFakeHost()
	c := newTestController(t, h)
	c.SetViewport(300, 100) // zone scale 10
	c.Tick(time.Unix(0, 0))

	// hero at tile center -> room center under the dot
	if off := c.Container().Offset; !off.ApproxEqual(geom.Zero, 1e-9) {
		t.Errorf("Offset at center = %v, want (0,0)", off)
	}

	// 10 world units right = 1 map unit = 10 px at scale 10, zoom 1
	h.hero = geom.V(60, 50)
	c.Tick(time.Unix(1, 0))
	if off := c.Container().Offset; !off.ApproxEqual(geom.V(-10, 0), 1e-9) {
		t.Errorf("Offset = %v, want (-10, 0)", off)
	}

	c.SetZoom(2)
	c.UpdatePan()
	if off := c.Container().Offset; !off.ApproxEqual(geom.V(-20, 0), 1e-9) {
		t.Errorf("Offset at zoom 2 = %v, want (-20, 0)", off)
	}
}

func TestController_VariantSceneUsesBaseRoom(t *testing.T) {
	h := newFakeHost()
	h.scene = "Town_02_boss"
	c := newTestController(t, h)
	c.Tick(time.Unix(0, 0))
	if c.View().Dirty {
		t.Fatal("variant scene did not resolve")
	}
	for _, v := range c.Container().Visuals {
		if v.Current != (v.Scene == "Town_02") {
			t.Errorf("visual %s Current = %v", v.Scene, v.Current)
		}
	}
}

func TestController_ZoneScaleCachedAcrossResize(t *testing.T) {
	h := newFakeHost()
	c := newTestController(t, h)
	c.SetViewport(300, 100)
	c.Tick(time.Unix(0, 0))
	c.SetViewport(30, 10)
	c.SceneChanged("Town_02")
	h.scene = "Town_02"
	c.Tick(time.Unix(1, 0))
	if s := c.ZoneScale(); s != 10 {
		t.Errorf("ZoneScale after resize = %g, want stale 10", s)
	}
}

func TestController_Status(t *testing.T) {
	h := newFakeHost()
	c := newTestController(t, h)
	c.Tick(time.Unix(0, 0))
	s := c.Status()
	if s.Scene != "Town_01" || s.SceneText != "Town_01" || !s.RoomsReady || s.MappedRooms != 4 || !s.HasHero || s.Visuals != 2 {
		t.Errorf("Status = %+v", s)
	}
}

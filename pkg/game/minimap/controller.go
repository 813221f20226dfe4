package minimap

import (
	"log"
	"time"

	"hkminimap/pkg/engine/event"
	"hkminimap/pkg/engine/geom"
	"hkminimap/pkg/engine/input"
	"hkminimap/pkg/game/config"
	"hkminimap/pkg/game/state"
)

// Controller owns the view state, the zone-scale cache and the layout
// container, and runs the per-frame sequence:
//
//	scene detection / text -> relayout when dirty -> pan
//
// Input is fed in before Tick through HandleAction.
type Controller struct {
	host      Host
	cfg       config.Config
	view      *state.View
	scales    *ScaleCache
	container *Container
	viewport  geom.Vec2
	zoneScale float64

	subs          []*event.Subscription
	sceneHooks    []func(scene string)
	sceneText     string
	nextSceneText time.Time
	nextDebugLog  time.Time
	now           time.Time

	logger *log.Logger
}

// NewController creates a controller with its own scale cache. The layout
// starts dirty so the first frame with room data builds it.
func NewController(host Host, cfg config.Config) *Controller {
	c := &Controller{
		host:      host,
		cfg:       cfg,
		view:      state.NewView(cfg.InitialZoom),
		scales:    NewScaleCache(),
		container: &Container{},
		viewport:  geom.V(cfg.ViewportWidth(), cfg.ViewportHeight()),
		zoneScale: 1,
		logger:    log.Default(),
	}
	c.view.Visible = cfg.StartVisible
	c.view.Debug = cfg.Debug
	c.view.MarkDirty()
	c.SetZoom(cfg.InitialZoom)
	return c
}

// SetLogger replaces the debug log destination
func (c *Controller) SetLogger(l *log.Logger) {
	c.logger = l
}

// View returns the live view state. Callers must not mutate it.
func (c *Controller) View() *state.View {
	return c.view
}

// Container returns the live layout container. Callers must not mutate it.
func (c *Controller) Container() *Container {
	return c.container
}

// Scales returns the zone-scale cache
func (c *Controller) Scales() *ScaleCache {
	return c.scales
}

// ZoneScale returns the scale of the last layout
func (c *Controller) ZoneScale() float64 {
	return c.zoneScale
}

// Viewport returns the size used for zone fitting
func (c *Controller) Viewport() geom.Vec2 {
	return c.viewport
}

// SetViewport updates the size used for zone fitting. Zones already cached
// keep their scale.
func (c *Controller) SetViewport(width, height float64) {
	c.viewport = geom.V(width, height)
}

// OnSceneChange registers fn to run after every detected scene transition
func (c *Controller) OnSceneChange(fn func(scene string)) {
	c.sceneHooks = append(c.sceneHooks, fn)
}

// Attach subscribes the controller to the host lifecycle events
func (c *Controller) Attach(bus Subscriber) {
	c.Detach()
	c.subs = append(c.subs,
		bus.Subscribe(event.EnteredGame, func(event.Event) { c.view.MarkDirty() }),
		bus.Subscribe(event.QuitToMenu, func(event.Event) { c.view.MarkClean() }),
		bus.Subscribe(event.SceneMapSet, func(event.Event) { c.view.MarkDirty() }),
		bus.Subscribe(event.SceneChanged, func(ev event.Event) { c.SceneChanged(ev.Scene) }),
	)
}

// Detach removes every subscription made by Attach
func (c *Controller) Detach() {
	for _, s := range c.subs {
		s.Unsubscribe()
	}
	c.subs = nil
}

// SetZoom clamps value and applies it to the container
func (c *Controller) SetZoom(value float64) float64 {
	z := c.view.SetZoom(value)
	c.container.Scale = z
	return z
}

// HandleAction applies a user intent. It returns false for actions the
// shell must handle itself (dump, quit).
func (c *Controller) HandleAction(a input.Action) bool {
	switch a {
	case input.ActionToggleMinimap:
		c.view.ToggleVisible()
	case input.ActionZoomIn:
		c.SetZoom(c.view.Zoom * c.cfg.ZoomStep)
	case input.ActionZoomOut:
		c.SetZoom(c.view.Zoom / c.cfg.ZoomStep)
	case input.ActionZoomReset:
		c.SetZoom(1)
	case input.ActionToggleDebug:
		on := c.view.ToggleDebug()
		c.logger.Printf("%s debug=%s", debugTag(), onOff(on))
	default:
		return false
	}
	return true
}

// Notify appends msg to the HUD message log
func (c *Controller) Notify(msg string) {
	c.view.AddMessage(msg)
}

// SceneChanged resets the per-scene state when scene differs from the last
// one seen: origin back to (0,0), visuals destroyed, layout dirty. Repeated
// notifications for the same scene do nothing, so the origin resets exactly
// once per transition.
func (c *Controller) SceneChanged(scene string) {
	if scene == c.view.Scene {
		return
	}
	c.view.Scene = scene
	c.view.ResetOrigin()
	c.container.Clear()
	c.view.MarkDirty()
	for _, fn := range c.sceneHooks {
		fn(scene)
	}
}

// Tick runs one frame. Without a hero nothing past input handling runs.
func (c *Controller) Tick(now time.Time) {
	c.now = now
	if _, ok := c.host.WorldPosition(); !ok {
		return
	}

	c.SceneChanged(c.host.CurrentSceneName())
	if !now.Before(c.nextSceneText) {
		c.sceneText = c.view.Scene
		c.nextSceneText = now.Add(c.cfg.SceneTextInterval())
	}

	if c.view.Dirty && c.RoomsAvailable() {
		c.Relayout()
	}

	c.UpdatePan()
}

// RoomsAvailable reports whether the host registry has any rooms yet
func (c *Controller) RoomsAvailable() bool {
	return len(c.host.MappedRooms()) > 0
}

// Relayout rebuilds the room visuals for the current zone. When any
// precondition fails it does nothing, leaves the previous layout and the
// dirty flag alone, and returns false.
func (c *Controller) Relayout() bool {
	ctx, ok := resolveLayoutContext(c.host)
	if !ok {
		return false
	}

	c.zoneScale = c.scales.ScaleForRooms(ctx.zone, ctx.rooms, c.viewport)
	c.container.Rebuild(LayoutRooms(ctx.rooms, ctx.current, ctx.mappedScene, c.zoneScale, c.cfg.ContextAlpha))
	c.logBuild(ctx)

	c.view.MarkClean()
	c.UpdatePan()
	return true
}

// UpdatePan recomputes the container offset from the live hero position.
// Missing data leaves the offset unchanged.
func (c *Controller) UpdatePan() {
	pos, ok := c.host.WorldPosition()
	if !ok {
		return
	}
	mappedScene, ok := resolveMappedScene(c.host)
	if !ok {
		return
	}
	mapped := c.host.MappedRooms()
	current, ok := mapped[mappedScene]
	if !ok || current == nil {
		return
	}
	tw, th, ok := c.host.TileMapDimensions(mappedScene)
	if !ok {
		return
	}

	p := PanOffset(PanInput{
		Dims:       current.Geometry.Dimensions,
		TileWidth:  tw,
		TileHeight: th,
		Origin:     c.view.Origin,
		Player:     pos,
		ZoneScale:  c.zoneScale,
		Zoom:       c.view.Zoom,
	})
	c.container.Offset = p.Offset
	c.logPan(mappedScene, pos, current.Geometry.Dimensions, tw, th, p)
}

// Status is the HUD summary of the current frame
type Status struct {
	Scene       string
	SceneText   string
	Zoom        float64
	Visible     bool
	RoomsReady  bool
	MappedRooms int
	Hero        geom.Vec2
	HasHero     bool
	ZoneScale   float64
	Visuals     int
}

// Status snapshots the values the debug HUD prints
func (c *Controller) Status() Status {
	hero, hasHero := c.host.WorldPosition()
	n := len(c.host.MappedRooms())
	return Status{
		Scene:       c.host.CurrentSceneName(),
		SceneText:   c.sceneText,
		Zoom:        c.view.Zoom,
		Visible:     c.view.Visible,
		RoomsReady:  n > 0,
		MappedRooms: n,
		Hero:        hero,
		HasHero:     hasHero,
		ZoneScale:   c.zoneScale,
		Visuals:     c.container.Len(),
	}
}

package minimap

import (
	"github.com/gookit/color"

	"hkminimap/pkg/engine/geom"
)

func debugTag() string {
	return color.Cyan.Sprint("[minimap.debug]")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (c *Controller) logBuild(ctx layoutContext) {
	if !c.view.Debug {
		return
	}
	c.logger.Printf("%s build zone=%s mapped=%s rooms=%d zoneScale=%.3f origin=%v curDims=%v",
		debugTag(), ctx.zone, ctx.mappedScene, len(ctx.rooms), c.zoneScale,
		ctx.current.Geometry.Origin, ctx.current.Geometry.Dimensions)
}

// logPan prints the pan intermediates at most once per DebugLogInterval
func (c *Controller) logPan(mappedScene string, hero, dims geom.Vec2, tw, th int, p Pan) {
	if !c.view.Debug || c.now.Before(c.nextDebugLog) {
		return
	}
	c.logger.Printf("%s hero=%v origin=%v mapped=%s dims=%v tmd=(%d,%d) k=(%.3f,%.3f) deltaWorld=%v roomRel=%v deltaMap=%v container=%v zoneScale=%.3f zoom=%.2f",
		debugTag(), hero, c.view.Origin, mappedScene, dims, tw, th, p.Ratio.X, p.Ratio.Y,
		p.WorldDelta, p.RoomRelative, p.MapDelta, c.container.Offset, c.zoneScale, c.view.Zoom)
	c.nextDebugLog = c.now.Add(c.cfg.DebugLogInterval())
}

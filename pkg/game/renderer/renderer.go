package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"hkminimap/pkg/engine/input"
	"hkminimap/pkg/game/config"
	"hkminimap/pkg/game/minimap"
)

// Icon constants shared by the backends
const (
	PlayerIcon  = "@"
	IconCurrent = "█"
	IconContext = "▒"
)

var (
	ColorTitle  color.Style
	ColorValue  color.Style
	ColorAction color.Style
	ColorSubtle color.Style
)

// InitColors initializes the color styles
func InitColors() {
	ColorTitle = color.Style{color.FgCyan, color.OpBold}
	ColorValue = color.Style{color.FgGreen}
	ColorAction = color.Style{color.FgMagenta}
	ColorSubtle = color.Style{color.FgGray}
}

// HeroText formats the hero position for the HUD
func HeroText(s minimap.Status) string {
	if !s.HasHero {
		return gotext.Get("none")
	}
	return fmt.Sprintf("(%.1f, %.1f)", s.Hero.X, s.Hero.Y)
}

// SceneLabel is the text shown in the panel header
func SceneLabel(s minimap.Status) string {
	if s.SceneText == "" {
		return gotext.Get("(no scene)")
	}
	return s.SceneText
}

// StatusLine is the debug HUD line drawn under the panel
func StatusLine(s minimap.Status) string {
	return gotext.Get("minimap: scene=%s zoom=%.2f roomsReady=%t mappedRooms=%d hero=%s",
		s.Scene, s.Zoom, s.RoomsReady, s.MappedRooms, HeroText(s))
}

// ActionLabel returns the translated help label for an action
func ActionLabel(a input.Action) string {
	switch a {
	case input.ActionToggleMinimap:
		return gotext.Get("Toggle Minimap")
	case input.ActionZoomIn:
		return gotext.Get("Zoom In")
	case input.ActionZoomOut:
		return gotext.Get("Zoom Out")
	case input.ActionZoomReset:
		return gotext.Get("Reset Zoom")
	case input.ActionToggleDebug:
		return gotext.Get("Toggle Debug")
	case input.ActionDumpLayout:
		return gotext.Get("Dump Layout")
	case input.ActionQuit:
		return gotext.Get("Quit")
	default:
		return gotext.Get("None")
	}
}

// KeyHelp lists the current bindings, one "keys: action" entry per action
func KeyHelp() []string {
	byAction := input.GetBindingsByAction()
	actions := make([]input.Action, 0, len(byAction))
	for a := range byAction {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	lines := make([]string, 0, len(actions))
	for _, a := range actions {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.Join(byAction[a], "/"), ActionLabel(a)))
	}
	return lines
}

// Banner is the colored startup summary printed to the terminal
func Banner(cfg config.Config, generator string) string {
	var b strings.Builder
	b.WriteString(ColorTitle.Sprint(gotext.Get("Minimap overlay")) + "\n")
	fmt.Fprintf(&b, "  %s %s\n", ColorSubtle.Sprint(gotext.Get("renderer:")), ColorValue.Sprint(cfg.Renderer))
	fmt.Fprintf(&b, "  %s %s\n", ColorSubtle.Sprint(gotext.Get("world:")),
		ColorValue.Sprintf("%s, seed %d, %d zones", generator, cfg.Sim.Seed, cfg.Sim.Zones))
	fmt.Fprintf(&b, "  %s %s\n", ColorSubtle.Sprint(gotext.Get("panel:")),
		ColorValue.Sprintf("%.0fx%.0f, zoom %.2f", cfg.PanelWidth, cfg.PanelHeight, cfg.InitialZoom))
	vw, vh := GetViewportSize()
	fmt.Fprintf(&b, "  %s %s\n", ColorSubtle.Sprint(gotext.Get("viewport:")), ColorValue.Sprintf("%dx%d", vw, vh))
	for _, line := range KeyHelp() {
		b.WriteString("  " + ColorAction.Sprint(line) + "\n")
	}
	return b.String()
}

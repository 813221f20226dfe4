package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent for the overlay.
type Action int

const (
	ActionNone Action = iota

	ActionToggleMinimap
	ActionZoomIn
	ActionZoomOut
	ActionZoomReset
	ActionToggleDebug
	ActionDumpLayout // Write the current room layout to disk (F9)
	ActionQuit       // Shell only; the overlay core ignores it
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "n", "f8", "numpad_add").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten's IsKeyJustPressed and tcell key events already fire once per press,
// so this stays a thin copy, but it keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// defaultBindings is copied into bindings by ResetBindings.
var defaultBindings = map[string]Action{
	"n": ActionToggleMinimap,

	// Zoom (fixed bindings, not rebindable)
	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,
	"0":               ActionZoomReset,
	"numpad_0":        ActionZoomReset,

	"f8": ActionToggleDebug,
	"f9": ActionDumpLayout,

	"escape": ActionQuit,
	"q":      ActionQuit,
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = copyBindings(defaultBindings)

func copyBindings(src map[string]Action) map[string]Action {
	dst := make(map[string]Action, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// ResetBindings restores the default key map.
func ResetBindings() {
	bindings = copyBindings(defaultBindings)
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[strings.ToLower(ev.Code)]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionToggleMinimap:
		return "Toggle Minimap"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionZoomReset:
		return "Reset Zoom"
	case ActionToggleDebug:
		return "Toggle Debug"
	case ActionDumpLayout:
		return "Dump Layout"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// ActionByName resolves a config action name ("toggle_minimap", "Zoom In", ...).
func ActionByName(name string) (Action, bool) {
	norm := strings.ToLower(strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(name)))
	for a := ActionToggleMinimap; a <= ActionQuit; a++ {
		if strings.ToLower(ActionName(a)) == norm {
			return a, true
		}
	}
	return ActionNone, false
}

// isFixed reports whether a code may not be remapped (the zoom keys).
func isFixed(code string) bool {
	switch defaultBindings[code] {
	case ActionZoomIn, ActionZoomOut, ActionZoomReset:
		return true
	}
	return false
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
func SetSingleBinding(action Action, code string) {
	code = strings.ToLower(code)
	for c, a := range bindings {
		if isFixed(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !isFixed(code) {
		bindings[code] = action
	}
}

package ebiten

import (
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "hkminimap/pkg/engine/input"
)

// keyCodes covers the keys whose ebiten name differs from the binding code
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyEqual:          "=",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
	ebiten.KeyNumpad0:        "numpad_0",
}

// keyCode converts an ebiten key to the binding code used by the input layer
func keyCode(k ebiten.Key) string {
	if c, ok := keyCodes[k]; ok {
		return c
	}
	return strings.ToLower(strings.TrimPrefix(k.String(), "Digit"))
}

// Update handles input and advances one frame (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	if e.ctx.Err() != nil {
		return ebiten.Termination
	}

	for _, intent := range e.checkInput() {
		e.session.ProcessIntent(intent)
	}
	if e.session.Quit() {
		return ebiten.Termination
	}

	e.session.Step(time.Now())
	return nil
}

// checkInput returns one intent per bound key pressed this frame
func (e *EbitenRenderer) checkInput() []engineinput.Intent {
	var intents []engineinput.Intent
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      keyCode(k),
			Timestamp: time.Now(),
		}))
		if intent.Action != engineinput.ActionNone {
			intents = append(intents, intent)
		}
	}
	return intents
}

// Package tui provides the terminal minimap overlay on top of tcell.
package tui

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"

	"hkminimap/pkg/engine/geom"
	"hkminimap/pkg/engine/input"
	"hkminimap/pkg/game/config"
	"hkminimap/pkg/game/gameplay"
	"hkminimap/pkg/game/renderer"
)

// Terminal cells are roughly twice as tall as wide, so the map works in
// half-cell units vertically.
const (
	cellPixelsX = 5
	cellPixelsY = 10
	rowUnits    = 2
	frameTime   = 16 * time.Millisecond // ~60 FPS
	textMargin  = 1
)

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleCurrent = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleContext = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleSubtle  = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
)

// TUIRenderer draws the minimap panel into a tcell screen
type TUIRenderer struct {
	session *gameplay.Session
	cfg     config.Config
	screen  tcell.Screen

	width, height int // screen size in cells
	panelCols     int // inner viewport size in cells
	panelRows     int
}

// New creates a terminal renderer. A nil screen opens the real terminal in Init.
func New(session *gameplay.Session, cfg config.Config, screen tcell.Screen) *TUIRenderer {
	return &TUIRenderer{
		session:   session,
		cfg:       cfg,
		screen:    screen,
		panelCols: int(cfg.ViewportWidth() / cellPixelsX),
		panelRows: int(cfg.ViewportHeight() / cellPixelsY),
	}
}

// Init opens the screen and sizes the controller viewport to the panel
func (t *TUIRenderer) Init() error {
	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	t.screen.SetStyle(styleDefault)
	t.width, t.height = t.screen.Size()

	if t.panelCols < 1 || t.panelRows < 1 {
		return fmt.Errorf("panel too small: %dx%d cells", t.panelCols, t.panelRows)
	}
	t.session.Controller().SetViewport(float64(t.panelCols), float64(t.panelRows*rowUnits))
	return nil
}

// Run polls terminal events on a helper goroutine and draws on a ticker
// until ctx is done or the user quits
func (t *TUIRenderer) Run(ctx context.Context) error {
	defer t.screen.Fini()

	t.session.Start()
	defer t.session.Close()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(t.screen.PollEvent, eventChan, done)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return nil
			}

		case now := <-ticker.C:
			t.session.Step(now)
			t.draw()
		}
	}
}

// forwardEvents feeds polled events to out until poll reports the screen
// finalized or done is closed
func forwardEvents(poll func() tcell.Event, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// handleInput routes one terminal event. It returns false when the loop
// should stop.
func (t *TUIRenderer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		code := keyCode(ev)
		if code == "" {
			return true
		}
		t.session.ProcessIntent(input.MapToIntent(input.NewDebouncedInput(input.RawInput{
			Device:    input.DeviceTerminal,
			Code:      code,
			Timestamp: ev.When(),
		})))
		return !t.session.Quit()

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// keyCode converts a tcell key event to a binding code
func keyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyF8:
		return "f8"
	case tcell.KeyF9:
		return "f9"
	}
	return ""
}

// ShowMessage displays a message in the message log
func (t *TUIRenderer) ShowMessage(msg string) {
	t.session.Controller().Notify(msg)
}

// GetViewportSize returns the panel viewport in cells
func (t *TUIRenderer) GetViewportSize() (width, height int) {
	return t.panelCols, t.panelRows
}

// panelOrigin is the top-left cell of the panel border
func (t *TUIRenderer) panelOrigin() (x, y int) {
	return t.width - t.panelCols - 2 - textMargin, textMargin
}

// draw renders one frame
func (t *TUIRenderer) draw() {
	t.screen.Clear()
	t.width, t.height = t.screen.Size()
	ctrl := t.session.Controller()
	status := ctrl.Status()

	t.drawText(textMargin, textMargin, gotext.Get("Minimap overlay"), styleTitle)
	for i, line := range renderer.KeyHelp() {
		t.drawText(textMargin, textMargin+2+i, line, styleSubtle)
	}
	msgs := ctrl.View().Messages
	for i, msg := range msgs {
		t.drawText(textMargin, t.height-textMargin-2-len(msgs)+i, msg, styleDefault)
	}

	if ctrl.View().Visible {
		px, py := t.panelOrigin()
		t.drawBorder(px, py, t.panelCols+2, t.panelRows+2)
		t.drawRooms(px+1, py+1)
		t.screen.SetContent(px+1+t.panelCols/2, py+1+t.panelRows/2, []rune(renderer.PlayerIcon)[0], nil, stylePlayer)
		t.drawText(px, py+t.panelRows+2, renderer.SceneLabel(status), styleDefault)
		t.drawText(textMargin, t.height-textMargin-1, renderer.StatusLine(status), styleSubtle)
	}

	t.screen.Show()
}

// drawRooms fills the cells covered by each visual, clipped to the viewport
// whose top-left cell is (x0, y0)
func (t *TUIRenderer) drawRooms(x0, y0 int) {
	cont := t.session.Controller().Container()
	vp := geom.V(float64(t.panelCols), float64(t.panelRows*rowUnits))

	for _, v := range cont.Visuals {
		r := cont.ScreenRect(v, vp)
		ch, style := []rune(renderer.IconContext)[0], styleContext
		if v.Current {
			ch, style = []rune(renderer.IconCurrent)[0], styleCurrent
		}

		minCol := geom.ClampInt(int(math.Floor(r.MinX)), 0, t.panelCols)
		maxCol := geom.ClampInt(int(math.Ceil(r.MaxX)), 0, t.panelCols)
		minRow := geom.ClampInt(int(math.Floor(r.MinY/rowUnits)), 0, t.panelRows)
		maxRow := geom.ClampInt(int(math.Ceil(r.MaxY/rowUnits)), 0, t.panelRows)
		for row := minRow; row < maxRow; row++ {
			for col := minCol; col < maxCol; col++ {
				t.screen.SetContent(x0+col, y0+row, ch, nil, style)
			}
		}
	}
}

// drawBorder draws a box with its top-left corner at (x, y)
func (t *TUIRenderer) drawBorder(x, y, w, h int) {
	for i := 1; i < w-1; i++ {
		t.screen.SetContent(x+i, y, tcell.RuneHLine, nil, styleBorder)
		t.screen.SetContent(x+i, y+h-1, tcell.RuneHLine, nil, styleBorder)
	}
	for j := 1; j < h-1; j++ {
		t.screen.SetContent(x, y+j, tcell.RuneVLine, nil, styleBorder)
		t.screen.SetContent(x+w-1, y+j, tcell.RuneVLine, nil, styleBorder)
	}
	t.screen.SetContent(x, y, tcell.RuneULCorner, nil, styleBorder)
	t.screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, styleBorder)
	t.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, styleBorder)
	t.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, styleBorder)
}

// drawText writes str starting at (x, y), one rune per cell
func (t *TUIRenderer) drawText(x, y int, str string, style tcell.Style) {
	if y < 0 || y >= t.height {
		return
	}
	for i, r := range []rune(str) {
		if x+i >= t.width {
			return
		}
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

var _ renderer.Renderer = (*TUIRenderer)(nil)

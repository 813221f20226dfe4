package ebiten

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"hkminimap/pkg/game/config"
	"hkminimap/pkg/game/gameplay"
	"hkminimap/pkg/game/renderer"
)

// EbitenRenderer draws the minimap panel over a plain window and drives
// the session from Ebiten's Update loop
type EbitenRenderer struct {
	session *gameplay.Session
	cfg     config.Config

	windowWidth  int
	windowHeight int

	// Backing texture for the map, sized to the viewport. Rooms are drawn
	// here and the texture is blitted into the panel, which clips them.
	mapTexture *ebiten.Image
	texWidth   int
	texHeight  int

	// Sprite images for the current container generation
	sprites    map[string]*ebiten.Image
	spritesGen int

	ctx context.Context

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// New creates a new Ebiten renderer for session
func New(session *gameplay.Session, cfg config.Config) *EbitenRenderer {
	return &EbitenRenderer{
		session:      session,
		cfg:          cfg,
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		sprites:      make(map[string]*ebiten.Image),
		spritesGen:   -1,
		ctx:          context.Background(),
	}
}

// Init sets up the window and hooks the texture reset to scene changes
func (e *EbitenRenderer) Init() error {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	ctrl := e.session.Controller()
	vp := ctrl.Viewport()
	if vp.X <= 0 || vp.Y <= 0 {
		return fmt.Errorf("invalid viewport %v", vp)
	}
	ctrl.OnSceneChange(func(string) { e.clearMapTexture() })
	return nil
}

// Run starts the Ebiten game loop and blocks until the window closes, the
// user quits or ctx is done
func (e *EbitenRenderer) Run(ctx context.Context) error {
	e.ctx = ctx
	e.session.Start()
	defer e.session.Close()

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// ShowMessage displays a message in the bottom-left message log
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.session.Controller().Notify(msg)
}

// GetViewportSize returns the minimap viewport in pixels
func (e *EbitenRenderer) GetViewportSize() (width, height int) {
	vp := e.session.Controller().Viewport()
	return int(vp.X), int(vp.Y)
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		log.Printf("window resized to %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

var _ renderer.Renderer = (*EbitenRenderer)(nil)

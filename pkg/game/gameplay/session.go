// Package gameplay ties the host game, user intents and the minimap
// controller into the single frame step every renderer drives.
package gameplay

import (
	"log"
	"time"

	"hkminimap/pkg/game/minimap"
)

// Game is the host the session drives. *sim.Host implements it.
type Game interface {
	minimap.Host
	EnterGame()
	QuitToMenu()
	InGame() bool
	Step()
}

// Session is one overlay run
type Session struct {
	game    Game
	ctrl    *minimap.Controller
	dumpDir string
	quit    bool
	now     time.Time
	logger  *log.Logger
}

// NewSession creates a session. Layout dumps are written to dumpDir.
func NewSession(game Game, ctrl *minimap.Controller, dumpDir string) *Session {
	return &Session{
		game:    game,
		ctrl:    ctrl,
		dumpDir: dumpDir,
		logger:  log.Default(),
	}
}

// SetLogger replaces the session's log destination
func (s *Session) SetLogger(l *log.Logger) {
	s.logger = l
}

// Controller returns the minimap controller
func (s *Session) Controller() *minimap.Controller {
	return s.ctrl
}

// Game returns the host game
func (s *Session) Game() Game {
	return s.game
}

// Start enters the game
func (s *Session) Start() {
	s.game.EnterGame()
}

// Step advances the host one frame and then runs the overlay frame
func (s *Session) Step(now time.Time) {
	s.now = now
	s.game.Step()
	s.ctrl.Tick(now)
}

// Quit reports whether the user asked to leave
func (s *Session) Quit() bool {
	return s.quit
}

// Close ends the game session and detaches the overlay
func (s *Session) Close() {
	if s.game.InGame() {
		s.game.QuitToMenu()
	}
	s.ctrl.Detach()
}

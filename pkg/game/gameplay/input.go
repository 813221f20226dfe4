package gameplay

import (
	"github.com/leonelquinteros/gotext"

	engineinput "hkminimap/pkg/engine/input"
	"hkminimap/pkg/game/devtools"
	"hkminimap/pkg/game/renderer"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func (s *Session) ProcessIntent(intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionQuit:
		s.logger.Print(gotext.Get("Goodbye"))
		s.quit = true
		return

	case engineinput.ActionDumpLayout:
		s.dumpLayout()
		return
	}

	if !s.ctrl.HandleAction(intent.Action) {
		s.notify(gotext.Get("Unknown command"))
	}
}

// dumpLayout writes the text dump and the HTML snapshot side by side
func (s *Session) dumpLayout() {
	path, err := devtools.DumpLayoutToFile(s.dumpDir, s.ctrl)
	if err != nil {
		s.logger.Printf("layout dump failed: %v", err)
		s.notify(gotext.Get("Layout dump failed: %v", err))
		return
	}
	s.notify(gotext.Get("Layout dumped to %s", path))

	html, err := devtools.SaveLayoutHTML(s.dumpDir, s.ctrl, s.now)
	if err != nil {
		s.logger.Printf("layout snapshot failed: %v", err)
		return
	}
	s.logger.Printf("layout dumped to %s and %s", path, html)
}

// notify shows msg through the active renderer, or straight in the
// controller's message log when none is installed
func (s *Session) notify(msg string) {
	if renderer.Current != nil {
		renderer.ShowMessage(msg)
		return
	}
	s.ctrl.Notify(msg)
}

// Package terminal answers questions about the process's standard streams.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stderr is a terminal, i.e. whether log output
// should carry ANSI colors.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// StdoutIsTerminal reports whether the terminal renderer has a screen to draw on.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

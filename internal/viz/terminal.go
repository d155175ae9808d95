package viz

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/san-kum/golife/internal/life"
)

// StdoutSize reports the size of the terminal attached to stdout.
type StdoutSize struct{}

func (StdoutSize) TerminalSize() (life.Size, error) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return life.Size{}, fmt.Errorf("viz: terminal size: %w", err)
	}
	return life.Size{Width: w, Height: h}, nil
}

// IsTerminal reports whether stdout is an interactive terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

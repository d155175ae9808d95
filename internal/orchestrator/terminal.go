package orchestrator

import (
	"time"

	"github.com/san-kum/golife/internal/life"
)

// TerminalSizer reports the current terminal dimensions in cells.
type TerminalSizer interface {
	TerminalSize() (life.Size, error)
}

// SizeFunc adapts a function to TerminalSizer.
type SizeFunc func() (life.Size, error)

func (f SizeFunc) TerminalSize() (life.Size, error) { return f() }

// FixedSize is a TerminalSizer that never changes.
type FixedSize life.Size

func (s FixedSize) TerminalSize() (life.Size, error) { return life.Size(s), nil }

// Clock supplies the time used by the tick scheduler.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

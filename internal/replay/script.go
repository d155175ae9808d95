// Package replay runs scripted editor sessions without a terminal.
//
// A script lists key presses, pointer presses and pauses. They are fed from
// a producer goroutine into the same event loop the interactive editor uses.
package replay

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/golife/internal/command"
	"github.com/san-kum/golife/internal/life"
)

var (
	ErrNoTerminal = errors.New("replay: terminal size must be positive")
	ErrEmptyStep  = errors.New("replay: step needs one of key, pointer or wait")
)

// Script is a recorded session.
type Script struct {
	Terminal        TerminalSize `yaml:"terminal"`
	GridMultiplier  int          `yaml:"grid_multiplier"`
	StartPaused     bool         `yaml:"start_paused"`
	SimulationDelay *int         `yaml:"simulation_delay,omitempty"` // ms
	Events          []Step       `yaml:"events"`
}

type TerminalSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func (t TerminalSize) Size() life.Size { return life.Size{Width: t.Width, Height: t.Height} }

// Point is a view-space cell.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Step is one scripted action. Exactly one of Key, Pointer and Wait is set.
type Step struct {
	Key     string `yaml:"key,omitempty"`
	Repeat  int    `yaml:"repeat,omitempty"`
	Pointer *Point `yaml:"pointer,omitempty"`
	Wait    string `yaml:"wait,omitempty"`

	wait time.Duration
}

// keyAliases maps script-friendly names to bubbletea key strings.
var keyAliases = map[string]string{
	"space":  " ",
	"escape": "esc",
	"return": "enter",
	"plus":   "+",
	"minus":  "-",
}

// Events expands the step into the events it sends.
func (s Step) Events() []command.Event {
	n := max(s.Repeat, 1)
	var ev command.Event
	switch {
	case s.Key != "":
		k := s.Key
		if alias, ok := keyAliases[k]; ok {
			k = alias
		}
		ev = command.Key(k)
	case s.Pointer != nil:
		ev = command.Pointer(command.PointerPress, command.ButtonLeft, s.Pointer.X, s.Pointer.Y)
	default:
		return nil
	}
	out := make([]command.Event, n)
	for i := range out {
		out[i] = ev
	}
	return out
}

// Validate checks sizes and steps and parses wait durations.
func (s *Script) Validate() error {
	if s.Terminal.Width <= 0 || s.Terminal.Height <= 0 {
		return ErrNoTerminal
	}
	if s.GridMultiplier < 0 {
		return fmt.Errorf("replay: grid_multiplier must be >= 0, got %d", s.GridMultiplier)
	}
	if s.SimulationDelay != nil && *s.SimulationDelay < 0 {
		return fmt.Errorf("replay: simulation_delay must be >= 0, got %d", *s.SimulationDelay)
	}
	for i := range s.Events {
		st := &s.Events[i]
		set := 0
		if st.Key != "" {
			set++
		}
		if st.Pointer != nil {
			set++
		}
		if st.Wait != "" {
			set++
			d, err := time.ParseDuration(st.Wait)
			if err != nil {
				return fmt.Errorf("replay: step %d: %w", i, err)
			}
			st.wait = d
		}
		if set != 1 {
			return fmt.Errorf("step %d: %w", i, ErrEmptyStep)
		}
	}
	return nil
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("replay: parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: read script: %w", err)
	}
	return Parse(data)
}

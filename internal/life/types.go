package life

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Health is the state of a single cell. It serializes to 1 (Alive) or 0 (Dead).
type Health uint8

const (
	Dead  Health = 0
	Alive Health = 1
)

func (h Health) String() string {
	if h == Alive {
		return "alive"
	}
	return "dead"
}

// Symbol is the glyph used for plain-text dumps of a grid.
func (h Health) Symbol() rune {
	if h == Alive {
		return '@'
	}
	return ' '
}

func (h Health) MarshalJSON() ([]byte, error) {
	if h == Alive {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (h *Health) UnmarshalJSON(data []byte) error {
	v, err := parseHealth(string(bytes.TrimSpace(data)))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

func (h *Health) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected 0 or 1", ErrInvalidHealth, node.Line)
	}
	v, err := parseHealth(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*h = v
	return nil
}

func parseHealth(s string) (Health, error) {
	n, err := strconv.Atoi(s)
	if err != nil || (n != 0 && n != 1) {
		return Dead, fmt.Errorf("%w: %q", ErrInvalidHealth, s)
	}
	return Health(n), nil
}

// Size describes the dimensions of a grid or a viewport.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("(%dx%d)", s.Width, s.Height)
}

// Area returns Width*Height, zero for degenerate sizes.
func (s Size) Area() int {
	if s.Width <= 0 || s.Height <= 0 {
		return 0
	}
	return s.Width * s.Height
}

// Scale multiplies both dimensions by factor.
func (s Size) Scale(factor int) Size {
	return Size{Width: s.Width * factor, Height: s.Height * factor}
}

// Cap limits each dimension to the given maximum; a zero maximum leaves that
// dimension alone.
func (s Size) Cap(maxWidth, maxHeight int) Size {
	if maxWidth > 0 && s.Width > maxWidth {
		s.Width = maxWidth
	}
	if maxHeight > 0 && s.Height > maxHeight {
		s.Height = maxHeight
	}
	return s
}

// Coordinates is a cell position. Whether it is view-space or grid-space
// depends on where it came from.
type Coordinates struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(x: %d, y: %d)", c.X, c.Y)
}

// SaturatingSub subtracts b from a, stopping at zero.
func SaturatingSub(a, b int) int {
	if a <= b {
		return 0
	}
	return a - b
}

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

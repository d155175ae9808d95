// Package pattern holds the catalog of stampable shapes and their rotation.
package pattern

import (
	"fmt"
	"strings"

	"github.com/san-kum/golife/internal/life"
)

// Pattern is a named rectangular shape. RotationCount is cosmetic and counts
// quarter turns mod 4.
type Pattern struct {
	Name          string          `json:"name" yaml:"name"`
	Matrix        [][]life.Health `json:"matrix" yaml:"matrix"`
	RotationCount int             `json:"rotation_count,omitempty" yaml:"rotation_count,omitempty"`
}

// PatternType groups related patterns. Order matters: the numeric keys
// address Patterns by position.
type PatternType struct {
	Name     string    `json:"name" yaml:"name"`
	Patterns []Pattern `json:"patterns" yaml:"patterns"`
}

// Catalog is the ordered list of pattern types available to the editor.
type Catalog []PatternType

// Size returns the bounding box of the matrix.
func (p Pattern) Size() life.Size {
	if len(p.Matrix) == 0 {
		return life.Size{}
	}
	return life.Size{Width: len(p.Matrix[0]), Height: len(p.Matrix)}
}

// Validate checks that the matrix is rectangular with at least one row and
// one column.
func (p Pattern) Validate() error {
	if len(p.Matrix) == 0 || len(p.Matrix[0]) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyMatrix, p.Name)
	}
	for i, row := range p.Matrix {
		if len(row) != len(p.Matrix[0]) {
			return fmt.Errorf("%w: %q row %d has %d cells, want %d",
				ErrRaggedMatrix, p.Name, i, len(row), len(p.Matrix[0]))
		}
	}
	return nil
}

// Preview renders the matrix with '@' for alive cells and '.' for dead ones.
func (p Pattern) Preview() string {
	var b strings.Builder
	for _, row := range p.Matrix {
		for _, h := range row {
			if h == life.Alive {
				b.WriteByte('@')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Rotate90 returns p turned a quarter clockwise: the R×C matrix is transposed
// and each resulting row reversed, giving a C×R matrix. p is not modified.
func Rotate90(p Pattern) Pattern {
	rows := len(p.Matrix)
	cols := 0
	if rows > 0 {
		cols = len(p.Matrix[0])
	}
	out := make([][]life.Health, cols)
	for c := 0; c < cols; c++ {
		out[c] = make([]life.Health, rows)
		for r := 0; r < rows; r++ {
			out[c][rows-1-r] = p.Matrix[r][c]
		}
	}
	return Pattern{
		Name:          p.Name,
		Matrix:        out,
		RotationCount: (p.RotationCount + 1) % 4,
	}
}

// Get returns the pattern at (typeIdx, patIdx).
func (c Catalog) Get(typeIdx, patIdx int) (Pattern, bool) {
	if typeIdx < 0 || typeIdx >= len(c) {
		return Pattern{}, false
	}
	pats := c[typeIdx].Patterns
	if patIdx < 0 || patIdx >= len(pats) {
		return Pattern{}, false
	}
	return pats[patIdx], true
}

// Rotate replaces the catalog entry at (typeIdx, patIdx) with its quarter
// turn. Every later lookup of that entry sees the rotated matrix.
func (c Catalog) Rotate(typeIdx, patIdx int) (Pattern, bool) {
	p, ok := c.Get(typeIdx, patIdx)
	if !ok {
		return Pattern{}, false
	}
	r := Rotate90(p)
	c[typeIdx].Patterns[patIdx] = r
	return r, true
}

// Validate rejects empty catalogs, empty types, and empty or ragged matrices.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCatalog
	}
	for _, t := range c {
		if len(t.Patterns) == 0 {
			return fmt.Errorf("%w: type %q has no patterns", ErrEmptyCatalog, t.Name)
		}
		for _, p := range t.Patterns {
			if err := p.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Clone deep-copies the catalog so rotations do not leak between owners.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for i, t := range c {
		out[i] = PatternType{Name: t.Name, Patterns: make([]Pattern, len(t.Patterns))}
		for j, p := range t.Patterns {
			m := make([][]life.Health, len(p.Matrix))
			for k, row := range p.Matrix {
				m[k] = append([]life.Health(nil), row...)
			}
			out[i].Patterns[j] = Pattern{Name: p.Name, Matrix: m, RotationCount: p.RotationCount}
		}
	}
	return out
}

// Default returns the built-in catalog: a single "default" type holding a
// horizontal blinker.
func Default() Catalog {
	return Catalog{{
		Name: "default",
		Patterns: []Pattern{{
			Name:   "blinker",
			Matrix: [][]life.Health{{life.Alive, life.Alive, life.Alive}},
		}},
	}}
}

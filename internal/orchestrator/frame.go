package orchestrator

import (
	"time"

	"github.com/san-kum/golife/internal/command"
	"github.com/san-kum/golife/internal/life"
)

// PatternTypeInfo names a pattern type and its patterns in catalog order.
type PatternTypeInfo struct {
	Name     string
	Patterns []string
}

// Frame is a read-only snapshot of everything a renderer draws.
type Frame struct {
	Mode command.Mode

	// Cells holds the visible window row by row.
	Cells      [][]life.Health
	Cursor     life.Coordinates
	GridCursor life.Coordinates
	Offset     life.Coordinates

	Terminal     life.Size
	GridSize     life.Size
	ViewportSize life.Size

	// Grid is a copy of the whole grid, for overviews.
	Grid *life.Grid

	Running    bool
	Delay      time.Duration
	Generation int
	Population int
	History    []int
	Stats      map[string]float64

	PatternType     string
	LastPattern     string
	RotationDegrees int

	Gallery      []GalleryNode
	PatternTypes []PatternTypeInfo
}

// Frame captures the current state.
func (o *Orchestrator) Frame() Frame {
	vs := o.view.Size()
	cells := make([][]life.Health, vs.Height)
	for y := range cells {
		cells[y] = make([]life.Health, vs.Width)
		for x := range cells[y] {
			h, _ := o.grid.Cell(o.view.ViewToGrid(life.Coordinates{X: x, Y: y}))
			cells[y][x] = h
		}
	}

	last := "none"
	degrees := 0
	if p, ok := o.catalog.Get(o.patternType, o.lastPattern); ok {
		last = p.Name
		degrees = o.rotation * 90
	}

	types := make([]PatternTypeInfo, len(o.catalog))
	for i, t := range o.catalog {
		types[i].Name = t.Name
		for _, p := range t.Patterns {
			types[i].Patterns = append(types[i].Patterns, p.Name)
		}
	}

	return Frame{
		Mode:            o.mode,
		Cells:           cells,
		Cursor:          o.cursor,
		GridCursor:      o.GridCursor(),
		Offset:          o.view.Offset(),
		Terminal:        o.terminal,
		GridSize:        o.grid.Size(),
		ViewportSize:    vs,
		Grid:            o.grid.Clone(),
		Running:         o.running,
		Delay:           o.delay,
		Generation:      o.generation,
		Population:      o.grid.Population(),
		History:         o.History(),
		Stats:           o.Stats(),
		PatternType:     o.catalog[o.patternType].Name,
		LastPattern:     last,
		RotationDegrees: degrees,
		Gallery:         o.GalleryNodes(),
		PatternTypes:    types,
	}
}

package life

import "strings"

// neighborhood lists the eight relative positions around a cell.
var neighborhood = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is a fixed-size rectangular cell store. Cells live in row-major order
// in cur; next is the scratch buffer Generate writes into before swapping.
type Grid struct {
	size Size
	cur  []Health
	next []Health
}

// NewGrid allocates a grid with every cell dead. Negative dimensions are
// treated as zero.
func NewGrid(size Size) *Grid {
	if size.Width < 0 {
		size.Width = 0
	}
	if size.Height < 0 {
		size.Height = 0
	}
	n := size.Area()
	return &Grid{size: size, cur: make([]Health, n), next: make([]Health, n)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return g.size }

func (g *Grid) inBounds(c Coordinates) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.size.Width && c.Y < g.size.Height
}

func (g *Grid) index(x, y int) int { return y*g.size.Width + x }

// Cell returns the health at c and false when c lies outside the grid.
func (g *Grid) Cell(c Coordinates) (Health, bool) {
	if !g.inBounds(c) {
		return Dead, false
	}
	return g.cur[g.index(c.X, c.Y)], true
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) ([]Health, bool) {
	if y < 0 || y >= g.size.Height {
		return nil, false
	}
	row := make([]Health, g.size.Width)
	start := g.index(0, y)
	copy(row, g.cur[start:start+g.size.Width])
	return row, true
}

// Set writes h at c. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coordinates, h Health) {
	if !g.inBounds(c) {
		return
	}
	g.cur[g.index(c.X, c.Y)] = h
}

// Resurrect marks the cell at c alive.
func (g *Grid) Resurrect(c Coordinates) { g.Set(c, Alive) }

// Kill marks the cell at c dead.
func (g *Grid) Kill(c Coordinates) { g.Set(c, Dead) }

// Toggle flips the cell at c.
func (g *Grid) Toggle(c Coordinates) {
	if h, ok := g.Cell(c); ok {
		g.Set(c, 1-h)
	}
}

// Shape stamps matrix with its top-left corner at origin. Rows and columns
// that would land outside the grid are dropped.
func (g *Grid) Shape(origin Coordinates, matrix [][]Health) {
	for dy, row := range matrix {
		y := origin.Y + dy
		if y >= g.size.Height {
			break
		}
		if y < 0 {
			continue
		}
		for dx, h := range row {
			x := origin.X + dx
			if x >= g.size.Width {
				break
			}
			if x < 0 {
				continue
			}
			g.cur[g.index(x, y)] = h
		}
	}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = Dead
	}
}

// LiveNeighbors counts the living cells among the up to eight on-grid
// neighbours of c.
func (g *Grid) LiveNeighbors(c Coordinates) int {
	n := 0
	for _, d := range neighborhood {
		x, y := c.X+d[0], c.Y+d[1]
		if x < 0 || y < 0 || x >= g.size.Width || y >= g.size.Height {
			continue
		}
		if g.cur[g.index(x, y)] == Alive {
			n++
		}
	}
	return n
}

// NextHealth applies Conway's rule to a cell with the given number of living
// neighbours.
func NextHealth(h Health, neighbors int) Health {
	switch {
	case h == Alive && (neighbors == 2 || neighbors == 3):
		return Alive
	case h == Dead && neighbors == 3:
		return Alive
	default:
		return Dead
	}
}

// Generate advances the grid by one generation and returns how many cells
// changed. Every next state is computed from the current buffer before any
// of them is committed. Tall grids are split into row bands computed
// concurrently.
func (g *Grid) Generate() int {
	changed := parallelRows(g.size.Height, minRowsPerWorker, g.generateRows)
	g.cur, g.next = g.next, g.cur
	return changed
}

// generateRows writes rows [start, end) of the next generation.
func (g *Grid) generateRows(start, end int) int {
	changed := 0
	for y := start; y < end; y++ {
		for x := 0; x < g.size.Width; x++ {
			idx := g.index(x, y)
			nh := NextHealth(g.cur[idx], g.LiveNeighbors(Coordinates{X: x, Y: y}))
			if nh != g.cur[idx] {
				changed++
			}
			g.next[idx] = nh
		}
	}
	return changed
}

// Population counts living cells.
func (g *Grid) Population() int {
	n := 0
	for _, h := range g.cur {
		if h == Alive {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i := range g.cur {
		if g.cur[i] != other.cur[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.size)
	copy(c.cur, g.cur)
	return c
}

// String renders one line per row, '@' for alive and ' ' for dead.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.size.Height; y++ {
		for x := 0; x < g.size.Width; x++ {
			b.WriteRune(g.cur[g.index(x, y)].Symbol())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

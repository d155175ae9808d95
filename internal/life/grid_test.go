package life

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func matrix(rows ...string) [][]Health {
	m := make([][]Health, len(rows))
	for i, r := range rows {
		m[i] = make([]Health, len(r))
		for j, c := range r {
			if c == '1' || c == '@' {
				m[i][j] = Alive
			}
		}
	}
	return m
}

func gridWith(size Size, origin Coordinates, rows ...string) *Grid {
	g := NewGrid(size)
	g.Shape(origin, matrix(rows...))
	return g
}

func TestNewGrid(t *testing.T) {
	g := NewGrid(Size{Width: 4, Height: 3})
	assert.Equal(t, Size{Width: 4, Height: 3}, g.Size())
	assert.Equal(t, 0, g.Population())

	for y := 0; y < 3; y++ {
		row, ok := g.Row(y)
		require.True(t, ok)
		assert.Len(t, row, 4)
	}

	_, ok := g.Row(3)
	assert.False(t, ok)
	_, ok = g.Row(-1)
	assert.False(t, ok)

	neg := NewGrid(Size{Width: -2, Height: 5})
	assert.Equal(t, Size{Width: 0, Height: 5}, neg.Size())
}

func TestCellBounds(t *testing.T) {
	g := NewGrid(Size{Width: 3, Height: 3})
	tests := []struct {
		c  Coordinates
		ok bool
	}{
		{Coordinates{0, 0}, true},
		{Coordinates{2, 2}, true},
		{Coordinates{3, 0}, false},
		{Coordinates{0, 3}, false},
		{Coordinates{-1, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			_, ok := g.Cell(tt.c)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestResurrectKillOutOfBoundsIgnored(t *testing.T) {
	g := NewGrid(Size{Width: 2, Height: 2})
	g.Resurrect(Coordinates{X: 1, Y: 1})
	g.Resurrect(Coordinates{X: 5, Y: 5})
	g.Kill(Coordinates{X: -1, Y: 0})
	assert.Equal(t, 1, g.Population())

	g.Kill(Coordinates{X: 1, Y: 1})
	assert.Equal(t, 0, g.Population())

	g.Toggle(Coordinates{X: 0, Y: 0})
	h, _ := g.Cell(Coordinates{X: 0, Y: 0})
	assert.Equal(t, Alive, h)
	g.Toggle(Coordinates{X: 0, Y: 0})
	h, _ = g.Cell(Coordinates{X: 0, Y: 0})
	assert.Equal(t, Dead, h)
}

func TestShapeClipsAtEdges(t *testing.T) {
	g := NewGrid(Size{Width: 4, Height: 3})
	g.Shape(Coordinates{X: 2, Y: 1}, matrix("111", "111", "111"))

	want := gridWith(Size{Width: 4, Height: 3}, Coordinates{}, "0000", "0011", "0011")
	assert.True(t, g.Equal(want), "got\n%s", g)
}

func TestShapeOverwritesDeadCells(t *testing.T) {
	g := NewGrid(Size{Width: 3, Height: 1})
	g.Shape(Coordinates{}, matrix("111"))
	g.Shape(Coordinates{}, matrix("010"))
	assert.Equal(t, 1, g.Population())
}

func TestNextHealthTable(t *testing.T) {
	for _, state := range []Health{Alive, Dead} {
		for n := 0; n <= 8; n++ {
			want := Dead
			if (state == Alive && (n == 2 || n == 3)) || (state == Dead && n == 3) {
				want = Alive
			}
			assert.Equal(t, want, NextHealth(state, n), "state=%v n=%d", state, n)
		}
	}
}

// Every (state, count) pair is exercised on a real grid: the centre cell of
// a 5x5 grid gets exactly n living neighbours.
func TestGenerateRuleOnIsolatedCell(t *testing.T) {
	center := Coordinates{X: 2, Y: 2}
	for _, state := range []Health{Alive, Dead} {
		for n := 0; n <= 8; n++ {
			t.Run(fmt.Sprintf("%s/%d", state, n), func(t *testing.T) {
				g := NewGrid(Size{Width: 5, Height: 5})
				g.Set(center, state)
				for i := 0; i < n; i++ {
					d := neighborhood[i]
					g.Resurrect(Coordinates{X: center.X + d[0], Y: center.Y + d[1]})
				}
				require.Equal(t, n, g.LiveNeighbors(center))

				g.Generate()
				got, _ := g.Cell(center)
				assert.Equal(t, NextHealth(state, n), got)
			})
		}
	}
}

// naiveNext computes the next generation scanning bottom-right to top-left
// into a separate grid.
func naiveNext(g *Grid) *Grid {
	out := NewGrid(g.Size())
	for y := g.size.Height - 1; y >= 0; y-- {
		for x := g.size.Width - 1; x >= 0; x-- {
			c := Coordinates{X: x, Y: y}
			h, _ := g.Cell(c)
			out.Set(c, NextHealth(h, g.LiveNeighbors(c)))
		}
	}
	return out
}

func TestGenerateIsOrderIndependent(t *testing.T) {
	g := gridWith(Size{Width: 8, Height: 6}, Coordinates{},
		"01101000",
		"11010011",
		"00111010",
		"10100101",
		"01011100",
		"11000111",
	)
	for i := 0; i < 5; i++ {
		want := naiveNext(g)
		g.Generate()
		require.True(t, g.Equal(want), "generation %d differs\n%s\nvs\n%s", i, g, want)
	}
}

func TestGenerateLargeGridMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := NewGrid(Size{Width: 90, Height: 4*minRowsPerWorker + 7})
	for i := 0; i < g.size.Area()/3; i++ {
		g.Resurrect(Coordinates{X: rng.Intn(g.size.Width), Y: rng.Intn(g.size.Height)})
	}
	for i := 0; i < 3; i++ {
		want := naiveNext(g)
		changed := 0
		for j := range g.cur {
			if g.cur[j] != want.cur[j] {
				changed++
			}
		}
		assert.Equal(t, changed, g.Generate())
		require.True(t, g.Equal(want), "generation %d differs", i)
	}
}

func TestParallelRowsCoversRange(t *testing.T) {
	for _, n := range []int{0, 1, 63, 64, 200, 1001} {
		seen := make([]int, n)
		total := parallelRows(n, 16, func(start, end int) int {
			for i := start; i < end; i++ {
				seen[i]++
			}
			return end - start
		})
		assert.Equal(t, n, total)
		for i, c := range seen {
			assert.Equal(t, 1, c, "n=%d row %d", n, i)
		}
	}
}

func TestBlinker(t *testing.T) {
	size := Size{Width: 5, Height: 5}
	horizontal := gridWith(size, Coordinates{X: 1, Y: 2}, "111")
	vertical := gridWith(size, Coordinates{X: 2, Y: 1}, "1", "1", "1")

	g := horizontal.Clone()
	g.Generate()
	assert.True(t, g.Equal(vertical), "after 1 generation:\n%s", g)
	g.Generate()
	assert.True(t, g.Equal(horizontal), "after 2 generations:\n%s", g)
}

func TestGlider(t *testing.T) {
	size := Size{Width: 10, Height: 10}
	glider := []string{"010", "001", "111"}
	g := gridWith(size, Coordinates{X: 1, Y: 1}, glider...)
	for i := 0; i < 4; i++ {
		g.Generate()
	}
	want := gridWith(size, Coordinates{X: 2, Y: 2}, glider...)
	assert.True(t, g.Equal(want), "got\n%s", g)
}

func TestHardEdgesDoNotWrap(t *testing.T) {
	// A blinker on the left edge would survive on a torus; here it loses
	// its off-grid half.
	g := gridWith(Size{Width: 3, Height: 3}, Coordinates{}, "100", "100", "100")
	assert.Equal(t, 0, g.LiveNeighbors(Coordinates{X: 2, Y: 1}))
	g.Generate()
	want := gridWith(Size{Width: 3, Height: 3}, Coordinates{}, "000", "110", "000")
	assert.True(t, g.Equal(want), "got\n%s", g)
}

func TestGenerateDegenerateGrids(t *testing.T) {
	for _, size := range []Size{{0, 0}, {1, 1}, {1, 4}, {4, 1}} {
		g := NewGrid(size)
		g.Resurrect(Coordinates{})
		assert.NotPanics(t, func() { g.Generate() }, "size %v", size)
		assert.Equal(t, 0, g.Population(), "size %v", size)
	}
}

func TestGenerateReportsChanges(t *testing.T) {
	g := gridWith(Size{Width: 5, Height: 5}, Coordinates{X: 1, Y: 2}, "111")
	assert.Equal(t, 4, g.Generate())

	block := gridWith(Size{Width: 4, Height: 4}, Coordinates{X: 1, Y: 1}, "11", "11")
	assert.Equal(t, 0, block.Generate())
}

func TestRowIsACopy(t *testing.T) {
	g := NewGrid(Size{Width: 2, Height: 1})
	row, _ := g.Row(0)
	row[0] = Alive
	assert.Equal(t, 0, g.Population())
}

func TestHealthEncoding(t *testing.T) {
	data, err := json.Marshal([][]Health{{Alive, Dead}})
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,0]]`, string(data))

	var m [][]Health
	require.NoError(t, json.Unmarshal([]byte(`[[0,1,1]]`), &m))
	assert.Equal(t, [][]Health{{Dead, Alive, Alive}}, m)

	assert.ErrorIs(t, json.Unmarshal([]byte(`[[2]]`), &m), ErrInvalidHealth)

	var y [][]Health
	require.NoError(t, yaml.Unmarshal([]byte("- [1, 0]\n- [0, 1]\n"), &y))
	assert.Equal(t, [][]Health{{Alive, Dead}, {Dead, Alive}}, y)
	assert.ErrorIs(t, yaml.Unmarshal([]byte("- [7]\n"), &y), ErrInvalidHealth)
}

func TestSizeHelpers(t *testing.T) {
	s := Size{Width: 80, Height: 24}
	assert.Equal(t, Size{Width: 240, Height: 72}, s.Scale(3))
	assert.Equal(t, Size{Width: 100, Height: 72}, s.Scale(3).Cap(100, 0))
	assert.Equal(t, 0, Size{Width: -1, Height: 3}.Area())
	assert.Equal(t, "(80x24)", s.String())

	assert.Equal(t, 0, SaturatingSub(2, 5))
	assert.Equal(t, 3, SaturatingSub(5, 2))
	assert.Equal(t, 0, Clamp(-4, 0, 9))
	assert.Equal(t, 9, Clamp(12, 0, 9))
	assert.Equal(t, 0, Clamp(3, 0, -1))
}

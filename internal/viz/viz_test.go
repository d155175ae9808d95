package viz

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/golife/internal/command"
	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/orchestrator"
	"github.com/san-kum/golife/internal/pattern"
)

func newModel(t *testing.T, term orchestrator.TerminalSizer, paused bool) (Model, *orchestrator.Orchestrator, *Renderer) {
	t.Helper()
	r := NewRenderer(ThemeMono, DefaultGalleryWidth)
	opts := orchestrator.DefaultOptions()
	opts.Chrome = r.Chrome()
	opts.StartPaused = paused
	o, err := orchestrator.New(pattern.Default(), term, opts)
	require.NoError(t, err)
	return NewModel(o, r), o, r
}

func keyMsg(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func TestChrome(t *testing.T) {
	r := NewRenderer(ThemeClassic, 20)
	assert.Equal(t, life.Size{Width: 20, Height: 6}, r.Chrome())

	assert.Equal(t, life.Size{Width: 0, Height: 6}, NewRenderer(ThemeClassic, -3).Chrome())
}

func TestCanvasPosition(t *testing.T) {
	r := NewRenderer(ThemeClassic, 20)
	terminal := life.Size{Width: 80, Height: 24}

	tests := []struct {
		name string
		x, y int
		want life.Coordinates
		ok   bool
	}{
		{"top left of canvas", 0, 3, life.Coordinates{}, true},
		{"inside", 10, 8, life.Coordinates{X: 10, Y: 5}, true},
		{"last canvas cell", 59, 20, life.Coordinates{X: 59, Y: 17}, true},
		{"header", 10, 2, life.Coordinates{}, false},
		{"footer", 10, 21, life.Coordinates{}, false},
		{"panel", 60, 10, life.Coordinates{}, false},
		{"negative", -1, 5, life.Coordinates{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.CanvasPosition(tt.x, tt.y, terminal)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderNormal(t *testing.T) {
	_, o, r := newModel(t, orchestrator.FixedSize{Width: 140, Height: 30}, true)
	_, err := o.Dispatch(command.Key("1"))
	require.NoError(t, err)

	out := r.Render(o.Frame())
	assert.Contains(t, out, "golife - Game of Life (mode: Normal)")
	assert.Contains(t, out, "paused")
	assert.Contains(t, out, "last: blinker")
	assert.Contains(t, out, "▼ default")
	assert.Contains(t, out, "@")
	assert.Equal(t, 30, lipgloss.Height(out))
}

func TestRenderGalleryAndHelp(t *testing.T) {
	_, o, r := newModel(t, orchestrator.FixedSize{Width: 160, Height: 60}, false)

	_, err := o.Dispatch(command.Key("g"))
	require.NoError(t, err)
	out := r.Render(o.Frame())
	assert.Contains(t, out, "(mode: Pattern Gallery)")

	_, err = o.Dispatch(command.Key("esc"))
	require.NoError(t, err)
	_, err = o.Dispatch(command.Key("?"))
	require.NoError(t, err)
	out = r.Render(o.Frame())
	assert.Contains(t, out, "(mode: Help)")
	assert.Contains(t, out, "Patterns")
	assert.Contains(t, out, "default: 1 blinker")
	assert.Contains(t, out, "esc/h close help")
}

func TestRenderTinyTerminal(t *testing.T) {
	_, o, r := newModel(t, orchestrator.FixedSize{Width: 10, Height: 4}, false)
	assert.NotPanics(t, func() { r.Render(o.Frame()) })
}

func TestModelKeys(t *testing.T) {
	m, o, _ := newModel(t, orchestrator.FixedSize{Width: 80, Height: 24}, true)

	before := o.GridCursor()
	next, cmd := m.Update(keyMsg("a"))
	assert.Nil(t, cmd)
	h, _ := o.Grid().Cell(before)
	assert.Equal(t, life.Alive, h)
	assert.Equal(t, life.Coordinates{X: before.X + 1, Y: before.Y}, o.GridCursor(), "painting advances the cursor")
	h, _ = o.Grid().Cell(o.GridCursor())
	assert.Equal(t, life.Dead, h)

	_, cmd = next.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelMouse(t *testing.T) {
	m, o, _ := newModel(t, orchestrator.FixedSize{Width: 80, Height: 24}, true)
	start := o.Cursor()

	m.Update(tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, start, o.Cursor(), "clicks on the header are ignored")

	m.Update(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, life.Coordinates{X: 5, Y: 2}, o.Cursor())

	m.Update(tea.MouseMsg{X: 7, Y: 6, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assert.Equal(t, life.Coordinates{X: 7, Y: 3}, o.Cursor())

	m.Update(tea.MouseMsg{X: 9, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.Equal(t, life.Coordinates{X: 7, Y: 3}, o.Cursor())
}

func TestModelResizeAndTick(t *testing.T) {
	m, o, _ := newModel(t, orchestrator.FixedSize{Width: 80, Height: 24}, false)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, life.Size{Width: 72, Height: 24}, o.Viewport().Size())
	assert.Equal(t, life.Size{Width: 100, Height: 30}, o.Terminal())

	_, cmd := m.Update(tickMsg{})
	assert.NotNil(t, cmd)
	assert.NotNil(t, m.Init())
}

func TestModelStopsOnCommandError(t *testing.T) {
	calls := 0
	sizer := orchestrator.SizeFunc(func() (life.Size, error) {
		calls++
		if calls > 1 {
			return life.Size{}, errors.New("no tty")
		}
		return life.Size{Width: 80, Height: 24}, nil
	})
	m, _, _ := newModel(t, sizer, true)

	next, cmd := m.Update(keyMsg("c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Error(t, next.(Model).Err())
	assert.Empty(t, next.View())
}

func TestMinimap(t *testing.T) {
	g := life.NewGrid(life.Size{Width: 8, Height: 8})
	g.Resurrect(life.Coordinates{X: 7, Y: 7})

	c := Minimap(g, life.Coordinates{}, life.Size{Width: 4, Height: 4}, 2, 1)
	assert.True(t, c.IsSet(3, 3), "alive cell maps to the last dot")
	assert.True(t, c.IsSet(0, 0), "window outline")
	assert.True(t, c.IsSet(1, 0))
	assert.False(t, c.IsSet(3, 0))

	empty := Minimap(life.NewGrid(life.Size{}), life.Coordinates{}, life.Size{}, 3, 2)
	assert.Equal(t, strings.Repeat(string(rune(brailleBlank)), 3)+"\n", strings.SplitAfter(empty.String(), "\n")[0])
}

func TestThemes(t *testing.T) {
	assert.Equal(t, "classic", GetTheme("nope").Name)
	assert.Equal(t, "neon", GetTheme("neon").Name)
	assert.True(t, HasTheme("ocean"))
	assert.False(t, HasTheme("plaid"))
	assert.Equal(t, []string{"classic", "mono", "neon", "ocean", "sunset"}, ThemeNames())
}

func TestSparkline(t *testing.T) {
	st := newStyles(ThemeClassic)
	assert.Equal(t, 6, lipgloss.Width(st.sparkline(nil, 6)))
	assert.Equal(t, 4, lipgloss.Width(st.sparkline([]int{1, 2, 3, 4, 5, 6, 7}, 4)))
	assert.Empty(t, st.sparkline([]int{1}, 0))
}

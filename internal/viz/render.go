package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/san-kum/golife/internal/command"
	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/orchestrator"
)

const (
	headerHeight = 3
	footerHeight = 3

	DefaultGalleryWidth = 28
)

// Renderer draws frames as strings: a header bar, the cell canvas with the
// pattern panel on its right, and a footer bar.
type Renderer struct {
	theme        Theme
	st           styles
	galleryWidth int
	keys         command.KeyMap
	help         help.Model
}

func NewRenderer(theme Theme, galleryWidth int) *Renderer {
	if galleryWidth < 0 {
		galleryWidth = 0
	}
	h := help.New()
	h.ShowAll = true
	return &Renderer{
		theme:        theme,
		st:           newStyles(theme),
		galleryWidth: galleryWidth,
		keys:         command.DefaultKeyMap(),
		help:         h,
	}
}

// Chrome is the terminal area not used by the canvas.
func (r *Renderer) Chrome() life.Size {
	return life.Size{Width: r.galleryWidth, Height: headerHeight + footerHeight}
}

// CanvasPosition maps a terminal cell to view-space. It reports false for
// cells outside the canvas.
func (r *Renderer) CanvasPosition(x, y int, terminal life.Size) (life.Coordinates, bool) {
	canvasW := terminal.Width - r.galleryWidth
	canvasH := terminal.Height - headerHeight - footerHeight
	cy := y - headerHeight
	if x < 0 || x >= canvasW || cy < 0 || cy >= canvasH {
		return life.Coordinates{}, false
	}
	return life.Coordinates{X: x, Y: cy}, true
}

// Render draws f at its terminal size.
func (r *Renderer) Render(f orchestrator.Frame) string {
	width := f.Terminal.Width
	bodyH := life.SaturatingSub(f.Terminal.Height, headerHeight+footerHeight)
	canvasW := life.SaturatingSub(width, r.galleryWidth)

	canvas := r.canvas(f, canvasW, bodyH)
	if f.Mode == command.ModeHelp {
		canvas = lipgloss.Place(canvasW, bodyH, lipgloss.Center, lipgloss.Center, r.helpOverlay(f))
	}
	body := canvas
	if r.galleryWidth >= 2 && bodyH >= 2 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, canvas, r.panel(f, bodyH))
	}

	return lipgloss.JoinVertical(lipgloss.Left, r.header(f, width), body, r.footer(f, width))
}

func modeLabel(m command.Mode) string {
	if m == command.ModeGallery {
		return "Pattern Gallery"
	}
	return m.String()
}

func (r *Renderer) header(f orchestrator.Frame, width int) string {
	inner := life.SaturatingSub(width, 4)
	title := fmt.Sprintf("golife - Game of Life (mode: %s)", modeLabel(f.Mode))
	title = runewidth.Truncate(title, inner, "…")

	hint := r.help.ShortHelpView(r.keys.ShortHelp())
	if f.Mode == command.ModeGallery {
		hint = r.help.ShortHelpView(r.keys.GalleryHelp())
	}
	line := title
	if gap := inner - runewidth.StringWidth(title) - lipgloss.Width(hint); gap >= 2 {
		line = title + strings.Repeat(" ", gap) + hint
	}
	return r.st.header.Width(life.SaturatingSub(width, 2)).Render(line)
}

func (r *Renderer) footer(f orchestrator.Frame, width int) string {
	status := r.st.running.Render("running")
	if !f.Running {
		status = r.st.paused.Render("paused")
	}
	text := fmt.Sprintf("grid %s, viewport %s, cursor %s, pattern: %s, last: %s, rotation: %d°, gen %d, pop %d, delay %dms",
		f.GridSize, f.ViewportSize, f.GridCursor, f.PatternType, f.LastPattern,
		f.RotationDegrees, f.Generation, f.Population, f.Delay.Milliseconds())
	inner := life.SaturatingSub(width, 4)
	text = runewidth.Truncate(text, life.SaturatingSub(inner, lipgloss.Width(status)+1), "…")
	return r.st.footer.Width(life.SaturatingSub(width, 2)).Render(status + " " + text)
}

func (r *Renderer) canvas(f orchestrator.Frame, width, height int) string {
	alive := r.st.alive.Render(r.theme.AliveCell)
	dead := r.st.dead.Render(r.theme.DeadCell)
	blank := strings.Repeat(" ", width)

	lines := make([]string, height)
	for y := 0; y < height; y++ {
		if y >= len(f.Cells) {
			lines[y] = blank
			continue
		}
		var b strings.Builder
		row := f.Cells[y]
		for x := 0; x < width; x++ {
			switch {
			case x >= len(row):
				b.WriteByte(' ')
			case f.Cursor.X == x && f.Cursor.Y == y && f.Mode == command.ModeNormal:
				glyph := r.theme.DeadCell
				if row[x] == life.Alive {
					glyph = r.theme.AliveCell
				}
				b.WriteString(r.st.cursor.Render(glyph))
			case row[x] == life.Alive:
				b.WriteString(alive)
			default:
				b.WriteString(dead)
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// panel draws the pattern tree with an overview map and population trend
// underneath when there is room.
func (r *Renderer) panel(f orchestrator.Frame, height int) string {
	inner := r.galleryWidth - 2
	rows := height - 2
	var lines []string

	for _, n := range f.Gallery {
		var text string
		if n.IsHeader() {
			arrow := "▶"
			if n.Expanded {
				arrow = "▼"
			}
			text = arrow + " " + n.Name
		} else {
			marker := " "
			if n.Last {
				marker = "*"
			}
			text = "  " + marker + " " + n.Name
		}
		text = runewidth.Truncate(text, inner, "…")
		switch {
		case n.Focused && f.Mode == command.ModeGallery:
			text = r.st.focused.Render(runewidth.FillRight(text, inner))
		case n.Last:
			text = r.st.marked.Render(text)
		}
		lines = append(lines, text)
	}

	const mapRows = 4
	if extra := rows - len(lines); extra >= mapRows+3 && inner > 0 {
		lines = append(lines, "", r.st.title.Render(runewidth.Truncate("overview", inner, "")))
		m := Minimap(f.Grid, f.Offset, f.ViewportSize, inner, mapRows)
		lines = append(lines, strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")...)
		lines = append(lines, r.st.sparkline(f.History, inner))
	}
	if len(lines) > rows {
		lines = lines[:max(rows, 0)]
	}

	return r.st.panel.
		Width(inner).
		Height(max(rows, 0)).
		Render(strings.Join(lines, "\n"))
}

func (r *Renderer) helpOverlay(f orchestrator.Frame) string {
	var b strings.Builder
	b.WriteString(r.st.title.Render("Keys") + "\n\n")
	b.WriteString(r.help.FullHelpView(r.keys.FullHelp()) + "\n\n")
	b.WriteString(r.st.title.Render("Patterns") + "\n")
	for _, t := range f.PatternTypes {
		var items []string
		for i, name := range t.Patterns {
			if i >= 9 {
				break
			}
			items = append(items, fmt.Sprintf("%d %s", i+1, name))
		}
		b.WriteString(fmt.Sprintf("%s: %s\n", t.Name, strings.Join(items, "  ")))
	}
	b.WriteString("\n" + r.st.muted.Render("esc/h close help"))
	return r.st.overlay.Render(b.String())
}

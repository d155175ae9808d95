package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles is the lipgloss palette of one theme.
type styles struct {
	alive, dead, cursor lipgloss.Style
	header, footer      lipgloss.Style
	panel, overlay      lipgloss.Style
	title, muted        lipgloss.Style
	marked, focused     lipgloss.Style
	running, paused     lipgloss.Style
	sparkHigh, sparkLow lipgloss.Style
}

func newStyles(t Theme) styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
	return styles{
		alive:  lipgloss.NewStyle().Foreground(t.Alive),
		dead:   lipgloss.NewStyle().Foreground(t.Muted),
		cursor: lipgloss.NewStyle().Foreground(t.Dead).Background(t.Cursor),

		header: box.Foreground(t.Title).Bold(true).Padding(0, 1),
		footer: box.Foreground(t.Text).Padding(0, 1),
		panel:  box,
		overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.Accent).
			Padding(1, 2),

		title:   lipgloss.NewStyle().Foreground(t.Title).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(t.Muted),
		marked:  lipgloss.NewStyle().Foreground(t.Accent),
		focused: lipgloss.NewStyle().Foreground(t.Dead).Background(t.Accent).Bold(true),
		running: lipgloss.NewStyle().Foreground(t.Running).Bold(true),
		paused:  lipgloss.NewStyle().Foreground(t.Paused).Bold(true),

		sparkHigh: lipgloss.NewStyle().Foreground(t.Running),
		sparkLow:  lipgloss.NewStyle().Foreground(t.Muted),
	}
}

// sparkline renders the last width values as block characters scaled between
// their minimum and maximum.
func (s styles) sparkline(values []int, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return s.muted.Render(strings.Repeat("─", width))
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	var b strings.Builder
	for _, v := range values {
		norm := float64(v-lo) / float64(rng)
		c := string(chars[int(norm*float64(len(chars)-1))])
		if norm > 0.5 {
			b.WriteString(s.sparkHigh.Render(c))
		} else {
			b.WriteString(s.sparkLow.Render(c))
		}
	}
	return b.String()
}

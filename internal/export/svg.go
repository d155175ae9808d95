// Package export writes grids and population histories as SVG images.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/golife/internal/life"
)

// Colors of an exported image.
type Colors struct {
	Background string
	Alive      string
	Line       string
}

var DefaultColors = Colors{Background: "#0a0a0a", Alive: "#00ff88", Line: "#00ffff"}

// GridToSVG draws every living cell as a square of cellSize pixels. Runs of
// living cells on a row share one rect.
func GridToSVG(g *life.Grid, cellSize int, colors Colors) string {
	if g == nil {
		return ""
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	size := g.Size()
	width, height := size.Width*cellSize, size.Height*cellSize

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, colors.Background, colors.Alive))

	for y := 0; y < size.Height; y++ {
		row, _ := g.Row(y)
		for x := 0; x < len(row); {
			if row[x] != life.Alive {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] == life.Alive {
				x++
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d"/>
`, start*cellSize, y*cellSize, (x-start)*cellSize, cellSize))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// HistoryToSVG plots population per generation as a polyline. It returns ""
// for fewer than two samples.
func HistoryToSVG(history []int, width, height int, colors Colors) string {
	if len(history) < 2 || width <= 0 || height <= 0 {
		return ""
	}

	lo, hi := history[0], history[0]
	for _, v := range history {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := float64(hi - lo)
	if span == 0 {
		span = 1
	}
	// 10% headroom above and below
	minY := float64(lo) - span*0.1
	span *= 1.2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, colors.Background, colors.Line))

	last := float64(len(history) - 1)
	for i, v := range history {
		x := float64(i) / last * float64(width)
		y := float64(height) - (float64(v)-minY)/span*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

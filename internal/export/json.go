package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/orchestrator"
)

// Summary is the JSON form of a finished session.
type Summary struct {
	GridSize   life.Size          `json:"grid_size"`
	Viewport   life.Size          `json:"viewport"`
	Offset     life.Coordinates   `json:"offset"`
	Generation int                `json:"generation"`
	Population int                `json:"population"`
	Pattern    string             `json:"pattern_type"`
	Last       string             `json:"last_pattern"`
	History    []int              `json:"history"`
	Metrics    map[string]float64 `json:"metrics"`
	// Visible rows, '@' alive and '.' dead.
	Cells []string `json:"cells"`
}

func NewSummary(f orchestrator.Frame) Summary {
	s := Summary{
		GridSize:   f.GridSize,
		Viewport:   f.ViewportSize,
		Offset:     f.Offset,
		Generation: f.Generation,
		Population: f.Population,
		Pattern:    f.PatternType,
		Last:       f.LastPattern,
		History:    f.History,
		Metrics:    f.Stats,
		Cells:      make([]string, len(f.Cells)),
	}
	for y, row := range f.Cells {
		line := make([]byte, len(row))
		for x, h := range row {
			line[x] = '.'
			if h == life.Alive {
				line[x] = '@'
			}
		}
		s.Cells[y] = string(line)
	}
	return s
}

// WriteJSON encodes s indented.
func WriteJSON(w io.Writer, s Summary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s)
}

// ExportJSON writes s to path.
func ExportJSON(path string, s Summary) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, s)
}

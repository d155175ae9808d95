package replay

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/golife/internal/command"
	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/metrics"
	"github.com/san-kum/golife/internal/orchestrator"
	"github.com/san-kum/golife/internal/pattern"
	"github.com/san-kum/golife/pkg/logging"
)

// Result is the state at the end of a replay.
type Result struct {
	Frame orchestrator.Frame
	Steps int
}

// Run plays s against a copy of catalog. The session ends when the script
// is exhausted, a quit key is replayed or ctx is cancelled.
func Run(ctx context.Context, s *Script, catalog pattern.Catalog) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	opts := orchestrator.DefaultOptions()
	if s.GridMultiplier > 0 {
		opts.GridMultiplier = s.GridMultiplier
	}
	if s.SimulationDelay != nil {
		opts.SimulationDelay = time.Duration(*s.SimulationDelay) * time.Millisecond
	}
	opts.StartPaused = s.StartPaused
	opts.Metrics = metrics.Defaults()

	orch, err := orchestrator.New(catalog.Clone(), orchestrator.FixedSize(s.Terminal.Size()), opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan command.Event)
	sent := make(chan int, 1)
	go produce(ctx, s.Events, events, sent)

	if err := orch.Run(ctx, events, nil); err != nil {
		return nil, err
	}
	cancel()

	res := &Result{Frame: orch.Frame(), Steps: <-sent}
	logging.Info("replay", "%d events, %d generations, population %d",
		res.Steps, res.Frame.Generation, res.Frame.Population)
	return res, nil
}

// produce sends every scripted event in order, then closes out. It reports
// how many events were delivered.
func produce(ctx context.Context, steps []Step, out chan<- command.Event, sent chan<- int) {
	n := 0
	defer func() { sent <- n }()
	defer close(out)

	for _, st := range steps {
		if st.wait > 0 {
			t := time.NewTimer(st.wait)
			select {
			case <-ctx.Done():
				t.Stop()
				return
			case <-t.C:
			}
			continue
		}
		for _, ev := range st.Events() {
			select {
			case <-ctx.Done():
				return
			case out <- ev:
				n++
			}
		}
	}
}

// Visible renders the final visible window, '@' alive and '.' dead.
func (r *Result) Visible() string {
	var b strings.Builder
	for _, row := range r.Frame.Cells {
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

// Chart plots the population history, or returns "" with fewer than two
// generations recorded.
func (r *Result) Chart(width, height int) string {
	if len(r.Frame.History) < 2 {
		return ""
	}
	data := make([]float64, len(r.Frame.History))
	for i, v := range r.Frame.History {
		data[i] = float64(v)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("population"),
	)
}

// Report writes the visible grid, the chart and the metrics.
func (r *Result) Report(w io.Writer) error {
	f := r.Frame
	if _, err := fmt.Fprintf(w, "grid %s, viewport %s, generation %d, population %d\n\n",
		f.GridSize, f.ViewportSize, f.Generation, f.Population); err != nil {
		return err
	}
	if _, err := io.WriteString(w, r.Visible()+"\n"); err != nil {
		return err
	}
	if chart := r.Chart(60, 10); chart != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", chart); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(f.Stats))
	for name := range f.Stats {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%-16s %.4f\n", name, f.Stats[name]); err != nil {
			return err
		}
	}
	return nil
}

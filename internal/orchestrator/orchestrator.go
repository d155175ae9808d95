// Package orchestrator owns the editor state and runs its event loop.
//
// All mutation happens through [Orchestrator.Apply], normally reached from
// [Orchestrator.Dispatch] inside [Orchestrator.Run]. Nothing here is safe for
// concurrent use; input producers talk to the loop through a channel.
package orchestrator

import (
	"fmt"
	"time"

	"github.com/san-kum/golife/internal/command"
	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/metrics"
	"github.com/san-kum/golife/internal/pattern"
	"github.com/san-kum/golife/internal/viewport"
	"github.com/san-kum/golife/pkg/logging"
)

const (
	DefaultGridMultiplier  = 3
	DefaultSimulationDelay = 50 * time.Millisecond
	DefaultDelayStep       = 10 * time.Millisecond
	DefaultPollInterval    = 25 * time.Millisecond
	DefaultPanStep         = 4

	// HistoryCap bounds the population history kept for charts.
	HistoryCap = 600
)

// Options carries the tunables of an Orchestrator.
type Options struct {
	GridMultiplier  int
	MaxGridWidth    int
	MaxGridHeight   int
	SimulationDelay time.Duration
	DelayStep       time.Duration
	PollInterval    time.Duration
	CursorJump      int
	PanStep         int
	StartPaused     bool

	// Chrome is the part of the terminal taken by panels and bars. The
	// canvas, and so the viewport, is the terminal minus Chrome.
	Chrome life.Size

	Clock   Clock
	Metrics []metrics.Metric
}

func DefaultOptions() Options {
	return Options{
		GridMultiplier:  DefaultGridMultiplier,
		SimulationDelay: DefaultSimulationDelay,
		DelayStep:       DefaultDelayStep,
		PollInterval:    DefaultPollInterval,
		CursorJump:      command.DefaultJump,
		PanStep:         DefaultPanStep,
	}
}

func (o *Options) normalize() {
	if o.GridMultiplier < 1 {
		o.GridMultiplier = 1
	}
	if o.SimulationDelay < 0 {
		o.SimulationDelay = 0
	}
	if o.DelayStep <= 0 {
		o.DelayStep = DefaultDelayStep
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.CursorJump <= 0 {
		o.CursorJump = command.DefaultJump
	}
	if o.PanStep <= 0 {
		o.PanStep = DefaultPanStep
	}
	if o.Clock == nil {
		o.Clock = systemClock{}
	}
}

// Orchestrator aggregates the grid, viewport, cursor, catalog and mode.
type Orchestrator struct {
	opts    Options
	term    TerminalSizer
	handler command.Handler
	clock   Clock

	grid     *life.Grid
	view     *viewport.Viewport
	terminal life.Size
	cursor   life.Coordinates

	catalog     pattern.Catalog
	patternType int
	lastPattern int
	rotation    int

	running  bool
	delay    time.Duration
	lastTick time.Time
	mode     command.Mode
	gallery  galleryCursor

	generation int
	history    []int
}

// New builds an orchestrator sized from the terminal. An empty catalog is
// replaced by the default one. The only error is a failed size query.
func New(catalog pattern.Catalog, term TerminalSizer, opts Options) (*Orchestrator, error) {
	opts.normalize()
	if err := catalog.Validate(); err != nil {
		logging.Warn("catalog", "using default catalog: %v", err)
		catalog = pattern.Default()
	}

	o := &Orchestrator{
		opts:        opts,
		term:        term,
		handler:     command.NewHandler(opts.CursorJump),
		clock:       opts.Clock,
		catalog:     catalog,
		lastPattern: -1,
		running:     !opts.StartPaused,
		delay:       opts.SimulationDelay,
		mode:        command.ModeNormal,
	}
	o.gallery = newGalleryCursor(len(catalog))
	if err := o.reset(); err != nil {
		return nil, err
	}
	o.lastTick = o.clock.Now()
	logging.Info("orchestrator", "grid %s, viewport %s, %d pattern types",
		o.grid.Size(), o.view.Size(), len(catalog))
	return o, nil
}

// reset allocates a fresh grid and viewport from the current terminal size
// and recentres the cursor.
func (o *Orchestrator) reset() error {
	size, err := o.term.TerminalSize()
	if err != nil {
		return fmt.Errorf("orchestrator: query terminal size: %w", err)
	}
	o.terminal = size
	gridSize := size.Scale(o.opts.GridMultiplier).Cap(o.opts.MaxGridWidth, o.opts.MaxGridHeight)
	o.grid = life.NewGrid(gridSize)
	o.view = viewport.New(o.grid.Size(), o.canvas(size))
	o.cursor = life.Coordinates{X: o.view.Size().Width / 2, Y: o.view.Size().Height / 2}
	o.generation = 0
	o.history = o.history[:0]
	for _, m := range o.opts.Metrics {
		m.Reset()
	}
	return nil
}

func (o *Orchestrator) canvas(terminal life.Size) life.Size {
	return life.Size{
		Width:  life.SaturatingSub(terminal.Width, o.opts.Chrome.Width),
		Height: life.SaturatingSub(terminal.Height, o.opts.Chrome.Height),
	}
}

// Resize keeps the grid and fits the viewport and cursor to a new terminal.
func (o *Orchestrator) Resize(terminal life.Size) {
	o.terminal = terminal
	o.view.UpdateSize(o.canvas(terminal), o.grid.Size())
	o.clampCursor()
}

// Grid returns the live grid. Callers must not mutate it.
func (o *Orchestrator) Grid() *life.Grid { return o.grid }

// Terminal is the last known terminal size.
func (o *Orchestrator) Terminal() life.Size { return o.terminal }

func (o *Orchestrator) Viewport() *viewport.Viewport { return o.view }

// Cursor returns the view-space cursor.
func (o *Orchestrator) Cursor() life.Coordinates { return o.cursor }

// GridCursor returns the grid cell under the cursor.
func (o *Orchestrator) GridCursor() life.Coordinates { return o.view.ViewToGrid(o.cursor) }

func (o *Orchestrator) Mode() command.Mode { return o.mode }

func (o *Orchestrator) Running() bool { return o.running }

func (o *Orchestrator) Delay() time.Duration { return o.delay }

func (o *Orchestrator) Catalog() pattern.Catalog { return o.catalog }

func (o *Orchestrator) PatternType() int { return o.patternType }

// LastPattern returns the index of the last placed or selected pattern in the
// current type.
func (o *Orchestrator) LastPattern() (int, bool) { return o.lastPattern, o.lastPattern >= 0 }

// Rotation is the display rotation counter, 0 to 3.
func (o *Orchestrator) Rotation() int { return o.rotation }

func (o *Orchestrator) Generation() int { return o.generation }

// History returns a copy of the recent population counts, oldest first.
func (o *Orchestrator) History() []int { return append([]int(nil), o.history...) }

// Stats returns the current metric values.
func (o *Orchestrator) Stats() map[string]float64 { return metrics.Snapshot(o.opts.Metrics) }

// PollInterval is the longest the loop waits for input between ticks.
func (o *Orchestrator) PollInterval() time.Duration { return o.opts.PollInterval }

// advance computes one generation and records statistics.
func (o *Orchestrator) advance() {
	changed := o.grid.Generate()
	o.generation++
	pop := o.grid.Population()
	if len(o.history) == HistoryCap {
		copy(o.history, o.history[1:])
		o.history = o.history[:HistoryCap-1]
	}
	o.history = append(o.history, pop)

	sample := metrics.Sample{
		Generation: o.generation,
		Population: pop,
		Changed:    changed,
		Area:       o.grid.Size().Area(),
	}
	for _, m := range o.opts.Metrics {
		m.Observe(sample)
	}
}

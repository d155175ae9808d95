package orchestrator

import (
	"context"
	"time"

	"github.com/san-kum/golife/internal/command"
	"github.com/san-kum/golife/pkg/logging"
)

// Tick advances at most one generation. It does nothing outside Normal mode
// or before more than the simulation delay has passed since the last tick.
// It reports whether a generation was computed.
func (o *Orchestrator) Tick(now time.Time) bool {
	if o.mode != command.ModeNormal {
		return false
	}
	if now.Sub(o.lastTick) <= o.delay {
		return false
	}
	o.lastTick = now
	if !o.running {
		return false
	}
	o.advance()
	return true
}

// Run is the event loop. Each iteration ticks, then waits up to the poll
// interval for one event, applies it and redraws. It returns nil on Quit or
// when events is closed, the context error on cancellation, and the error of
// a failed command.
func (o *Orchestrator) Run(ctx context.Context, events <-chan command.Event, draw func(Frame)) error {
	redraw := func() {
		if draw != nil {
			draw(o.Frame())
		}
	}
	redraw()

	timer := time.NewTimer(o.opts.PollInterval)
	defer timer.Stop()

	for {
		if o.Tick(o.clock.Now()) {
			redraw()
		}

		timer.Reset(o.opts.PollInterval)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				logging.Debug("orchestrator", "input closed after %d generations", o.generation)
				return nil
			}
			quit, err := o.Dispatch(ev)
			if err != nil {
				logging.Error("orchestrator", err, "stopping event loop")
				return err
			}
			if quit {
				return nil
			}
			redraw()
		case <-timer.C:
		}
	}
}

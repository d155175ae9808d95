package orchestrator

import (
	"github.com/san-kum/golife/internal/command"
	"github.com/san-kum/golife/internal/life"
)

// Dispatch translates ev in the current mode and applies the result.
func (o *Orchestrator) Dispatch(ev command.Event) (quit bool, err error) {
	return o.Apply(o.handler.Translate(ev, o.mode))
}

// Apply executes cmd. Out-of-range positions and indices are clamped or
// ignored; the only error comes from the terminal size query of ClearGrid.
func (o *Orchestrator) Apply(cmd command.Command) (quit bool, err error) {
	switch cmd.Kind {
	case command.Quit:
		return true, nil
	case command.NoOp:

	case command.MoveCursorLeft:
		o.moveCursor(-1, 0)
	case command.MoveCursorRight:
		o.moveCursor(1, 0)
	case command.MoveCursorUp:
		o.moveCursor(0, -1)
	case command.MoveCursorDown:
		o.moveCursor(0, 1)
	case command.MoveCursorLeftBy:
		o.moveCursor(-cmd.Amount, 0)
	case command.MoveCursorRightBy:
		o.moveCursor(cmd.Amount, 0)
	case command.MoveCursorToStartOfLine:
		o.cursor.X = 0
	case command.MoveCursorToEndOfLine:
		o.cursor.X = life.SaturatingSub(o.view.Size().Width, 1)
	case command.SetCursorPosition:
		o.cursor = life.Coordinates{X: cmd.X, Y: cmd.Y}
		o.clampCursor()

	case command.ToggleCellAlive:
		o.grid.Resurrect(o.GridCursor())
		o.moveCursor(1, 0)
	case command.ToggleCellDead:
		o.grid.Kill(o.GridCursor())
		o.moveCursor(-1, 0)
	case command.ClearGrid:
		if err := o.reset(); err != nil {
			return false, err
		}

	case command.PlacePattern:
		o.placePattern(cmd.Index)
	case command.PlaceLastPattern:
		if p, ok := o.catalog.Get(o.patternType, o.lastPattern); ok {
			o.grid.Shape(o.GridCursor(), p.Matrix)
		}
	case command.RotateLastPattern:
		if _, ok := o.catalog.Rotate(o.patternType, o.lastPattern); ok {
			o.rotation = (o.rotation + 1) % 4
		}
	case command.CyclePatternType:
		o.patternType = (o.patternType + 1) % len(o.catalog)
		o.lastPattern = -1
		o.rotation = 0

	case command.ToggleSimulation:
		o.running = !o.running
	case command.StepSimulation:
		o.advance()
	case command.SpeedUp:
		o.delay -= o.opts.DelayStep
		if o.delay < 0 {
			o.delay = 0
		}
	case command.SpeedDown:
		o.delay += o.opts.DelayStep

	case command.PanLeft:
		o.view.PanLeft(o.opts.PanStep, o.grid.Size())
	case command.PanRight:
		o.view.PanRight(o.opts.PanStep, o.grid.Size())
	case command.PanUp:
		o.view.PanUp(o.opts.PanStep, o.grid.Size())
	case command.PanDown:
		o.view.PanDown(o.opts.PanStep, o.grid.Size())

	case command.ShowHelp:
		o.mode = command.ModeHelp
	case command.ExitHelp:
		o.enterNormal()

	case command.EnterGalleryMode:
		o.gallery.focus(o.patternType, o.lastPattern)
		o.mode = command.ModeGallery
	case command.ExitGalleryMode:
		o.enterNormal()
	case command.GalleryUp:
		o.galleryMove(-1)
	case command.GalleryDown:
		o.galleryMove(1)
	case command.GalleryExpand:
		o.gallery.setExpanded(true)
	case command.GalleryCollapse:
		o.gallery.setExpanded(false)
	case command.GallerySelect:
		o.gallerySelect()
		o.enterNormal()
	}
	return false, nil
}

// enterNormal returns to Normal mode and restarts the tick clock so time
// spent in an overlay is not made up afterwards.
func (o *Orchestrator) enterNormal() {
	o.mode = command.ModeNormal
	o.lastTick = o.clock.Now()
}

func (o *Orchestrator) placePattern(i int) {
	p, ok := o.catalog.Get(o.patternType, i)
	if !ok {
		return
	}
	if o.lastPattern != i {
		o.rotation = 0
	}
	o.lastPattern = i
	o.grid.Shape(o.GridCursor(), p.Matrix)
}

func (o *Orchestrator) moveCursor(dx, dy int) {
	o.cursor.X += dx
	o.cursor.Y += dy
	o.clampCursor()
}

// clampCursor keeps the cursor inside [0, viewport size).
func (o *Orchestrator) clampCursor() {
	size := o.view.Size()
	o.cursor.X = life.Clamp(o.cursor.X, 0, size.Width-1)
	o.cursor.Y = life.Clamp(o.cursor.Y, 0, size.Height-1)
}

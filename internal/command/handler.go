package command

import "github.com/charmbracelet/bubbles/key"

// DefaultJump is the cursor jump for tab and shift+tab.
const DefaultJump = 4

// Handler maps (event, mode) pairs to commands. It never mutates anything.
type Handler struct {
	Keys KeyMap
	Jump int
}

// NewHandler returns a Handler with the default key map and the given jump
// width. Non-positive jumps fall back to DefaultJump.
func NewHandler(jump int) Handler {
	if jump <= 0 {
		jump = DefaultJump
	}
	return Handler{Keys: DefaultKeyMap(), Jump: jump}
}

// Translate returns the command for ev in mode. Quit is reachable from every
// mode; in Help every other input except the exit keys is NoOp.
func (h Handler) Translate(ev Event, mode Mode) Command {
	switch mode {
	case ModeNormal:
		return h.normal(ev)
	case ModeHelp:
		return h.help(ev)
	case ModeGallery:
		return h.gallery(ev)
	default:
		return Of(NoOp)
	}
}

func (h Handler) help(ev Event) Command {
	if ev.Kind != EventKey {
		return Of(NoOp)
	}
	switch {
	case key.Matches(ev, h.Keys.Quit):
		return Of(Quit)
	case key.Matches(ev, h.Keys.ExitHelp):
		return Of(ExitHelp)
	}
	return Of(NoOp)
}

func (h Handler) gallery(ev Event) Command {
	if ev.Kind != EventKey {
		return Of(NoOp)
	}
	k := h.Keys
	switch {
	case key.Matches(ev, k.Quit):
		return Of(Quit)
	case key.Matches(ev, k.GalleryExit):
		return Of(ExitGalleryMode)
	case key.Matches(ev, k.GalleryUp):
		return Of(GalleryUp)
	case key.Matches(ev, k.GalleryDown):
		return Of(GalleryDown)
	case key.Matches(ev, k.GalleryExpand):
		return Of(GalleryExpand)
	case key.Matches(ev, k.GalleryCollapse):
		return Of(GalleryCollapse)
	case key.Matches(ev, k.GallerySelect):
		return Of(GallerySelect)
	}
	return Of(NoOp)
}

func (h Handler) normal(ev Event) Command {
	if ev.Kind == EventPointer {
		if ev.Button == ButtonLeft && (ev.Action == PointerPress || ev.Action == PointerDrag) {
			return CursorAt(ev.X, ev.Y)
		}
		return Of(NoOp)
	}

	k := h.Keys
	switch {
	case key.Matches(ev, k.Quit):
		return Of(Quit)
	case key.Matches(ev, k.Left):
		return Of(MoveCursorLeft)
	case key.Matches(ev, k.Right):
		return Of(MoveCursorRight)
	case key.Matches(ev, k.Up):
		return Of(MoveCursorUp)
	case key.Matches(ev, k.Down):
		return Of(MoveCursorDown)
	case key.Matches(ev, k.JumpLeft):
		return MoveLeftBy(h.Jump)
	case key.Matches(ev, k.JumpRight):
		return MoveRightBy(h.Jump)
	case key.Matches(ev, k.LineStart):
		return Of(MoveCursorToStartOfLine)
	case key.Matches(ev, k.LineEnd):
		return Of(MoveCursorToEndOfLine)
	case key.Matches(ev, k.PanLeft):
		return Of(PanLeft)
	case key.Matches(ev, k.PanRight):
		return Of(PanRight)
	case key.Matches(ev, k.PanUp):
		return Of(PanUp)
	case key.Matches(ev, k.PanDown):
		return Of(PanDown)
	case key.Matches(ev, k.Alive):
		return Of(ToggleCellAlive)
	case key.Matches(ev, k.Dead):
		return Of(ToggleCellDead)
	case key.Matches(ev, k.Clear):
		return Of(ClearGrid)
	case key.Matches(ev, k.Place):
		if i, ok := digitIndex(ev.Key); ok {
			return Place(i)
		}
		return Of(NoOp)
	case key.Matches(ev, k.PlaceLast):
		return Of(PlaceLastPattern)
	case key.Matches(ev, k.Cycle):
		return Of(CyclePatternType)
	case key.Matches(ev, k.Rotate):
		return Of(RotateLastPattern)
	case key.Matches(ev, k.Run):
		return Of(ToggleSimulation)
	case key.Matches(ev, k.Step):
		return Of(StepSimulation)
	case key.Matches(ev, k.Faster):
		return Of(SpeedUp)
	case key.Matches(ev, k.Slower):
		return Of(SpeedDown)
	case key.Matches(ev, k.Help):
		return Of(ShowHelp)
	case key.Matches(ev, k.Gallery):
		return Of(EnterGalleryMode)
	}
	return Of(NoOp)
}

// digitIndex maps "1".."9" to 0..8. "0" and anything else is rejected.
func digitIndex(k string) (int, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return 0, false
	}
	return int(k[0] - '1'), true
}

// Package command turns abstract input events into editor commands.
//
// The [Handler] is a pure translation from an [Event] and the current [Mode]
// to a [Command]. It holds no state between calls; the orchestrator owns the
// mode and applies the commands.
package command

import "fmt"

// Kind enumerates user intents independent of the input device.
type Kind int

const (
	NoOp Kind = iota
	Quit
	MoveCursorLeft
	MoveCursorRight
	MoveCursorUp
	MoveCursorDown
	MoveCursorLeftBy
	MoveCursorRightBy
	MoveCursorToStartOfLine
	MoveCursorToEndOfLine
	ToggleCellAlive
	ToggleCellDead
	ClearGrid
	PlaceLastPattern
	CyclePatternType
	RotateLastPattern
	ToggleSimulation
	StepSimulation
	SpeedUp
	SpeedDown
	PlacePattern
	ShowHelp
	ExitHelp
	SetCursorPosition
	PanLeft
	PanRight
	PanUp
	PanDown
	EnterGalleryMode
	ExitGalleryMode
	GalleryUp
	GalleryDown
	GalleryExpand
	GalleryCollapse
	GallerySelect
)

var kindNames = [...]string{
	NoOp:                    "NoOp",
	Quit:                    "Quit",
	MoveCursorLeft:          "MoveCursorLeft",
	MoveCursorRight:         "MoveCursorRight",
	MoveCursorUp:            "MoveCursorUp",
	MoveCursorDown:          "MoveCursorDown",
	MoveCursorLeftBy:        "MoveCursorLeftBy",
	MoveCursorRightBy:       "MoveCursorRightBy",
	MoveCursorToStartOfLine: "MoveCursorToStartOfLine",
	MoveCursorToEndOfLine:   "MoveCursorToEndOfLine",
	ToggleCellAlive:         "ToggleCellAlive",
	ToggleCellDead:          "ToggleCellDead",
	ClearGrid:               "ClearGrid",
	PlaceLastPattern:        "PlaceLastPattern",
	CyclePatternType:        "CyclePatternType",
	RotateLastPattern:       "RotateLastPattern",
	ToggleSimulation:        "ToggleSimulation",
	StepSimulation:          "StepSimulation",
	SpeedUp:                 "SpeedUp",
	SpeedDown:               "SpeedDown",
	PlacePattern:            "PlacePattern",
	ShowHelp:                "ShowHelp",
	ExitHelp:                "ExitHelp",
	SetCursorPosition:       "SetCursorPosition",
	PanLeft:                 "PanLeft",
	PanRight:                "PanRight",
	PanUp:                   "PanUp",
	PanDown:                 "PanDown",
	EnterGalleryMode:        "EnterGalleryMode",
	ExitGalleryMode:         "ExitGalleryMode",
	GalleryUp:               "GalleryUp",
	GalleryDown:             "GalleryDown",
	GalleryExpand:           "GalleryExpand",
	GalleryCollapse:         "GalleryCollapse",
	GallerySelect:           "GallerySelect",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Command is one user intent. Index is used by PlacePattern, Amount by the
// MoveCursor*By kinds, X and Y by SetCursorPosition.
type Command struct {
	Kind   Kind
	Index  int
	Amount int
	X, Y   int
}

func (c Command) String() string {
	switch c.Kind {
	case PlacePattern:
		return fmt.Sprintf("PlacePattern(%d)", c.Index)
	case MoveCursorLeftBy, MoveCursorRightBy:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Amount)
	case SetCursorPosition:
		return fmt.Sprintf("SetCursorPosition(%d, %d)", c.X, c.Y)
	default:
		return c.Kind.String()
	}
}

// Of returns a command without arguments.
func Of(k Kind) Command { return Command{Kind: k} }

// Place returns a PlacePattern command for the zero-based index i.
func Place(i int) Command { return Command{Kind: PlacePattern, Index: i} }

func MoveLeftBy(n int) Command { return Command{Kind: MoveCursorLeftBy, Amount: n} }

func MoveRightBy(n int) Command { return Command{Kind: MoveCursorRightBy, Amount: n} }

// CursorAt returns a SetCursorPosition command for view-space (x, y).
func CursorAt(x, y int) Command { return Command{Kind: SetCursorPosition, X: x, Y: y} }

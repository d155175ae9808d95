package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var everyKey = []string{
	"a", "b", "c", "d", "e", "g", "l", "p", "r", "s", " ", "+", "=", "-",
	"0", "1", "5", "9", "left", "right", "up", "down", "tab", "shift+tab",
	"backspace", "enter", "shift+left", "shift+down", "x", "?", "h", "esc",
}

func TestNormalKeys(t *testing.T) {
	h := NewHandler(4)
	tests := []struct {
		key  string
		want Command
	}{
		{"q", Of(Quit)},
		{"ctrl+c", Of(Quit)},
		{"left", Of(MoveCursorLeft)},
		{"right", Of(MoveCursorRight)},
		{"up", Of(MoveCursorUp)},
		{"down", Of(MoveCursorDown)},
		{"tab", MoveRightBy(4)},
		{"shift+tab", MoveLeftBy(4)},
		{"b", Of(MoveCursorToStartOfLine)},
		{"e", Of(MoveCursorToEndOfLine)},
		{"a", Of(ToggleCellAlive)},
		{"d", Of(ToggleCellDead)},
		{"backspace", Of(ToggleCellDead)},
		{"c", Of(ClearGrid)},
		{"g", Of(EnterGalleryMode)},
		{"h", Of(ShowHelp)},
		{"?", Of(ShowHelp)},
		{"l", Of(PlaceLastPattern)},
		{"p", Of(CyclePatternType)},
		{"r", Of(RotateLastPattern)},
		{"s", Of(ToggleSimulation)},
		{" ", Of(StepSimulation)},
		{"+", Of(SpeedUp)},
		{"=", Of(SpeedUp)},
		{"-", Of(SpeedDown)},
		{"shift+left", Of(PanLeft)},
		{"shift+right", Of(PanRight)},
		{"shift+up", Of(PanUp)},
		{"shift+down", Of(PanDown)},
		{"x", Of(NoOp)},
		{"enter", Of(NoOp)},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Translate(Key(tt.key), ModeNormal))
		})
	}
}

func TestDigits(t *testing.T) {
	h := NewHandler(0)
	assert.Equal(t, Of(NoOp), h.Translate(Key("0"), ModeNormal))
	for d := 1; d <= 9; d++ {
		k := string(rune('0' + d))
		assert.Equal(t, Place(d-1), h.Translate(Key(k), ModeNormal), "digit %s", k)
	}
}

func TestJumpDefault(t *testing.T) {
	assert.Equal(t, MoveRightBy(DefaultJump), NewHandler(-3).Translate(Key("tab"), ModeNormal))
	assert.Equal(t, MoveRightBy(7), NewHandler(7).Translate(Key("tab"), ModeNormal))
}

func TestHelpModeGatesEverything(t *testing.T) {
	h := NewHandler(4)
	for _, k := range everyKey {
		got := h.Translate(Key(k), ModeHelp)
		switch k {
		case "esc", "h", "?":
			assert.Equal(t, Of(ExitHelp), got, "key %q", k)
		default:
			assert.Equal(t, Of(NoOp), got, "key %q leaked %v", k, got)
		}
	}
	assert.Equal(t, Of(NoOp), h.Translate(Pointer(PointerPress, ButtonLeft, 3, 4), ModeHelp))
}

func TestQuitFromEveryMode(t *testing.T) {
	h := NewHandler(4)
	for _, mode := range []Mode{ModeNormal, ModeHelp, ModeGallery} {
		for _, k := range []string{"q", "ctrl+c"} {
			assert.Equal(t, Of(Quit), h.Translate(Key(k), mode), "%s in %s", k, mode)
		}
	}
}

func TestGalleryKeys(t *testing.T) {
	h := NewHandler(4)
	tests := []struct {
		key  string
		want Kind
	}{
		{"up", GalleryUp},
		{"down", GalleryDown},
		{"right", GalleryExpand},
		{"left", GalleryCollapse},
		{"enter", GallerySelect},
		{"g", ExitGalleryMode},
		{"esc", ExitGalleryMode},
		{"a", NoOp},
		{"1", NoOp},
		{"s", NoOp},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Translate(Key(tt.key), ModeGallery).Kind)
		})
	}
}

func TestPointer(t *testing.T) {
	h := NewHandler(4)
	assert.Equal(t, CursorAt(3, 9), h.Translate(Pointer(PointerPress, ButtonLeft, 3, 9), ModeNormal))
	assert.Equal(t, CursorAt(4, 9), h.Translate(Pointer(PointerDrag, ButtonLeft, 4, 9), ModeNormal))
	assert.Equal(t, Of(NoOp), h.Translate(Pointer(PointerRelease, ButtonLeft, 4, 9), ModeNormal))
	assert.Equal(t, Of(NoOp), h.Translate(Pointer(PointerPress, ButtonOther, 4, 9), ModeNormal))
	assert.Equal(t, Of(NoOp), h.Translate(Pointer(PointerPress, ButtonLeft, 4, 9), ModeGallery))
}

func TestUnknownModeIsInert(t *testing.T) {
	assert.Equal(t, Of(NoOp), NewHandler(4).Translate(Key("q"), Mode(42)))
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "PlacePattern(2)", Place(2).String())
	assert.Equal(t, "MoveCursorRightBy(4)", MoveRightBy(4).String())
	assert.Equal(t, "SetCursorPosition(1, 2)", CursorAt(1, 2).String())
	assert.Equal(t, "GallerySelect", Of(GallerySelect).String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.Equal(t, "Gallery", ModeGallery.String())
}

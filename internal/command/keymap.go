package command

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings for every mode. Help text feeds the help overlay.
type KeyMap struct {
	Quit key.Binding

	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	JumpLeft  key.Binding
	JumpRight key.Binding
	LineStart key.Binding
	LineEnd   key.Binding

	PanLeft  key.Binding
	PanRight key.Binding
	PanUp    key.Binding
	PanDown  key.Binding

	Alive     key.Binding
	Dead      key.Binding
	Clear     key.Binding
	Place     key.Binding
	PlaceLast key.Binding
	Cycle     key.Binding
	Rotate    key.Binding

	Run    key.Binding
	Step   key.Binding
	Faster key.Binding
	Slower key.Binding

	Help     key.Binding
	ExitHelp key.Binding

	Gallery         key.Binding
	GalleryExit     key.Binding
	GalleryUp       key.Binding
	GalleryDown     key.Binding
	GalleryExpand   key.Binding
	GalleryCollapse key.Binding
	GallerySelect   key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "cursor right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "cursor down"),
		),
		JumpLeft: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "jump left"),
		),
		JumpRight: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "jump right"),
		),
		LineStart: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "start of line"),
		),
		LineEnd: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "end of line"),
		),
		PanLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "pan right"),
		),
		PanUp: key.NewBinding(
			key.WithKeys("shift+up"),
			key.WithHelp("shift+↑", "pan up"),
		),
		PanDown: key.NewBinding(
			key.WithKeys("shift+down"),
			key.WithHelp("shift+↓", "pan down"),
		),
		Alive: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "cell alive"),
		),
		Dead: key.NewBinding(
			key.WithKeys("d", "backspace"),
			key.WithHelp("d/bksp", "cell dead"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear grid"),
		),
		Place: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "place pattern"),
		),
		PlaceLast: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "place last pattern"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "next pattern type"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rotate last pattern"),
		),
		Run: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start/stop"),
		),
		Step: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "single step"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "help"),
		),
		ExitHelp: key.NewBinding(
			key.WithKeys("esc", "h", "?"),
			key.WithHelp("esc/h", "close help"),
		),
		Gallery: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "pattern gallery"),
		),
		GalleryExit: key.NewBinding(
			key.WithKeys("g", "esc"),
			key.WithHelp("g/esc", "close gallery"),
		),
		GalleryUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous entry"),
		),
		GalleryDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next entry"),
		),
		GalleryExpand: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "expand"),
		),
		GalleryCollapse: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "collapse"),
		),
		GallerySelect: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
	}
}

// FullHelp returns bindings for the help overlay, one column per slice.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.JumpLeft, k.JumpRight, k.LineStart, k.LineEnd},
		{k.Alive, k.Dead, k.Place, k.PlaceLast, k.Rotate, k.Cycle, k.Clear},
		{k.Run, k.Step, k.Faster, k.Slower, k.PanLeft, k.PanRight, k.PanUp, k.PanDown},
		{k.Gallery, k.Help, k.Quit},
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Gallery, k.Run, k.Quit}
}

// GalleryHelp returns the bindings active while the gallery has focus.
func (k KeyMap) GalleryHelp() []key.Binding {
	return []key.Binding{k.GalleryUp, k.GalleryDown, k.GalleryExpand, k.GalleryCollapse, k.GallerySelect, k.GalleryExit}
}

package viz

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/golife/internal/command"
	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/orchestrator"
	"github.com/san-kum/golife/pkg/logging"
)

type tickMsg time.Time

// Model adapts an Orchestrator to a bubbletea program. Key, mouse and resize
// messages become orchestrator events; a poll tick drives the simulation.
type Model struct {
	orch     *orchestrator.Orchestrator
	renderer *Renderer
	err      error
	quitting bool
}

func NewModel(orch *orchestrator.Orchestrator, renderer *Renderer) Model {
	return Model{orch: orch, renderer: renderer}
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.orch.PollInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.orch.Resize(life.Size{Width: msg.Width, Height: msg.Height})
		return m, nil

	case tickMsg:
		m.orch.Tick(time.Time(msg))
		return m, m.tick()

	case tea.KeyMsg:
		return m.dispatch(command.Key(msg.String()))

	case tea.MouseMsg:
		ev, ok := m.pointer(msg)
		if !ok {
			return m, nil
		}
		return m.dispatch(ev)
	}
	return m, nil
}

func (m Model) dispatch(ev command.Event) (tea.Model, tea.Cmd) {
	quit, err := m.orch.Dispatch(ev)
	if err != nil {
		logging.Error("tui", err, "command failed")
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// pointer converts a terminal mouse message to a canvas-relative event.
func (m Model) pointer(msg tea.MouseMsg) (command.Event, bool) {
	pos, ok := m.renderer.CanvasPosition(msg.X, msg.Y, m.orch.Terminal())
	if !ok {
		return command.Event{}, false
	}

	action := command.PointerOther
	switch msg.Action {
	case tea.MouseActionPress:
		action = command.PointerPress
	case tea.MouseActionMotion:
		action = command.PointerDrag
	case tea.MouseActionRelease:
		action = command.PointerRelease
	}
	button := command.ButtonOther
	if msg.Button == tea.MouseButtonLeft {
		button = command.ButtonLeft
	}
	return command.Pointer(action, button, pos.X, pos.Y), true
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.Render(m.orch.Frame())
}

// Run starts the full-screen program and blocks until the user quits, a
// command fails or ctx is cancelled.
func Run(ctx context.Context, orch *orchestrator.Orchestrator, renderer *Renderer) error {
	p := tea.NewProgram(NewModel(orch, renderer),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}

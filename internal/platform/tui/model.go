// Package tui bridges the game engine to a terminal: key events feed the
// input poller, presented frames feed the Bubble Tea view, and the engine's
// own goroutines do the simulating and rasterizing in between.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/pixelpit/brickout/internal/config"
	"github.com/pixelpit/brickout/internal/core"
	"github.com/pixelpit/brickout/internal/engine"
)

// frameMsg asks the model to refresh the view with the latest frame.
type frameMsg time.Time

// frameCmd schedules the next view refresh at the display rate.
func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Model is the Bubble Tea model for one game session. It owns no game state:
// the engine simulates and presents on its own goroutines, and the model only
// forwards key events in and pulls rendered frames out.
type Model struct {
	engine    *engine.Engine
	poller    *KeyPoller
	presenter *ScreenPresenter
	keys      KeyMap
	help      help.Model
	fps       int
	quitting  bool
	err       error
}

// NewModel wires a model to a constructed (not yet started) engine.
func NewModel(e *engine.Engine, poller *KeyPoller, presenter *ScreenPresenter, fps int) Model {
	if fps <= 0 {
		fps = core.DefaultRuntimeConfig().FPS
	}
	return Model{
		engine:    e,
		poller:    poller,
		presenter: presenter,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		fps:       fps,
	}
}

// Init schedules the first view refresh.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles key events and refresh ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.shutdown()
		case key.Matches(msg, m.keys.Left):
			m.poller.Press(core.DirLeft)
		case key.Matches(msg, m.keys.Right):
			m.poller.Press(core.DirRight)
		case key.Matches(msg, m.keys.Action):
			m.poller.PressAction()
		}
		return m, nil

	case frameMsg:
		select {
		case <-m.engine.Done():
			// The engine halted on its own: quit-on-action or a fault.
			return m.shutdown()
		default:
		}
		return m, frameCmd(m.fps)
	}
	return m, nil
}

// shutdown stops the engine and ends the program, keeping the first error.
func (m Model) shutdown() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.err = m.engine.Stop()
	return m, tea.Quit
}

// View shows the latest presented frame with a help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.presenter.Frame() + "\n" + m.help.View(m.keys)
}

// Err returns the fatal engine error observed during the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run plays a full session on the local terminal and blocks until it ends.
func Run(runtime core.RuntimeConfig, cfg config.Config, logger *log.Logger) error {
	poller := NewKeyPoller()
	presenter := NewScreenPresenter()

	e, err := engine.New(runtime, cfg, poller, presenter, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := NewModel(e, poller, presenter, runtime.FPS)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if err := e.Start(ctx); err != nil {
		return err
	}

	final, runErr := program.Run()

	// The quit paths stop the engine; this covers abnormal program exits.
	stopErr := e.Stop()

	if runErr != nil {
		return runErr
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return stopErr
}

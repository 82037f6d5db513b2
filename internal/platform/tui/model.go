package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodgeball/internal/core"
	"github.com/vovakirdan/dodgeball/internal/games/dodgeball"
)

// footerHeight is the number of terminal rows reserved below the arena.
const footerHeight = 1

// Model is the Bubble Tea model for running the game.
// Bubble Tea delivers ticks and key presses on a single goroutine, so the
// simulation needs no locking.
type Model struct {
	sim      *dodgeball.Simulation
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
	stopped  bool // tick loop is no longer re-armed
}

// NewModel creates a new Bubble Tea model for the given simulation.
func NewModel(sim *dodgeball.Simulation, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}

	return Model{
		sim:    sim,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 0)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started",
		"obstacles", len(m.sim.Obstacles()),
		"interval", m.config.TickInterval,
	)
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Movement is applied immediately,
// outside the tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "tick", m.sim.Ticks(), "game_over", m.sim.Over())
		return m, tea.Quit

	case action.IsDirection():
		if m.sim.OnKey(action) {
			p := m.sim.Player()
			m.logger.Debug("player moved", "action", action, "x", p.X(), "y", p.Y())
		}
	}

	return m, nil
}

// handleResize processes window resize events. The world keeps its size;
// only the projection onto the terminal changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation. The tick loop is not re-armed once
// the game is over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.stopped || m.sim.Over() {
		m.stopped = true
		return m, nil
	}

	result := m.sim.Tick()

	for _, i := range result.Collisions {
		o := m.sim.Obstacles()[i]
		m.logger.Info("collision",
			"tick", result.State.Tick,
			"obstacle", i,
			"x", o.X(),
			"y", o.Y(),
		)
	}

	if result.State.GameOver {
		m.stopped = true
		m.logger.Info("game over", "tick", result.State.Tick)
		return m, nil
	}

	return m, tickCmd(m.config.TickInterval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sim.Render(m.screen)

	footer := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.sim.Over() {
		footer = fmt.Sprintf("survived %d ticks · %s", m.sim.Ticks(), footer)
	}

	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// Stopped reports whether the tick loop has ended.
func (m Model) Stopped() bool {
	return m.stopped
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(sim *dodgeball.Simulation, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(sim, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/river-raid/internal/core"
	"github.com/vovakirdan/river-raid/internal/storage"
)

// Game is the simulation contract the platform drives. The simulation never
// sees keys, terminals or time; it only consumes intent frames.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Progress is implemented by games that report how far a run got.
type Progress interface {
	Level() int
	Distance() float64
}

// statusTTL is how long a status line (e.g. screenshot saved) stays visible.
const statusTTL = 2 * time.Second

// Options configures a Model.
type Options struct {
	Store      *storage.Store // nil disables the high-score table
	Pilot      string         // Name recorded with finished runs
	Logger     *log.Logger    // nil uses the default logger
	Painter    *Painter       // nil paints for the local terminal
	HoldWindow time.Duration  // How long a key counts as held; see DefaultHoldWindow
}

// Model is the Bubble Tea model for a River Raid session.
type Model struct {
	game    Game
	screen  *core.Screen
	config  core.RuntimeConfig
	opts    Options
	keys    KeyMap
	help    help.Model
	input   *Input
	painter *Painter
	logger  *log.Logger

	gameState   core.GameState
	width       int
	height      int
	paused      bool
	hideFooter  bool
	quitting    bool
	runSaved    bool
	status      string
	statusUntil time.Time
}

// NewModel creates a new game model.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	painter := opts.Painter
	if painter == nil {
		painter = NewPainter(nil)
	}

	m := Model{
		game:    game,
		config:  cfg,
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   NewInput(opts.HoldWindow),
		painter: painter,
		logger:  logger,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.screenHeight())
	return m
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session ready", "game", m.game.ID(), "seed", m.config.Seed, "pilot", m.opts.Pilot)
	return tickCmd(m.config.TickRate)
}

// Update handles incoming messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot(now)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.hideFooter = !m.hideFooter
		m.screen.Resize(m.width, m.screenHeight())
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		if m.gameState.Playing {
			m.setPaused(!m.paused)
		}
	case core.ActionBack:
		switch {
		case m.paused:
			m.setPaused(false)
		case m.gameState.Playing:
			m.setPaused(true)
		default:
			m.quitting = true
			return m, tea.Quit
		}
	case core.ActionNone:
	default:
		if !m.paused {
			m.input.Press(action, now)
		}
	}
	return m, nil
}

func (m *Model) setPaused(paused bool) {
	m.paused = paused
	m.input.Release()
	m.logger.Debug("pause", "paused", paused)
}

// handleResize processes window resize events. The world is independent of
// the terminal size, so a resize never resets the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.screenHeight())
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.status != "" && now.After(m.statusUntil) {
		m.status = ""
	}
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.input.Frame(now))
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Debug(ev.Kind.String(), "detail", ev.Detail, "value", ev.Value)
		if ev.Kind == core.EventGameStarted {
			m.runSaved = false
		}
	}

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Failures are logged and the session
// carries on.
func (m *Model) saveRun() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	run := storage.Run{
		Pilot: m.opts.Pilot,
		Score: m.gameState.Score,
	}
	if p, ok := m.game.(Progress); ok {
		run.Level = p.Level()
		run.Distance = p.Distance()
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "pilot", run.Pilot, "score", run.Score, "level", run.Level)
}

// saveScreenshot writes the current screen as plain text to ~/.raid/screenshots.
func (m *Model) saveScreenshot(now time.Time) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.flash(now, "screenshot failed")
		m.logger.Warn("cannot get home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".raid", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.flash(now, "screenshot failed")
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.flash(now, "screenshot failed")
		m.logger.Warn("cannot write screenshot", "path", path, "error", err)
		return
	}
	m.flash(now, "saved "+path)
}

func (m *Model) flash(now time.Time, msg string) {
	m.status = msg
	m.statusUntil = now.Add(statusTTL)
}

// screenHeight is the height left for the game once the footer is placed.
func (m Model) screenHeight() int {
	if m.hideFooter {
		return m.height
	}
	return max(m.height-1, 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused {
		drawOverlay(m.screen, []string{"PAUSED", "p to resume, q to quit"}, core.ColorBrightWhite)
	}

	out := m.painter.Paint(m.screen)
	if m.hideFooter {
		return out
	}
	footer := m.status
	if footer == "" {
		footer = m.help.View(m.keys)
	}
	return out + "\n" + footer
}

// Paused reports whether the session is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

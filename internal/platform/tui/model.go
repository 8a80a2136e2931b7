package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/egghunt/internal/core"
	"github.com/vovakirdan/egghunt/internal/games/egghunt"
	"github.com/vovakirdan/egghunt/internal/registry"
	"github.com/vovakirdan/egghunt/internal/storage"
)

// runStats is implemented by games that report per-run statistics.
type runStats interface {
	ChicksDefeated() int
	ClearTime() (time.Duration, bool)
}

// spawnSource is implemented by games that publish spawn requests.
type spawnSource interface {
	DrainSpawns() []egghunt.SpawnRequest
}

// loggable is implemented by games that accept a logger.
type loggable interface {
	SetLogger(*log.Logger)
}

// Option configures a Model.
type Option func(*Model)

// WithPlayer sets the name recorded with saved runs.
func WithPlayer(name string) Option {
	return func(m *Model) { m.player = name }
}

// WithLogger sets the logger for the model and the game.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithHoldWindow overrides DefaultHoldWindow.
func WithHoldWindow(d time.Duration) Option {
	return func(m *Model) { m.holdWindow = d }
}

// WithRepeatDelay overrides DefaultRepeatDelay.
func WithRepeatDelay(d time.Duration) Option {
	return func(m *Model) { m.repeatDelay = d }
}

// WithClock replaces time.Now for key timing.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.clock = now }
}

// WithRenderer styles output for a specific terminal, such as an SSH session.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) { m.palette = NewPalette(r) }
}

// WithoutTitle starts straight in the game.
func WithoutTitle() Option {
	return func(m *Model) { m.onTitle = false }
}

// Model is the Bubble Tea model for Egg Hunt: a title screen followed by the game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	palette     Palette
	store       *storage.Store
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	keys        *KeyMapper
	hold        *HoldTracker
	holdWindow  time.Duration
	repeatDelay time.Duration
	logger      *log.Logger
	clock       func() time.Time
	player      string

	// Title screen
	onTitle    bool
	title      TitleAnimation
	titleStart time.Time
	titleNow   time.Time

	gameState core.GameState
	quitting  bool
	runSaved  bool   // Whether the current run has been saved
	runID     string // ID of the last saved run
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		palette:    NewPalette(nil),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		logger:     log.New(io.Discard),
		clock:      time.Now,
		onTitle:    true,
		title:      DefaultTitleAnimation(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.hold = NewHoldTracker(m.holdWindow, m.repeatDelay)
	m.titleStart = m.clock()
	m.titleNow = m.titleStart

	if l, ok := game.(loggable); ok {
		l.SetLogger(m.logger)
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.Frame())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}

	if m.onTitle {
		m.onTitle = false
		m.logger.Debug("title dismissed", "key", msg.String())
		return m, nil
	}

	switch {
	case action == core.ActionNone:
	case holdable(action):
		if m.hold.Press(action, m.clock()) {
			m.inputFrame.Set(action)
		}
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The playfield is scaled to
// the screen, so the run carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.onTitle {
		m.titleNow = now
		return m, tickCmd(m.config.Frame())
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.hold.Reset()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.Frame())
	}

	m.hold.Fill(&m.inputFrame, m.clock())
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if src, ok := m.game.(spawnSource); ok {
		for _, req := range src.DrainSpawns() {
			m.logger.Debug("spawn", "kind", req.Kind, "x", req.Pos.X, "y", req.Pos.Y, "at", req.At)
		}
	}

	if m.gameState.GameOver {
		m.saveRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.Frame())
}

// saveRun records the current run once. Runs without points are not kept.
func (m *Model) saveRun() {
	if m.runSaved || m.gameState.Score == 0 {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	run := storage.RunEntry{
		RunID:  uuid.NewString(),
		GameID: m.game.ID(),
		Player: m.player,
		Score:  m.gameState.Score,
		Won:    m.gameState.Won,
	}
	if stats, ok := m.game.(runStats); ok {
		run.Chicks = stats.ChicksDefeated()
		if d, ok := stats.ClearTime(); ok {
			run.ClearTime = d
		}
	}

	best, err := m.store.HighScore(run.GameID)
	if err != nil {
		m.logger.Warn("cannot read high score", "err", err)
	}

	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Warn("cannot save run", "err", err)
		return
	}
	m.runID = id
	m.logger.Info("run saved", "run", id, "score", run.Score, "won", run.Won, "clear", run.ClearTime)
	if run.Score > best {
		m.logger.Info("new high score", "score", run.Score, "previous", best)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".egghunt", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m *Model) render() {
	if m.onTitle {
		frame, looping := m.title.Frame(m.titleNow.Sub(m.titleStart))
		renderTitle(m.screen, frame, looping)
		return
	}
	m.game.Render(m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return m.palette.Render(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

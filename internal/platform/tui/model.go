package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duel-arcade/internal/config"
	"github.com/vovakirdan/duel-arcade/internal/core"
	"github.com/vovakirdan/duel-arcade/internal/games/duel"
	"github.com/vovakirdan/duel-arcade/internal/math2d"
	"github.com/vovakirdan/duel-arcade/internal/scene"
	"github.com/vovakirdan/duel-arcade/internal/storage"
)

// statusRows is the number of lines outside the playfield: the score line
// above it and the help line below.
const statusRows = 2

// Options configure a terminal session.
type Options struct {
	Duel    config.DuelConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables match history
	Logger  *log.Logger
}

// Model is the Bubble Tea model running the duel through the scene manager.
type Model struct {
	manager *scene.Manager
	canvas  *Canvas
	store   *storage.Store
	log     *log.Logger
	keys    KeyMap
	help    help.Model
	config  core.RuntimeConfig
	world   math2d.Bounds
	input   core.MultiInputFrame
	state   core.GameState
	combat  duel.Combat
	best    int // stored high score
	width   int

	saved    bool // current match already written to the store
	quitting bool
	err      error
}

// NewModel registers the duel scene, starts it and returns the model.
// Load errors surface here, before any terminal setup.
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	screen := core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-statusRows))
	world := math2d.CenteredBounds(opts.Duel.Field.Width, opts.Duel.Field.Height)
	canvas := NewCanvas(screen, world)

	duelCfg := opts.Duel
	reg := scene.NewRegistry()
	reg.Register(scene.Duel, func() scene.Scene {
		return duel.New(
			duel.WithConfig(duelCfg),
			duel.WithLogger(logger),
			duel.WithMeshLoader(canvas),
		)
	})

	manager := scene.NewManager(reg, logger)
	if err := manager.Start(scene.Duel); err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		manager: manager,
		canvas:  canvas,
		store:   opts.Store,
		log:     logger,
		keys:    DefaultKeyMap(),
		help:    h,
		config:  cfg,
		world:   world,
		input:   core.NewMultiInputFrame(),
		width:   cfg.ScreenW,
	}
	if m.store != nil {
		best, err := m.store.HighScore(storage.GameID)
		if err != nil {
			logger.Warn("cannot read high score", "err", err)
		}
		m.best = best
	}
	m.refresh()
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.canvas.Screen().Resize(msg.Width, max(1, msg.Height-statusRows))
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	id, action := m.keys.Map(msg)
	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.shutdown()
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		m.recordMatch()
		m.manager.Request(scene.Restart)
		if _, err := m.manager.Advance(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.saved = false
		m.input.Clear()
		m.refresh()
		return m, nil
	}

	m.input.Press(id, action)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.manager.Done() {
		return m, tea.Quit
	}

	m.canvas.Begin()
	frame := core.Frame{DT: m.config.FrameTime(), Bounds: m.world, Input: m.input}
	done, err := m.manager.Step(frame, m.canvas)
	m.input.Clear()
	if err != nil {
		m.err = err
		m.log.Error("scene transition failed", "err", err)
		return m, tea.Quit
	}
	if done {
		return m, tea.Quit
	}

	m.refresh()
	if m.state.GameOver {
		m.recordMatch()
	}
	return m, tickCmd(m.config.TickRate)
}

// game returns the running duel, or nil after quitting.
func (m Model) game() *duel.Game {
	g, _ := m.manager.Scene().(*duel.Game)
	return g
}

// refresh copies the HUD data out of the running game.
func (m *Model) refresh() {
	if g := m.game(); g != nil {
		m.state = g.State()
		m.combat = g.Combat()
	}
}

// recordMatch writes the current match to the store once. Matches quit or
// restarted before a winner are stored as unfinished; matches that never
// advanced a frame are skipped.
func (m *Model) recordMatch() {
	if m.saved || m.store == nil {
		return
	}
	g := m.game()
	if g == nil || g.Frames() == 0 {
		return
	}
	m.saved = true

	state := g.State()
	winner := storage.WinnerNone
	if state.GameOver {
		winner = storage.WinnerBot
		if state.Winner == core.Player1 {
			winner = storage.WinnerPlayer
		}
	}

	id, err := m.store.SaveMatch(storage.MatchResult{
		PlayerScore: state.Score,
		BotScore:    state.OpponentScore,
		Winner:      winner,
		Frames:      g.Frames(),
		Duration:    time.Duration(g.Elapsed() * float64(time.Second)),
	})
	if err != nil {
		m.log.Error("cannot save match", "err", err)
		return
	}
	m.best = max(m.best, state.Score)
	m.log.Info("match saved", "id", id, "winner", winner, "player", state.Score, "bot", state.OpponentScore)
}

// shutdown records the match and releases the scene. Safe to call twice.
func (m *Model) shutdown() {
	if m.manager.Done() {
		return
	}
	m.recordMatch()
	m.manager.Stop()
}

// saveScreenshot writes the playfield as plain text under
// ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("duel_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the score line, the playfield and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(renderStatus(m.state, m.combat, m.best, m.width))
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.canvas.Screen()))
	b.WriteString("\n")
	if banner := renderBanner(m.state); banner != "" {
		b.WriteString(banner)
	} else {
		b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run plays the duel in the alternate screen until the player quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if fm, ok := final.(Model); ok {
		fm.shutdown()
		if err == nil {
			err = fm.Err()
		}
	} else {
		model.shutdown()
	}
	return err
}

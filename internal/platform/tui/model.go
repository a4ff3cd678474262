package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// phase identifies which screen the session is showing.
type phase int

const (
	phaseMenu phase = iota
	phasePlaying
	phaseHelp
	phaseScores
)

// Model is the Bubble Tea model for the whole session: menu, game, help
// modal, and scores view live in one program. The engine is stepped only
// from tick messages and only while the game screen is active.
type Model struct {
	phase     phase
	prevPhase phase // restored when the help modal closes

	engine     *game.Game
	screen     *core.Screen
	store      *storage.Store
	cfg        core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper

	menu   menuState
	scores scoresState

	helpKeys GameKeyMap
	help     help.Model

	player     string
	seedFixed  bool // an explicit seed was given; reuse it for every session
	scoreSaved bool // whether the score was persisted for the current game over
	quitting   bool
}

// NewModel creates the session model. With startPlaying the model skips the
// menu and begins a game immediately.
func NewModel(store *storage.Store, cfg core.RuntimeConfig, settings game.Settings, player string, startPlaying bool) Model {
	seedFixed := cfg.Seed != 0
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.ShowAll = true

	m := Model{
		phase:      phaseMenu,
		engine:     game.New(settings),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		cfg:        cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		menu:       newMenuState(settings),
		scores:     newScoresState(store, cfg.ScreenW, cfg.ScreenH),
		helpKeys:   DefaultGameKeyMap(),
		help:       h,
		player:     player,
		seedFixed:  seedFixed,
	}

	if startPlaying {
		m.startSession()
	}

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// startSession builds a fresh engine from the menu settings and enters play.
func (m *Model) startSession() {
	if !m.seedFixed {
		m.cfg.Seed = time.Now().UnixNano()
	}

	m.engine = game.New(m.menu.settings)
	m.seedHighScore()
	m.engine.Reset(m.cfg)
	m.gameState = m.engine.State()
	m.scoreSaved = false
	m.inputFrame.Clear()
	m.phase = phasePlaying
}

// seedHighScore primes the engine with the stored best so the HUD shows it
// from the first frame.
func (m *Model) seedHighScore() {
	if m.store == nil {
		return
	}
	if best, err := m.store.HighScore(m.player); err == nil {
		m.engine.SetHighScore(best)
	}
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

// handleKey dispatches keyboard input to the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseMenu:
		return m.handleMenuKey(msg)
	case phaseScores:
		return m.handleScoresKey(msg)
	case phaseHelp:
		return m.handleHelpKey(msg)
	default:
		return m.handleGameKey(msg)
	}
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.menu.handle(m.keyMapper.MapKeyToMenuAction(msg)) {
	case menuEventStart:
		m.startSession()
	case menuEventScores:
		m.scores.load()
		m.phase = phaseScores
	case menuEventQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleScoresKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	event, cmd := m.scores.handleKey(msg)
	switch event {
	case scoresEventBack:
		m.phase = phaseMenu
	case scoresEventQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// handleHelpKey closes the modal on any key and returns to the prior screen.
func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	m.phase = m.prevPhase
	return m, nil
}

func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "ctrl+s":
		m.saveScreenshot()
		return m, nil

	case "?":
		// The engine is not stepped while help is open, so the board freezes
		m.prevPhase = m.phase
		m.phase = phaseHelp
		return m, nil

	case "esc":
		// From a frozen session esc leaves to the menu; mid-play it pauses
		if m.gameState.GameOver || m.gameState.Paused {
			m.phase = phaseMenu
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)
		return m, nil
	}

	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.cfg.ScreenW = msg.Width
	m.cfg.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.scores.resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	// The board is sized from the screen, so resizing restarts the session
	if m.phase == phasePlaying || (m.phase == phaseHelp && m.prevPhase == phasePlaying) {
		m.engine.Reset(m.cfg)
		m.gameState = m.engine.State()
		m.scoreSaved = false
	}

	return m, nil
}

// handleTick advances the simulation while the game screen is active.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase == phasePlaying {
		result := m.engine.Step(m.inputFrame)
		m.gameState = result.State

		if m.gameState.GameOver {
			m.saveHighScoreOnce()
		} else {
			m.scoreSaved = false
		}

		m.inputFrame.Clear()
	}

	return m, tickCmd(m.cfg.TickRate)
}

// saveHighScoreOnce persists the final score the first time a game over is
// seen. The store only writes when the score beats the stored best.
func (m *Model) saveHighScoreOnce() {
	if m.scoreSaved || m.store == nil || m.gameState.Score == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveHighScore(m.player, m.gameState.Score)
	m.scoreSaved = true
}

// saveScreenshot dumps the current screen buffer to a text file.
func (m *Model) saveScreenshot() {
	m.engine.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".snaketerm", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseMenu:
		return m.menu.view(m.cfg.ScreenW)
	case phaseScores:
		return m.scores.view()
	case phaseHelp:
		return m.viewHelp()
	default:
		m.engine.Render(m.screen)
		return RenderScreen(m.screen)
	}
}

func (m Model) viewHelp() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("CONTROLS", m.cfg.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.helpKeys))
	b.WriteString("\n\n")
	b.WriteString(centerText("Press any key to return", m.cfg.ScreenW))

	return b.String()
}

// Run starts the Bubble Tea program for the session.
func Run(store *storage.Store, cfg core.RuntimeConfig, settings game.Settings, player string, startPlaying bool) error {
	model := NewModel(store, cfg, settings, player, startPlaying)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

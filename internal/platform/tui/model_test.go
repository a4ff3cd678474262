package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// fastSettings makes every tick advance the snake by one cell.
func fastSettings() game.Settings {
	s := game.DefaultSettings()
	s.InitialMs = 10
	s.MinMs = 10
	return s
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 99}
}

func apply(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(m Model) Model {
	return apply(m, TickMsg(time.Now()))
}

func TestModelStartsInMenu(t *testing.T) {
	m := NewModel(nil, testConfig(), fastSettings(), "tester", false)

	if m.phase != phaseMenu {
		t.Fatalf("phase = %v, expected menu", m.phase)
	}
	out := m.View()
	if !strings.Contains(out, "S N A K E") || !strings.Contains(out, "Start Game") {
		t.Error("menu view should show the title and start row")
	}
}

func TestModelStartPlayingImmediately(t *testing.T) {
	m := NewModel(nil, testConfig(), fastSettings(), "tester", true)

	if m.phase != phasePlaying {
		t.Fatalf("phase = %v, expected playing", m.phase)
	}
	if m.engine.Snapshot().SnakeLen != 1 {
		t.Error("session should be initialized")
	}
}

func TestModelMenuStartsSession(t *testing.T) {
	m := NewModel(nil, testConfig(), fastSettings(), "tester", false)

	m = apply(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.phase != phasePlaying {
		t.Fatalf("phase = %v, expected playing after enter on start row", m.phase)
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("game view should show the HUD")
	}
}

func TestModelTickStepsEngineOnlyWhilePlaying(t *testing.T) {
	m := NewModel(nil, testConfig(), fastSettings(), "tester", false)

	// Ticks in the menu do not run the simulation
	m = tick(m)
	m = tick(m)
	if got := m.engine.Snapshot().Tick; got != 0 {
		t.Fatalf("engine ticked %d times while in menu", got)
	}

	m = apply(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(m)
	m = tick(m)
	if got := m.engine.Snapshot().Tick; got != 2 {
		t.Fatalf("engine tick = %d, expected 2", got)
	}
}

func TestModelHelpFreezesSimulation(t *testing.T) {
	m := NewModel(nil, testConfig(), fastSettings(), "tester", true)

	m = tick(m)
	m = tick(m)
	m = apply(m, keyRunes('?'))
	if m.phase != phaseHelp {
		t.Fatalf("phase = %v, expected help", m.phase)
	}

	before := m.engine.Snapshot()
	for i := 0; i < 5; i++ {
		m = tick(m)
	}
	if m.engine.Snapshot() != before {
		t.Error("simulation advanced while help was open")
	}

	if !strings.Contains(m.View(), "CONTROLS") {
		t.Error("help view should show the controls title")
	}

	// Any key returns to the game
	m = apply(m, keyRunes('x'))
	if m.phase != phasePlaying {
		t.Errorf("phase = %v, expected playing after closing help", m.phase)
	}
}

func TestModelEscPausesThenLeavesToMenu(t *testing.T) {
	m := NewModel(nil, testConfig(), fastSettings(), "tester", true)
	m = tick(m)

	// First esc pauses
	m = apply(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(m)
	if !m.gameState.Paused {
		t.Fatal("esc during play should pause")
	}
	if !strings.Contains(m.View(), "Paused") {
		t.Error("paused view should show the overlay")
	}

	// Second esc leaves to the menu
	m = apply(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.phase != phaseMenu {
		t.Errorf("phase = %v, expected menu after esc while paused", m.phase)
	}
}

func TestModelGameOverEscAndRestart(t *testing.T) {
	m := NewModel(nil, testConfig(), fastSettings(), "tester", true)

	// 78 interior columns, head starts at x=39 heading right; the wall hit
	// comes well within 60 ticks at one move per tick.
	for i := 0; i < 60 && !m.gameState.GameOver; i++ {
		m = tick(m)
	}
	if !m.gameState.GameOver {
		t.Fatal("expected the session to end at the wall")
	}

	// r restarts in place
	m = apply(m, keyRunes('r'))
	m = tick(m)
	if m.gameState.GameOver {
		t.Fatal("restart should start a fresh session")
	}
	if m.phase != phasePlaying {
		t.Fatalf("phase = %v, expected still playing", m.phase)
	}

	// Back at game over, esc returns to the menu
	for i := 0; i < 60 && !m.gameState.GameOver; i++ {
		m = tick(m)
	}
	m = apply(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.phase != phaseMenu {
		t.Errorf("phase = %v, expected menu after esc at game over", m.phase)
	}
}

func TestModelResizeResetsSession(t *testing.T) {
	m := NewModel(nil, testConfig(), fastSettings(), "tester", true)
	m = tick(m)
	m = tick(m)

	m = apply(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
	snap := m.engine.Snapshot()
	if snap.Tick != 0 || snap.SnakeLen != 1 {
		t.Errorf("resize should restart the session, got tick=%d len=%d", snap.Tick, snap.SnakeLen)
	}
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(nil, testConfig(), fastSettings(), "tester", true)

	next, cmd := m.Update(keyRunes('q'))
	m = next.(Model)
	if !m.quitting {
		t.Fatal("q should set quitting")
	}
	if cmd == nil {
		t.Fatal("q should produce the quit command")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestModelScoresRoundTrip(t *testing.T) {
	m := NewModel(nil, testConfig(), fastSettings(), "tester", false)

	m = apply(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.phase != phaseScores {
		t.Fatalf("phase = %v, expected scores after tab", m.phase)
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty store should show the placeholder")
	}

	m = apply(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.phase != phaseMenu {
		t.Errorf("phase = %v, expected menu after esc from scores", m.phase)
	}
}

func TestModelFixedSeedReplays(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 1234
	m := NewModel(nil, cfg, fastSettings(), "tester", false)

	m.startSession()
	first := m.engine.Snapshot()
	m.startSession()
	second := m.engine.Snapshot()

	if first != second {
		t.Errorf("fixed seed should replay identically:\n%+v\nvs\n%+v", first, second)
	}
}

func TestModelSavesHighScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewModel(store, testConfig(), fastSettings(), "tester", true)

	m.gameState = core.GameState{GameOver: true, Score: 55}
	m.saveHighScoreOnce()

	best, _ := store.HighScore("tester")
	if best != 55 {
		t.Fatalf("stored best = %d, expected 55", best)
	}
	if !m.scoreSaved {
		t.Fatal("scoreSaved should be set after the first save")
	}

	// A second game over on the same session state saves nothing new
	m.gameState.Score = 99
	m.saveHighScoreOnce()
	best, _ = store.HighScore("tester")
	if best != 55 {
		t.Errorf("stored best = %d, the gated save should not have run", best)
	}

	// Re-armed after the next session begins
	m.scoreSaved = false
	m.saveHighScoreOnce()
	best, _ = store.HighScore("tester")
	if best != 99 {
		t.Errorf("stored best = %d, expected 99 after re-armed save", best)
	}
}

func TestModelZeroScoreNotSaved(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewModel(store, testConfig(), fastSettings(), "tester", true)
	m.gameState = core.GameState{GameOver: true, Score: 0}
	m.saveHighScoreOnce()

	entries, _ := store.TopHighScores(10)
	if len(entries) != 0 {
		t.Errorf("zero scores should not be persisted, got %d entries", len(entries))
	}
}

func TestModelMenuSettingsReachTheEngine(t *testing.T) {
	m := NewModel(nil, testConfig(), fastSettings(), "tester", false)

	// Toggle obstacles on in the menu, then start
	m = apply(m, keyRunes('o'))
	m = apply(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.engine.Snapshot().Obstacles == 0 {
		t.Error("session should honor the obstacles toggle from the menu")
	}
	if !m.engine.Settings().Obstacles {
		t.Error("engine settings should carry the toggle")
	}
}

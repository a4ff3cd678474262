package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// maxScoreRows caps how many stored bests the table loads.
const maxScoreRows = 100

// ScoreboardKeyMap defines the key bindings for the scores view.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoresEvent tells the session model what a key press in the scores view
// resolved to.
type scoresEvent int

const (
	scoresEventNone scoresEvent = iota
	scoresEventBack
	scoresEventQuit
)

// scoresState is the stored-bests table view.
type scoresState struct {
	store  *storage.Store
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
	empty  bool
}

func newScoresState(store *storage.Store, width, height int) scoresState {
	h := help.New()
	h.ShowAll = false

	s := scoresState{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	s.table = s.createTable()
	return s
}

// createTable creates a new table with appropriate columns.
func (s *scoresState) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Best", Width: 10},
		{Title: "Updated", Width: 18},
	}

	height := s.height - 8 // Leave room for title, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return t
}

// load pulls the stored bests into the table.
func (s *scoresState) load() {
	if s.store == nil {
		s.empty = true
		s.table.SetRows(nil)
		return
	}

	entries, err := s.store.TopHighScores(maxScoreRows)
	if err != nil || len(entries) == 0 {
		s.empty = true
		s.table.SetRows(nil)
		return
	}

	s.empty = false
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Player,
			fmt.Sprintf("%d", e.Best),
			e.UpdatedAt.Format("Jan 02 15:04"),
		}
	}
	s.table.SetRows(rows)
	s.table.GotoTop()
}

// resize rebuilds the table for new screen dimensions, keeping the rows.
func (s *scoresState) resize(width, height int) {
	s.width = width
	s.height = height
	rows := s.table.Rows()
	s.table = s.createTable()
	s.table.SetRows(rows)
}

// handleKey routes a key press; table scrolling is delegated to bubbles.
func (s *scoresState) handleKey(msg tea.KeyMsg) (scoresEvent, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Quit):
		return scoresEventQuit, nil
	case key.Matches(msg, s.keys.Back):
		return scoresEventBack, nil
	}

	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return scoresEventNone, cmd
}

// view renders the scores table with title and help bar.
func (s scoresState) view() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES", s.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if s.empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No scores recorded yet.\nPlay a round to set one!")))
	} else {
		b.WriteString(tableStyle.Render(s.table.View()))
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(s.help.View(s.keys)))

	return b.String()
}

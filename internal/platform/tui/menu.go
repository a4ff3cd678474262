package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// Menu rows, top to bottom.
const (
	menuRowStart = iota
	menuRowDifficulty
	menuRowWalls
	menuRowObstacles
	menuRowScores
	menuRowQuit
	menuRowCount
)

// menuEvent is what a key press resolved to beyond cursor movement.
type menuEvent int

const (
	menuEventNone menuEvent = iota
	menuEventStart
	menuEventScores
	menuEventQuit
)

// menuState holds the main menu cursor and the session settings being edited.
// Settings changes take effect when the next session starts.
type menuState struct {
	cursor   int
	settings game.Settings
}

func newMenuState(settings game.Settings) menuState {
	return menuState{settings: settings}
}

// handle applies one menu action and reports what the caller should do next.
func (ms *menuState) handle(action MenuAction) menuEvent {
	switch action {
	case MenuActionQuit:
		return menuEventQuit

	case MenuActionUp:
		if ms.cursor > 0 {
			ms.cursor--
		}

	case MenuActionDown:
		if ms.cursor < menuRowCount-1 {
			ms.cursor++
		}

	case MenuActionLeft:
		ms.adjust(-1)

	case MenuActionRight:
		ms.adjust(1)

	case MenuActionSelect:
		return ms.selectRow()

	case MenuActionScores:
		return menuEventScores

	case MenuActionToggleWalls:
		ms.settings.Walls = !ms.settings.Walls

	case MenuActionToggleObstacles:
		ms.settings.Obstacles = !ms.settings.Obstacles
	}

	return menuEventNone
}

// adjust tweaks the value on the current row; only option rows react.
func (ms *menuState) adjust(dir int) {
	switch ms.cursor {
	case menuRowDifficulty:
		if dir < 0 {
			ms.settings.Difficulty = ms.settings.Difficulty.Prev()
		} else {
			ms.settings.Difficulty = ms.settings.Difficulty.Next()
		}
	case menuRowWalls:
		ms.settings.Walls = !ms.settings.Walls
	case menuRowObstacles:
		ms.settings.Obstacles = !ms.settings.Obstacles
	}
}

// selectRow activates the row under the cursor.
func (ms *menuState) selectRow() menuEvent {
	switch ms.cursor {
	case menuRowStart:
		return menuEventStart
	case menuRowDifficulty:
		ms.settings.Difficulty = ms.settings.Difficulty.Next()
	case menuRowWalls:
		ms.settings.Walls = !ms.settings.Walls
	case menuRowObstacles:
		ms.settings.Obstacles = !ms.settings.Obstacles
	case menuRowScores:
		return menuEventScores
	case menuRowQuit:
		return menuEventQuit
	}
	return menuEventNone
}

// view renders the menu centered for the given width.
func (ms menuState) view(width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S N A K E", width))
	b.WriteString("\n\n")

	rows := []string{
		"Start Game",
		fmt.Sprintf("Difficulty  < %s >", ms.settings.Difficulty),
		fmt.Sprintf("Walls       [%s]", onOff(ms.settings.Walls)),
		fmt.Sprintf("Obstacles   [%s]", onOff(ms.settings.Obstacles)),
		"High Scores",
		"Quit",
	}

	// Pad rows to a common width so the centered block lines up
	maxLen := 0
	for _, r := range rows {
		if len(r) > maxLen {
			maxLen = len(r)
		}
	}

	for i, row := range rows {
		cursor := "  "
		if i == ms.cursor {
			cursor = "> "
		}
		line := cursor + row + strings.Repeat(" ", maxLen-len(row))
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Adjust  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, width))
	b.WriteString("\n")

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

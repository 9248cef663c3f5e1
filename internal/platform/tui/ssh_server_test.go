package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func TestSessionModelID(t *testing.T) {
	a := NewSessionModel(nil, testConfig(), "alice", nil)
	b := NewSessionModel(nil, testConfig(), "alice", nil)

	if _, err := uuid.Parse(a.SessionID()); err != nil {
		t.Errorf("SessionID() = %q is not a UUID: %v", a.SessionID(), err)
	}
	if a.SessionID() == b.SessionID() {
		t.Error("every session should get its own ID")
	}
}

func TestSessionModelMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "alice", nil)

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game == nil {
		t.Fatal("selecting a course should start a game")
	}
	if cmd == nil {
		t.Error("starting a game should schedule the first tick")
	}

	// 'b' only works while paused or after game over.
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	if m.game == nil {
		t.Fatal("'b' during a live run should be ignored")
	}

	start := time.Now()
	m, _ = sessionUpdate(t, m, TickMsg(start))
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m, _ = sessionUpdate(t, m, TickMsg(start.Add(16*time.Millisecond)))
	if !m.game.State().Paused {
		t.Fatal("game should be paused")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	if m.game != nil {
		t.Fatal("'b' while paused should return to the menu")
	}
	if m.quitting {
		t.Error("returning to the menu should not end the session")
	}
	if m.View() == "" {
		t.Error("menu view should not be empty")
	}
}

func TestSessionModelScoreboard(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "bob", nil)

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board == nil {
		t.Fatal("tab should open the scoreboard")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.board != nil {
		t.Error("esc should close the scoreboard")
	}
}

func TestSessionModelQuit(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "carol", nil)

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.quitting || cmd == nil {
		t.Error("'q' in the menu should end the session")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestSessionModelResize(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "dave", nil)

	m, _ = sessionUpdate(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.config.ScreenW != 100 || m.config.ScreenH != 30 {
		t.Errorf("config = %dx%d, expected 100x30", m.config.ScreenW, m.config.ScreenH)
	}
}

package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dash-runner/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyAction(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w jumps", runeKey('w'), core.ActionJump},
		{"p pauses", runeKey('p'), core.ActionPause},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause},
		{"r restarts", runeKey('r'), core.ActionRestart},
		{"b goes back", runeKey('b'), core.ActionBack},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"screenshot is not an action", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
		{"unbound key", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.action {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.action)
			}
		})
	}
}

func TestMenuKeys(t *testing.T) {
	keys := DefaultMenuKeyMap()

	tests := []struct {
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{runeKey('k'), keys.Up},
		{tea.KeyMsg{Type: tea.KeyDown}, keys.Down},
		{tea.KeyMsg{Type: tea.KeyEnter}, keys.Select},
		{tea.KeyMsg{Type: tea.KeyTab}, keys.Scores},
		{runeKey('q'), keys.Quit},
	}

	for _, tc := range tests {
		if !key.Matches(tc.msg, tc.binding) {
			t.Errorf("%q should match %q", tc.msg.String(), tc.binding.Help().Desc)
		}
	}
	if key.Matches(runeKey('z'), keys.Up, keys.Down, keys.Select, keys.Scores, keys.Quit) {
		t.Error("z should not be bound in the menu")
	}
}

func TestHelpBindings(t *testing.T) {
	if got := len(DefaultGameKeyMap().ShortHelp()); got != 4 {
		t.Errorf("game ShortHelp has %d bindings, expected 4", got)
	}
	if got := len(DefaultMenuKeyMap().FullHelp()[0]); got != 5 {
		t.Errorf("menu FullHelp has %d bindings, expected 5", got)
	}
}

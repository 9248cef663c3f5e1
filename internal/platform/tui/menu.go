package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dash-runner/internal/core"
	"github.com/vovakirdan/dash-runner/internal/registry"
	"github.com/vovakirdan/dash-runner/internal/storage"
)

// MenuItem is one course in the picker.
type MenuItem struct {
	GameID  string
	Title   string
	Summary string
	Best    int // stored best score, 0 if unknown
}

type menuStyles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	best     lipgloss.Style
	summary  lipgloss.Style
}

func newMenuStyles(r *lipgloss.Renderer) menuStyles {
	return menuStyles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2),
		subtitle: r.NewStyle().Foreground(lipgloss.Color("245")),
		item:     r.NewStyle().PaddingLeft(2),
		selected: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		best:     r.NewStyle().Foreground(lipgloss.Color("214")),
		summary:  r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}

// MenuModel is the Bubble Tea model for the course picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keys           MenuKeyMap
	help           help.Model
	styles         menuStyles
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered course with its stored best score.
// store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	courses := registry.List()
	items := make([]MenuItem, 0, len(courses))
	for _, c := range courses {
		item := MenuItem{GameID: c.ID, Title: c.Title, Summary: c.Summary}
		if store != nil {
			if best, err := storage.NewBestScore(store, c.ID).LoadBest(); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		styles: newMenuStyles(lipgloss.DefaultRenderer()),
	}
}

// WithRenderer styles the menu for a specific output.
func (m MenuModel) WithRenderer(r *lipgloss.Renderer) MenuModel {
	m.styles = newMenuStyles(r)
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)

	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+1, len(m.items)-1)

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Scores):
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		m.styles.title.Render("D A S H"),
		"",
		m.styles.subtitle.Render("Select a course"),
		"",
	}

	for i, item := range m.items {
		label := item.Title
		if item.Best > 0 {
			label += m.styles.best.Render(fmt.Sprintf("  (best %d)", item.Best))
		}
		if i == m.cursor {
			lines = append(lines, m.styles.selected.Render("> "+label))
			if item.Summary != "" {
				lines = append(lines, m.styles.summary.Render("  "+item.Summary))
			}
			continue
		}
		lines = append(lines, m.styles.item.Render(label))
	}

	lines = append(lines, "", m.help.View(m.keys))
	body := lipgloss.JoinVertical(lipgloss.Left, lines...)

	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu as its own program and reports the choice.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}

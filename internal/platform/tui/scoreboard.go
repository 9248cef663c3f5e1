package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dash-runner/internal/registry"
	"github.com/vovakirdan/dash-runner/internal/storage"
)

const (
	maxScores = 100 // runs loaded per course
	stepRate  = 120 // simulation steps per second, for run durations

	// Below this width the table drops the end cause column.
	causeColumnWidth = 64
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next course"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev course"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type boardStyles struct {
	title     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	stats     lipgloss.Style
	frame     lipgloss.Style
	empty     lipgloss.Style
	table     table.Styles
}

func newBoardStyles(r *lipgloss.Renderer) boardStyles {
	t := table.DefaultStyles()
	t.Header = r.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	t.Cell = r.NewStyle().Padding(0, 1)
	t.Selected = r.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	return boardStyles{
		title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		tab:       r.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		activeTab: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1),
		stats:     r.NewStyle().Foreground(lipgloss.Color("245")),
		frame:     r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		empty:     r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4),
		table:     t,
	}
}

// ScoreboardModel shows the run history of every course, one course at a time.
type ScoreboardModel struct {
	courses   []registry.Info
	current   int
	store     *storage.Store
	scores    []storage.RunRecord
	stats     *storage.GameStats
	best      int // stored best of the selected course
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	styles    boardStyles
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first course.
// store may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		courses: registry.List(),
		store:   store,
		keys:    DefaultScoreboardKeyMap(),
		help:    help.New(),
		styles:  newBoardStyles(lipgloss.DefaultRenderer()),
		width:   width,
		height:  height,
	}
	m.help.Width = width
	m.load()
	return m
}

// WithRenderer styles the scoreboard for a specific output.
func (m ScoreboardModel) WithRenderer(r *lipgloss.Renderer) ScoreboardModel {
	m.styles = newBoardStyles(r)
	m.rebuildTable()
	return m
}

// load reads the runs, best score and stats of the current course.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.best = nil, nil, 0
	if m.store != nil && len(m.courses) > 0 {
		id := m.courses[m.current].ID
		if runs, err := m.store.TopRuns(id, maxScores); err == nil {
			m.scores = runs
		}
		if best, err := storage.NewBestScore(m.store, id).LoadBest(); err == nil {
			m.best = best
		}
		if stats, err := m.store.GetGameStats(id); err == nil && stats.GamesCount > 0 {
			m.stats = stats
		}
	}
	m.rebuildTable()
}

func (m ScoreboardModel) showCause() bool {
	return m.width >= causeColumnWidth
}

func (m *ScoreboardModel) rebuildTable() {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Cleared", Width: 7},
		{Title: "Time", Width: 6},
	}
	if m.showCause() {
		columns = append(columns, table.Column{Title: "Ended", Width: 12})
	}
	columns = append(columns, table.Column{Title: "Date", Width: 12})

	rows := make([]table.Row, len(m.scores))
	for i, r := range m.scores {
		row := table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Cleared),
			formatDuration(r.Duration(stepRate)),
		}
		if m.showCause() {
			row = append(row, r.Cause)
		}
		rows[i] = append(row, r.CreatedAt.Format("Jan 02 15:04"))
	}

	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // title, tabs, stats and help
		table.WithStyles(m.styles.table),
	)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycle(delta int) {
	if len(m.courses) == 0 {
		return
	}
	n := len(m.courses)
	m.current = ((m.current+delta)%n + n) % n
	m.load()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.courses) > 0 {
		title += " - " + m.courses[m.current].Title
	}

	tabs := make([]string, len(m.courses))
	for i, c := range m.courses {
		style := m.styles.tab
		if i == m.current {
			style = m.styles.activeTab
		}
		tabs[i] = style.Render(c.Title)
	}

	var body string
	if len(m.scores) == 0 {
		body = m.styles.empty.Render("No runs recorded yet.\nFinish a run to set a high score!")
	} else {
		body = m.table.View()
	}

	view := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.title.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		m.styles.stats.Render(m.summary()),
		m.styles.frame.Render(body),
		m.help.View(m.keys),
	)
	if m.width <= 0 {
		return view
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, view)
}

// summary is the one-line stats header of the current course.
func (m ScoreboardModel) summary() string {
	line := fmt.Sprintf("Best: %d", m.best)
	if m.stats != nil {
		line += fmt.Sprintf("  Runs: %d  Avg: %.0f  Cleared: %d", m.stats.GamesCount, m.stats.AvgScore, m.stats.Cleared)
	}
	return line
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
// It reports whether the user went back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}

// formatDuration renders a run length as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

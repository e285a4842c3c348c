package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jamesrmoro/commits-invaders/internal/storage"
)

// CacheStore is the part of storage.Store the cache browser needs.
type CacheStore interface {
	ListCalendars() ([]storage.CalendarEntry, error)
	DeleteCalendar(user string) error
}

// CacheKeyMap defines the key bindings for the cache browser.
type CacheKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Play   key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k CacheKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Play, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k CacheKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Play, k.Delete, k.Quit},
	}
}

// DefaultCacheKeyMap returns default key bindings.
func DefaultCacheKeyMap() CacheKeyMap {
	return CacheKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// CacheBrowserModel lists cached calendars and lets the player pick one.
type CacheBrowserModel struct {
	store    CacheStore
	entries  []storage.CalendarEntry
	table    table.Model
	help     help.Model
	keys     CacheKeyMap
	width    int
	height   int
	err      error
	selected string
	quitting bool
}

// NewCacheBrowserModel creates a cache browser over store.
func NewCacheBrowserModel(store CacheStore, width, height int) CacheBrowserModel {
	m := CacheBrowserModel{
		store:  store,
		keys:   DefaultCacheKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadEntries()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *CacheBrowserModel) createTable() table.Model {
	userWidth := max(m.width-4-8-10-18-8, 12)
	columns := []table.Column{
		{Title: "User", Width: min(userWidth, 39)},
		{Title: "Weeks", Width: 8},
		{Title: "Commits", Width: 10},
		{Title: "Fetched", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#041C31")).
		Background(lipgloss.Color("#40C463")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadEntries reloads the cache listing.
func (m *CacheBrowserModel) loadEntries() {
	entries, err := m.store.ListCalendars()
	m.err = err
	m.entries = entries
	m.updateTableRows()
}

// updateTableRows updates the table with the current entries.
func (m *CacheBrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			e.Username,
			fmt.Sprintf("%d", e.Weeks),
			fmt.Sprintf("%d", e.Total),
			e.FetchedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// Init initializes the cache browser.
func (m CacheBrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the cache browser.
func (m CacheBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Play):
			if row := m.table.SelectedRow(); row != nil {
				m.selected = row[0]
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if row := m.table.SelectedRow(); row != nil {
				if err := m.store.DeleteCalendar(row[0]); err != nil {
					m.err = err
					return m, nil
				}
				m.loadEntries()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(min(cursor, max(len(m.entries)-1, 0)))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the cache browser.
func (m CacheBrowserModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#40C463"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("CACHED CALENDARS (%d)", len(m.entries))))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No calendars cached yet.\nPlay or fetch a user to fill the cache.")))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#F85149")).Render("Error: " + m.err.Error()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the user picked with enter, or "".
func (m CacheBrowserModel) Selected() string {
	return m.selected
}

// RunCacheBrowser runs the cache browser and returns the picked user,
// or "" when the player quit.
func RunCacheBrowser(store CacheStore, width, height int) (string, error) {
	model := NewCacheBrowserModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(CacheBrowserModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}

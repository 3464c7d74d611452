package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/grove/internal/app"
	"github.com/alexanderramin/grove/internal/cli/formatter"
	"github.com/alexanderramin/grove/internal/domain"
	"github.com/alexanderramin/grove/internal/stats"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dashboardKeyMap struct {
	Category key.Binding
	Status   key.Binding
	Quit     key.Binding
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle category")),
		Status:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle status")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Category, k.Status, k.Quit}
}

var statusCycle = []domain.SessionStatus{"", domain.SessionDone, domain.SessionFailed}

// dashboardHeaderLines is the number of rows View renders above the table.
const dashboardHeaderLines = 5

// dashboardModel browses the sessions behind a dashboard response, filtered
// by category and status like the plant page.
type dashboardModel struct {
	resp       *app.DashboardResponse
	categories map[string]domain.Category
	catIdx     int // 0 is all categories, otherwise resp.Categories[catIdx-1]
	statusIdx  int
	keys       dashboardKeyMap
	table      table.Model
}

func newDashboardModel(resp *app.DashboardResponse) dashboardModel {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(formatter.ColorHeader).Bold(true)
	styles.Selected = styles.Selected.Foreground(formatter.ColorFg).Background(lipgloss.Color("#504945"))

	m := dashboardModel{
		resp:       resp,
		categories: domain.IndexCategories(resp.Categories),
		keys:       newDashboardKeyMap(),
		table: table.New(
			table.WithColumns([]table.Column{
				{Title: "Date", Width: 10},
				{Title: "Category", Width: 16},
				{Title: "Title", Width: 28},
				{Title: "Time", Width: 8},
				{Title: "Status", Width: 7},
			}),
			table.WithFocused(true),
			table.WithHeight(15),
			table.WithStyles(styles),
		),
	}
	m.refresh()
	return m
}

func (m dashboardModel) filter() stats.SessionFilter {
	f := stats.SessionFilter{Status: statusCycle[m.statusIdx]}
	if m.catIdx > 0 {
		f.CategoryID = m.resp.Categories[m.catIdx-1].ID
	}
	return f
}

func (m *dashboardModel) refresh() {
	sessions := stats.FilterSessions(m.resp.Sessions, m.filter())
	rows := make([]table.Row, 0, len(sessions))
	for _, s := range sessions {
		name := formatter.UnknownCategory
		if c, ok := m.categories[s.CategoryID]; ok {
			name = c.Name
		}
		rows = append(rows, table.Row{
			s.DateISO,
			name,
			s.Title,
			formatter.FormatMinutes(s.MinutesFocused),
			string(s.Status),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m dashboardModel) Init() tea.Cmd { return nil }

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-dashboardHeaderLines-2, 3))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Category):
			m.catIdx = (m.catIdx + 1) % (len(m.resp.Categories) + 1)
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Status):
			m.statusIdx = (m.statusIdx + 1) % len(statusCycle)
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m dashboardModel) categoryLabel() string {
	if m.catIdx == 0 {
		return "all categories"
	}
	return m.resp.Categories[m.catIdx-1].Name
}

func (m dashboardModel) statusLabel() string {
	if s := statusCycle[m.statusIdx]; s != "" {
		return string(s)
	}
	return "any status"
}

func (m dashboardModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("FOREST · " + m.resp.Today))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s  %s\n",
		formatter.StyleGreen.Render(fmt.Sprintf("%d healthy", m.resp.Health.Healthy)),
		formatter.HealthPillCount(m.resp.Health.Barren),
		formatter.Dim(formatter.FormatMinutes(m.resp.MinutesThisMonth)+" this month"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Showing %s, %s (%d sessions)\n",
		formatter.Bold(m.categoryLabel()), formatter.Bold(m.statusLabel()), len(m.table.Rows()))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	hints := make([]string, 0, len(m.keys.ShortHelp()))
	for _, kb := range m.keys.ShortHelp() {
		h := kb.Help()
		hints = append(hints, formatter.Dim(h.Key+": "+h.Desc))
	}
	b.WriteString(strings.Join(hints, "  "))
	return b.String()
}

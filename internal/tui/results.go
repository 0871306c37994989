package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kestrel-notes/mdfind/internal/qualifier"
)

var statusStyle = lipgloss.NewStyle().Faint(true)

// Model browses a finished set of matches: a table on the left, a glamour
// preview of the selected file on the right, "y" copies its path to the
// clipboard.
type Model struct {
	table   table.Model
	records []*qualifier.FileRecord
	preview string
	status  string
	width   int
	height  int
}

// NewModel builds a browser over records.
func NewModel(records []*qualifier.FileRecord) Model {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{r.Path, fmt.Sprintf("%d", r.Stats.Size)}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Path", Width: 50},
			{Title: "Size", Width: 10},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
	)

	m := Model{table: t, records: records}
	m.refreshPreview()
	return m
}

// Run launches the browser full-screen until the user quits.
func Run(records []*qualifier.FileRecord) error {
	if len(records) == 0 {
		fmt.Println("no matches")
		return nil
	}
	_, err := tea.NewProgram(NewModel(records)).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(m.width / 2)
		m.table.SetHeight(m.height - 3)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "y":
			if rec := m.selected(); rec != nil {
				if err := clipboard.WriteAll(rec.Path); err != nil {
					m.status = fmt.Sprintf("copy failed: %v", err)
				} else {
					m.status = "copied " + rec.Path
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	m.refreshPreview()
	return m, cmd
}

func (m Model) View() string {
	left := m.table.View()
	right := lipgloss.NewStyle().Width(m.width - lipgloss.Width(left)).Render(m.preview)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	help := statusStyle.Render("↑/↓ move · y copy path · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, statusStyle.Render(m.status), help)
}

func (m *Model) selected() *qualifier.FileRecord {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.records) {
		return nil
	}
	return m.records[idx]
}

func (m *Model) refreshPreview() {
	rec := m.selected()
	if rec == nil {
		m.preview = ""
		return
	}
	width := m.width / 2
	if width <= 0 {
		width = 80
	}
	m.preview = RenderPreview(rec.Path, width)
}

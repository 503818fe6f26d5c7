package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/recgenlabs/recgen/memdb"
	"github.com/recgenlabs/recgen/value"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	recordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type viewState int

const (
	stateRecordList viewState = iota
	stateRecordDetail
)

type browserModel struct {
	db       *memdb.DB
	filename string
	records  []value.Record
	filtered []value.Record
	filter   textinput.Model
	state    viewState
	selected int
}

func runInteractive(filename string, db *memdb.DB) error {
	records := make([]value.Record, 0, db.NumRecords())
	for _, rh := range db.Records() {
		records = append(records, value.NewRecord(db, rh))
	}

	filter := textinput.New()
	filter.Placeholder = "filter records"
	filter.Prompt = "/ "
	filter.Focus()

	m := browserModel{
		db:       db,
		filename: filename,
		records:  records,
		filtered: records,
		filter:   filter,
	}

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m browserModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateRecordDetail {
				m.state = stateRecordList
				return m, nil
			}
			return m, tea.Quit

		case "esc":
			if m.state == stateRecordDetail {
				m.state = stateRecordList
			}
			return m, nil

		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down":
			if m.selected < len(m.filtered)-1 {
				m.selected++
			}
			return m, nil

		case "enter":
			if m.state == stateRecordList && len(m.filtered) > 0 {
				m.state = stateRecordDetail
			}
			return m, nil
		}
	}

	if m.state == stateRecordList {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}
	return m, nil
}

func (m *browserModel) applyFilter() {
	query := strings.ToLower(m.filter.Value())
	if query == "" {
		m.filtered = m.records
	} else {
		filtered := make([]value.Record, 0, len(m.records))
		for _, rec := range m.records {
			if strings.Contains(strings.ToLower(rec.Name()), query) {
				filtered = append(filtered, rec)
			}
		}
		m.filtered = filtered
	}
	if m.selected >= len(m.filtered) {
		m.selected = 0
	}
}

func (m browserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("recdump - %s", m.filename)))
	b.WriteString("\n\n")

	switch m.state {
	case stateRecordList:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
		for i, rec := range m.filtered {
			line := fmt.Sprintf("%s (%d fields)", rec.Name(), rec.NumFields())
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString(recordStyle.Render("  " + line))
			}
			b.WriteByte('\n')
		}
		if len(m.filtered) == 0 {
			b.WriteString(helpStyle.Render("  no records match"))
			b.WriteByte('\n')
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("up/down: select • enter: open • q: quit"))

	case stateRecordDetail:
		rec := m.filtered[m.selected]
		b.WriteString(recordStyle.Render(rec.Name()))
		b.WriteString("\n\n")
		for it := rec.Fields(); ; {
			name, v, ok := it.Next()
			if !ok {
				break
			}
			b.WriteString(fieldStyle.Render(fmt.Sprintf("  %-16s", name)))
			b.WriteString(valueStyle.Render(v.String()))
			b.WriteByte('\n')
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc: back • q: back"))
	}

	return b.String()
}

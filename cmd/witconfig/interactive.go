package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	shapeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const visibleRows = 15

type inspectorModel struct {
	err        error
	report     *report
	filter     textinput.Model
	graphFile  string
	configFile string
	filtered   []entry
	selected   int
	offset     int
	loaded     bool
}

type reportMsg struct {
	err    error
	report *report
}

func newInspectorModel(graphFile, configFile string) *inspectorModel {
	filter := textinput.New()
	filter.Placeholder = "filter by path"
	filter.Focus()
	return &inspectorModel{
		graphFile:  graphFile,
		configFile: configFile,
		filter:     filter,
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.load)
}

func (m *inspectorModel) load() tea.Msg {
	rep, err := buildReport(m.graphFile, m.configFile)
	return reportMsg{report: rep, err: err}
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		m.loaded = true
		m.err = msg.err
		m.report = msg.report
		m.applyFilter()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.selected > 0 {
				m.selected--
			}
			m.clampScroll()
			return m, nil
		case "down":
			if m.selected < len(m.filtered)-1 {
				m.selected++
			}
			m.clampScroll()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *inspectorModel) applyFilter() {
	if m.report == nil {
		return
	}
	needle := strings.ToLower(m.filter.Value())
	m.filtered = m.filtered[:0]
	for _, e := range m.report.entries {
		if needle == "" || strings.Contains(strings.ToLower(e.path), needle) {
			m.filtered = append(m.filtered, e)
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = len(m.filtered) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.clampScroll()
}

func (m *inspectorModel) clampScroll() {
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+visibleRows {
		m.offset = m.selected - visibleRows + 1
	}
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("witconfig · " + m.graphFile))
	b.WriteString("\n\n")

	if !m.loaded {
		b.WriteString("loading...\n")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc to quit"))
		return b.String()
	}

	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	end := m.offset + visibleRows
	if end > len(m.filtered) {
		end = len(m.filtered)
	}
	for i := m.offset; i < end; i++ {
		line := m.filtered[i].path
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(pathStyle.Render("  " + line))
		}
		b.WriteByte('\n')
	}
	if len(m.filtered) == 0 {
		b.WriteString(helpStyle.Render("  no elements match"))
		b.WriteByte('\n')
	}

	if m.selected < len(m.filtered) {
		e := m.filtered[m.selected]
		b.WriteByte('\n')
		b.WriteString(kindStyle.Render("kind:   " + e.kind))
		b.WriteByte('\n')
		b.WriteString(kindStyle.Render("config: " + e.config))
		b.WriteByte('\n')
		for _, s := range e.shapes {
			b.WriteString(shapeStyle.Render("shape:  " + s))
			b.WriteByte('\n')
		}
	}

	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"%d/%d elements · type to filter · ↑/↓ select · esc quit",
		len(m.filtered), len(m.report.entries))))
	return b.String()
}

func runInteractive(graphFile, configFile string) error {
	p := tea.NewProgram(newInspectorModel(graphFile, configFile), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

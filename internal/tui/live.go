// Package tui shows live planning progress in the terminal.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/maxtom/ompl/internal/planner"
)

const historyCapacity = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

// ProgressMsg carries one planner progress snapshot into the view.
type ProgressMsg planner.Progress

// DoneMsg signals the end of the search.
type DoneMsg struct {
	Path *planner.Path
	Err  error
}

// Model is the bubbletea model for the live planning view. Feed it
// through the updates channel from the planner goroutine.
type Model struct {
	updates chan tea.Msg

	iteration int
	nodes     int
	best      float64
	history   []float64
	done      bool
	path      *planner.Path
	err       error
}

// NewModel returns a model reading progress from updates.
func NewModel(updates chan tea.Msg) Model {
	return Model{
		updates: updates,
		history: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.wait()
}

func (m Model) wait() tea.Cmd {
	return func() tea.Msg {
		return <-m.updates
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case ProgressMsg:
		m.iteration = msg.Iteration
		m.nodes = msg.Nodes
		m.best = msg.Best
		m.history = append(m.history, msg.Best)
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}
		return m, m.wait()
	case DoneMsg:
		m.done = true
		m.path = msg.Path
		m.err = msg.Err
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("mbplan live"))
	b.WriteString("\n")

	rows := []struct{ label, value string }{
		{"iteration", fmt.Sprintf("%d", m.iteration)},
		{"tree nodes", fmt.Sprintf("%d", m.nodes)},
		{"best dist", fmt.Sprintf("%.4f", m.best)},
	}
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r.label))
		b.WriteString(valueStyle.Render(r.value))
		b.WriteString("\n")
	}

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("distance to goal"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	if m.done {
		if m.err != nil {
			b.WriteString(failStyle.Render("failed: " + m.err.Error()))
		} else {
			b.WriteString(doneStyle.Render(fmt.Sprintf(
				"solved: %d waypoints, cost %.4f", len(m.path.States), m.path.Cost)))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("q: quit"))
	return b.String()
}

// Package viz renders planned paths for the terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/maxtom/ompl/internal/planner"
)

const (
	plotHeight = 10
	plotWidth  = 70
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// Summary returns a styled one-screen description of a solution path.
func Summary(p *planner.Path) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("solution path"))
	b.WriteString("\n")
	rows := []struct{ label, value string }{
		{"waypoints", fmt.Sprintf("%d", len(p.States))},
		{"cost", fmt.Sprintf("%.4f", p.Cost)},
	}
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r.label))
		b.WriteString(valueStyle.Render(r.value))
		b.WriteString("\n")
	}
	return b.String()
}

// PositionPlot charts one body's position components across the
// path's waypoints.
func PositionPlot(p *planner.Path, body int) string {
	if len(p.States) < 2 {
		return ""
	}
	series := make([][]float64, 3)
	for i := range series {
		series[i] = make([]float64, len(p.States))
	}
	for i, s := range p.States {
		pos := *s.BodyPosition(body)
		series[0][i] = pos.X
		series[1][i] = pos.Y
		series[2][i] = pos.Z
	}
	graph := asciigraph.PlotMany(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue),
		asciigraph.SeriesLegends("x", "y", "z"),
		asciigraph.Caption(fmt.Sprintf("body %d position", body)),
	)
	return graphStyle.Render(graph)
}

// DistancePlot charts the space distance between consecutive
// waypoints, a quick read on step uniformity.
func DistancePlot(p *planner.Path, distance func(a, b int) float64) string {
	if len(p.States) < 2 {
		return ""
	}
	gaps := make([]float64, len(p.States)-1)
	for i := range gaps {
		gaps[i] = distance(i, i+1)
	}
	graph := asciigraph.Plot(gaps,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("per-segment distance"),
	)
	return graphStyle.Render(graph)
}

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/srsearch/internal/runner"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleLabel   = lipgloss.NewStyle().Width(8)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

// printReport writes a human-readable summary of rep.
func printReport(w io.Writer, rep runner.Report) {
	name := styleTitle.Render(strings.ToUpper(rep.Strategy))
	elapsed := styleDim.Render(rep.Duration.Round(time.Microsecond).String())

	if rep.Found {
		route := strings.Join(rep.Path, " "+iconArrow+" ")
		fmt.Fprintf(w, "%s %s  %s  %s  %s\n",
			styleSuccess.Render(iconSuccess), name, route,
			styleDim.Render(fmt.Sprintf("(%d nodes, %d edges)", rep.Path.Len(), rep.Path.Edges())),
			elapsed)
	} else {
		fmt.Fprintf(w, "%s %s  no path from %s to %s  %s\n",
			styleError.Render(iconError), name, rep.Start, rep.Goal, elapsed)
	}

	if rep.DFS != nil {
		fmt.Fprintf(w, "  %s explored %s  max depth %s\n", styleLabel.Render("dfs"),
			styleNumber.Render(fmt.Sprint(rep.DFS.NodesExplored)),
			styleNumber.Render(fmt.Sprint(rep.DFS.MaxDepth)))
	}
	if rep.BFS != nil {
		fmt.Fprintf(w, "  %s explored %s  queue %s\n", styleLabel.Render("bfs"),
			styleNumber.Render(fmt.Sprint(rep.BFS.NodesExplored)),
			styleNumber.Render(fmt.Sprint(rep.BFS.QueueSize)))
	}
	if rep.Active != "" {
		fmt.Fprintf(w, "  %s %s  switches %s\n", styleLabel.Render("active"), rep.Active,
			styleNumber.Render(fmt.Sprint(rep.Switches)))
	}
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	zoneStyle  = lipgloss.NewStyle().Bold(true).Width(14)
	warmStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	coldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// printReport summarises the run for the operator.
func printReport(w io.Writer, result *models.Result, written []string) {
	var b strings.Builder

	b.WriteString(titleStyle.Render(result.Source))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%d tables", len(result.Tables))
	if n := len(result.Skipped); n > 0 {
		b.WriteString(", " + warnStyle.Render(fmt.Sprintf("%d rows skipped", n)))
	}
	if n := len(result.Dropped); n > 0 {
		b.WriteString(", " + mutedStyle.Render(fmt.Sprintf("%d items not recognised", n)))
	}
	b.WriteString("\n\n")

	for _, s := range result.Zones {
		b.WriteString(zoneStyle.Render(s.Zone.ID()))
		b.WriteString(warmStyle.Render(fmt.Sprintf("warm %3d", tallyTotal(s.Warm))))
		b.WriteString("  ")
		b.WriteString(coldStyle.Render(fmt.Sprintf("cold %3d", tallyTotal(s.Cold))))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  (%d tables)", len(s.Tables))))
		b.WriteString("\n")
	}

	for _, f := range result.Skipped {
		b.WriteString("\n" + warnStyle.Render("skipped") + " " + fmt.Sprintf("line %d: %s", f.Line, f.Message))
	}
	for _, warn := range result.Warnings {
		b.WriteString("\n" + warnStyle.Render("warning") + " " + warn)
	}
	if len(written) > 0 {
		b.WriteString("\n\n" + mutedStyle.Render(strings.Join(written, "\n")))
	}

	fmt.Fprintln(w, boxStyle.Render(b.String()))
}

func tallyTotal(t models.Tally) int {
	total := 0
	for _, it := range t.Items() {
		total += it.Qty
	}
	return total
}

package report

import (
	"github.com/charmbracelet/lipgloss"

	"benchreport/internal/benchmark"
)

// Centralized lipgloss styles for the report. lipgloss degrades to plain
// text when stdout is not a terminal, so piped output stays clean.
var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")) // Purple-ish

	improvedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")) // Green

	regressedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	stableStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light Gray
)

func styleStatus(status string) string {
	switch status {
	case benchmark.StatusImproved:
		return improvedStyle.Render(status)
	case benchmark.StatusRegressed:
		return regressedStyle.Render(status)
	case benchmark.StatusStable:
		return stableStyle.Render(status)
	default:
		return status
	}
}

func styleDirection(direction string) string {
	if direction == "improvement" {
		return improvedStyle.Render(direction)
	}
	return regressedStyle.Render(direction)
}

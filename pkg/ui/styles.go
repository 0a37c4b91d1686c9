// Package ui provides styled terminal output for rebuild-vendor.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jaspreet-dot-casa/rebuild-vendor/pkg/doctor"
)

// Styles for terminal output
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
)

// StatusIcon returns the styled icon for a check status.
func StatusIcon(status doctor.CheckStatus) string {
	switch status {
	case doctor.StatusOK:
		return SuccessStyle.Render("✓")
	case doctor.StatusMissing, doctor.StatusError:
		return ErrorStyle.Render("✗")
	case doctor.StatusWarning:
		return WarningStyle.Render("⚠")
	default:
		return SubtitleStyle.Render("?")
	}
}

// CheckLine renders a single check result as one line.
func CheckLine(check doctor.Check) string {
	line := fmt.Sprintf("%s %-18s %s", StatusIcon(check.Status), check.Name, check.Message)
	if check.Hint != "" {
		line += "\n    " + SubtitleStyle.Render(check.Hint)
	}
	return line
}

// SummaryLine renders the counts of a doctor summary.
func SummaryLine(summary doctor.Summary) string {
	line := SuccessStyle.Render(fmt.Sprintf("✓ %d", summary.OK))
	if n := summary.Missing + summary.Errors; n > 0 {
		line += "  " + ErrorStyle.Render(fmt.Sprintf("✗ %d", n))
	}
	if summary.Warnings > 0 {
		line += "  " + WarningStyle.Render(fmt.Sprintf("⚠ %d", summary.Warnings))
	}
	return line
}

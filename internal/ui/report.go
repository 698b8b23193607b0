package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)
	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
	imprStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81"))
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))
)

// Title renders a section heading.
func Title(s string) string {
	return titleStyle.Render(s)
}

// Verdict renders the cross-check outcome line.
func Verdict(ok bool, sum int64) string {
	if ok {
		return okStyle.Render("OK") + fmt.Sprintf(" all strategies agree, sum=%d", sum)
	}
	return failStyle.Render("MISMATCH") + " strategies disagree on the computed sum"
}

// Status renders a comparison status cell. A positive diff past the threshold
// is a regression; a negative one past it is an improvement.
func Status(diff, threshold float64) string {
	switch {
	case diff > threshold:
		return failStyle.Render("FAIL")
	case diff < -threshold:
		return imprStyle.Render("IMPR")
	default:
		return "PASS"
	}
}

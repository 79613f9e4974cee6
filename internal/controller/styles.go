package controller

import "github.com/charmbracelet/lipgloss"

// styles decorates verdict words. The zero value renders plain text.
type styles struct {
	pass    *lipgloss.Style
	fail    *lipgloss.Style
	heading *lipgloss.Style
}

func newTerminalStyles() styles {
	pass := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	fail := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	heading := lipgloss.NewStyle().Bold(true)

	return styles{pass: &pass, fail: &fail, heading: &heading}
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}

	return style.Render(text)
}

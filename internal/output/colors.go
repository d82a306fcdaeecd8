package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// styledOutput reports whether stdout is a terminal that can take styles
func styledOutput() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	if !styledOutput() {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}

// ColorCount highlights a count in the run summary
func ColorCount(text string) string {
	if !styledOutput() {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Bold(true).
		Render(text)
}

// ColorWarn colors warning text
func ColorWarn(text string) string {
	if !styledOutput() {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

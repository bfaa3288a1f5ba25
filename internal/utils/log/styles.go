package log

import (
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"
)

var levelStyles = map[Level]lipgloss.Style{
	DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")), // Gray
	InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("#0000FF")), // Blue
	WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")), // Yellow
	ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")), // Red
}

// newStyles pads every level label to the same width so that messages line up
func newStyles() *Styles {
	styles := charmlog.DefaultStyles()
	for level, style := range levelStyles {
		label := strings.ToUpper(level.String())
		styles.Levels[level] = style.SetString(label + strings.Repeat(" ", 5-len(label)))
	}
	return styles
}

// Highlight makes the given text stand out (yellow fg and dark bg)
func Highlight(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F0F080")).
		Background(lipgloss.Color("#3A3A3A")).
		Bold(true).
		Render(" " + text + " ")
}

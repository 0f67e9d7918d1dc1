package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todoey/internal/config/colors"
	"github.com/thenoetrevino/todoey/internal/models"
)

var (
	// Text styles
	TitleStyle  lipgloss.Style
	SubtleStyle lipgloss.Style
	ValueStyle  lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	DoneStyle    lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme.
// Until Init is called every style renders plain text.
func Init(scheme colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Error))

	DoneStyle = lipgloss.NewStyle().
		Strikethrough(true).
		Foreground(lipgloss.Color(scheme.Subtle))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderCategory renders a category name with a swatch in its color tag
func RenderCategory(cat *models.Category) string {
	swatch := ColoredText("■", cat.ColorTag)
	return swatch + " " + TitleStyle.Render(cat.Name)
}

// RenderItem renders an item as "[x] title" or "[ ] title"
func RenderItem(item *models.Item) string {
	if item.Done {
		return SuccessStyle.Render("[x]") + " " + DoneStyle.Render(item.Title)
	}
	return "[ ] " + ValueStyle.Render(item.Title)
}

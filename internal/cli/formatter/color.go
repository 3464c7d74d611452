package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/grove/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorBarren = lipgloss.Color("#d79921")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// UnknownCategory labels sessions whose category no longer exists.
const UnknownCategory = "Unknown"

// HealthPill renders a category's health as a colored indicator.
func HealthPill(h domain.CategoryHealth) string {
	switch h {
	case domain.HealthHealthy:
		return StyleGreen.Render("● Healthy")
	case domain.HealthBarren:
		return lipgloss.NewStyle().Foreground(ColorBarren).Render("○ Barren")
	default:
		return StyleDim.Render(string(h))
	}
}

// SessionStatusPill renders a session's outcome.
func SessionStatusPill(s domain.SessionStatus) string {
	switch s {
	case domain.SessionDone:
		return StyleGreen.Render("✔ done")
	case domain.SessionFailed:
		return StyleRed.Render("✖ failed")
	default:
		return StyleDim.Render(string(s))
	}
}

// Swatch renders a colored dot in the category's own color.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}

// CategoryLabel renders a swatch and the category name, or a dim "Unknown"
// when the category is missing.
func CategoryLabel(c domain.Category, ok bool) string {
	if !ok {
		return StyleDim.Render("○ " + UnknownCategory)
	}
	return Swatch(c.Color) + " " + c.Name
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

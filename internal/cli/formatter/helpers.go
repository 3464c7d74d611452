package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/grove/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDate renders a YYYY-MM-DD date relative to today: "Today",
// "Yesterday", or "Jan 2, 2006". Unparseable input is returned unchanged.
func HumanDate(dateISO string, today time.Time) string {
	d, err := domain.ParseDate(dateISO)
	if err != nil {
		return dateISO
	}
	switch dateISO {
	case domain.FormatDate(today):
		return "Today"
	case domain.FormatDate(today.AddDate(0, 0, -1)):
		return "Yesterday"
	}
	return d.Format("Jan 2, 2006")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

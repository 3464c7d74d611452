package formatter

import (
	"strings"

	"github.com/alexanderramin/grove/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders value as a share of maxValue across width cells. Any
// non-zero value gets at least one filled cell so small months stay visible.
func RenderBar(value, maxValue, width int, style lipgloss.Style) string {
	if width < 1 {
		width = 1
	}
	filled := 0
	if maxValue > 0 && value > 0 {
		filled = value * width / maxValue
		filled = min(max(filled, 1), width)
	}
	return style.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}

// RenderMonthlyChart renders one horizontal bar per month, oldest first.
func RenderMonthlyChart(points []domain.MonthlyPoint, width int) string {
	if len(points) == 0 {
		return Dim("No months to show.")
	}
	peak := 0
	labelWidth := 0
	for _, p := range points {
		peak = max(peak, p.Minutes)
		labelWidth = max(labelWidth, lipgloss.Width(p.Month))
	}

	var b strings.Builder
	for i, p := range points {
		label := p.Month + strings.Repeat(" ", labelWidth-lipgloss.Width(p.Month))
		b.WriteString(StyleFg.Render(label))
		b.WriteString("  ")
		b.WriteString(RenderBar(p.Minutes, peak, width, StyleGreen))
		b.WriteString("  ")
		b.WriteString(FormatMinutes(p.Minutes))
		if i < len(points)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

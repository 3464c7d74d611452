package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/grove/internal/domain"
)

// FormatCategoryStats renders the garden table: one row per category with
// its trailing-window totals.
func FormatCategoryStats(stats []domain.CategoryStats, windowDays int) string {
	if len(stats) == 0 {
		return Dim("No categories yet. Add one with: grove category add --name NAME")
	}

	headers := []string{"ID", "CATEGORY", "STATUS", "MINUTES", "DONE", "FAILED"}
	rows := make([][]string, 0, len(stats))
	for _, st := range stats {
		rows = append(rows, []string{
			TruncID(st.Category.ID),
			CategoryLabel(st.Category, true),
			HealthPill(st.Status),
			FormatMinutes(st.TotalMinutes),
			fmt.Sprintf("%d", st.DoneCount),
			fmt.Sprintf("%d", st.FailedCount),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows, 3, 4, 5))
	if windowDays <= 0 {
		b.WriteString(Dim("Totals cover today only."))
	} else {
		b.WriteString(Dim(fmt.Sprintf("Totals cover the last %d days.", windowDays)))
	}
	return b.String()
}

// FormatPalette lists the preset colors with a swatch for each.
func FormatPalette(colors []string) string {
	var b strings.Builder
	for i, c := range colors {
		line := fmt.Sprintf("%s %s", Swatch(c), c)
		if i == 0 {
			line += Dim("  (default)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

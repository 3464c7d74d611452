package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/grove/internal/app"
)

const chartWidth = 30

// FormatDashboard renders the forest view: health summary, per-category
// table and the monthly trend.
func FormatDashboard(resp *app.DashboardResponse) string {
	var b strings.Builder

	summary := fmt.Sprintf("%s  %s  %s",
		StyleGreen.Render(fmt.Sprintf("%d healthy", resp.Health.Healthy)),
		HealthPillCount(resp.Health.Barren),
		Dim(fmt.Sprintf("%s this month", FormatMinutes(resp.MinutesThisMonth))))
	b.WriteString(RenderBox("Forest · "+resp.Today, summary))
	b.WriteString("\n\n")

	b.WriteString(Header("Garden"))
	b.WriteString("\n")
	b.WriteString(FormatCategoryStats(resp.Stats, resp.WindowDays))
	b.WriteString("\n\n")

	b.WriteString(Header("Monthly focus"))
	b.WriteString("\n")
	b.WriteString(RenderMonthlyChart(resp.Monthly, chartWidth))
	b.WriteString("\n")
	return b.String()
}

// HealthPillCount renders the barren count, highlighted when non-zero.
func HealthPillCount(barren int) string {
	text := fmt.Sprintf("%d barren", barren)
	if barren == 0 {
		return Dim(text)
	}
	return StyleYellow.Render(text)
}

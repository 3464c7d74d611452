package app

import (
	"time"

	"github.com/alexanderramin/grove/internal/domain"
	"github.com/alexanderramin/grove/internal/stats"
)

type DashboardRequest struct {
	Now        *time.Time
	MonthCount int
	WindowDays int
}

func NewDashboardRequest() DashboardRequest {
	return DashboardRequest{
		MonthCount: stats.DefaultMonthCount,
		WindowDays: stats.TrailingWindowDays,
	}
}

// DashboardResponse is everything the forest view renders. Categories and
// Sessions are the raw lists the stats were computed from, carried along so
// interactive views can re-filter without another load.
type DashboardResponse struct {
	GeneratedAt      time.Time
	Today            string
	WindowDays       int
	Stats            []domain.CategoryStats
	Health           stats.HealthSummary
	Monthly          []domain.MonthlyPoint
	MinutesThisMonth int
	Categories       []domain.Category
	Sessions         []domain.Session
}

// CategoryName resolves a category id against the response's categories.
// ok is false for dangling references.
func (r *DashboardResponse) CategoryName(id string) (name string, ok bool) {
	for _, c := range r.Categories {
		if c.ID == id {
			return c.Name, true
		}
	}
	return "", false
}

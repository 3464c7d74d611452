// Package stats turns flat session lists into the dashboard's derived views:
// trailing-window activity, per-category health and the monthly focus series.
// Every function is pure; the current date is always passed in.
package stats

import (
	"time"

	"github.com/alexanderramin/grove/internal/domain"
)

// TrailingWindowDays is the lookback used for category health.
const TrailingWindowDays = 7

// WindowCutoff returns the inclusive lower bound of a trailing window as a
// YYYY-MM-DD string. Negative windows are treated as zero.
func WindowCutoff(today time.Time, windowDays int) string {
	if windowDays < 0 {
		windowDays = 0
	}
	return domain.FormatDate(domain.Today(today).AddDate(0, 0, -windowDays))
}

// SessionsInTrailingWindow returns the sessions dated on or after
// today-windowDays, optionally restricted to one category. Input order is
// preserved. An empty categoryID matches every category.
func SessionsInTrailingWindow(sessions []domain.Session, windowDays int, today time.Time, categoryID string) []domain.Session {
	cutoff := WindowCutoff(today, windowDays)
	out := make([]domain.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.DateISO < cutoff {
			continue
		}
		if categoryID != "" && s.CategoryID != categoryID {
			continue
		}
		out = append(out, s)
	}
	return out
}

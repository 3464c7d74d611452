package stats

import (
	"sort"

	"github.com/alexanderramin/grove/internal/domain"
)

// SessionFilter narrows a session listing. Zero values match everything.
type SessionFilter struct {
	CategoryID string
	Status     domain.SessionStatus
	// Since keeps sessions dated on or after this YYYY-MM-DD date.
	Since string
}

// FilterSessions returns the sessions matching f, newest date first.
// Sessions sharing a date keep their input order.
func FilterSessions(sessions []domain.Session, f SessionFilter) []domain.Session {
	out := make([]domain.Session, 0, len(sessions))
	for _, s := range sessions {
		if f.CategoryID != "" && s.CategoryID != f.CategoryID {
			continue
		}
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		if f.Since != "" && s.DateISO < f.Since {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateISO > out[j].DateISO
	})
	return out
}

package stats

import (
	"time"

	"github.com/alexanderramin/grove/internal/domain"
)

// ComputeCategoryStats returns one entry per category, in input order,
// summarizing its sessions over the trailing window ending at today.
// Sessions pointing at a category outside the list contribute nothing.
func ComputeCategoryStats(categories []domain.Category, sessions []domain.Session, today time.Time) []domain.CategoryStats {
	return ComputeCategoryStatsOver(categories, sessions, today, TrailingWindowDays)
}

// ComputeCategoryStatsOver is ComputeCategoryStats with a caller-chosen
// window length in days.
func ComputeCategoryStatsOver(categories []domain.Category, sessions []domain.Session, today time.Time, windowDays int) []domain.CategoryStats {
	recent := SessionsInTrailingWindow(sessions, windowDays, today, "")

	byCategory := make(map[string][]domain.Session, len(categories))
	for _, s := range recent {
		byCategory[s.CategoryID] = append(byCategory[s.CategoryID], s)
	}

	out := make([]domain.CategoryStats, 0, len(categories))
	for _, c := range categories {
		out = append(out, summarizeCategory(c, byCategory[c.ID]))
	}
	return out
}

func summarizeCategory(c domain.Category, window []domain.Session) domain.CategoryStats {
	st := domain.CategoryStats{Category: c, Status: domain.HealthBarren}
	for _, s := range window {
		st.TotalMinutes += s.MinutesFocused
		switch s.Status {
		case domain.SessionDone:
			st.DoneCount++
		case domain.SessionFailed:
			st.FailedCount++
		}
	}
	// Any activity counts, including sessions that all failed.
	if len(window) > 0 {
		st.Status = domain.HealthHealthy
	}
	return st
}

// HealthSummary counts categories by health status.
type HealthSummary struct {
	Healthy int
	Barren  int
}

// SummarizeHealth tallies the statuses in stats.
func SummarizeHealth(stats []domain.CategoryStats) HealthSummary {
	var h HealthSummary
	for _, st := range stats {
		switch st.Status {
		case domain.HealthHealthy:
			h.Healthy++
		case domain.HealthBarren:
			h.Barren++
		}
	}
	return h
}

package stats

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/grove/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCategoryStats_NoSessionsIsBarren(t *testing.T) {
	got := ComputeCategoryStats([]domain.Category{cat("c1", "Work")}, nil, testToday)

	require.Len(t, got, 1)
	assert.Equal(t, domain.CategoryStats{
		Category: cat("c1", "Work"),
		Status:   domain.HealthBarren,
	}, got[0])
}

func TestComputeCategoryStats_ExcludesSessionsOutsideWindow(t *testing.T) {
	sessions := []domain.Session{
		sess("c1", 30, domain.SessionDone, daysAgo(0)),
		sess("c1", 20, domain.SessionFailed, daysAgo(8)),
	}

	got := ComputeCategoryStats([]domain.Category{cat("c1", "Work")}, sessions, testToday)

	require.Len(t, got, 1)
	assert.Equal(t, 30, got[0].TotalMinutes)
	assert.Equal(t, 1, got[0].DoneCount)
	assert.Equal(t, 0, got[0].FailedCount)
	assert.Equal(t, domain.HealthHealthy, got[0].Status)
}

func TestComputeCategoryStats_AllFailedIsStillHealthy(t *testing.T) {
	var sessions []domain.Session
	for i := 0; i < 10; i++ {
		sessions = append(sessions, sess("c1", 5, domain.SessionFailed, daysAgo(i%7)))
	}

	got := ComputeCategoryStats([]domain.Category{cat("c1", "Work")}, sessions, testToday)

	assert.Equal(t, domain.HealthHealthy, got[0].Status)
	assert.Equal(t, 0, got[0].DoneCount)
	assert.Equal(t, 10, got[0].FailedCount)
	assert.Equal(t, 50, got[0].TotalMinutes)
}

func TestComputeCategoryStats_OnlyOldSessionsIsBarren(t *testing.T) {
	sessions := []domain.Session{sess("c1", 45, domain.SessionDone, daysAgo(40))}

	got := ComputeCategoryStats([]domain.Category{cat("c1", "Work")}, sessions, testToday)
	assert.Equal(t, domain.HealthBarren, got[0].Status)
	assert.Zero(t, got[0].TotalMinutes)
}

func TestComputeCategoryStats_IgnoresDanglingCategory(t *testing.T) {
	sessions := []domain.Session{
		sess("ghost", 90, domain.SessionDone, daysAgo(1)),
		sess("c1", 15, domain.SessionDone, daysAgo(1)),
	}

	got := ComputeCategoryStats([]domain.Category{cat("c1", "Work")}, sessions, testToday)
	require.Len(t, got, 1)
	assert.Equal(t, 15, got[0].TotalMinutes)
}

func TestComputeCategoryStats_PreservesCategoryOrder(t *testing.T) {
	cats := []domain.Category{cat("z", "Zeta"), cat("a", "Alpha"), cat("m", "Mu")}
	got := ComputeCategoryStats(cats, nil, testToday)

	require.Len(t, got, 3)
	for i, c := range cats {
		assert.Equal(t, c.ID, got[i].Category.ID)
	}
}

func TestComputeCategoryStats_EmptyCategories(t *testing.T) {
	got := ComputeCategoryStats(nil, []domain.Session{sess("c1", 5, domain.SessionDone, daysAgo(0))}, testToday)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSummarizeHealth(t *testing.T) {
	sessions := []domain.Session{sess("a", 10, domain.SessionDone, daysAgo(1))}
	st := ComputeCategoryStats([]domain.Category{cat("a", "A"), cat("b", "B"), cat("c", "C")}, sessions, testToday)

	assert.Equal(t, HealthSummary{Healthy: 1, Barren: 2}, SummarizeHealth(st))
	assert.Equal(t, HealthSummary{}, SummarizeHealth(nil))
}

// TestComputeCategoryStats_Invariants property-tests the per-category rules
// against randomly generated categories and sessions.
func TestComputeCategoryStats_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	statuses := []domain.SessionStatus{domain.SessionDone, domain.SessionFailed}

	for trial := 0; trial < 200; trial++ {
		numCats := rng.Intn(6)
		cats := make([]domain.Category, numCats)
		for i := range cats {
			cats[i] = cat(string(rune('a'+i)), "Cat")
		}

		numSessions := rng.Intn(40)
		sessions := make([]domain.Session, numSessions)
		for i := range sessions {
			// Category ids a..h, so some sessions dangle.
			catID := string(rune('a' + rng.Intn(8)))
			sessions[i] = sess(catID, rng.Intn(120)+1, statuses[rng.Intn(2)], daysAgo(rng.Intn(30)-2))
		}

		got := ComputeCategoryStats(cats, sessions, testToday)

		// Invariant 1: one entry per category, same order.
		require.Len(t, got, numCats, "trial %d", trial)

		for i, st := range got {
			assert.Equal(t, cats[i].ID, st.Category.ID, "trial %d: order", trial)

			inWindow := SessionsInTrailingWindow(sessions, TrailingWindowDays, testToday, cats[i].ID)
			everLogged := false
			for _, s := range sessions {
				if s.CategoryID == cats[i].ID {
					everLogged = true
				}
			}

			// Invariant 2: no sessions ever means barren with zero counts.
			if !everLogged {
				assert.Equal(t, domain.HealthBarren, st.Status, "trial %d", trial)
				assert.Zero(t, st.TotalMinutes+st.DoneCount+st.FailedCount, "trial %d", trial)
			}

			// Invariant 3: any in-window session means healthy.
			if len(inWindow) > 0 {
				assert.Equal(t, domain.HealthHealthy, st.Status, "trial %d", trial)
			}

			// Invariant 4: counts partition the window.
			assert.Equal(t, len(inWindow), st.DoneCount+st.FailedCount, "trial %d", trial)
		}

		// Invariant 5: repeated calls are deep-equal.
		assert.Equal(t, got, ComputeCategoryStats(cats, sessions, testToday), "trial %d: idempotence", trial)
	}
}

func TestComputeCategoryStatsOver_WidensWindow(t *testing.T) {
	work := cat("c1", "Work")
	sessions := []domain.Session{sess("c1", 40, domain.SessionDone, daysAgo(10))}

	narrow := ComputeCategoryStatsOver([]domain.Category{work}, sessions, testToday, 7)
	wide := ComputeCategoryStatsOver([]domain.Category{work}, sessions, testToday, 14)

	assert.Equal(t, domain.HealthBarren, narrow[0].Status)
	assert.Equal(t, domain.HealthHealthy, wide[0].Status)
	assert.Equal(t, 40, wide[0].TotalMinutes)
}

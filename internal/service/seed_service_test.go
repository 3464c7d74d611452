package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/grove/internal/domain"
	"github.com/alexanderramin/grove/internal/repository"
	"github.com/alexanderramin/grove/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedNow = time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)

func newTestSeedService(r testRepos, seed int64, observers ...UseCaseObserver) SeedService {
	return NewSeedService(r.uow, SeedOptions{
		Rand: rand.New(rand.NewSource(seed)),
		Now:  func() time.Time { return seedNow },
	}, observers...)
}

func TestInitializeDefaults_SeedsOnce(t *testing.T) {
	r := setupRepos(t)
	svc := newTestSeedService(r, 42)
	ctx := context.Background()

	seeded, err := svc.InitializeDefaults(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	cats, err := r.categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Work", cats[0].Name)
	assert.Equal(t, "#22c55e", cats[0].Color)
	assert.Equal(t, "Learning", cats[1].Name)
	assert.Equal(t, "#3b82f6", cats[1].Color)

	sessions, err := r.sessions.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, sessions)

	flag, err := r.settings.Get(ctx, repository.SettingInitialized)
	require.NoError(t, err)
	assert.Equal(t, "true", flag)

	seeded, err = svc.InitializeDefaults(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	again, err := r.sessions.List(ctx)
	require.NoError(t, err)
	assert.Len(t, again, len(sessions), "second run must not add data")
}

func TestInitializeDefaults_RespectsFlagAfterUserDeletesEverything(t *testing.T) {
	r := setupRepos(t)
	svc := newTestSeedService(r, 7)
	ctx := context.Background()

	_, err := svc.InitializeDefaults(ctx)
	require.NoError(t, err)
	require.NoError(t, r.store.SaveCategories(ctx, nil))
	require.NoError(t, r.store.SaveSessions(ctx, nil))

	seeded, err := svc.InitializeDefaults(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	cats, err := r.categories.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestInitializeDefaults_SampleHistoryShape(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		r := setupRepos(t)
		ctx := context.Background()
		_, err := newTestSeedService(r, seed).InitializeDefaults(ctx)
		require.NoError(t, err)

		cats, err := r.categories.List(ctx)
		require.NoError(t, err)
		work, learning := cats[0].ID, cats[1].ID

		sessions, err := r.sessions.List(ctx)
		require.NoError(t, err)

		oldest := domain.FormatDate(seedNow.AddDate(0, 0, -(SeedHistoryDays - 1)))
		perDay := map[string]map[string]int{}
		for _, s := range sessions {
			assert.GreaterOrEqual(t, s.DateISO, oldest)
			assert.LessOrEqual(t, s.DateISO, "2026-10-18")
			require.NoError(t, s.Validate())

			switch s.CategoryID {
			case work:
				assert.GreaterOrEqual(t, s.MinutesFocused, 15)
				assert.LessOrEqual(t, s.MinutesFocused, 74)
			case learning:
				assert.GreaterOrEqual(t, s.MinutesFocused, 10)
				assert.LessOrEqual(t, s.MinutesFocused, 54)
			default:
				t.Fatalf("seeded session %s references unknown category %s", s.ID, s.CategoryID)
			}
			if perDay[s.DateISO] == nil {
				perDay[s.DateISO] = map[string]int{}
			}
			perDay[s.DateISO][s.CategoryID]++
		}
		for day, counts := range perDay {
			for catID, n := range counts {
				assert.Equal(t, 1, n, "at most one session per category per day (%s, %s)", day, catID)
			}
		}
		assert.LessOrEqual(t, len(sessions), 2*SeedHistoryDays)
	}
}

func TestInitializeDefaults_DeterministicWithSameSeed(t *testing.T) {
	summarize := func(seed int64) []string {
		r := setupRepos(t)
		ctx := context.Background()
		_, err := newTestSeedService(r, seed).InitializeDefaults(ctx)
		require.NoError(t, err)
		sessions, err := r.sessions.List(ctx)
		require.NoError(t, err)
		out := make([]string, 0, len(sessions))
		for _, s := range sessions {
			out = append(out, s.Title+"|"+s.DateISO+"|"+string(s.Status))
		}
		return out
	}

	assert.Equal(t, summarize(99), summarize(99))
}

func TestInitializeDefaults_ReportsToObserver(t *testing.T) {
	r := setupRepos(t)
	obs := &recordingObserver{}
	_, err := newTestSeedService(r, 42, obs).InitializeDefaults(context.Background())
	require.NoError(t, err)

	ev := obs.last()
	assert.Equal(t, "initialize-defaults", ev.Name)
	assert.Equal(t, true, ev.Fields["seeded"])
	assert.Greater(t, ev.Fields["sessions"], 0)
}

func TestInitializeDefaults_FailedSeedReportsNoSessions(t *testing.T) {
	r := setupRepos(t)
	obs := &recordingObserver{}
	// Execs 1-2 insert the categories; the fourth session insert fails.
	uow := &testutil.FailOnNthExecUoW{DB: r.database, FailOn: 6, Err: errors.New("disk full")}
	svc := NewSeedService(uow, SeedOptions{
		Rand: rand.New(rand.NewSource(42)),
		Now:  func() time.Time { return seedNow },
	}, obs)

	seeded, err := svc.InitializeDefaults(context.Background())
	require.Error(t, err)
	assert.False(t, seeded)

	ev := obs.last()
	assert.False(t, ev.Success)
	assert.Equal(t, false, ev.Fields["seeded"])
	assert.Equal(t, 0, ev.Fields["sessions"], "rolled-back sessions must not be reported")

	sessions, err := r.sessions.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestMarkInitialized_PreventsLaterSeed(t *testing.T) {
	r := setupRepos(t)
	svc := newTestSeedService(r, 42)
	ctx := context.Background()

	require.NoError(t, svc.MarkInitialized(ctx))
	require.NoError(t, svc.MarkInitialized(ctx))

	seeded, err := svc.InitializeDefaults(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	cats, err := r.categories.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

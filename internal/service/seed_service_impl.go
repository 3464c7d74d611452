package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/alexanderramin/grove/internal/db"
	"github.com/alexanderramin/grove/internal/domain"
	"github.com/alexanderramin/grove/internal/repository"
	"github.com/google/uuid"
)

// SeedHistoryDays is how many days of sample sessions a fresh store gets,
// counting today.
const SeedHistoryDays = 60

// seedProfile drives sample history for one default category.
type seedProfile struct {
	name       string
	color      string
	dailyRate  float64
	minMinutes int
	spread     int
	doneRate   float64
}

var defaultSeedProfiles = []seedProfile{
	{name: "Work", color: "#22c55e", dailyRate: 0.7, minMinutes: 15, spread: 60, doneRate: 0.8},
	{name: "Learning", color: "#3b82f6", dailyRate: 0.5, minMinutes: 10, spread: 45, doneRate: 0.85},
}

// SeedOptions overrides the randomness and clock used for sample history.
// Zero values fall back to a time-seeded source and time.Now.
type SeedOptions struct {
	Rand *rand.Rand
	Now  func() time.Time
}

type seedService struct {
	uow      db.UnitOfWork
	rng      *rand.Rand
	now      func() time.Time
	observer UseCaseObserver
}

func NewSeedService(uow db.UnitOfWork, opts SeedOptions, observers ...UseCaseObserver) SeedService {
	s := &seedService{
		uow:      uow,
		rng:      opts.Rand,
		now:      opts.Now,
		observer: useCaseObserverOrNoop(observers),
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *seedService) InitializeDefaults(ctx context.Context) (seeded bool, err error) {
	startedAt := time.Now().UTC()
	sessionCount := 0
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "initialize-defaults",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"seeded": seeded, "sessions": sessionCount},
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		settings := repository.NewSQLiteSettingsRepo(tx)
		flag, err := settings.Get(ctx, repository.SettingInitialized)
		switch {
		case err == nil && flag == "true":
			return nil
		case err != nil && !errors.Is(err, repository.ErrNotFound):
			return err
		}

		categories := repository.NewSQLiteCategoryRepo(tx)
		sessions := repository.NewSQLiteSessionRepo(tx)
		now := s.now()
		stamp := now.UTC().Truncate(time.Second)

		ids := make([]string, len(defaultSeedProfiles))
		for i, p := range defaultSeedProfiles {
			c := &domain.Category{
				ID:        uuid.New().String(),
				Name:      p.name,
				Color:     p.color,
				CreatedAt: stamp,
				UpdatedAt: stamp,
			}
			if err := categories.Create(ctx, c); err != nil {
				return fmt.Errorf("seeding category %s: %w", p.name, err)
			}
			ids[i] = c.ID
		}

		for _, sess := range s.sampleHistory(ids, now, stamp) {
			if err := sessions.Create(ctx, sess); err != nil {
				return fmt.Errorf("seeding sessions: %w", err)
			}
			sessionCount++
		}

		if err := settings.Set(ctx, repository.SettingInitialized, "true"); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		seeded = false
		sessionCount = 0
	}
	return seeded, err
}

// MarkInitialized records that the store needs no defaults without writing
// any. Calling it again is harmless.
func (s *seedService) MarkInitialized(ctx context.Context) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "skip-defaults",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSettingsRepo(tx).Set(ctx, repository.SettingInitialized, "true")
	})
}

// sampleHistory rolls each profile once per day, today first.
func (s *seedService) sampleHistory(categoryIDs []string, now, stamp time.Time) []*domain.Session {
	var out []*domain.Session
	for day := 0; day < SeedHistoryDays; day++ {
		dateISO := domain.FormatDate(now.AddDate(0, 0, -day))
		for i, p := range defaultSeedProfiles {
			if s.rng.Float64() >= p.dailyRate {
				continue
			}
			status := domain.SessionFailed
			minutes := p.minMinutes + s.rng.Intn(p.spread)
			if s.rng.Float64() < p.doneRate {
				status = domain.SessionDone
			}
			out = append(out, &domain.Session{
				ID:             uuid.New().String(),
				CategoryID:     categoryIDs[i],
				Title:          fmt.Sprintf("%s session %d", p.name, day+1),
				MinutesFocused: minutes,
				Status:         status,
				DateISO:        dateISO,
				CreatedAt:      stamp,
			})
		}
	}
	return out
}

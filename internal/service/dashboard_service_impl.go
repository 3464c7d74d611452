package service

import (
	"context"
	"time"

	"github.com/alexanderramin/grove/internal/app"
	"github.com/alexanderramin/grove/internal/domain"
	"github.com/alexanderramin/grove/internal/repository"
	"github.com/alexanderramin/grove/internal/stats"
)

type dashboardService struct {
	store    repository.Store
	observer UseCaseObserver
}

func NewDashboardService(store repository.Store, observers ...UseCaseObserver) DashboardService {
	return &dashboardService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *dashboardService) GetDashboard(ctx context.Context, req app.DashboardRequest) (resp *app.DashboardResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{"months": req.MonthCount}
		if resp != nil {
			fields["healthy"] = resp.Health.Healthy
			fields["barren"] = resp.Health.Barren
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "dashboard",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}
	today := domain.Today(now)
	// The request is taken literally: a zero window covers today only and a
	// zero month count yields no monthly points. app.NewDashboardRequest
	// supplies the usual defaults.
	req.WindowDays = max(req.WindowDays, 0)

	categories, err := s.store.LoadCategories(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := s.store.LoadSessions(ctx)
	if err != nil {
		return nil, err
	}

	perCategory := stats.ComputeCategoryStatsOver(categories, sessions, today, req.WindowDays)
	monthly := stats.ComputeMonthlySeries(sessions, today, req.MonthCount)

	resp = &app.DashboardResponse{
		GeneratedAt: now.UTC(),
		Today:       domain.FormatDate(today),
		WindowDays:  req.WindowDays,
		Stats:       perCategory,
		Health:      stats.SummarizeHealth(perCategory),
		Monthly:     monthly,
		Categories:  categories,
		Sessions:    sessions,
	}
	if len(monthly) > 0 {
		resp.MinutesThisMonth = monthly[len(monthly)-1].Minutes
	}
	return resp, nil
}

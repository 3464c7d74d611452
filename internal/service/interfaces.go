package service

import (
	"context"

	"github.com/alexanderramin/grove/internal/app"
	"github.com/alexanderramin/grove/internal/domain"
	"github.com/alexanderramin/grove/internal/stats"
)

type CategoryService interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	// Delete removes the category and every session logged against it,
	// returning how many sessions went with it.
	Delete(ctx context.Context, id string) (int64, error)
}

type SessionService interface {
	Log(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context, filter stats.SessionFilter) ([]domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type DashboardService interface {
	GetDashboard(ctx context.Context, req app.DashboardRequest) (*app.DashboardResponse, error)
}

type SeedService interface {
	// InitializeDefaults writes the default categories and sample history
	// the first time it runs against a store. Later calls report false.
	InitializeDefaults(ctx context.Context) (bool, error)
	// MarkInitialized sets the same flag without writing sample data, so a
	// store the user populated another way is never seeded later.
	MarkInitialized(ctx context.Context) error
}

type TransferService interface {
	Export(ctx context.Context) (*app.Snapshot, error)
	Import(ctx context.Context, snap *app.Snapshot) (*app.ImportResult, error)
}

package app

import (
	"context"

	"github.com/alexanderramin/grove/internal/domain"
)

type DashboardUseCase interface {
	GetDashboard(ctx context.Context, req DashboardRequest) (*DashboardResponse, error)
}

type LogSessionUseCase interface {
	Log(ctx context.Context, s *domain.Session) error
}

type SeedUseCase interface {
	InitializeDefaults(ctx context.Context) (seeded bool, err error)
	MarkInitialized(ctx context.Context) error
}

type ExportUseCase interface {
	Export(ctx context.Context) (*Snapshot, error)
}

type ImportUseCase interface {
	Import(ctx context.Context, snap *Snapshot) (*ImportResult, error)
}

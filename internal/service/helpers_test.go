package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/grove/internal/db"
	"github.com/alexanderramin/grove/internal/repository"
	"github.com/alexanderramin/grove/internal/testutil"
)

type testRepos struct {
	database   *sql.DB
	categories repository.CategoryRepo
	sessions   repository.SessionRepo
	settings   repository.SettingsRepo
	store      repository.Store
	uow        db.UnitOfWork
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	return testRepos{
		database:   database,
		categories: repository.NewSQLiteCategoryRepo(database),
		sessions:   repository.NewSQLiteSessionRepo(database),
		settings:   repository.NewSQLiteSettingsRepo(database),
		store:      repository.NewSQLiteStore(database, uow),
		uow:        uow,
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

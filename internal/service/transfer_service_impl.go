package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/grove/internal/app"
	"github.com/alexanderramin/grove/internal/db"
	"github.com/alexanderramin/grove/internal/domain"
	"github.com/alexanderramin/grove/internal/repository"
)

type transferService struct {
	store    repository.Store
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewTransferService exports through store and imports inside uow, so an
// import swaps categories and sessions together.
func NewTransferService(store repository.Store, uow db.UnitOfWork, observers ...UseCaseObserver) TransferService {
	return &transferService{store: store, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *transferService) Export(ctx context.Context) (*app.Snapshot, error) {
	categories, err := s.store.LoadCategories(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := s.store.LoadSessions(ctx)
	if err != nil {
		return nil, err
	}
	return &app.Snapshot{
		Version:    app.SnapshotVersion,
		ExportedAt: time.Now().UTC().Truncate(time.Second),
		Categories: categories,
		Sessions:   sessions,
	}, nil
}

// Import replaces all stored categories and sessions with the snapshot's in
// one transaction. Every record is validated first so a bad file leaves the
// store untouched. Sessions may reference categories missing from the
// snapshot. An imported store counts as initialized and is never seeded.
func (s *transferService) Import(ctx context.Context, snap *app.Snapshot) (result *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{}
		if result != nil {
			fields["categories"] = result.CategoryCount
			fields["sessions"] = result.SessionCount
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if snap == nil {
		return nil, fmt.Errorf("import: empty snapshot")
	}
	if snap.Version > app.SnapshotVersion {
		return nil, fmt.Errorf("import: snapshot version %d is newer than supported version %d", snap.Version, app.SnapshotVersion)
	}

	categories := make([]domain.Category, len(snap.Categories))
	seen := make(map[string]bool, len(snap.Categories))
	for i, c := range snap.Categories {
		c.Normalize()
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("category %d: %w", i+1, err)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("category %d: duplicate id %s", i+1, c.ID)
		}
		seen[c.ID] = true
		categories[i] = c
	}

	sessions := make([]domain.Session, len(snap.Sessions))
	seen = make(map[string]bool, len(snap.Sessions))
	for i, sess := range snap.Sessions {
		sess.Normalize()
		if err := sess.Validate(); err != nil {
			return nil, fmt.Errorf("session %d: %w", i+1, err)
		}
		if seen[sess.ID] {
			return nil, fmt.Errorf("session %d: duplicate id %s", i+1, sess.ID)
		}
		seen[sess.ID] = true
		sessions[i] = sess
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteCategoryRepo(tx).ReplaceAll(ctx, categories); err != nil {
			return err
		}
		if err := repository.NewSQLiteSessionRepo(tx).ReplaceAll(ctx, sessions); err != nil {
			return err
		}
		return repository.NewSQLiteSettingsRepo(tx).Set(ctx, repository.SettingInitialized, "true")
	})
	if err != nil {
		return nil, err
	}
	return &app.ImportResult{CategoryCount: len(categories), SessionCount: len(sessions)}, nil
}

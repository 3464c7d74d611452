package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/grove/internal/domain"
	"github.com/alexanderramin/grove/internal/repository"
	"github.com/alexanderramin/grove/internal/stats"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions   repository.SessionRepo
	categories repository.CategoryRepo
	observer   UseCaseObserver
	now        func() time.Time
}

func NewSessionService(sessions repository.SessionRepo, categories repository.CategoryRepo, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		sessions:   sessions,
		categories: categories,
		observer:   useCaseObserverOrNoop(observers),
		now:        time.Now,
	}
}

// Log validates and stores a session. An empty DateISO means today and an
// empty Status means done. The category must exist when the session is
// logged; deleting it later is allowed.
func (s *sessionService) Log(ctx context.Context, session *domain.Session) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "log-session",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields: map[string]any{
				"category_id": session.CategoryID,
				"minutes":     session.MinutesFocused,
				"status":      string(session.Status),
			},
		})
	}()

	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	session.Normalize()
	if session.DateISO == "" {
		session.DateISO = domain.FormatDate(s.now())
	}
	if session.Status == "" {
		session.Status = domain.SessionDone
	}
	session.CreatedAt = time.Now().UTC().Truncate(time.Second)
	if err = session.Validate(); err != nil {
		return err
	}

	if _, err = s.categories.GetByID(ctx, session.CategoryID); err != nil {
		return fmt.Errorf("category %s: %w", session.CategoryID, err)
	}
	return s.sessions.Create(ctx, session)
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

// List returns the sessions matching filter, newest first. A Since date is
// pushed down to the repository.
func (s *sessionService) List(ctx context.Context, filter stats.SessionFilter) ([]domain.Session, error) {
	var list []*domain.Session
	var err error
	if filter.Since != "" {
		if _, err = domain.ParseDate(filter.Since); err != nil {
			return nil, err
		}
		list, err = s.sessions.ListSince(ctx, filter.Since)
	} else {
		list, err = s.sessions.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	all := make([]domain.Session, 0, len(list))
	for _, sess := range list {
		all = append(all, *sess)
	}
	return stats.FilterSessions(all, filter), nil
}

func (s *sessionService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "delete-session",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"session_id": id},
		})
	}()
	return s.sessions.Delete(ctx, id)
}

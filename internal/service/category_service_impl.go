package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/grove/internal/db"
	"github.com/alexanderramin/grove/internal/domain"
	"github.com/alexanderramin/grove/internal/repository"
	"github.com/google/uuid"
)

type categoryService struct {
	categories repository.CategoryRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver
}

func NewCategoryService(categories repository.CategoryRepo, uow db.UnitOfWork, observers ...UseCaseObserver) CategoryService {
	return &categoryService{
		categories: categories,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *categoryService) Create(ctx context.Context, c *domain.Category) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "create-category", startedAt, err, map[string]any{"name": c.Name})
	}()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.Normalize()
	now := time.Now().UTC().Truncate(time.Second)
	c.CreatedAt = now
	c.UpdatedAt = now
	if err = c.Validate(); err != nil {
		return err
	}
	return s.categories.Create(ctx, c)
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *categoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *categoryService) Update(ctx context.Context, c *domain.Category) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "update-category", startedAt, err, map[string]any{"category_id": c.ID})
	}()

	c.Normalize()
	c.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	if err = c.Validate(); err != nil {
		return err
	}
	return s.categories.Update(ctx, c)
}

func (s *categoryService) Delete(ctx context.Context, id string) (removed int64, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "delete-category", startedAt, err, map[string]any{
			"category_id":      id,
			"removed_sessions": removed,
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCategories := repository.NewSQLiteCategoryRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)

		if _, err := txCategories.GetByID(ctx, id); err != nil {
			return err
		}
		n, err := txSessions.DeleteByCategory(ctx, id)
		if err != nil {
			return fmt.Errorf("removing sessions of category %s: %w", id, err)
		}
		if err := txCategories.Delete(ctx, id); err != nil {
			return err
		}
		removed = n
		return nil
	})
	if err != nil {
		removed = 0
	}
	return removed, err
}

func (s *categoryService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

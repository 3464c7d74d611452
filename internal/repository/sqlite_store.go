package repository

import (
	"context"

	"github.com/alexanderramin/grove/internal/db"
	"github.com/alexanderramin/grove/internal/domain"
)

// SQLiteStore implements Store over the category and session tables.
// Reads go straight to the database; each save replaces its table inside
// one transaction.
type SQLiteStore struct {
	db  db.DBTX
	uow db.UnitOfWork
}

func NewSQLiteStore(database db.DBTX, uow db.UnitOfWork) *SQLiteStore {
	return &SQLiteStore{db: database, uow: uow}
}

func (s *SQLiteStore) LoadCategories(ctx context.Context) ([]domain.Category, error) {
	list, err := NewSQLiteCategoryRepo(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(list))
	for _, c := range list {
		out = append(out, *c)
	}
	return out, nil
}

func (s *SQLiteStore) SaveCategories(ctx context.Context, categories []domain.Category) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteCategoryRepo(tx).ReplaceAll(ctx, categories)
	})
}

func (s *SQLiteStore) LoadSessions(ctx context.Context) ([]domain.Session, error) {
	list, err := NewSQLiteSessionRepo(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Session, 0, len(list))
	for _, sess := range list {
		out = append(out, *sess)
	}
	return out, nil
}

func (s *SQLiteStore) SaveSessions(ctx context.Context, sessions []domain.Session) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteSessionRepo(tx).ReplaceAll(ctx, sessions)
	})
}

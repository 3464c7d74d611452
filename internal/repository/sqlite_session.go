package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/grove/internal/db"
	"github.com/alexanderramin/grove/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

const sessionColumns = `id, category_id, title, minutes_focused, status, date_iso, created_at`

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO focus_sessions (id, category_id, title, minutes_focused, status, date_iso, seq, created_at)
		VALUES (?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM focus_sessions), ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.CategoryID,
		s.Title,
		s.MinutesFocused,
		string(s.Status),
		s.DateISO,
		formatTimestamp(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting focus session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM focus_sessions WHERE id = ?`
	s, err := scanSession(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("focus session %s: %w", id, ErrNotFound)
	}
	return s, err
}

func (r *SQLiteSessionRepo) List(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM focus_sessions ORDER BY seq, created_at`
	return r.query(ctx, "listing focus sessions", query)
}

func (r *SQLiteSessionRepo) ListByCategory(ctx context.Context, categoryID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM focus_sessions WHERE category_id = ? ORDER BY seq, created_at`
	return r.query(ctx, "listing focus sessions by category", query, categoryID)
}

// ListSince returns sessions dated on or after dateISO.
func (r *SQLiteSessionRepo) ListSince(ctx context.Context, dateISO string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM focus_sessions WHERE date_iso >= ? ORDER BY seq, created_at`
	return r.query(ctx, "listing recent focus sessions", query, dateISO)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM focus_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting focus session: %w", err)
	}
	return requireAffected(res, "focus session "+id)
}

// DeleteByCategory removes every session of a category and reports how many
// rows went.
func (r *SQLiteSessionRepo) DeleteByCategory(ctx context.Context, categoryID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM focus_sessions WHERE category_id = ?`, categoryID)
	if err != nil {
		return 0, fmt.Errorf("deleting focus sessions by category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking affected rows: %w", err)
	}
	return n, nil
}

// ReplaceAll swaps the full session list for sessions, keeping their order.
// Callers run it inside a transaction.
func (r *SQLiteSessionRepo) ReplaceAll(ctx context.Context, sessions []domain.Session) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM focus_sessions`); err != nil {
		return fmt.Errorf("clearing focus sessions: %w", err)
	}
	now := nowUTC()
	query := `INSERT INTO focus_sessions (id, category_id, title, minutes_focused, status, date_iso, seq, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for i, s := range sessions {
		created := now
		if !s.CreatedAt.IsZero() {
			created = formatTimestamp(s.CreatedAt)
		}
		_, err := r.db.ExecContext(ctx, query,
			s.ID, s.CategoryID, s.Title, s.MinutesFocused, string(s.Status), s.DateISO, i+1, created)
		if err != nil {
			return fmt.Errorf("inserting focus session %s: %w", s.ID, err)
		}
	}
	return nil
}

func (r *SQLiteSessionRepo) query(ctx context.Context, op, query string, args ...any) ([]*domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating focus sessions: %w", err)
	}
	return sessions, nil
}

func scanSession(row scanner) (*domain.Session, error) {
	var s domain.Session
	var statusStr, createdAtStr string
	err := row.Scan(&s.ID, &s.CategoryID, &s.Title, &s.MinutesFocused, &statusStr, &s.DateISO, &createdAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning focus session: %w", err)
	}
	s.Status = domain.SessionStatus(statusStr)
	if s.CreatedAt, err = parseTimestamp("created_at", createdAtStr); err != nil {
		return nil, err
	}
	return &s, nil
}

package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/grove/internal/domain"
	"github.com/google/uuid"
)

var titleCounter atomic.Int64

// Category options
type CategoryOption func(*domain.Category)

func WithColor(color string) CategoryOption {
	return func(c *domain.Category) {
		c.Color = color
	}
}

func WithCategoryID(id string) CategoryOption {
	return func(c *domain.Category) {
		c.ID = id
	}
}

func NewTestCategory(name string, opts ...CategoryOption) *domain.Category {
	now := time.Now().UTC().Truncate(time.Second)
	c := &domain.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     domain.DefaultCategoryColor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session options
type SessionOption func(*domain.Session)

func WithStatus(s domain.SessionStatus) SessionOption {
	return func(sess *domain.Session) {
		sess.Status = s
	}
}

func WithDate(dateISO string) SessionOption {
	return func(sess *domain.Session) {
		sess.DateISO = dateISO
	}
}

// WithDaysAgo dates the session n days before now's calendar day.
func WithDaysAgo(now time.Time, n int) SessionOption {
	return func(sess *domain.Session) {
		sess.DateISO = domain.FormatDate(now.AddDate(0, 0, -n))
	}
}

func WithTitle(title string) SessionOption {
	return func(sess *domain.Session) {
		sess.Title = title
	}
}

func NewTestSession(categoryID string, minutes int, opts ...SessionOption) *domain.Session {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.Session{
		ID:             uuid.New().String(),
		CategoryID:     categoryID,
		Title:          fmt.Sprintf("Session %d", titleCounter.Add(1)),
		MinutesFocused: minutes,
		Status:         domain.SessionDone,
		DateISO:        domain.FormatDate(now),
		CreatedAt:      now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/grove/internal/domain"
	"github.com/alexanderramin/grove/internal/repository"
	"github.com/alexanderramin/grove/internal/stats"
)

// resolveCategory finds a category by any of:
//   - its full ID
//   - its name, case-insensitively
//   - a unique ID prefix
func resolveCategory(ctx context.Context, a *App, ref string) (*domain.Category, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("category reference is empty")
	}
	categories, err := a.Categories.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range categories {
		if c.ID == ref {
			return c, nil
		}
	}

	var byName []*domain.Category
	for _, c := range categories {
		if strings.EqualFold(c.Name, ref) {
			byName = append(byName, c)
		}
	}
	if len(byName) == 1 {
		return byName[0], nil
	}
	if len(byName) > 1 {
		return nil, fmt.Errorf("%d categories are named %q; use an ID instead", len(byName), ref)
	}

	var byPrefix []*domain.Category
	for _, c := range categories {
		if strings.HasPrefix(c.ID, ref) {
			byPrefix = append(byPrefix, c)
		}
	}
	switch len(byPrefix) {
	case 1:
		return byPrefix[0], nil
	case 0:
		return nil, fmt.Errorf("category %q: %w", ref, repository.ErrNotFound)
	default:
		return nil, fmt.Errorf("category prefix %q is ambiguous (%d matches)", ref, len(byPrefix))
	}
}

// resolveSessionID accepts a full session ID or a unique prefix.
func resolveSessionID(ctx context.Context, a *App, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("session reference is empty")
	}
	sessions, err := a.Sessions.List(ctx, stats.SessionFilter{})
	if err != nil {
		return "", err
	}
	var matches []string
	for _, s := range sessions {
		if s.ID == ref {
			return s.ID, nil
		}
		if strings.HasPrefix(s.ID, ref) {
			matches = append(matches, s.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("session %q: %w", ref, repository.ErrNotFound)
	default:
		return "", fmt.Errorf("session prefix %q is ambiguous (%d matches)", ref, len(matches))
	}
}

// categoryIndex loads every category keyed by ID.
func categoryIndex(ctx context.Context, a *App) (map[string]domain.Category, error) {
	list, err := a.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]domain.Category, len(list))
	for _, c := range list {
		idx[c.ID] = *c
	}
	return idx, nil
}

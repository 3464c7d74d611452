package domain

import (
	"strings"
	"time"
)

// PresetColors is the palette offered when creating or editing a category.
// The first entry is the default color.
var PresetColors = []string{
	"#22c55e", "#3b82f6", "#f59e0b", "#ef4444", "#8b5cf6",
	"#ec4899", "#06b6d4", "#84cc16", "#f97316", "#6366f1",
}

// DefaultCategoryColor is used when a category is created without a color.
var DefaultCategoryColor = PresetColors[0]

type Category struct {
	ID        string    `json:"id" yaml:"id" validate:"required"`
	Name      string    `json:"name" yaml:"name" validate:"required,notblank"`
	Color     string    `json:"color" yaml:"color" validate:"required,hexcolor"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updated_at"`
}

// Normalize trims the name and lower-cases the color so equivalent
// inputs are stored identically.
func (c *Category) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
}

// Validate checks the category against its field rules.
func (c *Category) Validate() error {
	return validateRecord("category", c)
}

// DisplayID returns the first 8 characters of the ID.
func (c *Category) DisplayID() string {
	if len(c.ID) >= 8 {
		return c.ID[:8]
	}
	return c.ID
}

// IndexCategories maps category ids to categories.
func IndexCategories(categories []Category) map[string]Category {
	idx := make(map[string]Category, len(categories))
	for _, c := range categories {
		idx[c.ID] = c
	}
	return idx
}

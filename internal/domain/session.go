package domain

import (
	"strings"
	"time"
)

// Session is a single logged unit of focused time. CategoryID is not
// enforced against the category table; a dangling reference is rendered as
// an unknown category.
type Session struct {
	ID             string        `json:"id" yaml:"id" validate:"required"`
	CategoryID     string        `json:"categoryId" yaml:"category_id" validate:"required"`
	Title          string        `json:"title" yaml:"title" validate:"required,notblank"`
	MinutesFocused int           `json:"minutesFocused" yaml:"minutes_focused" validate:"gt=0"`
	Status         SessionStatus `json:"status" yaml:"status" validate:"oneof=done failed"`
	DateISO        string        `json:"dateISO" yaml:"date" validate:"required,isodate"`
	CreatedAt      time.Time     `json:"createdAt" yaml:"created_at"`
}

// Normalize trims the title and date.
func (s *Session) Normalize() {
	s.Title = strings.TrimSpace(s.Title)
	s.DateISO = strings.TrimSpace(s.DateISO)
}

// Validate checks the session against its field rules.
func (s *Session) Validate() error {
	return validateRecord("session", s)
}

// Date parses DateISO. Callers that only compare dates should compare the
// strings directly; zero-padded ISO dates order lexicographically.
func (s *Session) Date() (time.Time, error) {
	return ParseDate(s.DateISO)
}

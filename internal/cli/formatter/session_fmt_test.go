package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/grove/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatSessionList_UnknownCategory(t *testing.T) {
	today := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	cats := domain.IndexCategories([]domain.Category{{ID: "c1", Name: "Work", Color: "#22c55e"}})
	sessions := []domain.Session{
		{ID: "s1", CategoryID: "c1", Title: "Report", MinutesFocused: 50, Status: domain.SessionDone, DateISO: "2026-10-18"},
		{ID: "s2", CategoryID: "gone", Title: "Old thing", MinutesFocused: 25, Status: domain.SessionFailed, DateISO: "2026-10-17"},
	}

	out := stripANSI(FormatSessionList(sessions, cats, today))

	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "Unknown")
	assert.Contains(t, out, "Today")
	assert.Contains(t, out, "Yesterday")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "2 sessions, 1h 15m focused")
}

func TestFormatSessionList_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatSessionList(nil, nil, time.Now())), "No sessions")
}

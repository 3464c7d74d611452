package stats

import (
	"fmt"
	"time"

	"github.com/alexanderramin/grove/internal/domain"
)

var testToday = time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)

func daysAgo(n int) string {
	return domain.FormatDate(testToday.AddDate(0, 0, -n))
}

var sessionSeq int

func sess(categoryID string, minutes int, status domain.SessionStatus, dateISO string) domain.Session {
	sessionSeq++
	return domain.Session{
		ID:             fmt.Sprintf("s%d", sessionSeq),
		CategoryID:     categoryID,
		Title:          "Focus",
		MinutesFocused: minutes,
		Status:         status,
		DateISO:        dateISO,
	}
}

func cat(id, name string) domain.Category {
	return domain.Category{ID: id, Name: name, Color: "#000"}
}

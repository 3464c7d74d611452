package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/grove/internal/domain"
)

// FormatSessionList renders sessions in the order given. Sessions whose
// category is missing from categories show as "Unknown".
func FormatSessionList(sessions []domain.Session, categories map[string]domain.Category, today time.Time) string {
	if len(sessions) == 0 {
		return Dim("No sessions match.")
	}

	headers := []string{"ID", "DATE", "CATEGORY", "TITLE", "TIME", "STATUS"}
	rows := make([][]string, 0, len(sessions))
	total := 0
	for _, s := range sessions {
		c, ok := categories[s.CategoryID]
		rows = append(rows, []string{
			TruncID(s.ID),
			HumanDate(s.DateISO, today),
			CategoryLabel(c, ok),
			s.Title,
			FormatMinutes(s.MinutesFocused),
			SessionStatusPill(s.Status),
		})
		total += s.MinutesFocused
	}

	return RenderTable(headers, rows, 4) +
		Dim(fmt.Sprintf("%d sessions, %s focused", len(sessions), FormatMinutes(total)))
}

// FormatSessionLogged confirms a newly logged session.
func FormatSessionLogged(s *domain.Session, c domain.Category, ok bool) string {
	return fmt.Sprintf("Logged %s of %s on %s  %s  %s",
		Bold(FormatMinutes(s.MinutesFocused)),
		CategoryLabel(c, ok),
		s.DateISO,
		SessionStatusPill(s.Status),
		TruncID(s.ID))
}

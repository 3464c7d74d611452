package stats

import (
	"time"

	"github.com/alexanderramin/grove/internal/domain"
)

// DefaultMonthCount is the length of the dashboard's monthly series.
const DefaultMonthCount = 6

// MonthLabelLayout renders a month as "<Mon> <YY>", e.g. "Oct 26".
const MonthLabelLayout = "Jan 06"

type monthKey struct {
	year  int
	month time.Month
}

// MonthLabel returns the display label for t's calendar month.
func MonthLabel(t time.Time) string {
	return t.Format(MonthLabelLayout)
}

// ComputeMonthlySeries returns monthCount points ending at today's month,
// oldest first, each holding the minutes of every session dated in that
// month. Months without sessions are present with zero minutes. Sessions
// outside the range or with unparseable dates are ignored.
func ComputeMonthlySeries(sessions []domain.Session, today time.Time, monthCount int) []domain.MonthlyPoint {
	if monthCount <= 0 {
		return []domain.MonthlyPoint{}
	}

	y, m, _ := today.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)

	points := make([]domain.MonthlyPoint, monthCount)
	index := make(map[monthKey]int, monthCount)
	for i := 0; i < monthCount; i++ {
		bucket := first.AddDate(0, -(monthCount - 1 - i), 0)
		points[i] = domain.MonthlyPoint{Month: MonthLabel(bucket)}
		index[monthKey{bucket.Year(), bucket.Month()}] = i
	}

	for _, s := range sessions {
		d, err := domain.ParseDate(s.DateISO)
		if err != nil {
			continue
		}
		if i, ok := index[monthKey{d.Year(), d.Month()}]; ok {
			points[i].Minutes += s.MinutesFocused
		}
	}
	return points
}

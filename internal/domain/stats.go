package domain

// CategoryStats summarizes one category over the trailing window.
type CategoryStats struct {
	Category     Category       `json:"category" yaml:"category"`
	TotalMinutes int            `json:"totalMinutes" yaml:"total_minutes"`
	DoneCount    int            `json:"doneCount" yaml:"done_count"`
	FailedCount  int            `json:"failedCount" yaml:"failed_count"`
	Status       CategoryHealth `json:"status" yaml:"status"`
}

// MonthlyPoint is one bucket of the monthly focus series.
type MonthlyPoint struct {
	Month   string `json:"month" yaml:"month"`
	Minutes int    `json:"minutes" yaml:"minutes"`
}

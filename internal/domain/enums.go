package domain

type SessionStatus string

const (
	SessionDone   SessionStatus = "done"
	SessionFailed SessionStatus = "failed"
)

// CategoryHealth classifies a category by recent activity, not by success
// rate: a category whose only recent sessions failed is still healthy.
type CategoryHealth string

const (
	HealthHealthy CategoryHealth = "healthy"
	HealthBarren  CategoryHealth = "barren"
)

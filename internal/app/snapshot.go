package app

import (
	"time"

	"github.com/alexanderramin/grove/internal/domain"
)

// SnapshotVersion is bumped whenever the export layout changes.
const SnapshotVersion = 1

// Snapshot is the portable form of all grove data, used by export and import.
type Snapshot struct {
	Version    int               `json:"version" yaml:"version"`
	ExportedAt time.Time         `json:"exportedAt" yaml:"exported_at"`
	Categories []domain.Category `json:"categories" yaml:"categories"`
	Sessions   []domain.Session  `json:"sessions" yaml:"sessions"`
}

type ImportResult struct {
	CategoryCount int
	SessionCount  int
}

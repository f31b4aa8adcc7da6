package primary

import "context"

// HistoryService defines the primary port for reading the activity log.
type HistoryService interface {
	ListHistory(ctx context.Context, req HistoryRequest) ([]*HistoryEntry, error)
}

// HistoryRequest contains filters for listing activity.
type HistoryRequest struct {
	RunID string
	Limit int
}

// HistoryEntry is one logged file operation.
type HistoryEntry struct {
	RunID     string
	Kind      string
	Class     string
	Path      string
	Action    string
	CreatedAt string
}

package secondary

import "context"

// Activity actions.
const (
	ActionCreated = "created"
	ActionSkipped = "skipped"
)

// ActivityRecord is one file-level entry in the activity log.
type ActivityRecord struct {
	ID        string
	RunID     string
	Kind      string // "base", "controller", "model" or "stub"
	Class     string
	Path      string
	Action    string
	CreatedAt string
}

// ActivityFilters contains filter options for listing activity.
type ActivityFilters struct {
	RunID  string
	Kind   string
	Action string
	Limit  int
}

// ActivityRepository persists the activity log.
type ActivityRepository interface {
	Create(ctx context.Context, record *ActivityRecord) error
	List(ctx context.Context, filters ActivityFilters) ([]*ActivityRecord, error)
}

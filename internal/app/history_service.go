package app

import (
	"context"
	"fmt"

	"github.com/example/apihelper/internal/ports/primary"
	"github.com/example/apihelper/internal/ports/secondary"
)

// DefaultHistoryLimit caps a history listing when no limit is given.
const DefaultHistoryLimit = 20

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	repo secondary.ActivityRepository
}

// NewHistoryService creates a new HistoryService. A nil repository means
// history is disabled.
func NewHistoryService(repo secondary.ActivityRepository) *HistoryServiceImpl {
	return &HistoryServiceImpl{repo: repo}
}

// ListHistory lists activity entries, newest first.
func (s *HistoryServiceImpl) ListHistory(ctx context.Context, req primary.HistoryRequest) ([]*primary.HistoryEntry, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	records, err := s.repo.List(ctx, secondary.ActivityFilters{RunID: req.RunID, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]*primary.HistoryEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, &primary.HistoryEntry{
			RunID:     r.RunID,
			Kind:      r.Kind,
			Class:     r.Class,
			Path:      r.Path,
			Action:    r.Action,
			CreatedAt: r.CreatedAt,
		})
	}
	return entries, nil
}

// Ensure HistoryServiceImpl implements the interface
var _ primary.HistoryService = (*HistoryServiceImpl)(nil)

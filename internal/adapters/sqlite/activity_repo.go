// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/apihelper/internal/ports/secondary"
)

// ActivityRepository implements secondary.ActivityRepository with SQLite.
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new SQLite activity repository.
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create persists a new activity entry.
func (r *ActivityRepository) Create(ctx context.Context, record *secondary.ActivityRecord) error {
	var class sql.NullString
	if record.Class != "" {
		class = sql.NullString{String: record.Class, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activity (id, run_id, kind, class, path, action) VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.RunID,
		record.Kind,
		class,
		record.Path,
		record.Action,
	)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}

	return nil
}

// List retrieves activity entries matching the given filters, newest first.
func (r *ActivityRepository) List(ctx context.Context, filters secondary.ActivityFilters) ([]*secondary.ActivityRecord, error) {
	query := `SELECT id, run_id, kind, class, path, action, created_at FROM activity WHERE 1=1`
	args := []any{}

	if filters.RunID != "" {
		query += " AND run_id = ?"
		args = append(args, filters.RunID)
	}

	if filters.Kind != "" {
		query += " AND kind = ?"
		args = append(args, filters.Kind)
	}

	if filters.Action != "" {
		query += " AND action = ?"
		args = append(args, filters.Action)
	}

	query += " ORDER BY created_at DESC, rowid DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ActivityRecord
	for rows.Next() {
		var (
			class     sql.NullString
			createdAt time.Time
		)

		record := &secondary.ActivityRecord{}
		err := rows.Scan(&record.ID,
			&record.RunID,
			&record.Kind,
			&class,
			&record.Path,
			&record.Action,
			&createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		record.Class = class.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity: %w", err)
	}

	return records, nil
}

// Ensure ActivityRepository implements the interface
var _ secondary.ActivityRepository = (*ActivityRepository)(nil)

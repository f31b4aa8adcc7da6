package app

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/example/apihelper/internal/ctxutil"
	"github.com/example/apihelper/internal/ports/secondary"
)

// Activity kinds.
const (
	KindBase       = "base"
	KindController = "controller"
	KindModel      = "model"
	KindStub       = "stub"
)

// activityRecorder writes file-level entries to the activity log.
// A nil repository disables recording. Failures are logged, never returned.
type activityRecorder struct {
	repo   secondary.ActivityRepository
	logger *logrus.Logger
}

func (r activityRecorder) record(ctx context.Context, kind, class, path, action string) {
	if r.repo == nil {
		return
	}

	record := &secondary.ActivityRecord{
		ID:     uuid.NewString(),
		RunID:  runID(ctx),
		Kind:   kind,
		Class:  class,
		Path:   path,
		Action: action,
	}
	if err := r.repo.Create(ctx, record); err != nil {
		r.logger.WithError(err).WithFields(logrus.Fields{
			"run_id": record.RunID,
			"path":   path,
		}).Warn("failed to record activity")
	}
}

// runID returns the run ID carried by ctx, or a fresh one.
func runID(ctx context.Context) string {
	if id := ctxutil.RunIDFromContext(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}

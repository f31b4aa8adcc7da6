package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/example/apihelper/internal/core/effects"
	"github.com/example/apihelper/internal/ports/secondary"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place scaffolding I/O happens.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) error
}

// DefaultEffectExecutor executes effects against a workspace.
type DefaultEffectExecutor struct {
	workspace secondary.Workspace
	logger    *logrus.Logger
}

// NewEffectExecutor creates a new DefaultEffectExecutor.
func NewEffectExecutor(workspace secondary.Workspace, logger *logrus.Logger) *DefaultEffectExecutor {
	return &DefaultEffectExecutor{
		workspace: workspace,
		logger:    logger,
	}
}

// Execute processes a slice of effects, executing each in sequence.
// The first failure stops execution.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	for _, eff := range effs {
		if err := e.executeOne(ctx, eff); err != nil {
			return fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err)
		}
	}
	return nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case effects.FileEffect:
		return e.executeFile(ctx, typed)
	case effects.CompositeEffect:
		return e.Execute(ctx, typed.Effects)
	case effects.NoEffect:
		return nil
	case effects.LogEffect:
		return e.executeLog(typed)
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executeFile(ctx context.Context, eff effects.FileEffect) error {
	switch eff.Operation {
	case effects.OpMkdir:
		return e.workspace.CreateDirectory(ctx, eff.Path)
	case effects.OpWrite:
		return e.workspace.WriteFile(ctx, eff.Path, eff.Content)
	default:
		return fmt.Errorf("unknown file operation: %s", eff.Operation)
	}
}

func (e *DefaultEffectExecutor) executeLog(eff effects.LogEffect) error {
	level, err := logrus.ParseLevel(eff.Level)
	if err != nil {
		return err
	}
	e.logger.WithFields(logrus.Fields(eff.Fields)).Log(level, eff.Message)
	return nil
}

// Ensure DefaultEffectExecutor implements the interface
var _ EffectExecutor = (*DefaultEffectExecutor)(nil)

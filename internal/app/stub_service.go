package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/example/apihelper/internal/config"
	"github.com/example/apihelper/internal/core/effects"
	"github.com/example/apihelper/internal/ports/primary"
	"github.com/example/apihelper/internal/ports/secondary"
)

// SourceBuiltIn marks a template loaded from the embedded set.
const SourceBuiltIn = "built-in"

// StubServiceImpl implements the StubService interface.
type StubServiceImpl struct {
	workspace secondary.Workspace
	templates secondary.TemplateSource
	config    secondary.ConfigLookup
	executor  EffectExecutor
	activity  activityRecorder
}

// NewStubService creates a new StubService with injected dependencies.
func NewStubService(
	workspace secondary.Workspace,
	templates secondary.TemplateSource,
	cfg secondary.ConfigLookup,
	activity secondary.ActivityRepository,
	executor EffectExecutor,
	logger *logrus.Logger,
) *StubServiceImpl {
	return &StubServiceImpl{
		workspace: workspace,
		templates: templates,
		config:    cfg,
		executor:  executor,
		activity:  activityRecorder{repo: activity, logger: logger},
	}
}

// ListStubs lists the templates and where each one is loaded from.
func (s *StubServiceImpl) ListStubs(ctx context.Context) ([]primary.StubInfo, error) {
	infos, err := s.templates.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	stubs := make([]primary.StubInfo, 0, len(infos))
	for _, info := range infos {
		source := SourceBuiltIn
		if info.Overridden {
			source = info.Path
		}
		stubs = append(stubs, primary.StubInfo{Name: info.Name, Source: source})
	}
	return stubs, nil
}

// PublishStubs copies every built-in template into the override directory.
func (s *StubServiceImpl) PublishStubs(ctx context.Context) ([]primary.GeneratedFile, error) {
	dir := s.workspace.ResolvePath(s.config.Lookup(config.KeyStubsPath))

	infos, err := s.templates.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	files := make([]primary.GeneratedFile, 0, len(infos))
	for _, info := range infos {
		path := filepath.Join(dir, info.Name)
		file := primary.GeneratedFile{Key: info.Name, Path: path}

		exists, err := s.workspace.FileExists(ctx, path)
		if err != nil {
			return files, err
		}
		if exists {
			file.Status = primary.FileExists
			files = append(files, file)
			s.activity.record(ctx, KindStub, "", path, secondary.ActionSkipped)
			continue
		}

		content, err := s.templates.DefaultTemplate(info.Name)
		if err != nil {
			return files, fmt.Errorf("%w: %w", ErrTemplateUnreadable, err)
		}
		eff := effects.WriteFile(dir, path, []byte(content))
		if err := s.executor.Execute(ctx, []effects.Effect{eff}); err != nil {
			return files, fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
		}

		file.Status = primary.FileCreated
		files = append(files, file)
		s.activity.record(ctx, KindStub, "", path, secondary.ActionCreated)
	}

	return files, nil
}

// Ensure StubServiceImpl implements the interface
var _ primary.StubService = (*StubServiceImpl)(nil)

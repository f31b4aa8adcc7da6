package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/example/apihelper/internal/config"
	corebase "github.com/example/apihelper/internal/core/base"
	"github.com/example/apihelper/internal/core/effects"
	"github.com/example/apihelper/internal/core/naming"
	"github.com/example/apihelper/internal/core/stub"
	"github.com/example/apihelper/internal/ctxutil"
	"github.com/example/apihelper/internal/ports/primary"
	"github.com/example/apihelper/internal/ports/secondary"
)

// ModelServiceImpl generates model classes. It serves both the make model
// command and the missing-model prompt of controller scaffolding.
type ModelServiceImpl struct {
	workspace secondary.Workspace
	classes   secondary.ClassLocator
	templates secondary.TemplateSource
	confirmer secondary.Confirmer
	config    secondary.ConfigLookup
	executor  EffectExecutor
	activity  activityRecorder
	logger    *logrus.Logger
}

// NewModelService creates a new ModelService with injected dependencies.
func NewModelService(
	workspace secondary.Workspace,
	classes secondary.ClassLocator,
	templates secondary.TemplateSource,
	confirmer secondary.Confirmer,
	cfg secondary.ConfigLookup,
	activity secondary.ActivityRepository,
	executor EffectExecutor,
	logger *logrus.Logger,
) *ModelServiceImpl {
	return &ModelServiceImpl{
		workspace: workspace,
		classes:   classes,
		templates: templates,
		confirmer: confirmer,
		config:    cfg,
		executor:  executor,
		activity:  activityRecorder{repo: activity, logger: logger},
		logger:    logger,
	}
}

// MakeModel writes the model class named by req.Name. An existing class is
// never overwritten: the response is returned with an ErrTargetExists error.
func (s *ModelServiceImpl) MakeModel(ctx context.Context, req primary.MakeModelRequest) (*primary.MakeModelResponse, error) {
	if ctxutil.RunIDFromContext(ctx) == "" {
		ctx = ctxutil.WithRunID(ctx, uuid.NewString())
	}

	if naming.Normalize(req.Name) == "" {
		return nil, fmt.Errorf("%w: model name is required", naming.ErrInvalidReference)
	}
	root := naming.RootNamespace(s.config.Lookup(config.KeyRootNamespace))
	class, err := naming.Resolve(req.Name, root)
	if err != nil {
		return nil, err
	}

	path := s.workspace.ClassPath(class.String())
	resp := &primary.MakeModelResponse{
		File: primary.GeneratedFile{Key: class.SimpleName(), Class: class.String(), Path: path},
	}

	exists, err := s.workspace.FileExists(ctx, path)
	if err != nil {
		return nil, err
	}
	if guard := corebase.CanWrite(corebase.WriteContext{Class: class, Path: path, Exists: exists}); !guard.Allowed {
		resp.File.Status = primary.FileExists
		s.activity.record(ctx, KindModel, class.String(), path, secondary.ActionSkipped)
		return resp, fmt.Errorf("%w: %s", ErrTargetExists, path)
	}

	tpl, err := s.templates.ReadTemplate(ctx, stub.ModelClassTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateUnreadable, err)
	}
	content := stub.Substitute(tpl, stub.NamespaceReplacements(stub.Values{
		Namespace:         class.Namespace(),
		Class:             class.SimpleName(),
		RootNamespace:     root,
		UserModel:         s.config.Lookup(config.KeyUserModel),
		APINamespace:      naming.Normalize(s.config.Lookup(config.KeyAPINamespace)),
		APIName:           s.config.Lookup(config.KeyAPIName),
		ServicesNamespace: naming.Normalize(s.config.Lookup(config.KeyServicesNamespace)),
	}))

	eff := effects.WriteFile(filepath.Dir(path), path, []byte(content))
	if err := s.executor.Execute(ctx, []effects.Effect{eff}); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}

	resp.File.Status = primary.FileCreated
	resp.File.Content = content
	s.activity.record(ctx, KindModel, class.String(), path, secondary.ActionCreated)
	s.logger.WithFields(logrus.Fields{"run_id": runID(ctx), "class": class}).Debug("model created")

	return resp, nil
}

// EnsureModel asks whether a missing model class should be generated and
// generates it on confirmation.
func (s *ModelServiceImpl) EnsureModel(ctx context.Context, class string) (secondary.ModelOutcome, error) {
	exists, err := s.classes.ClassExists(ctx, class)
	if err != nil {
		return "", err
	}
	if exists {
		return secondary.ModelExisted, nil
	}

	ok, err := s.confirmer.Confirm(ctx, ConfirmModelMessage(class), true)
	if err != nil {
		return "", err
	}
	if !ok {
		return secondary.ModelDeclined, nil
	}

	if _, err := s.MakeModel(ctx, primary.MakeModelRequest{Name: class}); err != nil {
		if errors.Is(err, ErrTargetExists) {
			return secondary.ModelExisted, nil
		}
		return "", err
	}
	return secondary.ModelGenerated, nil
}

// ConfirmModelMessage is the question asked for a missing model class.
func ConfirmModelMessage(class string) string {
	return fmt.Sprintf("A %s model does not exist. Do you want to generate it?", class)
}

// Ensure ModelServiceImpl implements the interfaces
var (
	_ primary.ModelService     = (*ModelServiceImpl)(nil)
	_ secondary.ModelGenerator = (*ModelServiceImpl)(nil)
)

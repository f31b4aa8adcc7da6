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

// ScaffoldState is a step of a controller scaffolding run.
type ScaffoldState string

// Run states, in order. StateFailed is reachable from any state.
const (
	StateInit              ScaffoldState = "init"
	StateBaseEnsured       ScaffoldState = "base_ensured"
	StateTemplateChosen    ScaffoldState = "template_chosen"
	StateNamesResolved     ScaffoldState = "names_resolved"
	StateReplacementsBuilt ScaffoldState = "replacements_built"
	StateWritten           ScaffoldState = "written"
	StateDone              ScaffoldState = "done"
	StateFailed            ScaffoldState = "failed"
)

// Model reference roles.
const (
	RoleParent = "parent"
	RoleModel  = "model"
)

// ScaffoldServiceImpl implements the ScaffoldService interface.
type ScaffoldServiceImpl struct {
	workspace secondary.Workspace
	classes   secondary.ClassLocator
	templates secondary.TemplateSource
	models    secondary.ModelGenerator
	config    secondary.ConfigLookup
	executor  EffectExecutor
	activity  activityRecorder
	logger    *logrus.Logger
}

// NewScaffoldService creates a new ScaffoldService with injected dependencies.
// models and activity may be nil: missing models are then never generated and
// nothing is recorded.
func NewScaffoldService(
	workspace secondary.Workspace,
	classes secondary.ClassLocator,
	templates secondary.TemplateSource,
	models secondary.ModelGenerator,
	cfg secondary.ConfigLookup,
	activity secondary.ActivityRepository,
	executor EffectExecutor,
	logger *logrus.Logger,
) *ScaffoldServiceImpl {
	return &ScaffoldServiceImpl{
		workspace: workspace,
		classes:   classes,
		templates: templates,
		models:    models,
		config:    cfg,
		executor:  executor,
		activity:  activityRecorder{repo: activity, logger: logger},
		logger:    logger,
	}
}

// scaffoldRun tracks the state of one MakeController invocation.
type scaffoldRun struct {
	id     string
	state  ScaffoldState
	logger *logrus.Entry
}

func (r *scaffoldRun) advance(next ScaffoldState) {
	r.logger.WithField("state", next).Debug("state transition")
	r.state = next
}

func (r *scaffoldRun) fail(err error) error {
	r.logger.WithError(err).WithField("state", StateFailed).Debug("run failed")
	r.state = StateFailed
	return err
}

// MakeController ensures the base files exist, then renders and writes the
// controller for req.Name. All references are validated before any file I/O.
func (s *ScaffoldServiceImpl) MakeController(ctx context.Context, req primary.MakeControllerRequest) (*primary.MakeControllerResponse, error) {
	run := &scaffoldRun{id: uuid.NewString(), state: StateInit}
	ctx = ctxutil.WithRunID(ctx, run.id)
	run.logger = s.logger.WithFields(logrus.Fields{"run_id": run.id, "target": req.Name})

	// 1. Validate and qualify every reference up front
	values := s.values()
	target, parent, model, err := s.resolveReferences(req, values.RootNamespace)
	if err != nil {
		return nil, run.fail(err)
	}

	resp := &primary.MakeControllerResponse{
		RunID: run.id,
		Class: target.String(),
	}
	defer func() { resp.State = string(run.state) }()

	// 2. Init -> BaseEnsured
	baseFiles, err := s.ensureBase(ctx, values, req.DryRun)
	resp.BaseFiles = baseFiles
	if err != nil {
		return resp, run.fail(err)
	}
	run.advance(StateBaseEnsured)

	// 3. BaseEnsured -> TemplateChosen
	variant := stub.Select(stub.Options{Parent: req.Parent, Model: req.Model, Resource: req.Resource})
	resp.Variant = variant.String()
	tpl, err := s.readTemplate(ctx, variant.Template())
	if err != nil {
		return resp, run.fail(err)
	}
	run.advance(StateTemplateChosen)

	// 4. TemplateChosen -> NamesResolved
	if parent != "" {
		ref, err := s.checkModel(ctx, RoleParent, parent, req.DryRun)
		if err != nil {
			return resp, run.fail(err)
		}
		resp.Models = append(resp.Models, ref)
	}
	if model != "" {
		ref, err := s.checkModel(ctx, RoleModel, model, req.DryRun)
		if err != nil {
			return resp, run.fail(err)
		}
		resp.Models = append(resp.Models, ref)
	}
	run.logger.WithField("models", len(resp.Models)).Debug("references resolved")
	run.advance(StateNamesResolved)

	// 5. NamesResolved -> ReplacementsBuilt
	values.Namespace = target.Namespace()
	values.Class = target.SimpleName()
	values.Parent = parent
	values.Model = model
	replacements := stub.ControllerReplacements(values)
	run.advance(StateReplacementsBuilt)

	// 6. ReplacementsBuilt -> Written
	content := stub.Substitute(tpl, replacements)
	run.advance(StateWritten)

	// 7. Written -> Done
	path := s.workspace.ClassPath(target.String())
	resp.Controller = primary.GeneratedFile{
		Key:     target.SimpleName(),
		Class:   target.String(),
		Path:    path,
		Content: content,
	}

	exists, err := s.workspace.FileExists(ctx, path)
	if err != nil {
		return resp, run.fail(err)
	}
	guard := corebase.CanWrite(corebase.WriteContext{Class: target, Path: path, Exists: exists})
	if !guard.Allowed {
		resp.Controller.Status = primary.FileExists
		resp.Controller.Content = ""
		s.activity.record(ctx, KindController, target.String(), path, secondary.ActionSkipped)
		run.advance(StateDone)
		return resp, fmt.Errorf("%w: %s", ErrTargetExists, path)
	}

	if req.DryRun {
		resp.Controller.Status = primary.FilePlanned
		run.advance(StateDone)
		return resp, nil
	}

	if err := s.write(ctx, path, content); err != nil {
		return resp, run.fail(err)
	}
	resp.Controller.Status = primary.FileCreated
	s.activity.record(ctx, KindController, target.String(), path, secondary.ActionCreated)
	run.advance(StateDone)

	return resp, nil
}

// values gathers the configuration-derived substitution values.
func (s *ScaffoldServiceImpl) values() stub.Values {
	return stub.Values{
		RootNamespace:     naming.RootNamespace(s.config.Lookup(config.KeyRootNamespace)),
		UserModel:         s.config.Lookup(config.KeyUserModel),
		APINamespace:      naming.Normalize(s.config.Lookup(config.KeyAPINamespace)),
		APIName:           s.config.Lookup(config.KeyAPIName),
		ServicesNamespace: naming.Normalize(s.config.Lookup(config.KeyServicesNamespace)),
	}
}

func (s *ScaffoldServiceImpl) resolveReferences(req primary.MakeControllerRequest, root string) (target, parent, model naming.QualifiedName, err error) {
	if naming.Normalize(req.Name) == "" {
		return "", "", "", fmt.Errorf("%w: controller name is required", naming.ErrInvalidReference)
	}

	target, err = naming.ResolveIn(req.Name, root, s.config.Lookup(config.KeyControllersNamespace))
	if err != nil {
		return "", "", "", err
	}
	if req.Parent != "" {
		if parent, err = naming.Resolve(req.Parent, root); err != nil {
			return "", "", "", err
		}
	}
	if req.Model != "" {
		if model, err = naming.Resolve(req.Model, root); err != nil {
			return "", "", "", err
		}
	}
	return target, parent, model, nil
}

// ensureBase writes every planned base file that does not exist yet.
func (s *ScaffoldServiceImpl) ensureBase(ctx context.Context, values stub.Values, dryRun bool) ([]primary.GeneratedFile, error) {
	plan := corebase.Plan(corebase.PlanInput{
		ServicesNamespace: values.ServicesNamespace,
		APINamespace:      values.APINamespace,
		APIName:           values.APIName,
	})
	replacements := stub.BaseReplacements(values)

	files := make([]primary.GeneratedFile, 0, len(plan))
	for _, spec := range plan {
		path := s.workspace.ClassPath(spec.Target.String())
		file := primary.GeneratedFile{Key: spec.Key, Class: spec.Target.String(), Path: path}

		exists, err := s.workspace.FileExists(ctx, path)
		if err != nil {
			return files, err
		}
		if guard := corebase.CanWrite(corebase.WriteContext{Class: spec.Target, Path: path, Exists: exists}); !guard.Allowed {
			s.logger.WithField("run_id", runID(ctx)).Debug(guard.Reason)
			file.Status = primary.FileExists
			files = append(files, file)
			s.activity.record(ctx, KindBase, file.Class, path, secondary.ActionSkipped)
			continue
		}

		tpl, err := s.readTemplate(ctx, spec.Template)
		if err != nil {
			return files, err
		}
		file.Content = stub.Substitute(tpl, replacements)

		if dryRun {
			file.Status = primary.FilePlanned
			files = append(files, file)
			continue
		}

		if err := s.write(ctx, path, file.Content); err != nil {
			return files, err
		}
		file.Status = primary.FileCreated
		files = append(files, file)
		s.activity.record(ctx, KindBase, file.Class, path, secondary.ActionCreated)
	}

	return files, nil
}

// checkModel offers to generate a referenced model class that does not exist.
// Declining does not stop the run.
func (s *ScaffoldServiceImpl) checkModel(ctx context.Context, role string, class naming.QualifiedName, dryRun bool) (primary.ModelReference, error) {
	ref := primary.ModelReference{Role: role, Class: class.String()}

	exists, err := s.classes.ClassExists(ctx, class.String())
	if err != nil {
		return ref, err
	}

	switch {
	case exists:
		ref.Outcome = string(secondary.ModelExisted)
	case dryRun || s.models == nil:
		ref.Outcome = string(secondary.ModelDeclined)
	default:
		outcome, err := s.models.EnsureModel(ctx, class.String())
		if err != nil {
			return ref, err
		}
		ref.Outcome = string(outcome)
	}
	return ref, nil
}

func (s *ScaffoldServiceImpl) readTemplate(ctx context.Context, name string) (string, error) {
	tpl, err := s.templates.ReadTemplate(ctx, name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTemplateUnreadable, err)
	}
	return tpl, nil
}

// write creates the parent directory of path and writes content in one buffer.
func (s *ScaffoldServiceImpl) write(ctx context.Context, path, content string) error {
	eff := effects.WriteFile(filepath.Dir(path), path, []byte(content))
	if err := s.executor.Execute(ctx, []effects.Effect{eff}); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}
	return nil
}

// IsSkipped reports whether err only signals that the target already existed.
func IsSkipped(err error) bool {
	return err != nil && errors.Is(err, ErrTargetExists)
}

// Ensure ScaffoldServiceImpl implements the interface
var _ primary.ScaffoldService = (*ScaffoldServiceImpl)(nil)

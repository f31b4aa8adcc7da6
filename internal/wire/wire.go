// Package wire provides dependency injection for the apihelper application.
// It builds every service for one project directory.
package wire

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	cliadapter "github.com/example/apihelper/internal/adapters/cli"
	"github.com/example/apihelper/internal/adapters/filesystem"
	"github.com/example/apihelper/internal/adapters/prompt"
	"github.com/example/apihelper/internal/adapters/sqlite"
	"github.com/example/apihelper/internal/app"
	"github.com/example/apihelper/internal/config"
	"github.com/example/apihelper/internal/db"
	"github.com/example/apihelper/internal/logging"
	"github.com/example/apihelper/internal/ports/primary"
	"github.com/example/apihelper/internal/ports/secondary"
	"github.com/example/apihelper/internal/templates"
)

// Options configures a Container.
type Options struct {
	ProjectDir    string // defaults to the working directory
	ConfigFile    string // defaults to <ProjectDir>/apihelper.yaml
	Verbose       bool
	NoInteraction bool      // answer every confirmation with its default
	LogOutput     io.Writer // defaults to stderr
}

// Container holds the services for one invocation.
type Container struct {
	Config    *config.Config
	Logger    *logrus.Logger
	Workspace *filesystem.WorkspaceAdapter
	Templates *templates.Source

	ScaffoldService primary.ScaffoldService
	ModelService    primary.ModelService
	StubService     primary.StubService
	HistoryService  primary.HistoryService

	database *sql.DB
}

// Build loads configuration and wires every service.
// Failing to open the activity log only disables history.
func Build(opts Options) (*Container, error) {
	logOut := opts.LogOutput
	if logOut == nil {
		logOut = os.Stderr
	}
	logger := logging.New(logOut, opts.Verbose)

	// Create the workspace first so the project directory is absolute
	workspace, err := filesystem.NewWorkspaceAdapter(opts.ProjectDir, config.DefaultAppPath, "")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(workspace.ProjectDir(), opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	workspace, err = filesystem.NewWorkspaceAdapter(workspace.ProjectDir(), cfg.AppPath, cfg.RootNamespace)
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{
		"project": workspace.ProjectDir(),
		"config":  cfg.File,
		"root":    cfg.RootNamespace,
	}).Debug("configuration loaded")

	c := &Container{
		Config:    cfg,
		Logger:    logger,
		Workspace: workspace,
		Templates: templates.NewSource(workspace.ResolvePath(cfg.StubsPath)),
	}

	var activity secondary.ActivityRepository
	if cfg.History {
		if repo, err := c.openHistory(); err != nil {
			logger.WithError(err).Warn("activity log unavailable, history disabled")
		} else {
			activity = repo
		}
	}

	var confirmer secondary.Confirmer = prompt.NewSurveyConfirmer()
	if opts.NoInteraction {
		confirmer = prompt.NewStaticConfirmer()
	}

	// Create effect executor with the injected workspace
	executor := app.NewEffectExecutor(workspace, logger)

	models := app.NewModelService(workspace, workspace, c.Templates, confirmer, cfg, activity, executor, logger)
	c.ModelService = models
	c.ScaffoldService = app.NewScaffoldService(workspace, workspace, c.Templates, models, cfg, activity, executor, logger)
	c.StubService = app.NewStubService(workspace, c.Templates, cfg, activity, executor, logger)
	c.HistoryService = app.NewHistoryService(activity)

	return c, nil
}

func (c *Container) openHistory() (*sqlite.ActivityRepository, error) {
	path, err := c.Config.HistoryDBPath()
	if err != nil {
		return nil, err
	}
	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open activity log: %w", err)
	}
	c.database = database
	return sqlite.NewActivityRepository(database), nil
}

// Close releases the activity log connection.
func (c *Container) Close() error {
	if c.database == nil {
		return nil
	}
	return c.database.Close()
}

// ScaffoldAdapter returns a new ScaffoldAdapter writing to out.
// Each call creates a new adapter (adapters are stateless translators).
func (c *Container) ScaffoldAdapter(out io.Writer) *cliadapter.ScaffoldAdapter {
	return cliadapter.NewScaffoldAdapter(c.ScaffoldService, c.ModelService, out)
}

// StubAdapter returns a new StubAdapter writing to out.
func (c *Container) StubAdapter(out io.Writer) *cliadapter.StubAdapter {
	return cliadapter.NewStubAdapter(c.StubService, out)
}

// HistoryAdapter returns a new HistoryAdapter writing to out.
func (c *Container) HistoryAdapter(out io.Writer) *cliadapter.HistoryAdapter {
	return cliadapter.NewHistoryAdapter(c.HistoryService, out)
}

package app

import (
	"context"
	"errors"
	"strings"

	"github.com/example/apihelper/internal/config"
	"github.com/example/apihelper/internal/logging"
	"github.com/example/apihelper/internal/ports/secondary"
	"github.com/example/apihelper/internal/templates"
)

const testProject = "/project"

// Ensure mocks implement the interfaces
var (
	_ secondary.Workspace          = (*mockWorkspace)(nil)
	_ secondary.ClassLocator       = (*mockWorkspace)(nil)
	_ secondary.TemplateSource     = (*mockTemplateSource)(nil)
	_ secondary.ConfigLookup       = mapConfig(nil)
	_ secondary.ActivityRepository = (*mockActivityRepo)(nil)
	_ secondary.ModelGenerator     = (*mockModelGenerator)(nil)
	_ secondary.Confirmer          = (*mockConfirmer)(nil)
)

// mockWorkspace is an in-memory project rooted at /project with classes
// under App\ mapped to /project/app.
type mockWorkspace struct {
	files    map[string][]byte
	dirs     map[string]bool
	writes   []string
	writeErr error
	mkdirErr error
}

func newMockWorkspace() *mockWorkspace {
	return &mockWorkspace{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (m *mockWorkspace) FileExists(ctx context.Context, path string) (bool, error) {
	_, ok := m.files[path]
	return ok, nil
}

func (m *mockWorkspace) ReadFile(ctx context.Context, path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (m *mockWorkspace) WriteFile(ctx context.Context, path string, content []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[path] = content
	m.writes = append(m.writes, path)
	return nil
}

func (m *mockWorkspace) CreateDirectory(ctx context.Context, path string) error {
	if m.mkdirErr != nil {
		return m.mkdirErr
	}
	m.dirs[path] = true
	return nil
}

func (m *mockWorkspace) ClassPath(class string) string {
	rel := strings.TrimPrefix(class, `App\`)
	return testProject + "/app/" + strings.ReplaceAll(rel, `\`, "/") + ".php"
}

func (m *mockWorkspace) ResolvePath(rel string) string {
	return testProject + "/" + rel
}

func (m *mockWorkspace) ClassExists(ctx context.Context, class string) (bool, error) {
	return m.FileExists(ctx, m.ClassPath(class))
}

// mockTemplateSource serves the built-in templates unless err is set.
type mockTemplateSource struct {
	source   *templates.Source
	err      error
	failOnly string // fail only this template name when set
	infos    []secondary.TemplateInfo
}

func newMockTemplateSource() *mockTemplateSource {
	return &mockTemplateSource{source: templates.NewSource("")}
}

func (m *mockTemplateSource) fails(name string) bool {
	return m.err != nil && (m.failOnly == "" || m.failOnly == name)
}

func (m *mockTemplateSource) ReadTemplate(ctx context.Context, name string) (string, error) {
	if m.fails(name) {
		return "", m.err
	}
	return m.source.ReadTemplate(ctx, name)
}

func (m *mockTemplateSource) DefaultTemplate(name string) (string, error) {
	if m.fails(name) {
		return "", m.err
	}
	return m.source.DefaultTemplate(name)
}

func (m *mockTemplateSource) ListTemplates(ctx context.Context) ([]secondary.TemplateInfo, error) {
	if m.infos != nil {
		return m.infos, nil
	}
	return m.source.ListTemplates(ctx)
}

// mapConfig implements secondary.ConfigLookup over a plain map.
type mapConfig map[string]string

func (c mapConfig) Lookup(key string) string { return c[key] }

func newTestConfig() mapConfig {
	return mapConfig{
		config.KeyRootNamespace:        `App\`,
		config.KeyControllersNamespace: `App\Http\Controllers\Api`,
		config.KeyUserModel:            `App\User`,
		config.KeyServicesNamespace:    `App\Services`,
		config.KeyAPINamespace:         `App\Http\Controllers\Api`,
		config.KeyAPIName:              "ApiController",
		config.KeyStubsPath:            "stubs/apihelper",
	}
}

// mockActivityRepo records activity in memory.
type mockActivityRepo struct {
	records   []*secondary.ActivityRecord
	createErr error
	lastList  secondary.ActivityFilters
}

func (m *mockActivityRepo) Create(ctx context.Context, record *secondary.ActivityRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.records = append(m.records, record)
	return nil
}

func (m *mockActivityRepo) List(ctx context.Context, filters secondary.ActivityFilters) ([]*secondary.ActivityRecord, error) {
	m.lastList = filters
	out := m.records
	if filters.Limit > 0 && len(out) > filters.Limit {
		out = out[:filters.Limit]
	}
	return out, nil
}

// mockModelGenerator returns a fixed outcome and records the classes asked for.
type mockModelGenerator struct {
	outcome secondary.ModelOutcome
	err     error
	calls   []string
}

func (m *mockModelGenerator) EnsureModel(ctx context.Context, class string) (secondary.ModelOutcome, error) {
	m.calls = append(m.calls, class)
	if m.err != nil {
		return "", m.err
	}
	return m.outcome, nil
}

// mockConfirmer answers every question with answer.
type mockConfirmer struct {
	answer bool
	err    error
	asked  []string
}

func (m *mockConfirmer) Confirm(ctx context.Context, message string, defaultAnswer bool) (bool, error) {
	m.asked = append(m.asked, message)
	if m.err != nil {
		return false, m.err
	}
	return m.answer, nil
}

// scaffoldFixture bundles a scaffold service with its mocks.
type scaffoldFixture struct {
	service   *ScaffoldServiceImpl
	workspace *mockWorkspace
	templates *mockTemplateSource
	models    *mockModelGenerator
	activity  *mockActivityRepo
}

func newScaffoldFixture() *scaffoldFixture {
	ws := newMockWorkspace()
	tpl := newMockTemplateSource()
	models := &mockModelGenerator{outcome: secondary.ModelGenerated}
	activity := &mockActivityRepo{}
	logger := logging.Discard()

	return &scaffoldFixture{
		service: NewScaffoldService(ws, ws, tpl, models, newTestConfig(), activity,
			NewEffectExecutor(ws, logger), logger),
		workspace: ws,
		templates: tpl,
		models:    models,
		activity:  activity,
	}
}

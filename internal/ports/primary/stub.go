package primary

import "context"

// StubService defines the primary port for inspecting and publishing templates.
type StubService interface {
	ListStubs(ctx context.Context) ([]StubInfo, error)

	// PublishStubs copies the built-in templates into the project override
	// directory. Existing copies are left untouched.
	PublishStubs(ctx context.Context) ([]GeneratedFile, error)
}

// StubInfo describes a template and where it is loaded from.
type StubInfo struct {
	Name   string
	Source string // "built-in" or the override path
}

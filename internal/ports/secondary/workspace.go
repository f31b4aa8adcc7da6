// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import "context"

// Workspace defines the secondary port for project filesystem operations.
type Workspace interface {
	// File operations
	FileExists(ctx context.Context, path string) (bool, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, content []byte) error
	CreateDirectory(ctx context.Context, path string) error

	// Path resolution
	ClassPath(class string) string
	ResolvePath(rel string) string
}

// ClassLocator answers whether a class is already defined in the project.
type ClassLocator interface {
	ClassExists(ctx context.Context, class string) (bool, error)
}

// ConfigLookup resolves configuration keys to string values.
type ConfigLookup interface {
	Lookup(key string) string
}

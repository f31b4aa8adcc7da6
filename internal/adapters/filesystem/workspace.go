// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/apihelper/internal/core/naming"
	"github.com/example/apihelper/internal/ports/secondary"
)

// WorkspaceAdapter implements secondary.Workspace and secondary.ClassLocator
// for a project laid out with PSR-4 autoloading: classes under rootNamespace
// live in appPath, one class per file.
type WorkspaceAdapter struct {
	projectDir    string
	appPath       string
	rootNamespace string
}

// NewWorkspaceAdapter creates a new filesystem workspace adapter.
// If projectDir is empty, the current working directory is used.
func NewWorkspaceAdapter(projectDir, appPath, rootNamespace string) (*WorkspaceAdapter, error) {
	if projectDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		projectDir = wd
	}

	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project directory: %w", err)
	}

	return &WorkspaceAdapter{
		projectDir:    abs,
		appPath:       appPath,
		rootNamespace: naming.RootNamespace(rootNamespace),
	}, nil
}

// FileExists checks if a regular file exists at path.
func (a *WorkspaceAdapter) FileExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check file: %w", err)
	}
	return !info.IsDir(), nil
}

// ReadFile reads the whole file at path.
func (a *WorkspaceAdapter) ReadFile(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// WriteFile writes content to path as a single buffer.
func (a *WorkspaceAdapter) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// CreateDirectory creates a directory with all parent directories.
func (a *WorkspaceAdapter) CreateDirectory(ctx context.Context, path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// ClassPath maps a qualified class to its file, e.g. App\Http\Controllers\Api\PostController
// to <project>/app/Http/Controllers/Api/PostController.php.
func (a *WorkspaceAdapter) ClassPath(class string) string {
	name := naming.Normalize(class)
	if a.rootNamespace != "" {
		name = strings.TrimPrefix(name, a.rootNamespace)
	}
	rel := strings.ReplaceAll(name, naming.Separator, "/") + ".php"
	return filepath.Join(a.projectDir, a.appPath, filepath.FromSlash(rel))
}

// ClassExists reports whether the file for class exists.
func (a *WorkspaceAdapter) ClassExists(ctx context.Context, class string) (bool, error) {
	return a.FileExists(ctx, a.ClassPath(class))
}

// ResolvePath resolves rel against the project directory. Absolute paths are
// returned unchanged.
func (a *WorkspaceAdapter) ResolvePath(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(a.projectDir, rel)
}

// ProjectDir returns the absolute project directory.
func (a *WorkspaceAdapter) ProjectDir() string {
	return a.projectDir
}

// Ensure WorkspaceAdapter implements the interfaces
var (
	_ secondary.Workspace    = (*WorkspaceAdapter)(nil)
	_ secondary.ClassLocator = (*WorkspaceAdapter)(nil)
)

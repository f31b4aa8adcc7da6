// Package templates provides the built-in scaffolding templates and lets a
// project shadow any of them with its own copy.
package templates

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/example/apihelper/internal/ports/secondary"
)

//go:embed stubs/*.tpl
var builtin embed.FS

// Source implements secondary.TemplateSource over the embedded templates and
// an optional override directory.
type Source struct {
	overrideDir string
}

// NewSource creates a template source. overrideDir may be empty.
func NewSource(overrideDir string) *Source {
	return &Source{overrideDir: overrideDir}
}

// Names returns the built-in template names, sorted.
func Names() []string {
	entries, err := builtin.ReadDir("stubs")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// DefaultTemplate returns the content of a built-in template.
func (s *Source) DefaultTemplate(name string) (string, error) {
	content, err := builtin.ReadFile("stubs/" + name)
	if err != nil {
		return "", fmt.Errorf("template %s: %w", name, err)
	}
	return string(content), nil
}

// ReadTemplate returns the project copy of a template when present, the
// built-in one otherwise.
func (s *Source) ReadTemplate(ctx context.Context, name string) (string, error) {
	if path := s.overridePath(name); path != "" {
		content, err := os.ReadFile(path)
		if err == nil {
			return string(content), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("template %s: %w", path, err)
		}
	}
	return s.DefaultTemplate(name)
}

// ListTemplates lists every built-in template and whether it is overridden.
func (s *Source) ListTemplates(ctx context.Context) ([]secondary.TemplateInfo, error) {
	var infos []secondary.TemplateInfo
	for _, name := range Names() {
		info := secondary.TemplateInfo{Name: name}
		if path := s.overridePath(name); path != "" {
			if _, err := os.Stat(path); err == nil {
				info.Overridden = true
				info.Path = path
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// OverrideDir returns the project override directory.
func (s *Source) OverrideDir() string {
	return s.overrideDir
}

func (s *Source) overridePath(name string) string {
	if s.overrideDir == "" {
		return ""
	}
	return filepath.Join(s.overrideDir, name)
}

// Ensure Source implements the interface
var _ secondary.TemplateSource = (*Source)(nil)

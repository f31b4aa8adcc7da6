package secondary

import "context"

// TemplateInfo describes a template available to the scaffolder.
type TemplateInfo struct {
	Name       string
	Overridden bool   // a project copy shadows the built-in template
	Path       string // project copy path when Overridden
}

// TemplateSource locates template text.
type TemplateSource interface {
	// ReadTemplate returns the effective template text, preferring a project copy.
	ReadTemplate(ctx context.Context, name string) (string, error)

	// DefaultTemplate returns the built-in template text.
	DefaultTemplate(name string) (string, error)

	// ListTemplates lists every built-in template and whether it is overridden.
	ListTemplates(ctx context.Context) ([]TemplateInfo, error)
}

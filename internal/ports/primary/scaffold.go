// Package primary defines the primary ports (driving adapters) for the application.
package primary

import "context"

// FileStatus describes what happened, or would happen, to a generated file.
type FileStatus string

const (
	FileCreated FileStatus = "CREATED"
	FileExists  FileStatus = "EXISTS"
	FilePlanned FileStatus = "CREATE" // dry run
)

// ScaffoldService defines the primary port for controller scaffolding.
type ScaffoldService interface {
	// MakeController ensures the base files exist and writes the controller.
	// When the controller already exists the response is still returned,
	// together with an error wrapping app.ErrTargetExists.
	MakeController(ctx context.Context, req MakeControllerRequest) (*MakeControllerResponse, error)
}

// MakeControllerRequest contains the invocation inputs.
type MakeControllerRequest struct {
	Name     string // primary target reference, e.g. "User/PostController"
	Model    string // optional model reference
	Parent   string // optional parent model reference
	Resource bool
	DryRun   bool // render and plan without writing
}

// MakeControllerResponse contains the result of a scaffolding run.
type MakeControllerResponse struct {
	RunID      string
	Class      string // qualified controller class
	Variant    string
	Controller GeneratedFile
	BaseFiles  []GeneratedFile
	Models     []ModelReference
	State      string // final state of the run
}

// GeneratedFile describes a single file of a run.
type GeneratedFile struct {
	Key     string
	Class   string
	Path    string
	Status  FileStatus
	Content string // rendered text; set for written and dry-run files
}

// ModelReference reports a model or parent class the controller refers to.
type ModelReference struct {
	Role    string // "model" or "parent"
	Class   string
	Outcome string // declined, generated, existed
}

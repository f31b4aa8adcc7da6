// Package base contains pure planning logic for the prerequisite files that
// must exist before a controller is generated.
package base

import (
	"fmt"

	"github.com/example/apihelper/internal/core/naming"
	"github.com/example/apihelper/internal/core/stub"
)

// Logical keys of the fixed infrastructure files.
const (
	KeyStatusServe   = "StatusServe"
	KeyResponseServe = "ResponseServe"
)

// PlanInput contains the configuration needed to plan base files.
// All values must be gathered by the caller - no I/O in the planner.
type PlanInput struct {
	ServicesNamespace string
	APINamespace      string
	APIName           string
}

// FileSpec describes a prerequisite file.
type FileSpec struct {
	Key      string               // logical key, used in console output
	Target   naming.QualifiedName // class the file declares
	Template string               // template file name
}

// Plan returns the base files in creation order: status service, response
// service, then the API base controller.
func Plan(input PlanInput) []FileSpec {
	return []FileSpec{
		{
			Key:      KeyStatusServe,
			Target:   naming.QualifiedName(naming.Join(input.ServicesNamespace, "/StatusServe")),
			Template: stub.StatusServeTemplate,
		},
		{
			Key:      KeyResponseServe,
			Target:   naming.QualifiedName(naming.Join(input.ServicesNamespace, "/ResponseServe")),
			Template: stub.ResponseServeTemplate,
		},
		{
			Key:      input.APIName,
			Target:   naming.QualifiedName(naming.Join(input.APINamespace, "/", input.APIName)),
			Template: stub.APIControllerTemplate,
		},
	}
}

// WriteContext provides the pre-fetched state for a write guard.
type WriteContext struct {
	Class  naming.QualifiedName
	Path   string
	Exists bool
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanWrite evaluates whether a generated file may be written.
// Rule: existing files are never overwritten.
func CanWrite(ctx WriteContext) GuardResult {
	if ctx.Exists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s already exists at %s", ctx.Class, ctx.Path),
		}
	}
	return GuardResult{Allowed: true}
}

// Package stub contains the pure template logic for scaffolding: choosing a
// template variant, the placeholder token contract, and literal substitution.
// This is part of the Functional Core - no I/O, only pure functions.
package stub

// Variant identifies which controller template is rendered.
type Variant int

const (
	// Plain is an empty controller extending the API base controller.
	Plain Variant = iota
	// Resource is a resource controller with untyped route parameters.
	Resource
	// ModelBound is a resource controller bound to a model class.
	ModelBound
	// ParentNested is a nested resource controller bound to a parent and a model.
	ParentNested
)

// Template file names for each variant and for the base files.
const (
	ControllerTemplate    = "Controller.tpl"
	ResourceTemplate      = "ResourceController.tpl"
	ModelTemplate         = "ModelController.tpl"
	NestedTemplate        = "NestedController.tpl"
	APIControllerTemplate = "ApiController.tpl"
	StatusServeTemplate   = "StatusServe.tpl"
	ResponseServeTemplate = "ResponseServe.tpl"
	ModelClassTemplate    = "Model.tpl"
)

// Variants lists every variant in selection precedence order, highest first.
var Variants = []Variant{ParentNested, ModelBound, Resource, Plain}

// Options holds the option set that drives variant selection.
// Parent and Model are raw references; empty means not given.
type Options struct {
	Parent   string
	Model    string
	Resource bool
}

// Select returns the template variant for the given options.
// Precedence: ParentNested > ModelBound > Resource > Plain.
func Select(opts Options) Variant {
	for _, v := range Variants {
		if v.matches(opts) {
			return v
		}
	}
	return Plain
}

func (v Variant) matches(opts Options) bool {
	switch v {
	case ParentNested:
		return opts.Parent != ""
	case ModelBound:
		return opts.Model != ""
	case Resource:
		return opts.Resource
	case Plain:
		return true
	}
	return false
}

// Template returns the template file name for the variant.
func (v Variant) Template() string {
	switch v {
	case ParentNested:
		return NestedTemplate
	case ModelBound:
		return ModelTemplate
	case Resource:
		return ResourceTemplate
	default:
		return ControllerTemplate
	}
}

// String returns a human-readable variant name.
func (v Variant) String() string {
	switch v {
	case ParentNested:
		return "parent-nested"
	case ModelBound:
		return "model-bound"
	case Resource:
		return "resource"
	case Plain:
		return "plain"
	}
	return "unknown"
}

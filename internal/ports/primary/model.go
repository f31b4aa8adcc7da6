package primary

import "context"

// ModelService defines the primary port for model class generation.
type ModelService interface {
	MakeModel(ctx context.Context, req MakeModelRequest) (*MakeModelResponse, error)
}

// MakeModelRequest contains parameters for generating a model.
type MakeModelRequest struct {
	Name string
}

// MakeModelResponse contains the generated model file.
type MakeModelResponse struct {
	File GeneratedFile
}

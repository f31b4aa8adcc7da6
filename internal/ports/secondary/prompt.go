package secondary

import "context"

// Confirmer asks the user a yes/no question. Implementations block until answered.
type Confirmer interface {
	Confirm(ctx context.Context, message string, defaultAnswer bool) (bool, error)
}

// ModelOutcome is the result of asking for a missing model class.
type ModelOutcome string

const (
	ModelDeclined  ModelOutcome = "declined"
	ModelGenerated ModelOutcome = "generated"
	ModelExisted   ModelOutcome = "existed"
)

// ModelGenerator offers to generate a model class that does not exist yet.
type ModelGenerator interface {
	EnsureModel(ctx context.Context, class string) (ModelOutcome, error)
}

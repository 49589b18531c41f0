package interfaces

import "context"

// ITextGenerator abstracts the external text-generation service used by the
// analytics assistant. The model's output is only ever parsed into a
// constrained query plan; it is never executed.
type ITextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

package outbound

import "context"

// TextGeneratorPort is the boundary to the free-text generation
// collaborator. Complete blocks until the full completion for the
// prompt has been received.
type TextGeneratorPort interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

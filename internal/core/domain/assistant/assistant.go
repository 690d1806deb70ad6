package assistant

import (
	"context"
	"errors"
)

var ErrEmptyPrompt = errors.New("prompt must not be empty")

// TextGenerator is the generative-language API behind a narrow synchronous
// call contract. The dispatcher never depends on it.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

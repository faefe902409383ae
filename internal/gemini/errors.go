package gemini

import "fmt"

// EmbeddingError reports a failed embedding call. The caller decides
// whether to retry; this package never does.
type EmbeddingError struct {
	Err error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("gemini: embedding: %v", e.Err)
}

func (e *EmbeddingError) Unwrap() error { return e.Err }

// GenerationError reports a failed or malformed generation response,
// carrying the provider detail.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("gemini: generation: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

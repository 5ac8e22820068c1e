package engage

import "errors"

var (
	// ErrNilProvider indicates a nil AI provider was passed to NewScorer.
	ErrNilProvider = errors.New("ai provider is nil")

	// ErrEmptyDescription indicates scoring was requested without a product
	// description to compare against.
	ErrEmptyDescription = errors.New("description is empty")

	// ErrBatchMismatch indicates a provider returned a different number of
	// results than texts submitted.
	ErrBatchMismatch = errors.New("provider result count mismatch")
)

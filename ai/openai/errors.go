package openai

import "errors"

var (
	// ErrEmptyResponse is returned when the model produces no choices.
	ErrEmptyResponse = errors.New("model returned no choices")

	// ErrInvalidLabel is returned when the model produces a label outside the
	// allowed set and it cannot be normalized.
	ErrInvalidLabel = errors.New("model returned an invalid label")
)

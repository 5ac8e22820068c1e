package pipeline

import "errors"

var (
	// ErrSourceRequired is returned when a candidate source is not provided.
	ErrSourceRequired = errors.New("candidate source required")

	// ErrNilProfile is returned when Run is called without a profile.
	ErrNilProfile = errors.New("profile required")
)

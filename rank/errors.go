package rank

import "errors"

var (
	// ErrNoKeywords indicates a profile with no usable keywords in either
	// tier was passed to the scorer.
	ErrNoKeywords = errors.New("no usable keywords")
)

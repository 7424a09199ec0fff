package scoring

import "errors"

// Sentinel kinds for engine configuration errors.
var (
	ErrInvalidWeights = errors.New("lead score weights must sum to 1.0")
)

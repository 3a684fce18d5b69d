package model

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the kind shared by every InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports the first offending test result in a batch.
type InvalidInputError struct {
	Index  int    // position in the submitted batch
	Metric string // metric name as submitted, possibly empty
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Metric == "" {
		return fmt.Sprintf("invalid input: result %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid input: result %d (%q): %s", e.Index, e.Metric, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidInput) match.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

package recommend

import "errors"

// Sentinel kinds for engine errors. Invalid batches are reported with
// model.ErrInvalidInput.
var (
	ErrSportNotFound = errors.New("sport not found")
)

package catalogue

import "errors"

// Sentinel kinds for catalogue errors.
var (
	ErrEmptyCatalogue = errors.New("catalogue has no sports")
	ErrInvalidProfile = errors.New("invalid sport profile")
	ErrDuplicateSport = errors.New("duplicate sport id")
	ErrLoadCatalogue  = errors.New("load catalogue failed")
)

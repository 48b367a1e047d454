package model

import "errors"

// Sentinel kinds for record validation errors.
var (
	ErrInvalidTime = errors.New("invalid swim time")
)

package meetindex

import "errors"

// Sentinel kinds for meet lookup errors.
var (
	ErrEmptyInput  = errors.New("empty input")
	ErrUnknownMeet = errors.New("unknown meet")
)

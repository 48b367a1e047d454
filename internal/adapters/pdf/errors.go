package pdf

import "errors"

// Sentinel kinds for render errors.
var (
	ErrWrite = errors.New("pdf write failed")
)

package history

import "errors"

// Sentinel kinds for history construction errors.
var (
	ErrDuplicateSwim = errors.New("duplicate swim")
)

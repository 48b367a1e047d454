package layout

import "errors"

// Sentinel kinds for layout errors.
var (
	ErrBadGeometry = errors.New("bad sheet geometry")
)

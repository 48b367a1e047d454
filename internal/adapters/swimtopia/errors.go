package swimtopia

import "errors"

// Sentinel kinds for export parsing errors.
var (
	ErrUnreadable = errors.New("unreadable csv")
	ErrBadHeader  = errors.New("unexpected csv header")
	ErrBadRow     = errors.New("malformed csv row")
)

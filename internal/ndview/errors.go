package ndview

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "ndview: ". Methods wrap these sentinels with
// their own context, so callers match them with errors.Is.
var (
	// ErrSizeMismatch is returned when the requested extents need more elements
	// than the buffer provides.
	ErrSizeMismatch = errors.New("ndview: extents do not fit in buffer")

	// ErrOutOfRange indicates a coordinate or slice index outside the view.
	ErrOutOfRange = errors.New("ndview: index out of range")

	// ErrBadShape indicates a negative extent or an unusable buffer pointer.
	ErrBadShape = errors.New("ndview: invalid shape")
)

// viewErrorf wraps err with the name of the View method that failed.
func viewErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("View.%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

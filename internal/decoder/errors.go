package decoder

import "errors"

var (
	// ErrContactBlockNotFound is returned when profile page doesn't contain contacts container.
	// It usually means the page wasn't loaded correctly.
	ErrContactBlockNotFound = errors.New("contact block not found")
	// ErrMalformedRow is returned when listing row doesn't have enough cells.
	ErrMalformedRow = errors.New("malformed supplier row")
)

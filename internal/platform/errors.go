package platform

import (
	"errors"
)

// ErrNoCountries is an error returned when suppliers index page doesn't list any country.
var ErrNoCountries = errors.New("suppliers index page doesn't contain any country")

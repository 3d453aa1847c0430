package fetcher

import "errors"

var (
	// ErrStatusNotOK is returned when http response had status different than 200 OK.
	ErrStatusNotOK = errors.New("response status is not 200 OK")
	// ErrEmptyURL is returned when page url is empty.
	ErrEmptyURL = errors.New("page url is empty")
	// ErrEmptyDocument is returned when fetch result contains neither document nor error.
	ErrEmptyDocument = errors.New("fetch result doesn't contain document")
)

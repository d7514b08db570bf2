package swgohgg

import (
	"fmt"
)

// FetchError is returned when the report page could not be retrieved,
// either because the request failed or because the server answered with a
// non-success status.
type FetchError struct {
	Url        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s", e.Url, e.Err.Error())
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.Url, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a fetched page is not a readable document.
type ParseError struct {
	Url string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Url, e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

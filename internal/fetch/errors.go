package fetch

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL indicates a URL that is missing or not http(s).
	ErrInvalidURL = errors.New("invalid url")

	// ErrUnsupportedType indicates a nominal content type outside the
	// image/video families the taxonomy uses.
	ErrUnsupportedType = errors.New("unsupported media type")
)

// StatusError is a non-2xx upstream response. The code is propagated so
// callers can surface the upstream status.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned %s", e.Status)
}

// TypeMismatchError indicates the fetched content type is not acceptable
// for the target media slot.
type TypeMismatchError struct {
	Nominal string
	Actual  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("content type %q not acceptable for %q slot", e.Actual, e.Nominal)
}

package hackernews

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidCount is returned when a negative story count is requested.
	ErrInvalidCount = errors.New("count must be non-negative")
	// ErrUnknownCategory is returned for a category other than top or new.
	ErrUnknownCategory = errors.New("unknown story category")
)

// StatusError describes a non-2xx response from the API.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned unexpected status code: %d", e.URL, e.StatusCode)
}

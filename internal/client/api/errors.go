package api

import (
	"fmt"

	"github.com/skillswap/skillswap-cli/internal/common"
)

// APIError is a non-2xx backend response. It wraps the coarse sentinel for
// its status class so callers can match with errors.Is, and carries the
// server-supplied message and field-level validation messages verbatim when
// present.
type APIError struct {
	Status      int
	Message     string
	FieldErrors map[string][]string

	sentinel error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

func (e *APIError) Unwrap() error { return e.sentinel }

// sentinelFor maps an HTTP status to the coarse error taxonomy.
func sentinelFor(status int) error {
	switch {
	case status == 400:
		return common.ErrValidation
	case status == 401:
		return common.ErrUnauthorized
	case status == 403:
		return common.ErrForbidden
	case status == 404:
		return common.ErrNotFound
	case status == 409:
		return common.ErrConflict
	case status >= 500:
		return common.ErrServerFault
	default:
		return common.ErrServerFault
	}
}

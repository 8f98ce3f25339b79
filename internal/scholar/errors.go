// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for the profile service. These exist for caller
// ergonomics only; the client performs no recovery beyond the transport's
// 429 backoff, and everything else propagates unchanged.
var (
	// ErrNotFound indicates an unknown author or publication identifier.
	ErrNotFound = errors.New("scholar record not found")

	// ErrNetwork indicates a connectivity problem reaching the service.
	ErrNetwork = errors.New("scholar network error")

	// ErrInvalidResponse indicates a response that could not be parsed.
	ErrInvalidResponse = errors.New("invalid scholar response")
)

// APIError is a non-404 HTTP failure from the profile service.
type APIError struct {
	StatusCode int
	Path       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scholar API returned HTTP %d for %s", e.StatusCode, e.Path)
}

// IsNotFound reports whether err indicates an unknown identifier.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

package proxy

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredential = errors.New("API key not configured")
	ErrBadRequest        = errors.New("URL is required")
	ErrUpstreamRejected  = errors.New("upstream rejected request")
	ErrTransportFailure  = errors.New("upstream transport failure")
)

// UpstreamError is a non-2xx answer from the scoring API.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream status %d", e.Status)
	}
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstreamRejected
}

package services

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned when no API key is available from any
// configured credential store.
var ErrMissingCredential = errors.New("no API key available")

// NetworkError wraps a transport failure or non-2xx status from the
// generation API.
type NetworkError struct {
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generation API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("generation API unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ValidationError indicates the generation API answered but the content is
// unusable: too short, missing required sections, or not parseable as JSON.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid AI response: " + e.Reason
}

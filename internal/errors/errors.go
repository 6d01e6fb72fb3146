// Package errors defines the error types shared across the bookhunt
// provider clients and the merge engine.
package errors

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when a provider that requires credentials
// is constructed without them. This is a configuration defect and should
// abort startup, unlike per-request provider failures.
var ErrMissingAPIKey = errors.New("missing API key")

// ProviderError wraps a failure from a single metadata provider. The merge
// engine recovers from these per-source; they never abort a whole query.
type ProviderError struct {
	Source string
	Err    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Source, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError wraps err with the provider name.
func NewProviderError(source string, err error) *ProviderError {
	return &ProviderError{Source: source, Err: err}
}

// IsProviderError reports whether err is a ProviderError (even when wrapped).
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

// RateLimitError indicates a provider returned HTTP 429.
type RateLimitError struct {
	Source string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limit exceeded", e.Source)
}

// NewRateLimitError creates a RateLimitError for the named provider.
func NewRateLimitError(source string) *RateLimitError {
	return &RateLimitError{Source: source}
}

// IsRateLimitError reports whether err is a RateLimitError (even when wrapped).
func IsRateLimitError(err error) bool {
	var rle *RateLimitError
	return errors.As(err, &rle)
}

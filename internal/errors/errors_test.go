package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProviderErrorWrapping(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewProviderError("openlibrary", cause)

	require.EqualError(t, err, "openlibrary provider: connection refused")
	require.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("search: %w", err)
	require.True(t, IsProviderError(wrapped))
	require.False(t, IsProviderError(cause))
}

func TestRateLimitError(t *testing.T) {
	err := NewRateLimitError("hardcover")
	require.EqualError(t, err, "hardcover rate limit exceeded")

	wrapped := fmt.Errorf("fetch: %w", err)
	require.True(t, IsRateLimitError(wrapped))
	require.False(t, IsRateLimitError(stderrors.New("other")))
}

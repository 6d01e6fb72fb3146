package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewClampsRate(t *testing.T) {
	l := New("test", 0)
	require.True(t, l.Allow(), "a zero rate must still allow the first request")
}

func TestForProviderKnownRates(t *testing.T) {
	require.Equal(t, "openlibrary", ForProvider("openlibrary").Name())
	require.Equal(t, "nonsense", ForProvider("nonsense").Name())
}

func TestWaitRespectsContext(t *testing.T) {
	l := New("test", 1)
	// Drain the bucket so the next Wait has to block.
	require.NoError(t, l.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := l.Wait(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "rate limit wait for test")
}

func TestAllowAfterBurst(t *testing.T) {
	l := New("test", 2)
	require.True(t, l.Allow())
	require.True(t, l.Allow())
	require.False(t, l.Allow())
}

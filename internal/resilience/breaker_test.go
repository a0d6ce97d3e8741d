package resilience

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestBreakerStaysClosedOnSuccess(t *testing.T) {
	b := New("test", Settings{FailureThreshold: 3, Cooldown: time.Minute})

	for i := 0; i < 10; i++ {
		require.NoError(t, b.Do(func() error { return nil }))
	}
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	b := New("test", Settings{FailureThreshold: 3, Cooldown: time.Minute})

	for i := 0; i < 3; i++ {
		assert.Equal(t, errBoom, b.Do(func() error { return errBoom }))
	}
	assert.Equal(t, StateOpen, b.State())

	err := b.Do(func() error { return nil })
	assert.Equal(t, ErrOpen, err)
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	b := New("test", Settings{FailureThreshold: 3, Cooldown: time.Minute})

	b.Do(func() error { return errBoom })
	b.Do(func() error { return errBoom })
	require.NoError(t, b.Do(func() error { return nil }))
	b.Do(func() error { return errBoom })
	b.Do(func() error { return errBoom })

	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerHalfOpenProbe(t *testing.T) {
	b := New("test", Settings{FailureThreshold: 1, Cooldown: 10 * time.Millisecond})

	b.Do(func() error { return errBoom })
	assert.Equal(t, StateOpen, b.State())

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, StateHalfOpen, b.State())

	// Successful probe closes the breaker.
	require.NoError(t, b.Do(func() error { return nil }))
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerFailedProbeReopens(t *testing.T) {
	b := New("test", Settings{FailureThreshold: 1, Cooldown: 10 * time.Millisecond})

	b.Do(func() error { return errBoom })
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, errBoom, b.Do(func() error { return errBoom }))
	assert.Equal(t, StateOpen, b.State())
}

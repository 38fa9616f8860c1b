package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream failed")

func testConfig() Config {
	return Config{
		FailureThreshold:    2,
		SuccessThreshold:    1,
		Timeout:             10 * time.Millisecond,
		HalfOpenMaxRequests: 1,
	}
}

// trip drives the breaker into the open state.
func trip(t *testing.T, cb *CircuitBreaker) {
	t.Helper()
	for i := 0; i < 2; i++ {
		err := cb.Execute(func() error { return errUpstream })
		require.ErrorIs(t, err, errUpstream)
	}
	err := cb.Execute(func() error { return nil })
	require.ErrorIs(t, err, ErrOpen)
	require.Equal(t, StateOpen, cb.GetState())
}

func TestClosedPassesThrough(t *testing.T) {
	cb := New(testConfig())

	err := cb.Execute(func() error { return nil })
	require.NoError(t, err)
	assert.Equal(t, StateClosed, cb.GetState())
}

func TestOpensAfterConsecutiveFailures(t *testing.T) {
	cb := New(testConfig())
	trip(t, cb)

	// Calls keep short-circuiting while open.
	err := cb.Execute(func() error { return nil })
	assert.ErrorIs(t, err, ErrOpen)
}

func TestHalfOpenClosesAfterSuccess(t *testing.T) {
	cb := New(testConfig())
	trip(t, cb)

	time.Sleep(20 * time.Millisecond)

	// First call after the timeout is the probe.
	err := cb.Execute(func() error { return nil })
	require.NoError(t, err)

	// The successful probe closes the breaker for the following call.
	err = cb.Execute(func() error { return nil })
	require.NoError(t, err)
	assert.Equal(t, StateClosed, cb.GetState())
}

func TestHalfOpenReopensOnFailure(t *testing.T) {
	cb := New(testConfig())
	trip(t, cb)

	time.Sleep(20 * time.Millisecond)

	err := cb.Execute(func() error { return errUpstream })
	assert.ErrorIs(t, err, errUpstream)
	assert.Equal(t, StateOpen, cb.GetState())

	err = cb.Execute(func() error { return nil })
	assert.ErrorIs(t, err, ErrOpen)
}

func TestSuccessResetsFailureCount(t *testing.T) {
	cb := New(testConfig())

	_ = cb.Execute(func() error { return errUpstream })
	_ = cb.Execute(func() error { return nil })
	_ = cb.Execute(func() error { return errUpstream })

	// The run of failures never reached the threshold.
	err := cb.Execute(func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.GetState())
}

func TestReset(t *testing.T) {
	cb := New(testConfig())
	trip(t, cb)

	cb.Reset()
	assert.Equal(t, StateClosed, cb.GetState())
	assert.NoError(t, cb.Execute(func() error { return nil }))
}

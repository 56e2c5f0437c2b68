package api

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/smuggler-go/internal/domain/shared"
)

var errBoom = errors.New("boom")

func failing() error { return errBoom }

func succeeding() error { return nil }

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	clock := shared.NewMockClock(time.Time{})
	cb := NewCircuitBreaker(3, time.Minute, clock)

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Call(failing), errBoom)
	}

	assert.Equal(t, CircuitOpen, cb.State())
	calls := 0
	err := cb.Call(func() error { calls++; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Zero(t, calls)
}

func TestCircuitBreaker_HalfOpenProbe(t *testing.T) {
	clock := shared.NewMockClock(time.Time{})
	cb := NewCircuitBreaker(1, time.Minute, clock)
	var transitions []string
	cb.OnStateChange(func(from, to CircuitState) {
		transitions = append(transitions, from.String()+"->"+to.String())
	})

	_ = cb.Call(failing)
	clock.Advance(time.Minute)

	assert.NoError(t, cb.Call(succeeding))
	assert.Equal(t, CircuitClosed, cb.State())
	assert.Equal(t, []string{"closed->open", "open->half_open", "half_open->closed"}, transitions)
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	clock := shared.NewMockClock(time.Time{})
	cb := NewCircuitBreaker(2, 30*time.Second, clock)

	_ = cb.Call(failing)
	_ = cb.Call(failing)
	clock.Advance(30 * time.Second)

	assert.ErrorIs(t, cb.Call(failing), errBoom)
	assert.Equal(t, CircuitOpen, cb.State())

	clock.Advance(10 * time.Second)
	assert.ErrorIs(t, cb.Call(succeeding), ErrCircuitOpen)
}

func TestCircuitBreaker_SuccessResetsCount(t *testing.T) {
	cb := NewCircuitBreaker(3, time.Minute, shared.NewMockClock(time.Time{}))

	_ = cb.Call(failing)
	_ = cb.Call(failing)
	assert.Equal(t, 2, cb.FailureCount())

	assert.NoError(t, cb.Call(succeeding))
	assert.Zero(t, cb.FailureCount())
	assert.Equal(t, CircuitClosed, cb.State())
}

func TestCircuitBreaker_DisabledWhenMaxFailuresZero(t *testing.T) {
	cb := NewCircuitBreaker(0, time.Minute, shared.NewMockClock(time.Time{}))

	for i := 0; i < 10; i++ {
		_ = cb.Call(failing)
	}

	assert.Equal(t, CircuitClosed, cb.State())
}

func TestCircuitBreaker_Reset(t *testing.T) {
	cb := NewCircuitBreaker(1, time.Hour, shared.NewMockClock(time.Time{}))
	_ = cb.Call(failing)

	cb.Reset()

	assert.Equal(t, CircuitClosed, cb.State())
	assert.NoError(t, cb.Call(succeeding))
}

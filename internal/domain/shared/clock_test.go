package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/smuggler-go/internal/domain/shared"
)

func TestMockClock_AdvanceAndSet(t *testing.T) {
	start := time.Date(2955, time.March, 3, 8, 0, 0, 0, time.UTC)
	clock := shared.NewMockClock(start)

	assert.Equal(t, start, clock.Now())

	clock.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), clock.Now())

	pinned := start.Add(24 * time.Hour)
	clock.SetTime(pinned)
	assert.Equal(t, pinned, clock.Now())
}

func TestMockClock_ZeroStartUsesReferenceInstant(t *testing.T) {
	clock := shared.NewMockClock(time.Time{})
	assert.False(t, clock.Now().IsZero())
}

func TestRealClock_ReturnsUTC(t *testing.T) {
	now := shared.NewRealClock().Now()
	assert.Equal(t, time.UTC, now.Location())
}

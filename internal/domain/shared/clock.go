package shared

import (
	"sync"
	"time"
)

// Clock abstracts time so cache expiry and breaker cool-downs can be driven from tests
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

// Now returns the current system time in UTC
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// NewRealClock creates a RealClock instance
func NewRealClock() Clock {
	return RealClock{}
}

// MockClock is a manually advanced clock for tests
type MockClock struct {
	mu      sync.Mutex
	current time.Time
}

// NewMockClock creates a MockClock starting at the given time.
// A zero start time is replaced with a fixed reference instant.
func NewMockClock(start time.Time) *MockClock {
	if start.IsZero() {
		start = time.Date(2955, time.January, 1, 12, 0, 0, 0, time.UTC)
	}
	return &MockClock{current: start}
}

// Now returns the mock's current time
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Advance moves the mock clock forward
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// SetTime pins the mock clock to t
func (m *MockClock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

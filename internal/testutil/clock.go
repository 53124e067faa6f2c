package testutil

import (
	"sync"
	"time"
)

// FrozenClock implements clock.Clock with a settable current time so
// generation runs are deterministic in tests
type FrozenClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFrozenClock creates a clock frozen at the given instant
func NewFrozenClock(now time.Time) *FrozenClock {
	return &FrozenClock{now: now.UTC()}
}

func (c *FrozenClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the frozen clock to the given instant
func (c *FrozenClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now.UTC()
}

// Advance moves the frozen clock forward by d
func (c *FrozenClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

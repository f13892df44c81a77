package testutil

import (
	"sync"
	"time"

	"github.com/roach88/gfxdiag/internal/clock"
)

// FakeClock is a manually advanced clock.Clock for tests.
//
// Unlike clock.Monotonic, FakeClock only moves when told to, so elapsed-time
// assertions are exact. It can be reset for test reuse.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type FakeClock struct {
	mu   sync.Mutex
	now  clock.TimePoint
	freq clock.Frequency
}

// NewFakeClock creates a fake clock at tick 0 with the given frequency.
// A non-positive frequency defaults to one tick per nanosecond.
func NewFakeClock(freq clock.Frequency) *FakeClock {
	if freq <= 0 {
		freq = clock.Frequency(time.Second)
	}
	return &FakeClock{freq: freq}
}

// Now returns the current tick.
func (c *FakeClock) Now() clock.TimePoint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Frequency returns the fixed frequency.
func (c *FakeClock) Frequency() clock.Frequency {
	return c.freq
}

// Tick advances the clock by n ticks and returns the new time.
// Negative n is ignored: the clock never moves backwards.
func (c *FakeClock) Tick(n int64) clock.TimePoint {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n > 0 {
		c.now += clock.TimePoint(n)
	}
	return c.now
}

// Advance moves the clock forward by d, rounded down to whole ticks.
func (c *FakeClock) Advance(d time.Duration) clock.TimePoint {
	return c.Tick(int64(d) * int64(c.freq) / int64(time.Second))
}

// Reset moves the clock back to tick 0.
func (c *FakeClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = 0
}

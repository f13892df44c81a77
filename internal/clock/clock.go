package clock

import "time"

// TimePoint is an opaque monotonic tick count.
// The unit is defined by the Frequency of the clock that produced it.
type TimePoint int64

// Frequency is the number of ticks per second for a clock's time domain.
type Frequency int64

// Clock exposes monotonic current-time and tick-frequency queries.
type Clock interface {
	// Now returns the current tick count. Successive calls never decrease.
	Now() TimePoint

	// Frequency returns the fixed ticks-per-second constant.
	Frequency() Frequency
}

// Monotonic is the process clock backed by the platform's high-resolution
// counter.
//
// Thread-safety: Monotonic is stateless and safe for concurrent use.
type Monotonic struct{}

// New returns the process clock.
func New() Monotonic {
	return Monotonic{}
}

// Now returns the current platform tick count.
func (Monotonic) Now() TimePoint {
	return TimePoint(readTicks())
}

// Frequency returns the platform tick frequency. It is read once at startup
// and never changes afterwards.
func (Monotonic) Frequency() Frequency {
	return Frequency(tickFrequency)
}

// Seconds converts the delta between two TimePoints into seconds.
// Returns 0 for a non-positive frequency.
func Seconds(t0, t1 TimePoint, f Frequency) float64 {
	if f <= 0 {
		return 0
	}
	return float64(t1-t0) / float64(f)
}

// Elapsed converts the delta between two TimePoints into a time.Duration.
//
// The whole-second and remainder parts are scaled separately so large deltas
// at high frequencies do not overflow int64.
func Elapsed(t0, t1 TimePoint, f Frequency) time.Duration {
	if f <= 0 {
		return 0
	}
	delta := int64(t1 - t0)
	whole := delta / int64(f)
	rem := delta % int64(f)
	return time.Duration(whole)*time.Second + time.Duration(rem*int64(time.Second)/int64(f))
}

// Since returns the time elapsed on c since t0.
func Since(c Clock, t0 TimePoint) time.Duration {
	return Elapsed(t0, c.Now(), c.Frequency())
}

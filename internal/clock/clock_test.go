package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonotonic_NowNonDecreasing(t *testing.T) {
	c := New()

	prev := c.Now()
	for i := 0; i < 10000; i++ {
		next := c.Now()
		require.GreaterOrEqual(t, int64(next), int64(prev), "Now went backwards at iteration %d", i)
		prev = next
	}
}

func TestMonotonic_FrequencyConstant(t *testing.T) {
	c := New()
	f := c.Frequency()

	assert.Positive(t, int64(f))
	for i := 0; i < 100; i++ {
		assert.Equal(t, f, c.Frequency())
	}
	assert.Equal(t, f, New().Frequency(), "separate clock values share the process frequency")
}

func TestMonotonic_MeasuresSleep(t *testing.T) {
	c := New()

	t0 := c.Now()
	time.Sleep(10 * time.Millisecond)
	t1 := c.Now()

	assert.GreaterOrEqual(t, Seconds(t0, t1, c.Frequency()), 0.009)
	assert.GreaterOrEqual(t, Elapsed(t0, t1, c.Frequency()), 9*time.Millisecond)
}

func TestMonotonic_ConcurrentReads(t *testing.T) {
	c := New()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prev := c.Now()
			for j := 0; j < 1000; j++ {
				next := c.Now()
				assert.GreaterOrEqual(t, int64(next), int64(prev))
				prev = next
			}
		}()
	}
	wg.Wait()
}

func TestSeconds(t *testing.T) {
	tests := []struct {
		name   string
		t0, t1 TimePoint
		freq   Frequency
		want   float64
	}{
		{"one second at 1kHz", 0, 1000, 1000, 1.0},
		{"half second", 500, 1000, 1000, 0.5},
		{"nanosecond domain", 0, 2_500_000_000, 1_000_000_000, 2.5},
		{"negative delta", 1000, 0, 1000, -1.0},
		{"zero frequency", 0, 1000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Seconds(tt.t0, tt.t1, tt.freq), 1e-12)
		})
	}
}

func TestElapsed(t *testing.T) {
	tests := []struct {
		name   string
		t0, t1 TimePoint
		freq   Frequency
		want   time.Duration
	}{
		{"qpc 10MHz", 0, 10_000_000, 10_000_000, time.Second},
		{"qpc sub-second", 0, 12_345, 10_000_000, 1234500 * time.Nanosecond},
		{"nanoseconds", 100, 350, 1_000_000_000, 250 * time.Nanosecond},
		{"large delta", 0, TimePoint(100_000 * 10_000_000), 10_000_000, 100_000 * time.Second},
		{"zero frequency", 0, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Elapsed(tt.t0, tt.t1, tt.freq))
		})
	}
}

type stepClock struct {
	now  TimePoint
	freq Frequency
}

func (c *stepClock) Now() TimePoint       { return c.now }
func (c *stepClock) Frequency() Frequency { return c.freq }

func TestSince(t *testing.T) {
	c := &stepClock{now: 3000, freq: 1000}
	assert.Equal(t, 2*time.Second, Since(c, 1000))
}

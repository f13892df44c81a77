// Package clock provides the high-resolution time source used by sample
// applications and the logical sequence used to order journal entries.
//
// Two kinds of time live here:
//
// Monotonic ticks (Clock):
// Now returns an opaque TimePoint and Frequency returns how many ticks make
// one second. TimePoints are only meaningful within a single process run and
// only as differences: deltaSeconds = (t1 - t0) / Frequency().
// On Windows the ticks come from QueryPerformanceCounter; elsewhere they are
// nanoseconds on Go's monotonic clock, measured from a process-wide epoch.
//
// Logical sequence (Sequence):
// A strictly increasing counter. Journal channels use it to number a
// session's entries, so entries written in the same tick still have a
// total order within that session.
package clock

// Package journal provides a SQLite-backed log of delivered diagnostic
// events.
//
// The journal is an optional sink channel: every event the sink renders is
// appended as one row carrying the rendered line, the raw severity/origin
// values, the producing session, and the monotonic tick at which it arrived.
//
// # Ordering
//
//   - Rows are keyed by seq, assigned by SQLite on insert. Several
//     processes may append to one journal file concurrently.
//   - Each row also carries an ordinal, its position within its session.
//   - All queries use ORDER BY seq ASC. Ticks are informational only and are
//     not comparable across sessions.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
package journal

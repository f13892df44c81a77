package journal

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/roach88/gfxdiag/internal/clock"
	"github.com/roach88/gfxdiag/internal/diag"
)

// Entry is one journaled event.
type Entry struct {
	Seq       int64           `json:"seq"`
	SessionID string          `json:"session_id"`
	Ordinal   int64           `json:"ordinal"`
	Tick      clock.TimePoint `json:"tick"`
	Frequency clock.Frequency `json:"frequency"`
	Severity  diag.Severity   `json:"severity"`
	Origin    diag.Origin     `json:"origin"`
	Text      string          `json:"text"`
	Line      string          `json:"line"`
}

// Event returns the diagnostic event stored in e.
func (e Entry) Event() diag.Event {
	return diag.Event{Severity: e.Severity, Origin: e.Origin, Text: e.Text}
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	SessionID string
	Severity  *diag.Severity
	AfterSeq  int64
	Limit     int
}

// Append writes e and returns the seq the database assigned to it.
// e.Seq is ignored.
func (s *Store) Append(ctx context.Context, e Entry) (int64, error) {
	var seq int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO entries (session_id, ordinal, tick, frequency, severity, origin, text, line)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING seq
	`, e.SessionID, e.Ordinal, int64(e.Tick), int64(e.Frequency), int(e.Severity), int(e.Origin), e.Text, e.Line).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("append entry session=%s ordinal=%d: %w", e.SessionID, e.Ordinal, err)
	}
	return seq, nil
}

// List returns entries matching f in seq order.
func (s *Store) List(ctx context.Context, f Filter) ([]Entry, error) {
	var (
		where []string
		args  []any
	)
	if f.SessionID != "" {
		where = append(where, "session_id = ?")
		args = append(args, f.SessionID)
	}
	if f.Severity != nil {
		where = append(where, "severity = ?")
		args = append(args, int(*f.Severity))
	}
	if f.AfterSeq > 0 {
		where = append(where, "seq > ?")
		args = append(args, f.AfterSeq)
	}

	query := "SELECT seq, session_id, ordinal, tick, frequency, severity, origin, text, line FROM entries"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY seq ASC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

func scanEntry(rows *sql.Rows) (Entry, error) {
	var (
		e                Entry
		tick, freq       int64
		severity, origin int
	)
	if err := rows.Scan(&e.Seq, &e.SessionID, &e.Ordinal, &tick, &freq, &severity, &origin, &e.Text, &e.Line); err != nil {
		return Entry{}, fmt.Errorf("scan entry: %w", err)
	}
	e.Tick = clock.TimePoint(tick)
	e.Frequency = clock.Frequency(freq)
	e.Severity = diag.Severity(severity)
	e.Origin = diag.Origin(origin)
	return e, nil
}

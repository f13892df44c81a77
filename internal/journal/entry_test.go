package journal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gfxdiag/internal/clock"
	"github.com/roach88/gfxdiag/internal/diag"
)

func seedEntries(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	events := []struct {
		session string
		event   diag.Event
	}{
		{"a", diag.Event{Severity: diag.SeverityInfo, Origin: diag.OriginLayer, Text: "frame submitted"}},
		{"a", diag.Event{Severity: diag.SeverityError, Origin: diag.OriginDriver, Text: "device lost"}},
		{"b", diag.Event{Severity: diag.SeverityWarning, Origin: diag.OriginSubsystem, Text: "slow path"}},
		{"b", diag.Event{Severity: diag.SeverityError, Origin: diag.OriginDriver, Text: "timeout"}},
	}
	for i, ev := range events {
		r := diag.Render(ev.event)
		_, err := s.Append(ctx, Entry{
			SessionID: ev.session,
			Ordinal:   int64(i%2 + 1),
			Tick:      clock.TimePoint(100 * (i + 1)),
			Frequency: 1000,
			Severity:  ev.event.Severity,
			Origin:    ev.event.Origin,
			Text:      ev.event.Text,
			Line:      r.Line(),
		})
		require.NoError(t, err)
	}
}

func TestAppend_AssignsSeq(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	first, err := s.Append(ctx, Entry{SessionID: "s", Text: "a", Line: "a\n"})
	require.NoError(t, err)
	second, err := s.Append(ctx, Entry{Seq: first, SessionID: "s", Text: "b", Line: "b\n"})
	require.NoError(t, err, "a caller-supplied seq is ignored")

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}

func TestAppend_ClosedStore(t *testing.T) {
	s := createTestStore(t)
	require.NoError(t, s.Close())

	_, err := s.Append(context.Background(), Entry{SessionID: "s", Ordinal: 3, Text: "a", Line: "a\n"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session=s ordinal=3")
}

func TestList_All(t *testing.T) {
	s := createTestStore(t)
	seedEntries(t, s)

	entries, err := s.List(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 4)

	for i, e := range entries {
		assert.Equal(t, int64(i+1), e.Seq, "entries come back in seq order")
	}
	assert.Equal(t, "[Driver]: ERROR: device lost\n", entries[1].Line)
	assert.Equal(t, diag.Event{Severity: diag.SeverityError, Origin: diag.OriginDriver, Text: "device lost"}, entries[1].Event())
	assert.Equal(t, int64(200), int64(entries[1].Tick))
	assert.Equal(t, int64(1000), int64(entries[1].Frequency))
	assert.Equal(t, int64(2), entries[1].Ordinal)
}

func TestList_Filters(t *testing.T) {
	s := createTestStore(t)
	seedEntries(t, s)
	ctx := context.Background()
	errSeverity := diag.SeverityError

	tests := []struct {
		name    string
		filter  Filter
		wantSeq []int64
	}{
		{"by session", Filter{SessionID: "b"}, []int64{3, 4}},
		{"by severity", Filter{Severity: &errSeverity}, []int64{2, 4}},
		{"session and severity", Filter{SessionID: "a", Severity: &errSeverity}, []int64{2}},
		{"after seq", Filter{AfterSeq: 2}, []int64{3, 4}},
		{"limit", Filter{Limit: 3}, []int64{1, 2, 3}},
		{"no match", Filter{SessionID: "zzz"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := s.List(ctx, tt.filter)
			require.NoError(t, err)

			var got []int64
			for _, e := range entries {
				got = append(got, e.Seq)
			}
			assert.Equal(t, tt.wantSeq, got)
		})
	}
}

func TestCount(t *testing.T) {
	s := createTestStore(t)
	seedEntries(t, s)

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

package journal

import (
	"context"

	"github.com/roach88/gfxdiag/internal/clock"
	"github.com/roach88/gfxdiag/internal/diag"
)

// Channel is a diag.Channel that appends every rendered event to a Store.
//
// Thread-safety: Write is safe for concurrent use. Ordinals come from an
// atomic sequence and SQLite assigns seq, so several channels may share one
// journal file.
type Channel struct {
	store     *Store
	seq       *clock.Sequence
	clk       clock.Clock
	sessionID string
}

// NewChannel creates a journal channel for one session. Ordinals start at 1.
func NewChannel(store *Store, clk clock.Clock, sessionID string) *Channel {
	return &Channel{
		store:     store,
		seq:       clock.NewSequence(),
		clk:       clk,
		sessionID: sessionID,
	}
}

// Write implements diag.Channel.
func (c *Channel) Write(r diag.Rendered) error {
	_, err := c.store.Append(context.Background(), Entry{
		SessionID: c.sessionID,
		Ordinal:   c.seq.Next(),
		Tick:      c.clk.Now(),
		Frequency: c.clk.Frequency(),
		Severity:  r.Event.Severity,
		Origin:    r.Event.Origin,
		Text:      r.Text,
		Line:      r.Line(),
	})
	return err
}

// Name identifies the channel in sink logs.
func (c *Channel) Name() string { return "journal" }

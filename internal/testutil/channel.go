package testutil

import (
	"strings"
	"sync"

	"github.com/roach88/gfxdiag/internal/diag"
)

// RecordingChannel is a diag.Channel that remembers everything written to it.
//
// Set Err to make every write fail after recording, which simulates an
// unavailable secondary channel.
type RecordingChannel struct {
	mu       sync.Mutex
	rendered []diag.Rendered
	Err      error
}

// NewRecordingChannel creates an empty recording channel.
func NewRecordingChannel() *RecordingChannel {
	return &RecordingChannel{}
}

// Write implements diag.Channel.
func (c *RecordingChannel) Write(r diag.Rendered) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rendered = append(c.rendered, r)
	return c.Err
}

// Name identifies the channel in sink logs.
func (c *RecordingChannel) Name() string { return "recording" }

// Events returns the events received, in order.
func (c *RecordingChannel) Events() []diag.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]diag.Event, len(c.rendered))
	for i, r := range c.rendered {
		out[i] = r.Event
	}
	return out
}

// Lines returns the rendered console lines, in order.
func (c *RecordingChannel) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.rendered))
	for i, r := range c.rendered {
		out[i] = r.Line()
	}
	return out
}

// Output returns all rendered lines concatenated.
func (c *RecordingChannel) Output() string {
	return strings.Join(c.Lines(), "")
}

// Reset discards everything recorded so far.
func (c *RecordingChannel) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rendered = nil
}

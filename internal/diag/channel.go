package diag

import (
	"io"
)

// Channel is a destination for rendered diagnostic output.
//
// Write receives one event split into fragments. Implementations decide how
// to lay the fragments out: the console writes a single line, the platform
// debug stream writes each fragment separately.
type Channel interface {
	Write(r Rendered) error
}

// ConsoleChannel writes one line per event to an io.Writer.
type ConsoleChannel struct {
	w io.Writer
}

// NewConsoleChannel creates a console channel writing to w.
func NewConsoleChannel(w io.Writer) *ConsoleChannel {
	return &ConsoleChannel{w: w}
}

// Write writes origin prefix, severity prefix, text and newline in a single
// call so a line-buffered stream flushes it whole.
func (c *ConsoleChannel) Write(r Rendered) error {
	_, err := io.WriteString(c.w, r.Line())
	return err
}

// NopChannel discards everything. It stands in for a channel the platform
// does not provide.
type NopChannel struct{}

// Write implements Channel.
func (NopChannel) Write(Rendered) error { return nil }

// ChannelFunc adapts a function to the Channel interface.
type ChannelFunc func(r Rendered) error

// Write implements Channel.
func (f ChannelFunc) Write(r Rendered) error { return f(r) }

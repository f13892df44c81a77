package diag

import "fmt"

// DebugChannel writes to a wide-character platform debug stream.
//
// Each event becomes four writes: origin prefix, severity prefix, text, and
// a newline. Every fragment is converted with EncodeWide and NUL-terminated
// before it reaches the stream. An empty fragment, such as the severity
// prefix of an unknown severity, is still written as a lone NUL.
type DebugChannel struct {
	output func(s []uint16)
}

// newDebugChannel creates a debug channel over an output function that
// receives NUL-terminated UTF-16 strings.
func newDebugChannel(output func(s []uint16)) *DebugChannel {
	return &DebugChannel{output: output}
}

// Write implements Channel.
func (c *DebugChannel) Write(r Rendered) error {
	for _, fragment := range [...]string{r.OriginPrefix, r.SeverityPrefix, r.Text, "\n"} {
		wide, err := EncodeWide(fragment)
		if err != nil {
			return fmt.Errorf("debug channel: %w", err)
		}
		c.output(append(wide, 0))
	}
	return nil
}

// PlatformDebugChannel returns the host's debug output channel.
// The boolean is false when the platform has no such channel, in which case
// the returned channel is a NopChannel.
func PlatformDebugChannel() (Channel, bool) {
	output, ok := platformDebugOutput()
	if !ok {
		return NopChannel{}, false
	}
	return newDebugChannel(output), true
}

// Package diag renders driver/runtime diagnostic messages.
//
// A producer (graphics layer, subsystem, or driver) holds a Callback and
// calls HandleMessage for every message it generates. Sink is the Callback
// implementation: it maps the event's severity and origin to display
// prefixes and writes the rendered line to each of its channels.
//
// # Rendering
//
//	[Driver]: ERROR: device lost\n
//	^origin   ^severity ^text
//
// Unknown severities render with no prefix. Unknown origins render with the
// "[GraphicsLayer]: " default, the same label used for layer and subsystem
// messages.
//
// # Channels
//
// The primary channel is the console and is assumed always writable. Any
// other channel (platform debug stream, journal) is best-effort: a failed
// write is logged at debug level and otherwise ignored. HandleMessage never
// returns an error and never panics on bad input.
//
// # Concurrency
//
// HandleMessage may be called from any goroutine. Writes for one event are
// performed under the sink's lock, so lines from concurrent producers never
// interleave on a channel.
package diag

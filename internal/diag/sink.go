package diag

import (
	"log/slog"
	"sync"
)

// Callback receives diagnostic messages from a producer.
// The producer never consults a result.
type Callback interface {
	HandleMessage(e Event)
}

// CallbackFunc adapts a function to the Callback interface.
type CallbackFunc func(e Event)

// HandleMessage implements Callback.
func (f CallbackFunc) HandleMessage(e Event) { f(e) }

// Producer is anything that emits diagnostic messages through a registered
// callback, typically a graphics device or runtime.
type Producer interface {
	SetDebugCallback(cb Callback)
}

// Sink renders diagnostic events to a primary channel and any number of
// best-effort secondary channels.
//
// Thread-safety: HandleMessage is safe for concurrent use. All channel writes
// for one event happen under a single lock.
type Sink struct {
	mu        sync.Mutex
	primary   Channel
	secondary []Channel
	normalize bool
	logger    *slog.Logger
}

// Option configures a Sink.
type Option func(*Sink)

// WithChannel adds a best-effort secondary channel.
// A nil channel is ignored.
func WithChannel(c Channel) Option {
	return func(s *Sink) {
		if c != nil {
			s.secondary = append(s.secondary, c)
		}
	}
}

// WithLogger sets the logger used to report failed channel writes.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sink) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithNormalization NFC-normalizes event text before it is rendered.
func WithNormalization(enabled bool) Option {
	return func(s *Sink) {
		s.normalize = enabled
	}
}

// NewSink creates a sink writing to primary. A nil primary is replaced with
// a NopChannel.
func NewSink(primary Channel, opts ...Option) *Sink {
	if primary == nil {
		primary = NopChannel{}
	}
	s := &Sink{
		primary: primary,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandleMessage renders e and writes it to every channel.
//
// The primary channel gets origin prefix + severity prefix + text + newline.
// Secondary channels get the same fragments in their own layout. Write
// failures are logged and dropped; nothing is retried or buffered.
func (s *Sink) HandleMessage(e Event) {
	if s.normalize {
		e.Text = Normalize(e.Text)
	}
	r := Render(e)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.primary.Write(r); err != nil {
		s.logger.Warn("console write failed", "error", err)
	}
	for _, c := range s.secondary {
		if err := c.Write(r); err != nil {
			s.logger.Debug("secondary channel write dropped", "channel", channelName(c), "error", err)
		}
	}
}

// Attach registers s as p's debug callback.
func (s *Sink) Attach(p Producer) {
	p.SetDebugCallback(s)
}

func channelName(c Channel) string {
	switch c.(type) {
	case *ConsoleChannel:
		return "console"
	case *DebugChannel:
		return "debug"
	case NopChannel:
		return "nop"
	default:
		if n, ok := c.(interface{ Name() string }); ok {
			return n.Name()
		}
		return "custom"
	}
}

// Package session owns the process-wide diagnostic sink.
//
// A Session is opened once at process start, passed by reference to every
// producer that needs it, and closed at exit. It builds the sink's channels
// from a config.Config:
//
//   - console: stdout, stderr, or none (NopChannel)
//   - platform debug stream: auto, on (must exist), or off
//   - journal: optional SQLite journal
//
// Each session is identified by a UUIDv7 so journal rows from different runs
// can be told apart and sorted by start time.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/roach88/gfxdiag/internal/clock"
	"github.com/roach88/gfxdiag/internal/config"
	"github.com/roach88/gfxdiag/internal/diag"
	"github.com/roach88/gfxdiag/internal/journal"
)

// ErrDebugUnavailable is returned by Open when the config requires a
// platform debug stream and the host has none.
var ErrDebugUnavailable = errors.New("platform debug channel unavailable")

// Options carries process handles into Open. Zero values pick the real
// process resources.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Clock  clock.Clock
	Logger *slog.Logger

	// DebugChannel overrides platform detection (for testing).
	// A nil value means detect with diag.PlatformDebugChannel.
	DebugChannel func() (diag.Channel, bool)

	// IDGenerator overrides the session ID source (for testing).
	IDGenerator func() string
}

// Session is an open diagnostic sink plus the resources behind it.
type Session struct {
	ID      string
	Sink    *diag.Sink
	Clock   clock.Clock
	Journal *journal.Store

	hasDebug bool
	logger   *slog.Logger
}

// Open builds the sink described by cfg.
func Open(ctx context.Context, cfg config.Config, opts Options) (*Session, error) {
	opts = withDefaults(opts)

	s := &Session{
		ID:     opts.IDGenerator(),
		Clock:  opts.Clock,
		logger: opts.Logger,
	}

	primary, err := consoleChannel(cfg.Console, opts)
	if err != nil {
		return nil, err
	}

	sinkOpts := []diag.Option{
		diag.WithLogger(opts.Logger),
		diag.WithNormalization(cfg.Normalize),
	}

	if cfg.DebugChannel != config.DebugOff {
		ch, ok := opts.DebugChannel()
		if !ok && cfg.DebugChannel == config.DebugOn {
			return nil, ErrDebugUnavailable
		}
		if ok {
			s.hasDebug = true
			sinkOpts = append(sinkOpts, diag.WithChannel(ch))
		}
	}

	if cfg.Journal != "" {
		st, err := journal.Open(cfg.Journal)
		if err != nil {
			return nil, fmt.Errorf("open journal %s: %w", cfg.Journal, err)
		}
		s.Journal = st
		sinkOpts = append(sinkOpts, diag.WithChannel(journal.NewChannel(st, opts.Clock, s.ID)))
	}

	s.Sink = diag.NewSink(primary, sinkOpts...)

	opts.Logger.Debug("diagnostic session opened",
		"session", s.ID,
		"console", cfg.Console,
		"debug_channel", s.hasDebug,
		"journal", cfg.Journal,
	)
	return s, nil
}

// HasDebugChannel reports whether events are mirrored to the platform
// debug stream.
func (s *Session) HasDebugChannel() bool {
	return s.hasDebug
}

// Attach registers the session's sink as p's debug callback.
func (s *Session) Attach(p diag.Producer) {
	s.Sink.Attach(p)
}

// Close releases the journal, if any. The console and the platform debug
// stream are process-managed and stay open.
func (s *Session) Close() error {
	if s.Journal == nil {
		return nil
	}
	err := s.Journal.Close()
	s.Journal = nil
	s.logger.Debug("diagnostic session closed", "session", s.ID)
	return err
}

func withDefaults(opts Options) Options {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.DebugChannel == nil {
		opts.DebugChannel = diag.PlatformDebugChannel
	}
	if opts.IDGenerator == nil {
		opts.IDGenerator = func() string { return uuid.Must(uuid.NewV7()).String() }
	}
	return opts
}

func consoleChannel(target string, opts Options) (diag.Channel, error) {
	switch target {
	case config.ConsoleStdout, "":
		return diag.NewConsoleChannel(opts.Stdout), nil
	case config.ConsoleStderr:
		return diag.NewConsoleChannel(opts.Stderr), nil
	case config.ConsoleNone:
		return diag.NopChannel{}, nil
	default:
		return nil, fmt.Errorf("unknown console target %q", target)
	}
}

package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/gfxdiag/internal/config"
	"github.com/roach88/gfxdiag/internal/session"
)

// newLogger builds the command logger: text on w, debug level when verbose.
func newLogger(opts *RootOptions, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig resolves the sink config: --config, then $GFXDIAG_CONFIG, then
// defaults. Environment overrides are applied last.
func loadConfig(opts *RootOptions) (config.Config, error) {
	path := opts.Config
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	return config.ApplyEnv(cfg, os.Getenv), nil
}

// openSession loads config, applies a journal override, and opens a session
// writing to the command's output streams. With --format json the console
// stream is the command's stderr, leaving stdout to the JSON response.
func openSession(cmd *cobra.Command, opts *RootOptions, journalPath string) (*session.Session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if journalPath != "" {
		cfg.Journal = journalPath
	}

	stdout := cmd.OutOrStdout()
	if opts.Format == "json" {
		stdout = cmd.ErrOrStderr()
	}

	logger := newLogger(opts, cmd.ErrOrStderr())
	s, err := session.Open(cmd.Context(), cfg, session.Options{
		Stdout: stdout,
		Stderr: cmd.ErrOrStderr(),
		Logger: logger,
	})
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open session", err)
	}
	return s, nil
}

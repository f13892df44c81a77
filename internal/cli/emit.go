package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/gfxdiag/internal/diag"
)

// EmitOptions holds flags for the emit command.
type EmitOptions struct {
	*RootOptions
	Severity string
	Origin   string
	Journal  string
}

// EmitResult is the JSON response of the emit command.
type EmitResult struct {
	Session  string `json:"session"`
	Severity string `json:"severity"`
	Origin   string `json:"origin"`
	Text     string `json:"text"`
}

// NewEmitCommand creates the emit command.
func NewEmitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EmitOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "emit <message...>",
		Short: "Render one diagnostic message through the sink",
		Long: `Render one diagnostic message through the configured sink.

The message is written to the console and, when available, mirrored to the
platform debug stream and the journal. With --format json the console line
goes to stderr and stdout carries a JSON response.

Example:
  gfxdiag emit --severity error --origin driver device lost
  gfxdiag emit --journal ./diag.db "frame submitted"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportError(cmd, opts.RootOptions, ErrCodeGeneric, emitMessage(opts, strings.Join(args, " "), cmd))
		},
	}

	cmd.Flags().StringVarP(&opts.Severity, "severity", "s", "info", "message severity (info|warning|error)")
	cmd.Flags().StringVarP(&opts.Origin, "origin", "o", "layer", "message origin (layer|subsystem|driver)")
	cmd.Flags().StringVar(&opts.Journal, "journal", "", "append to this journal database")

	return cmd
}

func emitMessage(opts *EmitOptions, text string, cmd *cobra.Command) error {
	sev, err := diag.ParseSeverity(opts.Severity)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --severity", err)
	}
	origin, err := diag.ParseOrigin(opts.Origin)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --origin", err)
	}

	s, err := openSession(cmd, opts.RootOptions, opts.Journal)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Sink.HandleMessage(diag.Event{Severity: sev, Origin: origin, Text: text})

	if opts.Format != "json" {
		return nil
	}
	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return f.Success(EmitResult{
		Session:  s.ID,
		Severity: sev.String(),
		Origin:   origin.String(),
		Text:     text,
	})
}

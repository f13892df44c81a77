package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/gfxdiag/internal/clock"
	"github.com/roach88/gfxdiag/internal/diag"
	"github.com/roach88/gfxdiag/internal/journal"
)

// JournalOptions holds flags for the journal command.
type JournalOptions struct {
	*RootOptions
	Database string
	Session  string
	Severity string
	Limit    int
}

// JournalEntry is the JSON view of a journal row.
type JournalEntry struct {
	Seq       int64   `json:"seq"`
	SessionID string  `json:"session_id"`
	Ordinal   int64   `json:"ordinal"`
	Seconds   float64 `json:"seconds"`
	Severity  string  `json:"severity"`
	Origin    string  `json:"origin"`
	Text      string  `json:"text"`
}

// NewJournalCommand creates the journal command.
func NewJournalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &JournalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Print journaled diagnostic messages",
		Long: `Print diagnostic messages stored in a journal database, in seq order.

Example:
  gfxdiag journal --db ./diag.db
  gfxdiag journal --db ./diag.db --severity error --limit 20 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportError(cmd, opts.RootOptions, ErrCodeJournal, showJournal(opts, cmd))
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to journal database (required)")
	cmd.Flags().StringVar(&opts.Session, "session", "", "only show entries from this session ID")
	cmd.Flags().StringVar(&opts.Severity, "severity", "", "only show entries of this severity")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of entries (0 = all)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func showJournal(opts *JournalOptions, cmd *cobra.Command) error {
	// Opening would create an empty database; a typo should fail instead.
	if _, err := os.Stat(opts.Database); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("journal not found: %s", opts.Database))
	}

	filter := journal.Filter{SessionID: opts.Session, Limit: opts.Limit}
	if opts.Severity != "" {
		sev, err := diag.ParseSeverity(opts.Severity)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --severity", err)
		}
		filter.Severity = &sev
	}

	st, err := journal.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open journal", err)
	}
	defer st.Close()

	entries, err := st.List(cmd.Context(), filter)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to read journal", err)
	}

	if opts.Format == "json" {
		view := make([]JournalEntry, len(entries))
		for i, e := range entries {
			view[i] = JournalEntry{
				Seq:       e.Seq,
				SessionID: e.SessionID,
				Ordinal:   e.Ordinal,
				Seconds:   clock.Seconds(0, e.Tick, e.Frequency),
				Severity:  e.Severity.String(),
				Origin:    e.Origin.String(),
				Text:      e.Text,
			}
		}
		f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return f.Success(view)
	}

	w := cmd.OutOrStdout()
	for _, e := range entries {
		fmt.Fprintf(w, "%6d  %s", e.Seq, e.Line)
	}
	return nil
}

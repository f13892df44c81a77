package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/gfxdiag/internal/clock"
)

// ClockOptions holds flags for the clock command.
type ClockOptions struct {
	*RootOptions
	Samples int

	// Clock overrides the process clock (for testing).
	Clock clock.Clock
}

// ClockSample is one reading of the clock.
type ClockSample struct {
	Tick    int64 `json:"tick"`
	DeltaNS int64 `json:"delta_ns"`
}

// ClockReport is the output of the clock command.
type ClockReport struct {
	Frequency int64         `json:"frequency"`
	Samples   []ClockSample `json:"samples"`
}

// NewClockCommand creates the clock command.
func NewClockCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ClockOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Show the high-resolution clock frequency and sample readings",
		Long: `Show the tick frequency of the high-resolution clock and a few
back-to-back readings with the delta from the previous one.

Example:
  gfxdiag clock --samples 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportError(cmd, opts.RootOptions, ErrCodeGeneric, showClock(opts, cmd))
		},
	}

	cmd.Flags().IntVarP(&opts.Samples, "samples", "n", 3, "number of readings")

	return cmd
}

func showClock(opts *ClockOptions, cmd *cobra.Command) error {
	if opts.Samples < 1 {
		return NewExitError(ExitCommandError, fmt.Sprintf("--samples must be >= 1, got %d", opts.Samples))
	}

	c := opts.Clock
	if c == nil {
		c = clock.New()
	}
	freq := c.Frequency()

	report := ClockReport{Frequency: int64(freq)}
	prev := c.Now()
	for i := 0; i < opts.Samples; i++ {
		now := c.Now()
		report.Samples = append(report.Samples, ClockSample{
			Tick:    int64(now),
			DeltaNS: clock.Elapsed(prev, now, freq).Nanoseconds(),
		})
		prev = now
	}

	if opts.Format == "json" {
		f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return f.Success(report)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "frequency: %d ticks/s\n", report.Frequency)
	for i, s := range report.Samples {
		fmt.Fprintf(w, "sample %d: tick=%d delta=%dns\n", i+1, s.Tick, s.DeltaNS)
	}
	return nil
}

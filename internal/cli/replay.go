package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/roach88/gfxdiag/internal/scenario"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Filter  string
	Journal string
}

// ReplayResult is the JSON response of the replay command.
type ReplayResult struct {
	Session   string   `json:"session"`
	Scenarios []string `json:"scenarios"`
	Events    int      `json:"events"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay <scenario-file-or-dir>",
		Short: "Replay scripted diagnostic events through the sink",
		Long: `Replay scripted diagnostic events through the configured sink.

The argument is a scenario YAML file or a directory of them. Scenarios are
played in file-name order through one session, so a journal records them
all under the same session ID. With --format json the console lines go to
stderr and stdout carries a JSON summary.

Example:
  gfxdiag replay ./scenarios/device_loss.yaml
  gfxdiag replay ./scenarios --filter 'device_*' --journal ./diag.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportError(cmd, opts.RootOptions, ErrCodeScenario, replayScenarios(opts, args[0], cmd))
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenario files by glob pattern")
	cmd.Flags().StringVar(&opts.Journal, "journal", "", "append to this journal database")

	return cmd
}

func replayScenarios(opts *ReplayOptions, path string, cmd *cobra.Command) error {
	files, err := findScenarioFiles(path, opts.Filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to find scenarios", err)
	}
	if len(files) == 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("no scenarios found in %s", path))
	}

	// All scenarios are validated before the session opens.
	scenarios := make([]*scenario.Scenario, 0, len(files))
	for _, f := range files {
		s, err := scenario.Load(f)
		if err != nil {
			return WrapExitError(ExitFailure, "invalid scenario", err)
		}
		scenarios = append(scenarios, s)
	}

	sess, err := openSession(cmd, opts.RootOptions, opts.Journal)
	if err != nil {
		return err
	}
	defer sess.Close()

	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())
	result := ReplayResult{Session: sess.ID}
	for _, s := range scenarios {
		n, err := scenario.Play(s, sess.Sink)
		if err != nil {
			return WrapExitError(ExitFailure, fmt.Sprintf("replay %s", s.Name), err)
		}
		logger.Debug("scenario replayed", "scenario", s.Name, "events", n, "session", sess.ID)
		result.Scenarios = append(result.Scenarios, s.Name)
		result.Events += n
	}

	if opts.Format != "json" {
		return nil
	}
	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return f.Success(result)
}

// findScenarioFiles returns path itself if it is a file, or every .yaml/.yml
// file under it, sorted, optionally filtered by a base-name glob.
func findScenarioFiles(path, filter string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		ext := filepath.Ext(p)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		if filter != "" {
			matched, err := filepath.Match(filter, filepath.Base(p))
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

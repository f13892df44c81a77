package cli

import (
	"bytes"
	"testing"

	"github.com/roach88/gfxdiag/internal/config"
)

// runRoot executes the root command with args and returns stdout, stderr
// and the error. Config environment variables are cleared so the host
// environment cannot leak into the test.
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvJournal, "")

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

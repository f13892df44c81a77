package scenario

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/gfxdiag/internal/diag"
)

// Render plays s through a console-only sink and returns the console output.
func Render(s *Scenario) ([]byte, error) {
	buf := &bytes.Buffer{}
	sink := diag.NewSink(diag.NewConsoleChannel(buf))
	if _, err := Play(s, sink); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AssertGolden renders s and compares the console output against
// testdata/golden/{s.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/scenario -update
func AssertGolden(t *testing.T, s *Scenario) {
	t.Helper()

	out, err := Render(s)
	if err != nil {
		t.Fatalf("render scenario %q: %v", s.Name, err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, out)
}

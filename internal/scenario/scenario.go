// Package scenario replays scripted diagnostic events through a sink.
//
// A scenario is a YAML file naming a sequence of events as a producer would
// emit them:
//
//	name: device_loss
//	description: driver reports a lost device after a frame
//	events:
//	  - { severity: info,  origin: layer,  text: frame submitted }
//	  - { severity: error, origin: driver, text: device lost }
//	  - { severity: warning, origin: subsystem, text: retrying, repeat: 2 }
//
// Scenarios back the `gfxdiag replay` command and the golden-file tests of
// rendered output.
package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/gfxdiag/internal/diag"
)

// Scenario is a named script of diagnostic events.
type Scenario struct {
	// Name uniquely identifies this scenario; golden files are keyed by it.
	Name string `yaml:"name"`

	// Description explains what this scenario exercises.
	Description string `yaml:"description"`

	// Events are emitted in order.
	Events []EventStep `yaml:"events"`
}

// EventStep is one scripted event.
type EventStep struct {
	Severity string `yaml:"severity"`
	Origin   string `yaml:"origin"`
	Text     string `yaml:"text"`

	// Repeat emits the event this many times. Zero means once.
	Repeat int `yaml:"repeat,omitempty"`
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that the scenario is named, non-empty, and that every
// step names a known severity and origin.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Events) == 0 {
		return fmt.Errorf("scenario %q has no events", s.Name)
	}
	for i, step := range s.Events {
		if _, err := step.Event(); err != nil {
			return fmt.Errorf("scenario %q: events[%d]: %w", s.Name, i, err)
		}
		if step.Repeat < 0 {
			return fmt.Errorf("scenario %q: events[%d]: repeat must be >= 0, got %d", s.Name, i, step.Repeat)
		}
	}
	return nil
}

// Event converts the step to a diag.Event.
func (step EventStep) Event() (diag.Event, error) {
	sev, err := diag.ParseSeverity(step.Severity)
	if err != nil {
		return diag.Event{}, err
	}
	origin, err := diag.ParseOrigin(step.Origin)
	if err != nil {
		return diag.Event{}, err
	}
	return diag.Event{Severity: sev, Origin: origin, Text: step.Text}, nil
}

// Expand returns the full event sequence with repeats unrolled.
func (s *Scenario) Expand() ([]diag.Event, error) {
	var events []diag.Event
	for i, step := range s.Events {
		e, err := step.Event()
		if err != nil {
			return nil, fmt.Errorf("events[%d]: %w", i, err)
		}
		n := step.Repeat
		if n == 0 {
			n = 1
		}
		for j := 0; j < n; j++ {
			events = append(events, e)
		}
	}
	return events, nil
}

// Play emits every event of s to cb in order and returns how many were
// emitted.
func Play(s *Scenario, cb diag.Callback) (int, error) {
	events, err := s.Expand()
	if err != nil {
		return 0, err
	}
	for _, e := range events {
		cb.HandleMessage(e)
	}
	return len(events), nil
}

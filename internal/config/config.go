// Package config loads sink configuration from YAML and validates it against
// an embedded CUE schema.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Console targets.
const (
	ConsoleStdout = "stdout"
	ConsoleStderr = "stderr"
	ConsoleNone   = "none"
)

// Debug channel modes.
const (
	DebugAuto = "auto" // use the platform debug stream when one exists
	DebugOn   = "on"   // require the platform debug stream
	DebugOff  = "off"
)

// Environment variables read by ApplyEnv.
const (
	EnvConfig  = "GFXDIAG_CONFIG"
	EnvJournal = "GFXDIAG_JOURNAL"
)

// Config describes which channels a sink writes to.
type Config struct {
	Console      string `yaml:"console"`
	DebugChannel string `yaml:"debug_channel"`
	Journal      string `yaml:"journal,omitempty"`
	Normalize    bool   `yaml:"normalize"`
}

// Default returns the configuration used when no file is given:
// console on stdout, platform debug stream when available, no journal,
// event text written exactly as produced.
func Default() Config {
	return Config{
		Console:      ConsoleStdout,
		DebugChannel: DebugAuto,
	}
}

// Error codes.
const (
	ErrCodeRead   = "C001" // config file unreadable
	ErrCodeParse  = "C002" // YAML syntax error
	ErrCodeSchema = "C003" // schema violation
)

// ConfigError reports a configuration problem.
type ConfigError struct {
	Code    string
	Message string
	Path    string // config file, if known
	Err     error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsSchemaError reports whether err is a schema violation.
func IsSchemaError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce) && ce.Code == ErrCodeSchema
}

// Load reads and validates the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &ConfigError{Code: ErrCodeRead, Message: "cannot read config", Path: path, Err: err}
	}
	cfg, err := Parse(data)
	if err != nil {
		var ce *ConfigError
		if errors.As(err, &ce) {
			ce.Path = path
		}
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes and validates YAML config data. Missing fields take their
// Default values.
func Parse(data []byte) (Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, &ConfigError{Code: ErrCodeParse, Message: "invalid YAML", Err: err}
	}
	if raw == nil {
		raw = map[string]any{}
	}

	if err := validate(raw); err != nil {
		return Config{}, &ConfigError{Code: ErrCodeSchema, Message: "config does not match schema", Err: err}
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &ConfigError{Code: ErrCodeParse, Message: "invalid YAML", Err: err}
	}
	return cfg, nil
}

// ApplyEnv overrides cfg from environment variables. getenv is usually
// os.Getenv.
func ApplyEnv(cfg Config, getenv func(string) string) Config {
	if journal := getenv(EnvJournal); journal != "" {
		cfg.Journal = journal
	}
	return cfg
}

// validate unifies raw with the #Config definition and requires the result
// to be concrete.
func validate(raw map[string]any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("lookup #Config: %w", err)
	}

	value := ctx.Encode(raw)
	if err := value.Err(); err != nil {
		return err
	}
	return def.Unify(value).Validate(cue.Concrete(true))
}

package diag

import (
	"fmt"
	"strings"
)

// Severity classifies a diagnostic message.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// Origin identifies the component that produced a diagnostic message.
type Origin int

const (
	OriginLayer Origin = iota
	OriginSubsystem
	OriginDriver
)

// Display prefixes.
const (
	PrefixInfo    = "INFO: "
	PrefixWarning = "WARNING: "
	PrefixError   = "ERROR: "

	PrefixGraphicsLayer = "[GraphicsLayer]: "
	PrefixDriver        = "[Driver]: "
)

// Event is a single diagnostic message. Events are values: the sink never
// retains or mutates them beyond the HandleMessage call.
type Event struct {
	Severity Severity
	Origin   Origin
	Text     string
}

// SeverityPrefix returns the display prefix for s, or "" if s is unknown.
func SeverityPrefix(s Severity) string {
	switch s {
	case SeverityInfo:
		return PrefixInfo
	case SeverityWarning:
		return PrefixWarning
	case SeverityError:
		return PrefixError
	default:
		return ""
	}
}

// OriginPrefix returns the display prefix for o.
// Everything except OriginDriver renders as the graphics layer.
func OriginPrefix(o Origin) string {
	if o == OriginDriver {
		return PrefixDriver
	}
	return PrefixGraphicsLayer
}

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

func (o Origin) String() string {
	switch o {
	case OriginLayer:
		return "layer"
	case OriginSubsystem:
		return "subsystem"
	case OriginDriver:
		return "driver"
	default:
		return fmt.Sprintf("origin(%d)", int(o))
	}
}

// ParseSeverity parses a severity name (case-insensitive).
// Accepts "info", "warning"/"warn", and "error".
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return 0, fmt.Errorf("unknown severity %q: must be one of info, warning, error", name)
	}
}

// ParseOrigin parses an origin name (case-insensitive).
// Accepts "layer", "subsystem", and "driver".
func ParseOrigin(name string) (Origin, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "layer":
		return OriginLayer, nil
	case "subsystem":
		return OriginSubsystem, nil
	case "driver":
		return OriginDriver, nil
	default:
		return 0, fmt.Errorf("unknown origin %q: must be one of layer, subsystem, driver", name)
	}
}

// Rendered is an event split into its display fragments.
type Rendered struct {
	Event          Event
	OriginPrefix   string
	SeverityPrefix string
	Text           string
}

// Render maps e to its display fragments. Render is pure.
func Render(e Event) Rendered {
	return Rendered{
		Event:          e,
		OriginPrefix:   OriginPrefix(e.Origin),
		SeverityPrefix: SeverityPrefix(e.Severity),
		Text:           e.Text,
	}
}

// Line returns the full console line, including the trailing newline.
func (r Rendered) Line() string {
	return r.OriginPrefix + r.SeverityPrefix + r.Text + "\n"
}

// Format renders e as a single console line.
func Format(e Event) string {
	return Render(e).Line()
}

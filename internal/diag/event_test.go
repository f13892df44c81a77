package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityPrefix(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityInfo, "INFO: "},
		{SeverityWarning, "WARNING: "},
		{SeverityError, "ERROR: "},
		{Severity(7), ""},
		{Severity(-1), ""},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, SeverityPrefix(tt.severity))
		})
	}
}

func TestOriginPrefix(t *testing.T) {
	tests := []struct {
		origin Origin
		want   string
	}{
		{OriginLayer, "[GraphicsLayer]: "},
		{OriginSubsystem, "[GraphicsLayer]: "},
		{OriginDriver, "[Driver]: "},
		{Origin(42), "[GraphicsLayer]: "},
	}

	for _, tt := range tests {
		t.Run(tt.origin.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, OriginPrefix(tt.origin))
		})
	}
}

func TestFormat_SeverityPrefixPrecedesText(t *testing.T) {
	for _, sev := range []Severity{SeverityInfo, SeverityWarning, SeverityError} {
		line := Format(Event{Severity: sev, Origin: OriginLayer, Text: "payload"})
		assert.Contains(t, line, SeverityPrefix(sev)+"payload")
	}
}

func TestFormat_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{
			name:  "driver error",
			event: Event{Severity: SeverityError, Origin: OriginDriver, Text: "device lost"},
			want:  "[Driver]: ERROR: device lost\n",
		},
		{
			name:  "layer info",
			event: Event{Severity: SeverityInfo, Origin: OriginLayer, Text: "frame submitted"},
			want:  "[GraphicsLayer]: INFO: frame submitted\n",
		},
		{
			name:  "subsystem warning",
			event: Event{Severity: SeverityWarning, Origin: OriginSubsystem, Text: "slow path"},
			want:  "[GraphicsLayer]: WARNING: slow path\n",
		},
		{
			name:  "unknown severity and origin",
			event: Event{Severity: Severity(9), Origin: Origin(9), Text: "odd"},
			want:  "[GraphicsLayer]: odd\n",
		},
		{
			name:  "empty text",
			event: Event{Severity: SeverityInfo, Origin: OriginDriver},
			want:  "[Driver]: INFO: \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.event))
		})
	}
}

func TestRender_Fragments(t *testing.T) {
	r := Render(Event{Severity: SeverityWarning, Origin: OriginDriver, Text: "hot"})

	assert.Equal(t, "[Driver]: ", r.OriginPrefix)
	assert.Equal(t, "WARNING: ", r.SeverityPrefix)
	assert.Equal(t, "hot", r.Text)
	assert.Equal(t, OriginDriver, r.Event.Origin)
}

func TestParseSeverity(t *testing.T) {
	cases := map[string]Severity{
		"info":    SeverityInfo,
		"INFO":    SeverityInfo,
		"warning": SeverityWarning,
		"warn":    SeverityWarning,
		" Error ": SeverityError,
	}
	for in, want := range cases {
		got, err := ParseSeverity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSeverity("fatal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown severity")
}

func TestParseOrigin(t *testing.T) {
	cases := map[string]Origin{
		"layer":     OriginLayer,
		"Subsystem": OriginSubsystem,
		"DRIVER":    OriginDriver,
	}
	for in, want := range cases {
		got, err := ParseOrigin(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseOrigin("kernel")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown origin")
}

func TestStringRoundTrip(t *testing.T) {
	for _, sev := range []Severity{SeverityInfo, SeverityWarning, SeverityError} {
		got, err := ParseSeverity(sev.String())
		require.NoError(t, err)
		assert.Equal(t, sev, got)
	}
	for _, o := range []Origin{OriginLayer, OriginSubsystem, OriginDriver} {
		got, err := ParseOrigin(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
	assert.Equal(t, "severity(5)", Severity(5).String())
	assert.Equal(t, "origin(5)", Origin(5).String())
}

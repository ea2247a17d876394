package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		if got := LevelFromVerbosity(zerolog.WarnLevel, tt.verbosity); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestSetup(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	logger := Setup(zerolog.InfoLevel, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("kind", "png").Msg("detected")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "detected") || !strings.Contains(out, "kind=png") {
		t.Errorf("output = %q, want the info line", out)
	}
	// A bytes.Buffer is not a terminal
	if strings.Contains(out, "\x1b[") {
		t.Errorf("output contains colour codes: %q", out)
	}
}

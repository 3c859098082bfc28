package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLevelMapsVerboseFlag(t *testing.T) {
	if Level(false) != slog.LevelInfo {
		t.Fatalf("expected info level when verbose is off")
	}
	if Level(true) != slog.LevelDebug {
		t.Fatalf("expected debug level when verbose is on")
	}
}

func TestNewRespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug record to be suppressed, got %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("expected info record in output, got %q", out)
	}
}

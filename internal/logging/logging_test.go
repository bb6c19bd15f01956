package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/pricecalc/internal/config"

	"go.uber.org/zap/zapcore"
)

func TestNew_OffByDefault(t *testing.T) {
	log, err := New(config.LoggingConfig{}, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("default logger should not be enabled")
	}
}

func TestNew_InteractiveWithoutFileIsSilent(t *testing.T) {
	log, err := New(config.LoggingConfig{Level: "debug"}, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("interactive logger without a file must not write to stderr")
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")

	log, err := New(config.LoggingConfig{Level: "debug", File: path}, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debugw("recomputed", "months", 12)
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "recomputed") {
		t.Fatalf("log file = %q, want message", data)
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New(config.LoggingConfig{Level: "loud"}, false); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

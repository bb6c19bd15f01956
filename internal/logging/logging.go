// Package logging builds the zap logger shared by pricecalc commands.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/pricecalc/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared logger for cfg. Logging is off unless cfg.Level is
// set. Output goes to cfg.File when set; otherwise to stderr, except in
// interactive mode where stderr belongs to the terminal UI and the logger is
// a no-op instead.
func New(cfg config.LoggingConfig, interactive bool) (*zap.SugaredLogger, error) {
	level := strings.ToLower(strings.TrimSpace(cfg.Level))
	if level == "" || level == "off" {
		return zap.NewNop().Sugar(), nil
	}
	if cfg.File == "" && interactive {
		return zap.NewNop().Sugar(), nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	output := "stderr"
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o750); err != nil {
			return nil, fmt.Errorf("creating log dir: %w", err)
		}
		output = cfg.File
	}

	zc := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.OutputPaths = []string{output}
	zc.ErrorOutputPaths = []string{output}
	zc.EncoderConfig.TimeKey = "timestamp"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = true

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.Sugar(), nil
}

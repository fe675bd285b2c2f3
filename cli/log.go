package cli

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a human-readable logger that writes to stderr.
func newLogger(level string) (*zap.SugaredLogger, error) {
	cfg, err := loggerConfig(level)
	if err != nil {
		return nil, err
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %v", err)
	}
	return log.Sugar(), nil
}

// loggerConfig is the configuration for loggers built by newLogger.
// Failures are reported to users, so they don't carry stack traces.
func loggerConfig(level string) (zap.Config, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("invalid log level %q: %v", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.Encoding = "console"
	cfg.Sampling = nil
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg, nil
}

// Package logger builds the zap loggers shared by the command line tools.
//
// Library packages never build their own logger: they accept a *zap.Logger
// and fall back to zap.NewNop() when given nil.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production JSON logger at info level, or a development
// console logger at debug level when verbose is set.
func New(verbose bool) (*zap.Logger, error) {
	cfg := Config(verbose)
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logger: build: %w", err)
	}

	return l, nil
}

// Config returns the zap configuration used by New. Output goes to stderr
// so that command results on stdout stay machine readable.
func Config(verbose bool) zap.Config {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}

	return l
}

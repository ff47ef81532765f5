// Package log builds the diagnostics logger.
// The TUI owns stdout, so log output goes to a rotated file.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options control where and how verbosely the logger writes.
type Options struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	Debug      bool
}

// New creates a zap logger writing JSON lines to a rotated file.
// Callers should defer logger.Sync().
func New(opts Options) *zap.Logger {
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 10
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = 3
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	})

	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, level)
	return zap.New(core)
}

// NewNop returns a logger that discards everything. Useful in tests and
// for commands that have no log file configured.
func NewNop() *zap.Logger {
	return zap.NewNop()
}

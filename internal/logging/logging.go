// Package logging builds the zap loggers shared by the CLI and the HTTP server
// and adapts them to the calculation engine's Logger interface.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rpgo/incometax/internal/calculation"
	"github.com/rpgo/incometax/internal/config"
)

// ParseLevel maps a config level name to a zap level
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

// New builds a logger from the logging config. A non-empty levelOverride
// (typically a CLI flag) takes precedence over the configured level.
func New(cfg config.LoggingConfig, levelOverride string) (*zap.Logger, error) {
	level := cfg.Level
	if levelOverride != "" {
		level = levelOverride
	}
	zapLevel, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = "json"
	}

	var zc zap.Config
	switch format {
	case "console":
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	case "json":
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "timestamp"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return nil, fmt.Errorf("invalid log format: %s", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(zapLevel)
	// reports go to stdout; keep logs off it
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	if cfg.OutputFile != "" {
		if dir := filepath.Dir(cfg.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
		file, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", cfg.OutputFile, err)
		}
		_ = file.Close()

		zc.OutputPaths = []string{cfg.OutputFile}
		zc.ErrorOutputPaths = []string{cfg.OutputFile}
	}

	return zc.Build()
}

// ZapAdapter implements calculation.Logger on top of a sugared zap logger
type ZapAdapter struct {
	sugar *zap.SugaredLogger
}

var _ calculation.Logger = (*ZapAdapter)(nil)

// NewZapAdapter wraps logger; a nil logger yields a no-op adapter
func NewZapAdapter(logger *zap.Logger) *ZapAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapAdapter{sugar: logger.Named("engine").Sugar()}
}

func (z *ZapAdapter) Debugf(format string, args ...any) { z.sugar.Debugf(format, args...) }
func (z *ZapAdapter) Infof(format string, args ...any)  { z.sugar.Infof(format, args...) }
func (z *ZapAdapter) Warnf(format string, args ...any)  { z.sugar.Warnf(format, args...) }
func (z *ZapAdapter) Errorf(format string, args ...any) { z.sugar.Errorf(format, args...) }

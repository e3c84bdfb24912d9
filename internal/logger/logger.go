// Package logger provides logging functionality for the application.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Interface defines the logger interface.
type Interface interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(msg string, fields ...any)
	With(fields ...any) Interface
}

// Config holds logger configuration.
type Config struct {
	// Level is one of debug, info, warn, error
	Level string
	// Encoding is console or json
	Encoding string
	// Development enables human-friendly output
	Development bool
}

// logLevels maps string levels to zapcore.Level.
var logLevels = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// Logger implements Interface on top of a zap sugared logger.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New creates a new logger instance.
func New(cfg Config) (Interface, error) {
	level, ok := logLevels[cfg.Level]
	if !ok {
		if cfg.Level != "" {
			return nil, fmt.Errorf("invalid logging level: %q", cfg.Level)
		}
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}

	zapLogger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return &Logger{sugar: zapLogger.Sugar()}, nil
}

// Debug logs a debug message with key-value fields.
func (l *Logger) Debug(msg string, fields ...any) {
	l.sugar.Debugw(msg, fields...)
}

// Info logs an info message with key-value fields.
func (l *Logger) Info(msg string, fields ...any) {
	l.sugar.Infow(msg, fields...)
}

// Warn logs a warning message with key-value fields.
func (l *Logger) Warn(msg string, fields ...any) {
	l.sugar.Warnw(msg, fields...)
}

// Error logs an error message with key-value fields.
func (l *Logger) Error(msg string, fields ...any) {
	l.sugar.Errorw(msg, fields...)
}

// With returns a logger with the given fields attached to every entry.
func (l *Logger) With(fields ...any) Interface {
	return &Logger{sugar: l.sugar.With(fields...)}
}

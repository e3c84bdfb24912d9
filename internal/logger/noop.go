package logger

// NoopLogger discards all log output. Useful in tests.
type NoopLogger struct{}

// NewNoop creates a logger that discards everything.
func NewNoop() Interface {
	return &NoopLogger{}
}

// Debug does nothing.
func (*NoopLogger) Debug(string, ...any) {}

// Info does nothing.
func (*NoopLogger) Info(string, ...any) {}

// Warn does nothing.
func (*NoopLogger) Warn(string, ...any) {}

// Error does nothing.
func (*NoopLogger) Error(string, ...any) {}

// With returns the same no-op logger.
func (l *NoopLogger) With(...any) Interface { return l }

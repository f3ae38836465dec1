package logging

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger *zap.Logger
	// helpers skips one frame so log lines point at the helper's caller.
	helpers *zap.Logger
)

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	l, _ := loggers()
	return l
}

func loggers() (*zap.Logger, *zap.Logger) {
	mu.RLock()
	l, h := logger, helpers
	mu.RUnlock()
	if l != nil {
		return l, h
	}

	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		// Fallback to a development logger if not initialized
		dev, _ := zap.NewDevelopment()
		logger, helpers = dev, dev.WithOptions(zap.AddCallerSkip(1))
	}
	return logger, helpers
}

// SetLogger sets the global logger instance
func SetLogger(l *zap.Logger) {
	mu.Lock()
	logger = l
	helpers = nil
	if l != nil {
		helpers = l.WithOptions(zap.AddCallerSkip(1))
	}
	mu.Unlock()
}

func helper() *zap.Logger {
	_, h := loggers()
	return h
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = GetLogger().Sync()
}

// DebugLog logs a debug message with printf-style formatting
func DebugLog(msg string, args ...interface{}) {
	helper().Sugar().Debugf(msg, args...)
}

// InfoLog logs an info message with printf-style formatting
func InfoLog(msg string, args ...interface{}) {
	helper().Sugar().Infof(msg, args...)
}

// WarnLog logs a warning message with printf-style formatting
func WarnLog(msg string, args ...interface{}) {
	helper().Sugar().Warnf(msg, args...)
}

// ErrorLog logs an error message with printf-style formatting
func ErrorLog(msg string, args ...interface{}) {
	helper().Sugar().Errorf(msg, args...)
}

// FatalLog logs a fatal message with printf-style formatting and exits
func FatalLog(msg string, args ...interface{}) {
	helper().Sugar().Fatalf(msg, args...)
}

// Debug logs a structured debug message
func Debug(msg string, fields ...zap.Field) {
	helper().Debug(msg, fields...)
}

// Info logs a structured info message
func Info(msg string, fields ...zap.Field) {
	helper().Info(msg, fields...)
}

// Warn logs a structured warning message
func Warn(msg string, fields ...zap.Field) {
	helper().Warn(msg, fields...)
}

// Error logs a structured error message
func Error(msg string, fields ...zap.Field) {
	helper().Error(msg, fields...)
}

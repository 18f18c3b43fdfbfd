package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MetricRegistry counts the logged messages.
type MetricRegistry interface {
	IncrementLogMessages(level string)
}

// WithMetrics returns a Logger counting warnings and errors in the registry before passing them to l.
func WithMetrics(l Logger, metricRegistry MetricRegistry) Logger {
	return countingLogger{
		Logger:         l,
		metricRegistry: metricRegistry,
	}
}

type countingLogger struct {
	Logger
	metricRegistry MetricRegistry
}

func (l countingLogger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	l.metricRegistry.IncrementLogMessages(zapcore.WarnLevel.String())
	l.Logger.Warn(ctx, msg, fields...)
}

func (l countingLogger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	l.metricRegistry.IncrementLogMessages(zapcore.ErrorLevel.String())
	l.Logger.Error(ctx, msg, fields...)
}

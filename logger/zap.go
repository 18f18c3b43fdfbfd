package logger

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/CoreumFoundation/explorer-kit/tracing"
)

var _ Logger = &ZapLogger{}

// Supported log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// contextFields maps the log field names to the tracing values taken from the context.
var contextFields = []struct {
	name  string
	value func(ctx context.Context) string
}{
	{name: "tracingID", value: tracing.GetTracingID},
	{name: "device", value: tracing.GetTracingDevice},
	{name: "chainID", value: tracing.GetTracingChainID},
}

// ZapLoggerConfig is ZapLogger config.
type ZapLoggerConfig struct {
	Level  string
	Format string
}

// DefaultZapLoggerConfig returns default ZapLoggerConfig.
func DefaultZapLoggerConfig() ZapLoggerConfig {
	return ZapLoggerConfig{
		Level:  zapcore.InfoLevel.String(),
		Format: FormatConsole,
	}
}

// ZapLogger writes zap entries enriched with the tracing values of the context.
type ZapLogger struct {
	zapLogger *zap.Logger
}

// NewZapLoggerFromLogger wraps an already built zap.Logger.
func NewZapLoggerFromLogger(zapLogger *zap.Logger) *ZapLogger {
	return &ZapLogger{
		zapLogger: zapLogger,
	}
}

// NewZapLogger creates a stderr ZapLogger from the config.
func NewZapLogger(cfg ZapLoggerConfig) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.Level)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Format {
	case FormatConsole:
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, errors.Errorf("unknown log format %q", cfg.Format)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(level))

	return NewZapLoggerFromLogger(
		zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel)),
	), nil
}

// Debug logs a message at DebugLevel.
func (z ZapLogger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	z.zapLogger.Debug(msg, withContextFields(ctx, fields)...)
}

// Info logs a message at InfoLevel.
func (z ZapLogger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	z.zapLogger.Info(msg, withContextFields(ctx, fields)...)
}

// Warn logs a message at WarnLevel.
func (z ZapLogger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	z.zapLogger.Warn(msg, withContextFields(ctx, fields)...)
}

// Error logs a message at ErrorLevel. A stacktrace is attached to the entry.
func (z ZapLogger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	z.zapLogger.Error(msg, withContextFields(ctx, fields)...)
}

func withContextFields(ctx context.Context, fields []zap.Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields)+len(contextFields))
	zapFields = append(zapFields, fields...)
	for _, f := range contextFields {
		if v := f.value(ctx); v != "" {
			zapFields = append(zapFields, zap.String(f.name, v))
		}
	}

	return zapFields
}

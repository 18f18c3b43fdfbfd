package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/CoreumFoundation/explorer-kit/logger"
	"github.com/CoreumFoundation/explorer-kit/tracing"
)

func TestNewZapLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     logger.ZapLoggerConfig
		wantErr bool
	}{
		{
			name: "default",
			cfg:  logger.DefaultZapLoggerConfig(),
		},
		{
			name: "json_debug",
			cfg: logger.ZapLoggerConfig{
				Level:  "DEBUG",
				Format: "json",
			},
		},
		{
			name: "invalid_level",
			cfg: logger.ZapLoggerConfig{
				Level:  "trace",
				Format: "console",
			},
			wantErr: true,
		},
		{
			name: "invalid_format",
			cfg: logger.ZapLoggerConfig{
				Level:  "info",
				Format: "xml",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := logger.NewZapLogger(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestZapLogger_TracingFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewZapLoggerFromLogger(zap.New(core))

	ctx := tracing.WithTracingID(context.Background())
	ctx = tracing.WithTracingDevice(ctx, "ledgerUSB")
	ctx = tracing.WithTracingChainID(ctx, "cosmoshub-4")
	log.Info(ctx, "signing", zap.String("address", "cosmos1"))
	log.Debug(context.Background(), "plain")

	entries := logs.All()
	require.Len(t, entries, 2)

	fields := entries[0].ContextMap()
	require.Equal(t, "cosmos1", fields["address"])
	require.Equal(t, tracing.GetTracingID(ctx), fields["tracingID"])
	require.Equal(t, "ledgerUSB", fields["device"])
	require.Equal(t, "cosmoshub-4", fields["chainID"])

	require.Empty(t, entries[1].ContextMap())
}

type levelCounter map[string]int

func (c levelCounter) IncrementLogMessages(level string) {
	c[level]++
}

func TestWithMetrics(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logMock := logger.NewAnyLogMock(ctrl)
	logMock.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

	counter := levelCounter{}
	log := logger.WithMetrics(logMock, counter)
	ctx := context.Background()
	log.Debug(ctx, "debug")
	log.Info(ctx, "info")
	log.Warn(ctx, "warn")
	log.Error(ctx, "first", zap.Error(context.Canceled))
	log.Error(ctx, "second")

	require.Equal(t, levelCounter{"warn": 1, "error": 2}, counter)
}

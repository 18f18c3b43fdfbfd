package tracing

import (
	"context"

	"github.com/google/uuid"
)

type (
	tracingIDKey     struct{}
	tracingDeviceKey struct{}
	tracingChainKey  struct{}
)

// WithTracingID returns context with set tracing ID.
func WithTracingID(ctx context.Context) context.Context {
	return context.WithValue(ctx, tracingIDKey{}, uuid.New().String())
}

// GetTracingID returns tracing ID from the context.
func GetTracingID(ctx context.Context) string {
	v, ok := ctx.Value(tracingIDKey{}).(string)
	if !ok {
		return ""
	}

	return v
}

// WithTracingDevice returns context with set signing device.
func WithTracingDevice(ctx context.Context, device string) context.Context {
	return context.WithValue(ctx, tracingDeviceKey{}, device)
}

// GetTracingDevice returns signing device from the context.
func GetTracingDevice(ctx context.Context) string {
	v, ok := ctx.Value(tracingDeviceKey{}).(string)
	if !ok {
		return ""
	}

	return v
}

// WithTracingChainID returns context with set chain ID.
func WithTracingChainID(ctx context.Context, chainID string) context.Context {
	return context.WithValue(ctx, tracingChainKey{}, chainID)
}

// GetTracingChainID returns chain ID from the context.
func GetTracingChainID(ctx context.Context) string {
	v, ok := ctx.Value(tracingChainKey{}).(string)
	if !ok {
		return ""
	}

	return v
}

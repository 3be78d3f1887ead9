// Package logger holds the process-wide structured logger.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Service is attached to every line written by an initialized logger.
const Service = "nailstudio-booking"

// Log is the global SugaredLogger. It discards everything until Initialize runs.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize replaces Log with a JSON logger writing at level and above.
func Initialize(level string) error {
	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = atomic
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]any{"service": Service}

	built, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = built.Sugar()
	return nil
}

type requestIDKey struct{}

// ContextWithRequestID stores the request ID assigned by the logging middleware.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request ID stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FromContext returns Log annotated with the request ID when ctx carries one.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if id := RequestID(ctx); id != "" {
		return Log.With("request_id", id)
	}
	return Log
}

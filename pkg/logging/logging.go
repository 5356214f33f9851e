// Package logging configures the process-wide zap logger and carries a
// per-replay run id through context, so every row a connector logs can be
// tied back to the feed pass that produced it.
package logging

import (
	"context"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey string

const runIDKey contextKey = "run_id"

// Init builds the global logger. Level falls back to info when the
// string is empty or unparsable.
func Init(level string) *zap.Logger {
	lvl := zapcore.InfoLevel
	if level != "" {
		if parsed, err := zapcore.ParseLevel(level); err == nil {
			lvl = parsed
		}
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := config.Build()
	if err != nil {
		// logging is not worth failing startup over
		logger = zap.NewNop()
		os.Stderr.WriteString("logging init failed: " + err.Error() + "\n")
	}
	zap.ReplaceGlobals(logger)
	return logger
}

// WithRunID stamps a fresh replay run id onto the context.
func WithRunID(ctx context.Context) context.Context {
	return context.WithValue(ctx, runIDKey, uuid.New().String())
}

// RunID extracts the replay run id, or "no-run-id".
func RunID(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return "no-run-id"
}

// For returns the global sugared logger bound to the context's run id.
func For(ctx context.Context) *zap.SugaredLogger {
	return zap.S().With("run_id", RunID(ctx))
}

package logger_test

import (
	"context"
	"testing"

	"civic/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup_EnvironmentDefaults(t *testing.T) {
	ctx := context.Background()

	logger.Setup(logger.DevelopmentEnvironment)
	require.True(t, logger.IsDebug(ctx), "development logger should log debug")

	logger.Setup(logger.ProductionEnvironment)
	require.False(t, logger.IsDebug(ctx), "production logger should start at info")
}

func TestSetup_LevelOverride(t *testing.T) {
	ctx := context.Background()

	logger.Setup(logger.ProductionEnvironment, "debug")
	require.True(t, logger.IsDebug(ctx))

	logger.Setup(logger.DevelopmentEnvironment, "warn")
	require.False(t, logger.IsDebug(ctx))

	// unknown levels keep the environment default
	logger.Setup(logger.DevelopmentEnvironment, "chatty")
	require.True(t, logger.IsDebug(ctx))
}

func TestGet_PrefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx))

	custom := zap.NewExample()
	require.Same(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFields_AttachesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("request_id", "abc"))
	logger.Info(ctx, "hello", zap.Int("n", 1))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "hello", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "abc", fields["request_id"])
	require.EqualValues(t, 1, fields["n"])
}

func TestSlog_WritesThroughZap(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Slog(ctx).Warn("from slog", "job", 7)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "from slog", entries[0].Message)
	require.Equal(t, zap.WarnLevel, entries[0].Level)
}

func TestLoggingFunctions(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug message", zap.String("key", "value"))
		logger.Info(ctx, "info message", zap.String("key", "value"))
		logger.Warn(ctx, "warn message", zap.String("key", "value"))
		logger.Error(ctx, "error message", zap.String("key", "value"))
	})
}

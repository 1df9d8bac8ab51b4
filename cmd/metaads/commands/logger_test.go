package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Debug("request", map[string]interface{}{"method": "GET", "path": "act_1/campaigns"})
	logger.Warn("rate limited", map[string]interface{}{"retry_after_seconds": 60})
	logger.Error("failed", nil)

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "request", entries[0].Message)
	assert.Equal(t, "act_1/campaigns", entries[0].ContextMap()["path"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.EqualValues(t, 60, entries[1].ContextMap()["retry_after_seconds"])

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Empty(t, entries[2].Context)
}

func TestNewLogger_QuietIsNop(t *testing.T) {
	t.Parallel()

	logger, err := NewLogger(false)
	require.NoError(t, err)

	logger.Info("ignored", map[string]interface{}{"a": 1})
	assert.NoError(t, logger.Sync())
}

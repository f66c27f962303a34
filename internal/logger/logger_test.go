package logger

import (
	"testing"

	"github.com/Domenick1991/flights/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(config.LogConfig{Level: "debug"})
	require.NoError(t, err)
	assert.NotNil(t, l)

	l, err = NewLogger(config.LogConfig{Level: "not-a-level", Development: true})
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestZapLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core))

	l.With("traceId", "abc").Warn("flight not found", "id", 7)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "flight not found", entry.Message)
	assert.Equal(t, "abc", entry.ContextMap()["traceId"])
	assert.EqualValues(t, 7, entry.ContextMap()["id"])
}

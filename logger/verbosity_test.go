package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		expected  zapcore.Level
	}{
		{0, zapcore.WarnLevel},
		{1, zapcore.InfoLevel},
		{2, zapcore.DebugLevel},
		{3, zapcore.DebugLevel},
		{7, zapcore.DebugLevel},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, VerbosityToLevel(tc.verbosity), "verbosity %d", tc.verbosity)
	}
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "user", LevelName(0))
	assert.Equal(t, "info", LevelName(1))
	assert.Equal(t, "debug", LevelName(2))
	assert.Equal(t, "trace", LevelName(3))
	assert.Equal(t, "trace", LevelName(9))
}

func TestInitialize(t *testing.T) {
	t.Cleanup(func() { Logger = nil; Initialize(0, false) })

	assert.NoError(t, Initialize(2, false))
	assert.NotNil(t, Logger)
	assert.False(t, JSONOutput)

	assert.NoError(t, Initialize(0, true))
	assert.True(t, JSONOutput)
}

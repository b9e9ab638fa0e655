package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/MihaiBandur/HackathonQuantic/logger"
)

func TestConfigLevels(t *testing.T) {
	prod := logger.Config(false)
	assert.Equal(t, "json", prod.Encoding)
	assert.Equal(t, zapcore.InfoLevel, prod.Level.Level())
	assert.Equal(t, []string{"stderr"}, prod.OutputPaths)

	dev := logger.Config(true)
	assert.Equal(t, "console", dev.Encoding)
	assert.Equal(t, zapcore.DebugLevel, dev.Level.Level())
	assert.True(t, dev.Development)
}

func TestNew(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		l, err := logger.New(verbose)
		require.NoError(t, err)
		require.NotNil(t, l)
		assert.Equal(t, verbose, l.Core().Enabled(zapcore.DebugLevel))
	}
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, logger.OrNop(nil))

	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)
	logger.OrNop(l).Info("kept")
	assert.Equal(t, 1, logs.Len())
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		verbosity  int
		jsonOutput bool
	}{
		{
			name:       "default verbosity console",
			verbosity:  VerbosityUser,
			jsonOutput: false,
		},
		{
			name:       "info verbosity console",
			verbosity:  VerbosityInfo,
			jsonOutput: false,
		},
		{
			name:       "debug verbosity JSON",
			verbosity:  VerbosityDebug,
			jsonOutput: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Logger = nil
			JSONOutput = false

			err := Initialize(tt.verbosity, tt.jsonOutput)
			require.NoError(t, err)
			require.NotNil(t, Logger)
			assert.Equal(t, tt.jsonOutput, JSONOutput)

			Logger.Sync()
			Logger = nil
		})
	}
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{VerbosityTrace, zapcore.DebugLevel},
		{7, zapcore.DebugLevel}, // anything past -vvv stays at debug
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestShouldOutput(t *testing.T) {
	// Always-on categories
	assert.True(t, ShouldOutput(VerbosityUser, OutputResults))
	assert.True(t, ShouldOutput(VerbosityUser, OutputErrors))

	// -v categories
	assert.False(t, ShouldOutput(VerbosityUser, OutputFileList))
	assert.True(t, ShouldOutput(VerbosityInfo, OutputFileList))
	assert.True(t, ShouldOutput(VerbosityInfo, OutputSummary))

	// -vv categories
	assert.False(t, ShouldOutput(VerbosityInfo, OutputTiming))
	assert.True(t, ShouldOutput(VerbosityDebug, OutputConfig))

	// -vvv categories
	assert.False(t, ShouldOutput(VerbosityDebug, OutputPerRecord))
	assert.True(t, ShouldOutput(VerbosityTrace, OutputPerRecord))
}

func TestWrappersSafeBeforeInitialize(t *testing.T) {
	// Package init installs a no-op logger; the wrappers must not panic
	// even if Initialize was never called.
	Logger = nil
	assert.NotPanics(t, func() {
		Infof("hello %s", "there")
		Infow("hello", FieldCount, 1)
		Warnf("warn")
		Errorw("err", FieldError, "boom")
		Debugf("debug")
		Cleanup()
	})
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "User", LevelName(VerbosityUser))
	assert.Equal(t, "Info (-v)", LevelName(VerbosityInfo))
	assert.Equal(t, "Trace (-vvv)", LevelName(VerbosityTrace))
	assert.Equal(t, "Trace (-vvv+)", LevelName(9))
}

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	defaultEncoderConfig.TimeKey = "" // no timestamps in tests
}

func TestNewRootLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expectRx string
	}{
		{
			name: "console",
			cfg: Config{
				Level:    "info",
				Encoding: "console",
			},
			expectRx: `INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\n`,
		},
		{
			name: "json",
			cfg: Config{
				Level:    "info",
				Encoding: "json",
			},
			expectRx: `{"level":"INFO","caller":"logger/logger_test.go:\d+","msg":"info"}\n` +
				`{"level":"WARN","caller":"logger/logger_test.go:\d+","msg":"warn"}`,
		},
		{
			name: "debug",
			cfg: Config{
				Level: "debug",
			},
			expectRx: `DEBUG\tlogger/logger_test.go:\d+\tdebug\n` +
				`INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\n`,
		},
		{
			name: "noCaller",
			cfg: Config{
				DisableCaller: true,
			},
			expectRx: "INFO\tinfo\n" +
				"WARN\twarn\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logPath := filepath.Join(t.TempDir(), "controlactions.log")
			tt.cfg.OutputPaths = []string{logPath}

			root, err := NewRootLogger(tt.cfg)
			require.NoError(t, err, "Unexpected error constructing logger.")

			root.Debug("debug")
			root.Info("info")
			root.Warn("warn")
			_ = root.Sync()

			assert.Regexp(t, tt.expectRx, getLogs(t, logPath), "Unexpected log output.")
		})
	}
}

func TestNewRootLogger_InvalidConfig(t *testing.T) {
	_, err := NewRootLogger(Config{Level: "loud"})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewRootLogger(Config{StacktraceLevel: "sometimes"})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestWrappedLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "controlactions.log")

	root, err := NewRootLogger(Config{Level: "debug", DisableCaller: true, OutputPaths: []string{logPath}})
	require.NoError(t, err)

	NewWrappedLogger(nil).LogDebugf("dropped %d", 1)
	NewWrappedLogger(nil).LogWarnf("dropped %d", 2)

	wrapped := NewWrappedLogger(root)
	wrapped.LogDebugf("listener %d added", 7)
	wrapped.LogDebug("registry created")
	wrapped.LogInfof("scenario %s finished", "tap")
	wrapped.LogWarnf("control %s was not collected", "submit")
	wrapped.LogErrorf("step %d failed", 3)

	logs := getLogs(t, logPath)
	assert.Regexp(t, `DEBUG\tlistener 7 added\n`, logs)
	assert.Regexp(t, `DEBUG\tregistry created\n`, logs)
	assert.Regexp(t, `INFO\tscenario tap finished\n`, logs)
	assert.Regexp(t, `WARN\tcontrol submit was not collected\n`, logs)
	assert.Regexp(t, `ERROR\tstep 3 failed\n`, logs)
	assert.NotRegexp(t, `dropped`, logs)
}

func getLogs(t require.TestingT, path string) string {
	byteContents, err := os.ReadFile(path)
	require.NoError(t, err, "Couldn't read log contents from file.")

	return string(byteContents)
}

package testutil

import (
	"bytes"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger initializes the console logger singleton at debug level and returns it.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	err := logger.InitLogger(config.NewLoggerSettings(config.LogLevelDebug, config.LogTypeConsole, ""))
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}

// NewBufferLogger returns a debug-level console logger that writes into the returned buffer.
func NewBufferLogger(t *testing.T) (logger.Logger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	return logger.NewConsoleLoggerTo(&buf, config.LogLevelDebug), &buf
}

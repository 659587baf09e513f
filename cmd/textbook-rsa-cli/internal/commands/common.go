package commands

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

// Logger environment variable names
const (
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogType     = "LOG_TYPE"
	EnvLogFilePath = "LOG_FILE_PATH"
)

// ReadLoggerSettingsFromEnv reads logger configuration from environment variables,
// falling back to an info-level console logger.
func ReadLoggerSettingsFromEnv() (*config.LoggerSettings, error) {
	settings := config.NewLoggerSettings(
		os.Getenv(EnvLogLevel),
		os.Getenv(EnvLogType),
		os.Getenv(EnvLogFilePath),
	)

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger environment: %w", err)
	}
	return settings, nil
}

func setupLogger() (logger.Logger, error) {
	settings, err := ReadLoggerSettingsFromEnv()
	if err != nil {
		return nil, err
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

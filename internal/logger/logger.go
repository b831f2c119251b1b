package logger

import (
	"errors"
	"io"

	"github.com/aleister1102/sidediff/internal/config"
	"github.com/rs/zerolog"
)

// Logger represents the main logger with configuration
type Logger struct {
	zerolog zerolog.Logger
	config  LoggerConfig
	closers []io.Closer
}

// GetZerolog returns the underlying zerolog instance
func (l *Logger) GetZerolog() *zerolog.Logger {
	return &l.zerolog
}

// GetConfig returns the configuration the logger was built with
func (l *Logger) GetConfig() LoggerConfig {
	return l.config
}

// Close releases any log files
func (l *Logger) Close() error {
	var errs []error
	for _, c := range l.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// New creates a logger from the application log config. Console output goes to
// consoleOutput, or to stderr when it is nil.
func New(cfg config.LogConfig, consoleOutput io.Writer) (*Logger, error) {
	return NewLoggerBuilder().
		WithConsoleOutput(consoleOutput).
		WithConfig(cfg).
		Build()
}

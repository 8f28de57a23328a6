package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns a logger writing to w at the LOG_LEVEL level.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           GetLogLevel(),
		Prefix:          prefix,
		ReportTimestamp: true,
	})
}

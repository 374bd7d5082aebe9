// Package logging provides minimal logger construction helpers.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New creates a deterministic text logger at the provided level.
func New(w io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})

	return logger
}

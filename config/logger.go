package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// NewLoggerService builds the process-wide logger. LOG_LEVEL accepts any
// logrus level name and falls back to info.
func NewLoggerService() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	Logger = logger
}

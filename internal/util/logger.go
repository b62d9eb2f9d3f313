package util

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// SetupLogger configures the standard logrus logger.
// LOG_FORMAT=json in the environment takes precedence over format.
func SetupLogger(level, format string) error {
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}

		logrus.SetLevel(lvl)
	}

	if env := os.Getenv("LOG_FORMAT"); env != "" {
		format = env
	}

	if strings.ToLower(format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	return nil
}

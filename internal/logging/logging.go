// Package logging configures the logrus logger used by the CLI.
package logging

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormat reports whether format is a known log format.
func ValidFormat(format string) bool {
	return format == FormatText || format == FormatJSON
}

// SetLogFormat sets the formatter of log. Unknown formats fall back to text.
func SetLogFormat(log *logrus.Logger, format string) {
	if !ValidFormat(format) {
		log.WithFields(logrus.Fields{"format": format}).Warn("Unknown log format specified, using text. Possible options are json and text.")
	}

	if format == FormatJSON {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		// show full timestamps
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

// SetLogLevel parses ll and sets it on log. An empty level means info;
// an unparsable one falls back to info with a warning.
func SetLogLevel(log *logrus.Logger, ll string) {
	if ll == "" {
		ll = "info"
	}

	logLevel, err := logrus.ParseLevel(ll)
	if err != nil {
		log.WithFields(logrus.Fields{"level": ll}).Warn("Could not parse log level, setting to INFO")
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)
}

// New creates a logger writing to out with the given level and format.
func New(out io.Writer, level, format string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	SetLogFormat(log, format)
	SetLogLevel(log, level)
	return log
}

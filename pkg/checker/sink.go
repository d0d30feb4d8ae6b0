package checker

import (
	"reflect"

	"github.com/nomagicln/roundtrip/pkg/method"
	"github.com/sirupsen/logrus"
)

// Failure describes why a check failed.
type Failure struct {
	// Type is the checked type.
	Type reflect.Type

	// Tuple is the failing pair. It is the zero Tuple when the check
	// failed before any pair ran.
	Tuple method.Tuple

	// Reason is a human-readable explanation.
	Reason string

	// Err is the underlying error, if any.
	Err error
}

// Sink receives check failures.
type Sink interface {
	Report(f Failure)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(f Failure)

// Report calls fn(f).
func (fn SinkFunc) Report(f Failure) {
	fn(f)
}

// LogSink writes failures as warnings to a logrus logger.
type LogSink struct {
	Logger logrus.FieldLogger
}

// NewLogSink creates a sink writing to log, or to the standard logger when log is nil.
func NewLogSink(log logrus.FieldLogger) *LogSink {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogSink{Logger: log}
}

// Report logs f.
func (s *LogSink) Report(f Failure) {
	LogFailedStep(s.Logger, f)
}

// LogFailedStep writes a failed check step with the pair as fields.
func LogFailedStep(log logrus.FieldLogger, f Failure) {
	fields := logrus.Fields{
		"reason": f.Reason,
	}
	if f.Type != nil {
		fields["type"] = f.Type.String()
	}
	if f.Tuple.Getter.Name != "" {
		fields["getter"] = f.Tuple.Getter.Name
		fields["setter"] = f.Tuple.Setter.Name
	}

	entry := log.WithFields(fields)
	if f.Err != nil {
		entry = entry.WithError(f.Err)
	}
	entry.Warn("check failed")
}

package logs

import "github.com/go-logr/logr"

type quietSink struct {
	sink logr.LogSink
}

func (s *quietSink) Init(info logr.RuntimeInfo) {
	s.sink.Init(info)
}

func (s *quietSink) Enabled(int) bool {
	return false
}

func (s *quietSink) Info(_ int, _ string, _ ...any) {
	// Ignored.
}

func (s *quietSink) Error(err error, msg string, keysAndValues ...any) {
	s.sink.Error(err, msg, keysAndValues...)
}

func (s *quietSink) WithValues(keysAndValues ...any) logr.LogSink {
	return &quietSink{sink: s.sink.WithValues(keysAndValues...)}
}

func (s *quietSink) WithName(name string) logr.LogSink {
	return &quietSink{sink: s.sink.WithName(name)}
}

// NewQuietLogger returns a logger which only reports errors, e.g. interrupted runs.
func NewQuietLogger(logger logr.Logger) logr.Logger {
	if logger.GetSink() == nil {
		return NewNoopLogger()
	}
	return logr.New(&quietSink{sink: logger.GetSink()})
}

package log

// MultiLogger forwards each event to every wrapped logger in order.
// tango-count uses it to mirror the trace file to the console.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger wraps loggers, ignoring nil entries.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

// Log forwards event.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

var _ Logger = (*MultiLogger)(nil)

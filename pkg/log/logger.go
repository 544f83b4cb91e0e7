package log

// Logger is the sink a tango client reports proxy calls to. Log is called
// inline on every call, so implementations return quickly and tolerate
// concurrent use.
type Logger interface {
	Log(event Event)
}

// NoopLogger drops events. The client uses it when no trace is configured.
type NoopLogger struct{}

// Log does nothing.
func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}

// Package log provides a structured trace of proxy calls.
//
// Every call a tango proxy issues against its backend (import, read,
// read_attributes, attribute list queries) can be captured as an Event.
// This is separate from operational logging (slog): the trace is a
// machine-readable record of what was asked of which device and what came
// back, for debugging acquisition runs after the fact.
//
// # Basic Usage
//
//	// For development: trace to console via slog
//	client := tango.NewClient(db, tango.WithTrace(log.NewSlogAdapter(slog.Default())))
//
//	// For later analysis: write to a binary file
//	fl, _ := log.NewFileLogger("/var/log/tangobridge/run.tlog")
//	client := tango.NewClient(db, tango.WithTrace(fl))
//
//	// Both
//	client := tango.NewClient(db, tango.WithTrace(log.NewMultiLogger(a, fl)))
//
// # File Format
//
// A trace file is a Header carrying the format version followed by a
// stream of CBOR-encoded events. Readers refuse files from another major
// format version. The tango-log CLI views and summarizes them.
package log

// Package engine runs acquisition plans against acquire.Readable objects
// and publishes the resulting run documents to subscribed callbacks.
//
// A run is a stream of documents: a RunStart, one EventDescriptor for the
// "primary" stream, one Event per point and a RunStop carrying the exit
// status. Callbacks receive the documents synchronously, in order, on the
// goroutine executing the plan.
//
// The package ships callbacks for a live text table, per-field statistics,
// a CBOR document stream and a line plot.
package engine

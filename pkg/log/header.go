package log

import (
	"time"

	"github.com/tangobridge/tangobridge/pkg/version"
)

// Header is the first record of a trace file. Its keys do not overlap
// with Event, so a reader can tell the two apart.
type Header struct {
	// Format is the trace format version, "major.minor".
	Format string `cbor:"0,keyasint"`

	// Created is when the file was started.
	Created time.Time `cbor:"11,keyasint,omitempty"`
}

func newHeader() Header {
	return Header{Format: version.Current, Created: time.Now()}
}

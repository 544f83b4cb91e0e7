package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/tangobridge/tangobridge/pkg/version"
)

// Filter selects trace events. A zero field places no constraint.
type Filter struct {
	ProxyID string
	Device  string // normalized device name

	Direction *Direction
	Operation *Operation

	// ErrorsOnly keeps only failed calls.
	ErrorsOnly bool

	// Half-open window [TimeStart, TimeEnd).
	TimeStart *time.Time
	TimeEnd   *time.Time
}

// Matches reports whether event passes every set field.
func (f *Filter) Matches(event Event) bool {
	if f.ProxyID != "" && event.ProxyID != f.ProxyID {
		return false
	}
	if f.Device != "" && event.Device != f.Device {
		return false
	}
	if f.Direction != nil && event.Direction != *f.Direction {
		return false
	}
	if f.Operation != nil && event.Operation != *f.Operation {
		return false
	}
	if f.ErrorsOnly && event.Error == nil {
		return false
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	return true
}

// Reader iterates over the events of one trace file.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter

	header  *Header
	pending *Event
}

// NewReader creates a Reader over all events in the file at path.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader creates a Reader that yields events matching filter.
// A file whose header carries an incompatible format version is rejected
// with version.ErrIncompatibleFormat. Files without a header are read as is.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := &Reader{
		file:    f,
		decoder: NewDecoder(f),
		filter:  filter,
	}
	if err := r.readHeader(); err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// readHeader consumes the first record. When it is an event rather than
// a header it is kept for Next.
func (r *Reader) readHeader() error {
	var raw cbor.RawMessage
	if err := r.decoder.Decode(&raw); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}

	var h Header
	if err := logDecMode.Unmarshal(raw, &h); err == nil && h.Format != "" {
		if err := version.CheckFormat(h.Format); err != nil {
			return err
		}
		r.header = &h
		return nil
	}

	event, err := DecodeEvent(raw)
	if err != nil {
		return err
	}
	r.pending = &event
	return nil
}

// Header returns the file header, or nil for a file written without one.
func (r *Reader) Header() *Header {
	return r.header
}

// Next returns the next matching event, or io.EOF at the end of the file.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if r.pending != nil {
			event, r.pending = *r.pending, nil
		} else if err := r.decoder.Decode(&event); err != nil {
			if err == io.EOF {
				return Event{}, io.EOF
			}
			return Event{}, err
		}

		if r.filter.Matches(event) {
			return event, nil
		}
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

package wire

import (
	"errors"
	"strings"

	"github.com/tangobridge/tangobridge/pkg/acquire"
)

// Kind identifies a document type.
type Kind uint8

const (
	KindStart      Kind = 1
	KindDescriptor Kind = 2
	KindEvent      Kind = 3
	KindStop       Kind = 4
)

// String returns the document name used by callbacks.
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindDescriptor:
		return "descriptor"
	case KindEvent:
		return "event"
	case KindStop:
		return "stop"
	default:
		return "unknown"
	}
}

// IsValid reports whether k is a known document kind.
func (k Kind) IsValid() bool {
	return k >= KindStart && k <= KindStop
}

// ParseKind parses a document name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "start":
		return KindStart, nil
	case "descriptor":
		return KindDescriptor, nil
	case "event":
		return KindEvent, nil
	case "stop":
		return KindStop, nil
	default:
		return 0, ErrUnknownKind
	}
}

// Exit statuses reported in RunStop.
const (
	ExitSuccess = "success"
	ExitFail    = "fail"
	ExitAbort   = "abort"
)

// Document validation errors.
var (
	ErrMissingUID      = errors.New("document has no uid")
	ErrMissingRunStart = errors.New("document does not reference a run start")
	ErrBadExitStatus   = errors.New("invalid exit status")
)

// RunStart opens a run.
type RunStart struct {
	UID       string         `cbor:"uid"`
	Time      float64        `cbor:"time"`
	PlanName  string         `cbor:"plan_name"`
	Detectors []string       `cbor:"detectors"`
	NumPoints int            `cbor:"num_points"`
	ScanID    int            `cbor:"scan_id"`
	Metadata  map[string]any `cbor:"md,omitempty"`
}

// Validate checks required fields.
func (d *RunStart) Validate() error {
	if d.UID == "" {
		return ErrMissingUID
	}
	return nil
}

// Configuration is the configuration snapshot of one object.
type Configuration struct {
	Data       map[string]any      `cbor:"data"`
	Timestamps map[string]float64  `cbor:"timestamps"`
	DataKeys   acquire.Description `cbor:"data_keys"`
}

// Hint lists the fields an object suggests for display.
type Hint struct {
	Fields []string `cbor:"fields"`
}

// EventDescriptor declares the data keys of an event stream.
type EventDescriptor struct {
	UID           string                   `cbor:"uid"`
	RunStart      string                   `cbor:"run_start"`
	Time          float64                  `cbor:"time"`
	Name          string                   `cbor:"name"`
	DataKeys      acquire.Description      `cbor:"data_keys"`
	Configuration map[string]Configuration `cbor:"configuration"`
	ObjectKeys    map[string][]string      `cbor:"object_keys"`
	Hints         map[string]Hint          `cbor:"hints,omitempty"`
}

// Validate checks required fields.
func (d *EventDescriptor) Validate() error {
	if d.UID == "" {
		return ErrMissingUID
	}
	if d.RunStart == "" {
		return ErrMissingRunStart
	}
	return nil
}

// Event is one acquisition point.
type Event struct {
	UID        string             `cbor:"uid"`
	Descriptor string             `cbor:"descriptor"`
	SeqNum     int                `cbor:"seq_num"`
	Time       float64            `cbor:"time"`
	Data       map[string]any     `cbor:"data"`
	Timestamps map[string]float64 `cbor:"timestamps"`
}

// Validate checks required fields.
func (d *Event) Validate() error {
	if d.UID == "" {
		return ErrMissingUID
	}
	if d.Descriptor == "" {
		return errors.New("event does not reference a descriptor")
	}
	return nil
}

// RunStop closes a run.
type RunStop struct {
	UID        string         `cbor:"uid"`
	RunStart   string         `cbor:"run_start"`
	Time       float64        `cbor:"time"`
	ExitStatus string         `cbor:"exit_status"`
	Reason     string         `cbor:"reason,omitempty"`
	NumEvents  map[string]int `cbor:"num_events"`
}

// Validate checks required fields.
func (d *RunStop) Validate() error {
	if d.UID == "" {
		return ErrMissingUID
	}
	if d.RunStart == "" {
		return ErrMissingRunStart
	}
	switch d.ExitStatus {
	case ExitSuccess, ExitFail, ExitAbort:
		return nil
	default:
		return ErrBadExitStatus
	}
}

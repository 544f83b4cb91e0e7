package tango

import (
	"errors"
	"fmt"
)

// Client errors.
var (
	ErrInvalidName       = errors.New("invalid device or attribute name")
	ErrDeviceNotFound    = errors.New("device not defined in database")
	ErrAttributeNotFound = errors.New("attribute not found")
	ErrDeviceUnreachable = errors.New("cannot connect to device")
)

// Failure reasons reported in DevFailed.Reason.
const (
	ReasonWrongNameSyntax  = "API_WrongDeviceNameSyntax"
	ReasonDeviceNotDefined = "DB_DeviceNotDefined"
	ReasonAttrNotFound     = "API_AttrNotFound"
	ReasonCantConnect      = "API_CantConnectToDevice"
)

// DevFailed is the error returned by proxies and backends.
type DevFailed struct {
	// Reason is a short machine-readable failure code.
	Reason string

	// Desc is a human-readable description.
	Desc string

	// Origin names the operation that failed.
	Origin string

	// Err is the sentinel error this failure maps to.
	Err error
}

func (e *DevFailed) Error() string {
	if e.Origin != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Reason, e.Desc, e.Origin)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Desc)
}

// Unwrap returns the sentinel error.
func (e *DevFailed) Unwrap() error {
	return e.Err
}

// NewDevFailed creates a DevFailed for the given sentinel.
// The reason is derived from the sentinel when it is one of the package's.
func NewDevFailed(err error, desc, origin string) *DevFailed {
	return &DevFailed{
		Reason: reasonFor(err),
		Desc:   desc,
		Origin: origin,
		Err:    err,
	}
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, ErrInvalidName):
		return ReasonWrongNameSyntax
	case errors.Is(err, ErrDeviceNotFound):
		return ReasonDeviceNotDefined
	case errors.Is(err, ErrAttributeNotFound):
		return ReasonAttrNotFound
	case errors.Is(err, ErrDeviceUnreachable):
		return ReasonCantConnect
	default:
		return "API_Unknown"
	}
}

package log

import (
	"time"
)

// Event is one side of a traced proxy call: the request as issued, or the
// reply with its duration and outcome.
type Event struct {
	// Timestamp is taken when the call starts or returns.
	Timestamp time.Time `cbor:"1,keyasint"`

	// ProxyID is the UUID assigned to the proxy at construction.
	ProxyID string `cbor:"2,keyasint"`

	// Direction is Request for outgoing calls and Reply for their results.
	Direction Direction `cbor:"3,keyasint"`

	// Operation is the proxy method invoked.
	Operation Operation `cbor:"4,keyasint"`

	// Device is the resolved device name.
	Device string `cbor:"5,keyasint"`

	// Attributes lists the attribute names involved, if any.
	Attributes []string `cbor:"6,keyasint,omitempty"`

	// Duration is set on replies only.
	Duration time.Duration `cbor:"7,keyasint,omitempty"`

	// Payload summarizes the reply, e.g. the attribute names returned.
	Payload any `cbor:"8,keyasint,omitempty"`

	// Error is set when the call failed.
	Error *ErrorEventData `cbor:"9,keyasint,omitempty"`
}

// Direction indicates whether an event is a call or its reply.
type Direction uint8

const (
	// DirectionRequest marks an outgoing call.
	DirectionRequest Direction = 0
	// DirectionReply marks the result of a call.
	DirectionReply Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionRequest:
		return "REQUEST"
	case DirectionReply:
		return "REPLY"
	default:
		return "UNKNOWN"
	}
}

// ParseDirection parses a direction name as printed by String.
// It also accepts "req"/"rep" and lower case.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "REQUEST", "request", "req":
		return DirectionRequest, true
	case "REPLY", "reply", "rep":
		return DirectionReply, true
	default:
		return 0, false
	}
}

// Operation is the proxy method an event belongs to.
type Operation uint8

const (
	// OpImport resolves and connects to a device.
	OpImport Operation = 0
	// OpRead reads a single attribute.
	OpRead Operation = 1
	// OpReadAttributes reads a batch of attributes.
	OpReadAttributes Operation = 2
	// OpGetAttributeList lists attribute names.
	OpGetAttributeList Operation = 3
	// OpAttributeListQuery lists attribute configurations.
	OpAttributeListQuery Operation = 4
	// OpGetConfig reads one attribute's configuration.
	OpGetConfig Operation = 5
)

var operationNames = []string{
	"import", "read", "read_attributes", "get_attribute_list",
	"attribute_list_query", "get_config",
}

// String returns the operation name.
func (o Operation) String() string {
	if int(o) < len(operationNames) {
		return operationNames[o]
	}
	return "unknown"
}

// ParseOperation parses an operation name as printed by String.
func ParseOperation(s string) (Operation, bool) {
	for i, name := range operationNames {
		if name == s {
			return Operation(i), true
		}
	}
	return 0, false
}

// ErrorEventData captures a failed call.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Reason is the control-system failure reason, when known.
	Reason string `cbor:"2,keyasint,omitempty"`
}

package tango

import "context"

// Backend resolves device names. It is the server side the proxies talk to.
type Backend interface {
	// Import connects to the named device.
	// The name is already normalized by ParseDeviceName.
	Import(ctx context.Context, name string) (Device, error)
}

// Device is a backend device as seen by the proxies.
type Device interface {
	// Name returns the canonical device name.
	Name() string

	// AttributeNames lists all attribute names in declaration order.
	AttributeNames(ctx context.Context) ([]string, error)

	// ReadAttributes reads the named attributes in one batch.
	// The result has one entry per requested name, in request order.
	ReadAttributes(ctx context.Context, names []string) ([]*DeviceAttribute, error)

	// AttributeInfos returns the configuration of all attributes.
	AttributeInfos(ctx context.Context) ([]*AttributeInfo, error)
}

package adapter

import (
	"context"
	"strings"

	"github.com/tangobridge/tangobridge/pkg/acquire"
	"github.com/tangobridge/tangobridge/pkg/tango"
)

// Device adapts a device proxy. Read covers the configured subset of
// attributes; Describe always covers all of them.
type Device struct {
	proxy     tango.DeviceProxy
	name      string
	attrs     []string
	readAttrs []string
	kind      acquire.Kind
	parent    acquire.Readable
}

// NewDevice creates a proxy for the device and wraps it. A nil readAttrs
// reads every attribute the device lists at construction.
func NewDevice(ctx context.Context, factory ProxyFactory, deviceName string, readAttrs []string, opts ...Option) (*Device, error) {
	proxy, err := factory.NewDeviceProxy(ctx, deviceName)
	if err != nil {
		return nil, err
	}
	return NewDeviceFromProxy(ctx, proxy, readAttrs, opts...)
}

// NewDeviceFromProxy wraps an existing proxy. The attribute list is
// fetched once here.
func NewDeviceFromProxy(ctx context.Context, proxy tango.DeviceProxy, readAttrs []string, opts ...Option) (*Device, error) {
	attrs, err := proxy.GetAttributeList(ctx)
	if err != nil {
		return nil, err
	}
	o := newOptions(opts)
	return &Device{
		proxy:     proxy,
		name:      strings.ReplaceAll(proxy.DevName(), "/", ":"),
		attrs:     attrs,
		readAttrs: readAttrs,
		kind:      o.kind,
		parent:    o.parent,
	}, nil
}

// Name returns the device name with "/" replaced by ":".
func (d *Device) Name() string { return d.name }

// Kind returns the adapter kind.
func (d *Device) Kind() acquire.Kind { return d.kind }

// Parent returns the owning object, or nil.
func (d *Device) Parent() acquire.Readable { return d.parent }

// Proxy returns the wrapped proxy.
func (d *Device) Proxy() tango.DeviceProxy { return d.proxy }

// Attributes returns the attribute list fetched at construction.
func (d *Device) Attributes() []string {
	return append([]string(nil), d.attrs...)
}

// ReadAttrs returns the attributes Read fetches.
func (d *Device) ReadAttrs() []string {
	if d.readAttrs == nil {
		return d.Attributes()
	}
	return append([]string{}, d.readAttrs...)
}

// ReadsAll reports whether Read covers every attribute, as opposed to an
// explicit subset.
func (d *Device) ReadsAll() bool { return d.readAttrs == nil }

// Read fetches the read subset in one batch call.
func (d *Device) Read(ctx context.Context) (acquire.Reading, error) {
	names := d.readAttrs
	if names == nil {
		names = d.attrs
	}
	reading := make(acquire.Reading, len(names))
	if len(names) == 0 {
		return reading, nil
	}

	attrs, err := d.proxy.ReadAttributes(ctx, names)
	if err != nil {
		return nil, err
	}
	for _, a := range attrs {
		reading[a.Name] = acquire.ReadingValue{Value: a.Value, Timestamp: a.Time.Seconds()}
	}
	return reading, nil
}

// Describe reports the configured shape of every attribute.
func (d *Device) Describe(ctx context.Context) (acquire.Description, error) {
	infos, err := d.proxy.AttributeListQuery(ctx)
	if err != nil {
		return nil, err
	}
	desc := make(acquire.Description, len(infos))
	for _, info := range infos {
		desc[info.Name] = placeholderKey(ExtractShapeFromConfig(info))
	}
	return desc, nil
}

// ReadConfiguration returns an empty reading.
func (d *Device) ReadConfiguration(context.Context) (acquire.Reading, error) {
	return acquire.Reading{}, nil
}

// DescribeConfiguration returns an empty description.
func (d *Device) DescribeConfiguration(context.Context) (acquire.Description, error) {
	return acquire.Description{}, nil
}

var _ acquire.Readable = (*Device)(nil)

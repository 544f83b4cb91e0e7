package devsim

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tangobridge/tangobridge/pkg/tango"
)

// Device errors.
var (
	ErrDuplicateAttribute = errors.New("duplicate attribute name")
)

// Device is a simulated device holding named attributes.
type Device struct {
	mu sync.RWMutex

	name  string
	clock func() time.Time

	// Attributes indexed by lower-case name; order keeps declaration order.
	attrs map[string]*Attribute
	order []string

	online bool
}

// NewDevice creates an online device. A nil clock uses time.Now.
func NewDevice(name string, clock func() time.Time) *Device {
	if clock == nil {
		clock = time.Now
	}
	return &Device{
		name:   strings.ToLower(name),
		clock:  clock,
		attrs:  make(map[string]*Attribute),
		online: true,
	}
}

// Name returns the device name.
func (d *Device) Name() string {
	return d.name
}

// AddAttribute adds an attribute. Names are case-insensitive.
func (d *Device) AddAttribute(attr *Attribute) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := strings.ToLower(attr.Name())
	if _, exists := d.attrs[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateAttribute, attr.Name())
	}
	d.attrs[key] = attr
	d.order = append(d.order, key)
	return nil
}

// Attribute returns an attribute by name.
func (d *Device) Attribute(name string) (*Attribute, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	attr, ok := d.attrs[strings.ToLower(name)]
	if !ok {
		return nil, tango.NewDevFailed(tango.ErrAttributeNotFound,
			fmt.Sprintf("attribute %s not found on %s", name, d.name), "Device.Attribute")
	}
	return attr, nil
}

// SetOnline switches the device on or off the network.
func (d *Device) SetOnline(online bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.online = online
}

// Online reports whether the device is reachable.
func (d *Device) Online() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.online
}

// checkReachable fails when the device is offline or the call is cancelled.
func (d *Device) checkReachable(ctx context.Context, origin string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !d.Online() {
		return tango.NewDevFailed(tango.ErrDeviceUnreachable,
			fmt.Sprintf("device %s is not exported", d.name), origin)
	}
	return nil
}

// AttributeNames lists attribute names in declaration order.
func (d *Device) AttributeNames(ctx context.Context) ([]string, error) {
	if err := d.checkReachable(ctx, "Device.AttributeNames"); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.order))
	for _, key := range d.order {
		names = append(names, d.attrs[key].Name())
	}
	return names, nil
}

// ReadAttributes reads the named attributes at the current clock time.
// Each reading carries the name as requested. An unknown name fails the
// whole batch.
func (d *Device) ReadAttributes(ctx context.Context, names []string) ([]*tango.DeviceAttribute, error) {
	if err := d.checkReachable(ctx, "Device.ReadAttributes"); err != nil {
		return nil, err
	}

	attrs := make([]*Attribute, 0, len(names))
	for _, name := range names {
		attr, err := d.Attribute(name)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}

	now := d.clock()
	result := make([]*tango.DeviceAttribute, 0, len(attrs))
	for i, attr := range attrs {
		r := attr.read(now)
		r.Name = names[i]
		result = append(result, r)
	}
	return result, nil
}

// AttributeInfos returns all attribute configurations in declaration order.
func (d *Device) AttributeInfos(ctx context.Context) ([]*tango.AttributeInfo, error) {
	if err := d.checkReachable(ctx, "Device.AttributeInfos"); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	infos := make([]*tango.AttributeInfo, 0, len(d.order))
	for _, key := range d.order {
		infos = append(infos, d.attrs[key].Info())
	}
	return infos, nil
}

// Compile-time interface satisfaction check.
var _ tango.Device = (*Device)(nil)

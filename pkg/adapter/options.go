package adapter

import (
	"context"

	"github.com/tangobridge/tangobridge/pkg/acquire"
	"github.com/tangobridge/tangobridge/pkg/tango"
)

// ProxyFactory creates proxies. *tango.Client satisfies it.
type ProxyFactory interface {
	NewAttributeProxy(ctx context.Context, name string) (tango.AttributeProxy, error)
	NewDeviceProxy(ctx context.Context, name string) (tango.DeviceProxy, error)
}

var _ ProxyFactory = (*tango.Client)(nil)

type options struct {
	kind     acquire.Kind
	attrName string
	parent   acquire.Readable
}

func newOptions(opts []Option) options {
	o := options{kind: acquire.KindNormal}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures an adapter.
type Option func(*options)

// WithKind sets the adapter kind. Defaults to acquire.KindNormal.
func WithKind(kind acquire.Kind) Option {
	return func(o *options) {
		o.kind = kind
	}
}

// WithAttrName sets the name the adapter has inside its parent.
func WithAttrName(name string) Option {
	return func(o *options) {
		o.attrName = name
	}
}

// WithParent sets the owning object. The parent is a back-reference only.
func WithParent(parent acquire.Readable) Option {
	return func(o *options) {
		o.parent = parent
	}
}

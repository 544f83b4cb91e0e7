package adapter

import (
	"context"

	"github.com/tangobridge/tangobridge/pkg/acquire"
	"github.com/tangobridge/tangobridge/pkg/tango"
)

// Attribute adapts a single attribute proxy.
type Attribute struct {
	proxy    tango.AttributeProxy
	name     string
	kind     acquire.Kind
	attrName string
	parent   acquire.Readable
}

// NewAttribute creates a proxy for the full attribute name and wraps it.
func NewAttribute(ctx context.Context, factory ProxyFactory, tangoName string, opts ...Option) (*Attribute, error) {
	proxy, err := factory.NewAttributeProxy(ctx, tangoName)
	if err != nil {
		return nil, err
	}
	return NewAttributeFromProxy(proxy, opts...), nil
}

// NewAttributeFromProxy wraps an existing proxy.
func NewAttributeFromProxy(proxy tango.AttributeProxy, opts ...Option) *Attribute {
	o := newOptions(opts)
	return &Attribute{
		proxy:    proxy,
		name:     proxy.Name(),
		kind:     o.kind,
		attrName: o.attrName,
		parent:   o.parent,
	}
}

// Name returns the attribute name reported by the proxy.
func (a *Attribute) Name() string { return a.name }

// Kind returns the adapter kind.
func (a *Attribute) Kind() acquire.Kind { return a.kind }

// AttrName returns the name inside the parent, or "" when standalone.
func (a *Attribute) AttrName() string { return a.attrName }

// Parent returns the owning object, or nil.
func (a *Attribute) Parent() acquire.Readable { return a.parent }

// Proxy returns the wrapped proxy.
func (a *Attribute) Proxy() tango.AttributeProxy { return a.proxy }

// Read returns the current value keyed by the attribute name.
func (a *Attribute) Read(ctx context.Context) (acquire.Reading, error) {
	r, err := a.proxy.Read(ctx)
	if err != nil {
		return nil, err
	}
	return acquire.Reading{
		a.name: {Value: r.Value, Timestamp: r.Time.Seconds()},
	}, nil
}

// Describe reads the attribute to find its current shape. Dtype, source
// and unit are fixed placeholders.
func (a *Attribute) Describe(ctx context.Context) (acquire.Description, error) {
	r, err := a.proxy.Read(ctx)
	if err != nil {
		return nil, err
	}
	return acquire.Description{
		a.name: placeholderKey(ExtractShape(r)),
	}, nil
}

// ReadConfiguration returns an empty reading.
func (a *Attribute) ReadConfiguration(context.Context) (acquire.Reading, error) {
	return acquire.Reading{}, nil
}

// DescribeConfiguration returns an empty description.
func (a *Attribute) DescribeConfiguration(context.Context) (acquire.Description, error) {
	return acquire.Description{}, nil
}

var _ acquire.Readable = (*Attribute)(nil)

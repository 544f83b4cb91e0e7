package adapter

import (
	"context"
	"fmt"

	"github.com/tangobridge/tangobridge/pkg/acquire"
)

// ComponentSpec declares one attribute component of a composite.
type ComponentSpec struct {
	// Attr is the component name inside the composite.
	Attr string

	// Suffix is appended to the composite prefix to form the full
	// attribute name.
	Suffix string

	// Kind of the component. The zero value builds a normal component;
	// set Omitted to exclude it from every read.
	Kind acquire.Kind

	Omitted bool
}

func (cs ComponentSpec) kind() acquire.Kind {
	switch {
	case cs.Omitted:
		return acquire.KindOmitted
	case cs.Kind == acquire.KindOmitted:
		return acquire.KindNormal
	default:
		return cs.Kind
	}
}

// CompositeSpec is a static composite declaration.
type CompositeSpec struct {
	Components []ComponentSpec
}

// Standard declarations against the test device. TangoTestAttrNames is
// built with the device name as prefix; TangoTestFullNames with an empty
// prefix.
var (
	TangoTestAttrNames = CompositeSpec{
		Components: []ComponentSpec{
			{Attr: "dou", Suffix: "/double_scalar"},
			{Attr: "flo", Suffix: "/float_scalar"},
		},
	}

	TangoTestFullNames = CompositeSpec{
		Components: []ComponentSpec{
			{Attr: "dou", Suffix: "sys/tg_test/1/double_scalar"},
			{Attr: "flo", Suffix: "sys/tg_test/1/float_scalar"},
		},
	}
)

// Build creates the composite and one Attribute per component at
// prefix+suffix.
func (s CompositeSpec) Build(ctx context.Context, factory ProxyFactory, prefix, name string, opts ...Option) (*Composite, error) {
	c := NewComposite(name, opts...)
	for _, cs := range s.Components {
		kind := cs.kind()
		attr, err := NewAttribute(ctx, factory, prefix+cs.Suffix,
			WithKind(kind), WithAttrName(cs.Attr), WithParent(c))
		if err != nil {
			return nil, fmt.Errorf("composite %s component %s: %w", name, cs.Attr, err)
		}
		if err := c.Add(cs.Attr, attr, kind); err != nil {
			return nil, fmt.Errorf("composite %s component %s: %w", name, cs.Attr, err)
		}
	}
	return c, nil
}

package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/tangobridge/tangobridge/pkg/acquire"
	"github.com/tangobridge/tangobridge/pkg/config"
)

// Registry errors.
var (
	ErrDuplicateObject = errors.New("duplicate object")
	ErrObjectNotFound  = errors.New("object not found")
)

// Registry holds named objects in insertion order.
type Registry struct {
	names   []string
	objects map[string]acquire.Readable
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{objects: make(map[string]acquire.Readable)}
}

// Add registers obj under name.
func (r *Registry) Add(name string, obj acquire.Readable) error {
	if _, exists := r.objects[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateObject, name)
	}
	r.names = append(r.names, name)
	r.objects[name] = obj
	return nil
}

// Get returns the object registered under name.
func (r *Registry) Get(name string) (acquire.Readable, error) {
	obj, exists := r.objects[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, name)
	}
	return obj, nil
}

// Names returns the registered names in insertion order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// All returns the registered objects in insertion order.
func (r *Registry) All() []acquire.Readable {
	all := make([]acquire.Readable, 0, len(r.names))
	for _, name := range r.names {
		all = append(all, r.objects[name])
	}
	return all
}

// Len returns the number of registered objects.
func (r *Registry) Len() int { return len(r.names) }

// FromConfig builds every object cfg declares.
func FromConfig(ctx context.Context, factory ProxyFactory, cfg *config.Config) (*Registry, error) {
	reg := NewRegistry()

	for _, ac := range cfg.Attributes {
		kind, err := acquire.ParseKind(ac.Kind)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", ac.Name, err)
		}
		attr, err := NewAttribute(ctx, factory, ac.Tango, WithKind(kind))
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", ac.Name, err)
		}
		if err := reg.Add(ac.Name, attr); err != nil {
			return nil, err
		}
	}

	for _, cc := range cfg.Composites {
		spec := CompositeSpec{Components: make([]ComponentSpec, 0, len(cc.Components))}
		for _, comp := range cc.Components {
			kind, err := acquire.ParseKind(comp.Kind)
			if err != nil {
				return nil, fmt.Errorf("composite %s component %s: %w", cc.Name, comp.Attr, err)
			}
			spec.Components = append(spec.Components, ComponentSpec{
				Attr:    comp.Attr,
				Suffix:  comp.Suffix,
				Kind:    kind,
				Omitted: kind == acquire.KindOmitted,
			})
		}
		composite, err := spec.Build(ctx, factory, cc.Prefix, cc.Name)
		if err != nil {
			return nil, err
		}
		if err := reg.Add(cc.Name, composite); err != nil {
			return nil, err
		}
	}

	for _, dc := range cfg.Devices {
		dev, err := NewDevice(ctx, factory, dc.Device, dc.ReadAttrs)
		if err != nil {
			return nil, fmt.Errorf("device %s: %w", dc.Name, err)
		}
		if err := reg.Add(dc.Name, dev); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

package adapter

import (
	"context"
	"errors"
	"sync"

	"github.com/tangobridge/tangobridge/pkg/acquire"
)

// Composite errors.
var (
	ErrDuplicateComponent = errors.New("duplicate component")
	ErrComponentNotFound  = errors.New("component not found")
)

// Component is a named child of a Composite.
type Component struct {
	// Attr is the child's name inside the composite.
	Attr string

	// Object is the child adapter.
	Object acquire.Readable

	// Kind selects which composite calls include the child.
	Kind acquire.Kind
}

// Composite groups child adapters under one name.
//
// Read and Describe aggregate the children whose kind has the normal bit.
// ReadConfiguration and DescribeConfiguration aggregate the Read and
// Describe of children with the config bit, plus every child's own
// configuration. Keys are the children's own keys; a later child
// overwrites an earlier one on collision.
type Composite struct {
	mu sync.RWMutex

	name       string
	kind       acquire.Kind
	parent     acquire.Readable
	components []Component
	index      map[string]int
}

// NewComposite creates an empty composite.
func NewComposite(name string, opts ...Option) *Composite {
	o := newOptions(opts)
	return &Composite{
		name:   name,
		kind:   o.kind,
		parent: o.parent,
		index:  make(map[string]int),
	}
}

// Name returns the composite name.
func (c *Composite) Name() string { return c.name }

// Kind returns the composite's own kind inside its parent.
func (c *Composite) Kind() acquire.Kind { return c.kind }

// Parent returns the owning object, or nil.
func (c *Composite) Parent() acquire.Readable { return c.parent }

// Add appends a child.
func (c *Composite) Add(attr string, obj acquire.Readable, kind acquire.Kind) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.index[attr]; exists {
		return ErrDuplicateComponent
	}
	c.index[attr] = len(c.components)
	c.components = append(c.components, Component{Attr: attr, Object: obj, Kind: kind})
	return nil
}

// Component returns the child registered as attr.
func (c *Composite) Component(attr string) (acquire.Readable, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, exists := c.index[attr]
	if !exists {
		return nil, ErrComponentNotFound
	}
	return c.components[i].Object, nil
}

// Components returns the children in the order they were added.
func (c *Composite) Components() []Component {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Component(nil), c.components...)
}

// Hints returns the names of the hinted children.
func (c *Composite) Hints() []string {
	var fields []string
	for _, comp := range c.Components() {
		if comp.Kind.IsHinted() {
			fields = append(fields, comp.Object.Name())
		}
	}
	return fields
}

// Read merges the readings of the normal children.
func (c *Composite) Read(ctx context.Context) (acquire.Reading, error) {
	reading := acquire.Reading{}
	for _, comp := range c.Components() {
		if !comp.Kind.IsNormal() {
			continue
		}
		r, err := comp.Object.Read(ctx)
		if err != nil {
			return nil, err
		}
		reading.Merge(r)
	}
	return reading, nil
}

// Describe merges the descriptions of the normal children.
func (c *Composite) Describe(ctx context.Context) (acquire.Description, error) {
	desc := acquire.Description{}
	for _, comp := range c.Components() {
		if !comp.Kind.IsNormal() {
			continue
		}
		d, err := comp.Object.Describe(ctx)
		if err != nil {
			return nil, err
		}
		desc.Merge(d)
	}
	return desc, nil
}

// ReadConfiguration merges the readings of the config children and the
// configuration of every child.
func (c *Composite) ReadConfiguration(ctx context.Context) (acquire.Reading, error) {
	reading := acquire.Reading{}
	for _, comp := range c.Components() {
		if comp.Kind.IsConfig() {
			r, err := comp.Object.Read(ctx)
			if err != nil {
				return nil, err
			}
			reading.Merge(r)
		}
		r, err := comp.Object.ReadConfiguration(ctx)
		if err != nil {
			return nil, err
		}
		reading.Merge(r)
	}
	return reading, nil
}

// DescribeConfiguration mirrors ReadConfiguration.
func (c *Composite) DescribeConfiguration(ctx context.Context) (acquire.Description, error) {
	desc := acquire.Description{}
	for _, comp := range c.Components() {
		if comp.Kind.IsConfig() {
			d, err := comp.Object.Describe(ctx)
			if err != nil {
				return nil, err
			}
			desc.Merge(d)
		}
		d, err := comp.Object.DescribeConfiguration(ctx)
		if err != nil {
			return nil, err
		}
		desc.Merge(d)
	}
	return desc, nil
}

var _ acquire.Readable = (*Composite)(nil)

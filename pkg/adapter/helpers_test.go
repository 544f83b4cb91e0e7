package adapter

import (
	"context"
	"fmt"

	"github.com/tangobridge/tangobridge/pkg/acquire"
	"github.com/tangobridge/tangobridge/pkg/tango"
)

// fakeFactory hands out preset proxies.
type fakeFactory struct {
	attrs   map[string]tango.AttributeProxy
	devices map[string]tango.DeviceProxy
}

func (f *fakeFactory) NewAttributeProxy(_ context.Context, name string) (tango.AttributeProxy, error) {
	if p, ok := f.attrs[name]; ok {
		return p, nil
	}
	return nil, tango.NewDevFailed(tango.ErrDeviceNotFound, fmt.Sprintf("no proxy for %s", name), "fakeFactory")
}

func (f *fakeFactory) NewDeviceProxy(_ context.Context, name string) (tango.DeviceProxy, error) {
	if p, ok := f.devices[name]; ok {
		return p, nil
	}
	return nil, tango.NewDevFailed(tango.ErrDeviceNotFound, fmt.Sprintf("no proxy for %s", name), "fakeFactory")
}

// stubReadable returns fixed results.
type stubReadable struct {
	name    string
	reading acquire.Reading
	config  acquire.Reading
	err     error
	reads   int
}

func newStub(name string, value any) *stubReadable {
	return &stubReadable{
		name:    name,
		reading: acquire.Reading{name: {Value: value, Timestamp: 1}},
		config:  acquire.Reading{},
	}
}

func (s *stubReadable) Name() string { return s.name }

func (s *stubReadable) Read(context.Context) (acquire.Reading, error) {
	s.reads++
	if s.err != nil {
		return nil, s.err
	}
	return s.reading, nil
}

func (s *stubReadable) Describe(context.Context) (acquire.Description, error) {
	if s.err != nil {
		return nil, s.err
	}
	desc := acquire.Description{}
	for k := range s.reading {
		desc[k] = placeholderKey([]int{})
	}
	return desc, nil
}

func (s *stubReadable) ReadConfiguration(context.Context) (acquire.Reading, error) {
	return s.config, nil
}

func (s *stubReadable) DescribeConfiguration(context.Context) (acquire.Description, error) {
	desc := acquire.Description{}
	for k := range s.config {
		desc[k] = placeholderKey([]int{})
	}
	return desc, nil
}

package tango

import (
	"context"
	"fmt"
	"strings"

	"github.com/tangobridge/tangobridge/pkg/log"
)

// AttributeProxy is a handle to a single remote attribute.
type AttributeProxy interface {
	// Name returns the attribute name (the last field of the full name).
	Name() string

	// DeviceName returns the owning device's name.
	DeviceName() string

	// Read reads the attribute's current value.
	Read(ctx context.Context) (*DeviceAttribute, error)

	// GetConfig returns the attribute's configuration.
	GetConfig(ctx context.Context) (*AttributeInfo, error)
}

// DeviceProxy is a handle to a remote device exposing several attributes.
type DeviceProxy interface {
	// DevName returns the device name (domain/family/member).
	DevName() string

	// GetAttributeList lists the device's attribute names.
	GetAttributeList(ctx context.Context) ([]string, error)

	// ReadAttributes reads the named attributes in one batch call.
	ReadAttributes(ctx context.Context, names []string) ([]*DeviceAttribute, error)

	// AttributeListQuery returns the configuration of every attribute.
	AttributeListQuery(ctx context.Context) ([]*AttributeInfo, error)
}

// proxyBase holds what both proxy types share.
type proxyBase struct {
	id     string
	client *Client
	dev    Device
}

// call traces fn as operation op on this proxy's device.
func call[T any](p *proxyBase, op log.Operation, attrs []string, fn func() (T, error)) (T, error) {
	return traced(p.client, p.id, p.dev.Name(), op, attrs, fn)
}

type attributeProxy struct {
	proxyBase
	attr string
}

func (p *attributeProxy) Name() string       { return p.attr }
func (p *attributeProxy) DeviceName() string { return p.dev.Name() }

func (p *attributeProxy) Read(ctx context.Context) (*DeviceAttribute, error) {
	names := []string{p.attr}
	return call(&p.proxyBase, log.OpRead, names, func() (*DeviceAttribute, error) {
		attrs, err := p.dev.ReadAttributes(ctx, names)
		if err != nil {
			return nil, err
		}
		if len(attrs) != 1 {
			return nil, NewDevFailed(ErrAttributeNotFound,
				fmt.Sprintf("device returned %d readings for %s", len(attrs), p.attr), "AttributeProxy.Read")
		}
		return attrs[0], nil
	})
}

func (p *attributeProxy) GetConfig(ctx context.Context) (*AttributeInfo, error) {
	return call(&p.proxyBase, log.OpGetConfig, []string{p.attr}, func() (*AttributeInfo, error) {
		infos, err := p.dev.AttributeInfos(ctx)
		if err != nil {
			return nil, err
		}
		for _, info := range infos {
			if strings.EqualFold(info.Name, p.attr) {
				return info, nil
			}
		}
		return nil, NewDevFailed(ErrAttributeNotFound,
			fmt.Sprintf("attribute %s not found on %s", p.attr, p.dev.Name()), "AttributeProxy.GetConfig")
	})
}

type deviceProxy struct {
	proxyBase
}

func (p *deviceProxy) DevName() string { return p.dev.Name() }

func (p *deviceProxy) GetAttributeList(ctx context.Context) ([]string, error) {
	return call(&p.proxyBase, log.OpGetAttributeList, nil, func() ([]string, error) {
		return p.dev.AttributeNames(ctx)
	})
}

func (p *deviceProxy) ReadAttributes(ctx context.Context, names []string) ([]*DeviceAttribute, error) {
	return call(&p.proxyBase, log.OpReadAttributes, names, func() ([]*DeviceAttribute, error) {
		return p.dev.ReadAttributes(ctx, names)
	})
}

func (p *deviceProxy) AttributeListQuery(ctx context.Context) ([]*AttributeInfo, error) {
	return call(&p.proxyBase, log.OpAttributeListQuery, nil, func() ([]*AttributeInfo, error) {
		return p.dev.AttributeInfos(ctx)
	})
}

// Compile-time interface satisfaction checks.
var (
	_ AttributeProxy = (*attributeProxy)(nil)
	_ DeviceProxy    = (*deviceProxy)(nil)
)

package tango

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tangobridge/tangobridge/pkg/log"
)

// Client creates proxies against a Backend.
type Client struct {
	backend Backend
	logger  *slog.Logger
	trace   log.Logger
	metrics *Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the operational logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTrace sets the proxy call trace logger.
func WithTrace(trace log.Logger) Option {
	return func(c *Client) {
		if trace != nil {
			c.trace = trace
		}
	}
}

// WithMetrics enables call metrics.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a client for the given backend.
func NewClient(backend Backend, opts ...Option) *Client {
	c := &Client{
		backend: backend,
		logger:  slog.Default(),
		trace:   log.NoopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewAttributeProxy creates a proxy for a full attribute name
// (domain/family/member/attribute). The owning device is imported
// immediately.
func (c *Client) NewAttributeProxy(ctx context.Context, name string) (AttributeProxy, error) {
	devName, attr, err := ParseAttributeName(name)
	if err != nil {
		return nil, err
	}
	base, err := c.importDevice(ctx, devName, []string{attr})
	if err != nil {
		return nil, err
	}
	return &attributeProxy{proxyBase: base, attr: attr}, nil
}

// NewDeviceProxy creates a proxy for a device name (domain/family/member).
// The device is imported immediately.
func (c *Client) NewDeviceProxy(ctx context.Context, name string) (DeviceProxy, error) {
	devName, err := ParseDeviceName(name)
	if err != nil {
		return nil, err
	}
	base, err := c.importDevice(ctx, devName, nil)
	if err != nil {
		return nil, err
	}
	return &deviceProxy{proxyBase: base}, nil
}

func (c *Client) importDevice(ctx context.Context, devName string, attrs []string) (proxyBase, error) {
	base := proxyBase{id: uuid.New().String(), client: c}

	dev, err := traced(c, base.id, devName, log.OpImport, attrs, func() (Device, error) {
		return c.backend.Import(ctx, devName)
	})
	if err != nil {
		c.logger.Warn("device import failed", "device", devName, "error", err)
		return proxyBase{}, err
	}

	base.dev = dev
	c.logger.Debug("device imported", "device", dev.Name(), "proxy_id", base.id)
	return base, nil
}

// traced runs fn, recording a request/reply pair in the trace log and the
// call in the metrics.
func traced[T any](c *Client, proxyID, device string, op log.Operation, attrs []string, fn func() (T, error)) (T, error) {
	c.trace.Log(log.Event{
		Timestamp:  time.Now(),
		ProxyID:    proxyID,
		Direction:  log.DirectionRequest,
		Operation:  op,
		Device:     device,
		Attributes: attrs,
	})

	start := time.Now()
	result, err := fn()
	elapsed := time.Since(start)

	reply := log.Event{
		Timestamp:  time.Now(),
		ProxyID:    proxyID,
		Direction:  log.DirectionReply,
		Operation:  op,
		Device:     device,
		Attributes: attrs,
		Duration:   elapsed,
	}
	if err != nil {
		reply.Error = &log.ErrorEventData{Message: err.Error()}
		var df *DevFailed
		if errors.As(err, &df) {
			reply.Error.Reason = df.Reason
		}
	} else {
		reply.Payload = payload(result)
	}
	c.trace.Log(reply)

	if c.metrics != nil {
		c.metrics.observe(op, err, elapsed)
	}

	return result, err
}

// payload summarizes a call result for the trace. Values are left out;
// only what identifies the shape of the reply is kept.
func payload(result any) any {
	switch r := result.(type) {
	case *DeviceAttribute:
		return map[string]any{
			"quality": r.Quality.String(),
			"dim_x":   r.DimX,
			"dim_y":   r.DimY,
		}
	case []*DeviceAttribute:
		qualities := make([]string, len(r))
		for i, a := range r {
			qualities[i] = a.Quality.String()
		}
		return map[string]any{"count": len(r), "quality": qualities}
	case *AttributeInfo:
		return map[string]any{"format": r.DataFormat.String(), "type": r.DataType.String()}
	case []*AttributeInfo:
		return map[string]any{"count": len(r)}
	case []string:
		return map[string]any{"count": len(r)}
	default:
		return nil
	}
}

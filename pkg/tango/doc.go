// Package tango is a client for control-system device proxies.
//
// Devices are addressed by three-part names (domain/family/member) and
// attributes by four-part names (domain/family/member/attribute). A name
// may carry a "tango://host:port/" prefix, which is stripped; the backend
// decides which control system the name resolves in.
//
// # Proxies
//
// Two proxy types are provided:
//
//	client := tango.NewClient(backend)
//
//	// Single attribute
//	ap, err := client.NewAttributeProxy(ctx, "sys/tg_test/1/double_scalar")
//	reading, err := ap.Read(ctx)
//	fmt.Println(ap.Name(), reading.Value, reading.Time.Seconds())
//
//	// Whole device
//	dp, err := client.NewDeviceProxy(ctx, "sys/tg_test/1")
//	names, err := dp.GetAttributeList(ctx)
//	readings, err := dp.ReadAttributes(ctx, []string{"ampli", "double_scalar"})
//	infos, err := dp.AttributeListQuery(ctx)
//
// Constructing a proxy imports the device, so an unknown device fails at
// construction time. Every call blocks until the backend replies.
//
// # Backends
//
// A Backend resolves device names to Devices. The devsim package provides
// an in-process simulated device server.
//
// # Errors
//
// Failures are reported as *DevFailed, which wraps one of the sentinel
// errors (ErrDeviceNotFound, ErrAttributeNotFound, ErrDeviceUnreachable,
// ErrInvalidName) so callers can use errors.Is.
package tango

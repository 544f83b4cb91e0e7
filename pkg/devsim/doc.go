// Package devsim implements an in-process simulated device server.
//
// It is the default tango.Backend: a Database of named Devices, each
// holding a set of Attributes with static configuration and a current
// value. Attributes can carry a read hook so every read yields a fresh
// value, which is how the TangoTest device produces waveforms.
//
//	db := devsim.NewDatabase()
//	_ = db.Add(devsim.NewTangoTest("sys/tg_test/1", time.Now))
//	client := tango.NewClient(db)
//
// # Dimensions
//
// Reads report actual dimensions the way a control system does: scalars
// are DimX=1, DimY=0; spectra are DimX=len; images are DimX=columns,
// DimY=rows. Configurations report MaxDimX=1 for scalars.
//
// # Failure injection
//
// Devices can be taken offline with SetOnline(false). Every call on an
// offline device fails with tango.ErrDeviceUnreachable.
package devsim

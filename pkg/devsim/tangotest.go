package devsim

import (
	"math"
	"time"

	"github.com/tangobridge/tangobridge/pkg/tango"
)

// TangoTest dimensions.
const (
	SpectrumMaxLen  = 4096
	SpectrumLen     = 256
	ImageMaxDim     = 251
	ImageWidth      = 32
	ImageHeight     = 24
	DefaultTestName = "sys/tg_test/1"
)

// NewTangoTest creates the standard test device: a set of scalar, spectrum
// and image attributes whose values follow waveforms scaled by the
// writable "ampli" attribute. A nil clock uses time.Now.
func NewTangoTest(name string, clock func() time.Time) *Device {
	d := NewDevice(name, clock)

	ampli := NewAttribute(&AttributeMetadata{
		Name:        "ampli",
		Format:      tango.Scalar,
		Type:        tango.DevDouble,
		Writable:    tango.ReadWrite,
		Default:     1.0,
		Description: "Amplitude applied to the generated waveforms",
	})
	amplitude := func() float64 {
		if v, ok := ampli.Value().(float64); ok {
			return v
		}
		return 1
	}
	phase := func(now time.Time) float64 {
		return float64(now.UnixNano()) / 1e9
	}

	scalar := func(name string, typ tango.CmdArgType, unit string, def any, hook ReadHook) *Attribute {
		a := NewAttribute(&AttributeMetadata{
			Name:     name,
			Format:   tango.Scalar,
			Type:     typ,
			Writable: tango.ReadWrite,
			Default:  def,
			Unit:     unit,
		})
		if hook != nil {
			a.SetReadHook(hook)
		}
		return a
	}

	attrs := []*Attribute{
		ampli,
		scalar("boolean_scalar", tango.DevBoolean, "", true, func(now time.Time) any {
			return now.Unix()%2 == 0
		}),
		scalar("double_scalar", tango.DevDouble, "", 0.0, func(now time.Time) any {
			return amplitude() * math.Sin(phase(now))
		}),
		scalar("float_scalar", tango.DevFloat, "", float32(0), func(now time.Time) any {
			return float32(amplitude() * math.Cos(phase(now)))
		}),
		scalar("long_scalar", tango.DevLong, "", int32(0), func(now time.Time) any {
			return int32(math.Round(100 * amplitude() * math.Sin(phase(now))))
		}),
		scalar("short_scalar", tango.DevShort, "", int16(0), func(now time.Time) any {
			return int16(math.Round(10 * amplitude() * math.Cos(phase(now))))
		}),
		scalar("string_scalar", tango.DevString, "", "Default string", nil),
		NewAttribute(&AttributeMetadata{
			Name:     "double_spectrum",
			Format:   tango.Spectrum,
			Type:     tango.DevDouble,
			Writable: tango.Read,
			MaxDimX:  SpectrumMaxLen,
		}),
		NewAttribute(&AttributeMetadata{
			Name:     "float_spectrum",
			Format:   tango.Spectrum,
			Type:     tango.DevFloat,
			Writable: tango.Read,
			MaxDimX:  SpectrumMaxLen,
		}),
		NewAttribute(&AttributeMetadata{
			Name:     "long_spectrum",
			Format:   tango.Spectrum,
			Type:     tango.DevLong,
			Writable: tango.Read,
			MaxDimX:  SpectrumMaxLen,
		}),
		NewAttribute(&AttributeMetadata{
			Name:     "double_image",
			Format:   tango.Image,
			Type:     tango.DevDouble,
			Writable: tango.Read,
			MaxDimX:  ImageMaxDim,
			MaxDimY:  ImageMaxDim,
		}),
		NewAttribute(&AttributeMetadata{
			Name:     "State",
			Format:   tango.Scalar,
			Type:     tango.DevState,
			Writable: tango.Read,
			Default:  tango.StateRunning,
		}),
		NewAttribute(&AttributeMetadata{
			Name:     "Status",
			Format:   tango.Scalar,
			Type:     tango.DevString,
			Writable: tango.Read,
			Default:  "The device is in RUNNING state.",
		}),
	}

	for _, a := range attrs {
		switch a.Name() {
		case "double_spectrum":
			a.SetReadHook(func(now time.Time) any {
				return sineSpectrum(SpectrumLen, amplitude(), phase(now))
			})
		case "float_spectrum":
			a.SetReadHook(func(now time.Time) any {
				src := sineSpectrum(SpectrumLen, amplitude(), phase(now))
				out := make([]float32, len(src))
				for i, v := range src {
					out[i] = float32(v)
				}
				return out
			})
		case "long_spectrum":
			a.SetReadHook(func(now time.Time) any {
				src := sineSpectrum(SpectrumLen, amplitude(), phase(now))
				out := make([]int32, len(src))
				for i, v := range src {
					out[i] = int32(math.Round(100 * v))
				}
				return out
			})
		case "double_image":
			a.SetReadHook(func(now time.Time) any {
				return sineImage(ImageWidth, ImageHeight, amplitude(), phase(now))
			})
		}
		// Names in this list are unique.
		_ = d.AddAttribute(a)
	}

	return d
}

func sineSpectrum(n int, amp, phase float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amp * math.Sin(phase+2*math.Pi*float64(i)/float64(n))
	}
	return out
}

func sineImage(width, height int, amp, phase float64) [][]float64 {
	out := make([][]float64, height)
	for y := range out {
		row := make([]float64, width)
		for x := range row {
			row[x] = amp * math.Sin(phase+float64(x)/4) * math.Cos(float64(y)/4)
		}
		out[y] = row
	}
	return out
}

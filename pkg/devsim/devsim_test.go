package devsim

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tangobridge/tangobridge/pkg/tango"
)

var fixedTime = time.Date(2026, 5, 4, 10, 0, 0, 250000000, time.UTC)

func fixedClock() time.Time { return fixedTime }

func TestAttributeScalarValidation(t *testing.T) {
	attr := NewAttribute(&AttributeMetadata{
		Name:     "x",
		Format:   tango.Scalar,
		Type:     tango.DevDouble,
		Writable: tango.ReadWrite,
		Default:  1.0,
	})

	t.Run("AcceptsFloat64", func(t *testing.T) {
		if err := attr.SetValue(2.5); err != nil {
			t.Fatalf("SetValue failed: %v", err)
		}
		if attr.Value() != 2.5 {
			t.Errorf("expected 2.5, got %v", attr.Value())
		}
	})

	t.Run("RejectsFloat32", func(t *testing.T) {
		err := attr.SetValue(float32(1))
		if !errors.Is(err, ErrAttributeValueType) {
			t.Errorf("expected ErrAttributeValueType, got %v", err)
		}
	})

	t.Run("RejectsNil", func(t *testing.T) {
		if err := attr.SetValue(nil); !errors.Is(err, ErrAttributeValueType) {
			t.Errorf("expected ErrAttributeValueType, got %v", err)
		}
	})
}

func TestAttributeWriteString(t *testing.T) {
	tests := []struct {
		typ  tango.CmdArgType
		text string
		want any
	}{
		{tango.DevDouble, "2.5", 2.5},
		{tango.DevFloat, "-1.5", float32(-1.5)},
		{tango.DevLong, "42", int32(42)},
		{tango.DevShort, "-7", int16(-7)},
		{tango.DevULong64, "9", uint64(9)},
		{tango.DevUChar, "255", uint8(255)},
		{tango.DevBoolean, "true", true},
		{tango.DevString, "hello", "hello"},
		{tango.DevState, "fault", tango.StateFault},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			attr := NewAttribute(&AttributeMetadata{
				Name:     "x",
				Format:   tango.Scalar,
				Type:     tt.typ,
				Writable: tango.ReadWrite,
			})
			if err := attr.WriteString(tt.text); err != nil {
				t.Fatalf("WriteString(%q) failed: %v", tt.text, err)
			}
			if attr.Value() != tt.want {
				t.Errorf("value = %#v, want %#v", attr.Value(), tt.want)
			}
		})
	}

	t.Run("OutOfRange", func(t *testing.T) {
		attr := NewAttribute(&AttributeMetadata{Name: "x", Format: tango.Scalar, Type: tango.DevUChar, Writable: tango.ReadWrite})
		if err := attr.WriteString("256"); !errors.Is(err, ErrAttributeValueType) {
			t.Errorf("expected ErrAttributeValueType, got %v", err)
		}
	})

	t.Run("Spectrum", func(t *testing.T) {
		attr := NewAttribute(&AttributeMetadata{Name: "s", Format: tango.Spectrum, Type: tango.DevDouble, Writable: tango.ReadWrite})
		if err := attr.WriteString("1"); !errors.Is(err, ErrAttributeValueType) {
			t.Errorf("expected ErrAttributeValueType, got %v", err)
		}
	})

	t.Run("ReadOnly", func(t *testing.T) {
		attr := NewAttribute(&AttributeMetadata{Name: "ro", Format: tango.Scalar, Type: tango.DevDouble, Writable: tango.Read})
		if err := attr.WriteString("1"); !errors.Is(err, ErrAttributeNotWritable) {
			t.Errorf("expected ErrAttributeNotWritable, got %v", err)
		}
	})
}

func TestAttributeReadOnly(t *testing.T) {
	attr := NewAttribute(&AttributeMetadata{
		Name:     "ro",
		Format:   tango.Scalar,
		Type:     tango.DevString,
		Writable: tango.Read,
	})

	if err := attr.SetValue("x"); err != ErrAttributeNotWritable {
		t.Errorf("expected ErrAttributeNotWritable, got %v", err)
	}
	if err := attr.SetValueInternal("internal"); err != nil {
		t.Fatalf("SetValueInternal failed: %v", err)
	}
	if attr.Value() != "internal" {
		t.Errorf("expected 'internal', got %v", attr.Value())
	}
}

func TestAttributeDimensionLimits(t *testing.T) {
	spectrum := NewAttribute(&AttributeMetadata{
		Name:     "s",
		Format:   tango.Spectrum,
		Type:     tango.DevLong,
		Writable: tango.ReadWrite,
		MaxDimX:  3,
	})
	image := NewAttribute(&AttributeMetadata{
		Name:     "i",
		Format:   tango.Image,
		Type:     tango.DevDouble,
		Writable: tango.ReadWrite,
		MaxDimX:  2,
		MaxDimY:  2,
	})

	tests := []struct {
		name    string
		attr    *Attribute
		value   any
		wantErr error
	}{
		{"spectrum fits", spectrum, []int32{1, 2, 3}, nil},
		{"spectrum too long", spectrum, []int32{1, 2, 3, 4}, ErrAttributeDimension},
		{"spectrum wrong element", spectrum, []int64{1}, ErrAttributeValueType},
		{"image fits", image, [][]float64{{1, 2}, {3, 4}}, nil},
		{"image too many rows", image, [][]float64{{1}, {2}, {3}}, ErrAttributeDimension},
		{"image too wide", image, [][]float64{{1, 2, 3}}, ErrAttributeDimension},
		{"image flat", image, []float64{1, 2}, ErrAttributeValueType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.attr.SetValue(tt.value)
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAttributeReadDimensions(t *testing.T) {
	tests := []struct {
		name     string
		meta     AttributeMetadata
		value    any
		wantX    int
		wantY    int
		wantMaxX int
		wantMaxY int
	}{
		{"scalar", AttributeMetadata{Format: tango.Scalar, Type: tango.DevDouble}, 1.0, 1, 0, 1, 0},
		{"spectrum", AttributeMetadata{Format: tango.Spectrum, Type: tango.DevDouble, MaxDimX: 10}, []float64{1, 2, 3}, 3, 0, 10, 0},
		{"image", AttributeMetadata{Format: tango.Image, Type: tango.DevDouble, MaxDimX: 10, MaxDimY: 15},
			[][]float64{{1, 2}, {3, 4}, {5, 6}}, 2, 3, 10, 15},
		{"empty image", AttributeMetadata{Format: tango.Image, Type: tango.DevDouble, MaxDimX: 4, MaxDimY: 4}, [][]float64{}, 0, 0, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := tt.meta
			meta.Name = tt.name
			meta.Writable = tango.ReadWrite
			attr := NewAttribute(&meta)
			if err := attr.SetValue(tt.value); err != nil {
				t.Fatalf("SetValue failed: %v", err)
			}

			r := attr.read(fixedTime)
			if r.DimX != tt.wantX || r.DimY != tt.wantY {
				t.Errorf("dims = (%d, %d), want (%d, %d)", r.DimX, r.DimY, tt.wantX, tt.wantY)
			}
			if r.Time != tango.NewTimeVal(fixedTime) {
				t.Errorf("time = %+v, want %+v", r.Time, tango.NewTimeVal(fixedTime))
			}

			info := attr.Info()
			if info.MaxDimX != tt.wantMaxX || info.MaxDimY != tt.wantMaxY {
				t.Errorf("max dims = (%d, %d), want (%d, %d)", info.MaxDimX, info.MaxDimY, tt.wantMaxX, tt.wantMaxY)
			}
			if info.Label != tt.name {
				t.Errorf("label = %q, want %q", info.Label, tt.name)
			}
		})
	}
}

func TestAttributeReadHookAndQuality(t *testing.T) {
	attr := NewAttribute(&AttributeMetadata{
		Name:     "h",
		Format:   tango.Scalar,
		Type:     tango.DevDouble,
		Writable: tango.ReadWrite,
		Default:  9.0,
	})
	attr.SetReadHook(func(now time.Time) any { return 42.0 })
	attr.SetQuality(tango.AttrAlarm)

	r := attr.read(fixedTime)
	if r.Value != 42.0 {
		t.Errorf("expected hook value 42, got %v", r.Value)
	}
	if r.Quality != tango.AttrAlarm {
		t.Errorf("expected ATTR_ALARM, got %s", r.Quality)
	}

	attr.SetReadHook(nil)
	if r := attr.read(fixedTime); r.Value != 9.0 {
		t.Errorf("expected stored value 9, got %v", r.Value)
	}
}

func TestDeviceReadAttributes(t *testing.T) {
	ctx := context.Background()
	dev := NewTangoTest("Sys/TG_Test/1", fixedClock)

	if dev.Name() != "sys/tg_test/1" {
		t.Errorf("expected lower-cased name, got %s", dev.Name())
	}

	t.Run("BatchInRequestOrder", func(t *testing.T) {
		got, err := dev.ReadAttributes(ctx, []string{"double_scalar", "AMPLI"})
		if err != nil {
			t.Fatalf("ReadAttributes failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 readings, got %d", len(got))
		}
		if got[0].Name != "double_scalar" || got[1].Name != "AMPLI" {
			t.Errorf("unexpected order: %s, %s", got[0].Name, got[1].Name)
		}
		if got[1].Value != 1.0 {
			t.Errorf("expected ampli 1.0, got %v", got[1].Value)
		}
	})

	t.Run("UnknownAttributeFailsBatch", func(t *testing.T) {
		_, err := dev.ReadAttributes(ctx, []string{"ampli", "nope"})
		if !errors.Is(err, tango.ErrAttributeNotFound) {
			t.Errorf("expected ErrAttributeNotFound, got %v", err)
		}
	})

	t.Run("EmptyBatch", func(t *testing.T) {
		got, err := dev.ReadAttributes(ctx, []string{})
		if err != nil {
			t.Fatalf("ReadAttributes failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no readings, got %d", len(got))
		}
	})

	t.Run("Offline", func(t *testing.T) {
		dev.SetOnline(false)
		defer dev.SetOnline(true)

		if _, err := dev.ReadAttributes(ctx, []string{"ampli"}); !errors.Is(err, tango.ErrDeviceUnreachable) {
			t.Errorf("ReadAttributes: expected ErrDeviceUnreachable, got %v", err)
		}
		if _, err := dev.AttributeNames(ctx); !errors.Is(err, tango.ErrDeviceUnreachable) {
			t.Errorf("AttributeNames: expected ErrDeviceUnreachable, got %v", err)
		}
		if _, err := dev.AttributeInfos(ctx); !errors.Is(err, tango.ErrDeviceUnreachable) {
			t.Errorf("AttributeInfos: expected ErrDeviceUnreachable, got %v", err)
		}
	})

	t.Run("Cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := dev.ReadAttributes(cctx, []string{"ampli"}); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestDeviceDuplicateAttribute(t *testing.T) {
	dev := NewDevice("a/b/c", nil)
	meta := &AttributeMetadata{Name: "x", Format: tango.Scalar, Type: tango.DevDouble}
	if err := dev.AddAttribute(NewAttribute(meta)); err != nil {
		t.Fatalf("AddAttribute failed: %v", err)
	}
	if err := dev.AddAttribute(NewAttribute(&AttributeMetadata{Name: "X"})); !errors.Is(err, ErrDuplicateAttribute) {
		t.Errorf("expected ErrDuplicateAttribute, got %v", err)
	}
}

func TestTangoTestAttributes(t *testing.T) {
	ctx := context.Background()
	dev := NewTangoTest(DefaultTestName, fixedClock)

	names, err := dev.AttributeNames(ctx)
	if err != nil {
		t.Fatalf("AttributeNames failed: %v", err)
	}
	if len(names) != 13 {
		t.Errorf("expected 13 attributes, got %d: %v", len(names), names)
	}
	if names[0] != "ampli" {
		t.Errorf("expected ampli first, got %s", names[0])
	}

	infos, err := dev.AttributeInfos(ctx)
	if err != nil {
		t.Fatalf("AttributeInfos failed: %v", err)
	}
	byName := make(map[string]*tango.AttributeInfo)
	for _, info := range infos {
		byName[info.Name] = info
	}

	if info := byName["double_spectrum"]; info.MaxDimX != SpectrumMaxLen || info.MaxDimY != 0 {
		t.Errorf("double_spectrum max dims = (%d, %d)", info.MaxDimX, info.MaxDimY)
	}
	if info := byName["double_image"]; info.MaxDimX != ImageMaxDim || info.MaxDimY != ImageMaxDim {
		t.Errorf("double_image max dims = (%d, %d)", info.MaxDimX, info.MaxDimY)
	}

	readings, err := dev.ReadAttributes(ctx, []string{"double_spectrum", "double_image", "State"})
	if err != nil {
		t.Fatalf("ReadAttributes failed: %v", err)
	}
	if readings[0].DimX != SpectrumLen {
		t.Errorf("spectrum dim_x = %d, want %d", readings[0].DimX, SpectrumLen)
	}
	if readings[1].DimX != ImageWidth || readings[1].DimY != ImageHeight {
		t.Errorf("image dims = (%d, %d)", readings[1].DimX, readings[1].DimY)
	}
	if readings[2].Value != tango.StateRunning {
		t.Errorf("State = %v, want RUNNING", readings[2].Value)
	}
}

func TestTangoTestAmpliScalesWaveform(t *testing.T) {
	ctx := context.Background()
	dev := NewTangoTest(DefaultTestName, fixedClock)

	before, _ := dev.ReadAttributes(ctx, []string{"double_scalar"})

	ampli, err := dev.Attribute("ampli")
	if err != nil {
		t.Fatalf("Attribute failed: %v", err)
	}
	if err := ampli.SetValue(3.0); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}

	after, _ := dev.ReadAttributes(ctx, []string{"double_scalar"})

	b := before[0].Value.(float64)
	a := after[0].Value.(float64)
	if b == 0 {
		t.Skip("waveform at zero crossing")
	}
	if diff := a - 3*b; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected %v, got %v", 3*b, a)
	}
}

func TestDatabaseImport(t *testing.T) {
	ctx := context.Background()
	db := NewDatabase()
	dev := NewTangoTest(DefaultTestName, fixedClock)

	if err := db.Add(dev); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := db.Add(NewDevice("SYS/tg_test/1", nil)); !errors.Is(err, ErrDuplicateDevice) {
		t.Errorf("expected ErrDuplicateDevice, got %v", err)
	}

	t.Run("Found", func(t *testing.T) {
		got, err := db.Import(ctx, "sys/tg_test/1")
		if err != nil {
			t.Fatalf("Import failed: %v", err)
		}
		if got.Name() != "sys/tg_test/1" {
			t.Errorf("unexpected device %s", got.Name())
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := db.Import(ctx, "sys/tg_test/2")
		var df *tango.DevFailed
		if !errors.As(err, &df) {
			t.Fatalf("expected *DevFailed, got %T", err)
		}
		if df.Reason != tango.ReasonDeviceNotDefined {
			t.Errorf("reason = %s", df.Reason)
		}
	})

	t.Run("Offline", func(t *testing.T) {
		dev.SetOnline(false)
		defer dev.SetOnline(true)
		if _, err := db.Import(ctx, "sys/tg_test/1"); !errors.Is(err, tango.ErrDeviceUnreachable) {
			t.Errorf("expected ErrDeviceUnreachable, got %v", err)
		}
	})

	t.Run("Names", func(t *testing.T) {
		_ = db.Add(NewDevice("a/b/c", nil))
		names := db.Names()
		if len(names) != 2 || names[0] != "a/b/c" {
			t.Errorf("unexpected names %v", names)
		}
		if _, ok := db.Device("A/B/C"); !ok {
			t.Error("expected case-insensitive lookup")
		}
	})
}

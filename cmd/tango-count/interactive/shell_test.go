package interactive

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tangobridge/tangobridge/pkg/adapter"
	"github.com/tangobridge/tangobridge/pkg/config"
	"github.com/tangobridge/tangobridge/pkg/devsim"
	"github.com/tangobridge/tangobridge/pkg/tango"
)

type countCall struct {
	num   int
	delay time.Duration
	names []string
}

type fakeCounter struct {
	calls []countCall
	err   error
}

func (f *fakeCounter) Count(_ context.Context, num int, delay time.Duration, names ...string) error {
	f.calls = append(f.calls, countCall{num, delay, names})
	return f.err
}

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer, *fakeCounter) {
	t.Helper()
	return newShellFor(t, config.Default())
}

func newShellFor(t *testing.T, cfg *config.Config) (*Shell, *bytes.Buffer, *fakeCounter) {
	t.Helper()

	db := devsim.NewDatabase()
	clock := func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	if err := db.Add(devsim.NewTangoTest(devsim.DefaultTestName, clock)); err != nil {
		t.Fatalf("failed to add device: %v", err)
	}
	reg, err := adapter.FromConfig(context.Background(), tango.NewClient(db), cfg)
	if err != nil {
		t.Fatalf("failed to build objects: %v", err)
	}

	var buf bytes.Buffer
	fc := &fakeCounter{}
	return &Shell{registry: reg, db: db, counter: fc, out: &buf}, &buf, fc
}

func TestExecQuit(t *testing.T) {
	sh, _, _ := newTestShell(t)
	for _, cmd := range []string{"quit", "exit", "q", "QUIT"} {
		if sh.exec(context.Background(), cmd) {
			t.Errorf("%q should exit", cmd)
		}
	}
	if !sh.exec(context.Background(), "   ") {
		t.Error("blank line should not exit")
	}
}

func TestExecUnknown(t *testing.T) {
	sh, buf, _ := newTestShell(t)
	sh.exec(context.Background(), "frobnicate")
	if !strings.Contains(buf.String(), "Unknown command: frobnicate") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestList(t *testing.T) {
	sh, buf, _ := newTestShell(t)
	sh.exec(context.Background(), "list")
	out := buf.String()

	for _, want := range []string{
		"tango_attr",
		"attribute sys/tg_test/1/double_scalar (normal)",
		"composite of dou, flo",
		"device sys/tg_test/1 reading ampli, double_scalar",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestListDeviceReadSubsets(t *testing.T) {
	sh, buf, _ := newShellFor(t, &config.Config{
		Devices: []config.DeviceConfig{
			{Name: "whole", Device: "sys/tg_test/1"},
			{Name: "nothing", Device: "sys/tg_test/1", ReadAttrs: []string{}},
		},
	})
	sh.exec(context.Background(), "list")
	out := buf.String()

	if !strings.Contains(out, "device sys/tg_test/1 reading all ") {
		t.Errorf("whole device not summarized as reading all:\n%s", out)
	}
	if strings.Count(out, "reading all") != 1 {
		t.Errorf("empty subset summarized as reading all:\n%s", out)
	}
}

func TestRead(t *testing.T) {
	sh, buf, _ := newTestShell(t)
	sh.exec(context.Background(), "read device_tango")
	out := buf.String()

	if !strings.Contains(out, "ampli") || !strings.Contains(out, "double_scalar") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestReadErrors(t *testing.T) {
	sh, buf, _ := newTestShell(t)

	sh.exec(context.Background(), "read")
	if !strings.Contains(buf.String(), "Usage: read <obj>") {
		t.Errorf("expected usage, got:\n%s", buf.String())
	}

	buf.Reset()
	sh.exec(context.Background(), "read nope")
	if !strings.Contains(buf.String(), "object not found") {
		t.Errorf("expected not found, got:\n%s", buf.String())
	}
}

func TestDescribe(t *testing.T) {
	sh, buf, _ := newTestShell(t)
	sh.exec(context.Background(), "describe tango_attr")
	if !strings.Contains(buf.String(), "double_scalar") || !strings.Contains(buf.String(), "dtype=number") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestConfigEmpty(t *testing.T) {
	sh, buf, _ := newTestShell(t)
	sh.exec(context.Background(), "config tango_attr")
	if !strings.Contains(buf.String(), "(no configuration)") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestCount(t *testing.T) {
	sh, _, fc := newTestShell(t)
	sh.exec(context.Background(), "count 3 10ms tango_attr some_name")

	if len(fc.calls) != 1 {
		t.Fatalf("expected 1 count, got %d", len(fc.calls))
	}
	c := fc.calls[0]
	if c.num != 3 || c.delay != 10*time.Millisecond {
		t.Errorf("unexpected call %+v", c)
	}
	if strings.Join(c.names, ",") != "tango_attr,some_name" {
		t.Errorf("unexpected names %v", c.names)
	}
}

func TestCountEachObject(t *testing.T) {
	sh, _, fc := newTestShell(t)
	sh.exec(context.Background(), "count 2")

	if len(fc.calls) != 4 {
		t.Fatalf("expected 4 counts, got %d", len(fc.calls))
	}
	for i, name := range []string{"tango_attr", "some_name", "another_name", "device_tango"} {
		if len(fc.calls[i].names) != 1 || fc.calls[i].names[0] != name {
			t.Errorf("call %d: names %v, want [%s]", i, fc.calls[i].names, name)
		}
	}
}

func TestCountInvalid(t *testing.T) {
	sh, buf, fc := newTestShell(t)
	sh.exec(context.Background(), "count zero")
	sh.exec(context.Background(), "count 0")
	if len(fc.calls) != 0 {
		t.Errorf("expected no counts, got %d", len(fc.calls))
	}
	if strings.Count(buf.String(), "Invalid count") != 2 {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestCountError(t *testing.T) {
	sh, buf, fc := newTestShell(t)
	fc.err = errors.New("boom")
	sh.exec(context.Background(), "count 1 tango_attr")
	if !strings.Contains(buf.String(), "Error: boom") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestOfflineOnline(t *testing.T) {
	sh, buf, _ := newTestShell(t)
	ctx := context.Background()

	sh.exec(ctx, "offline sys/tg_test/1")
	if !strings.Contains(buf.String(), "sys/tg_test/1 is offline") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}

	buf.Reset()
	sh.exec(ctx, "read tango_attr")
	if !strings.Contains(buf.String(), "Error:") {
		t.Errorf("read of offline device should fail:\n%s", buf.String())
	}

	buf.Reset()
	sh.exec(ctx, "online sys/tg_test/1")
	sh.exec(ctx, "read tango_attr")
	out := buf.String()
	if !strings.Contains(out, "is online") || strings.Contains(out, "Error:") {
		t.Errorf("unexpected output:\n%s", out)
	}

	buf.Reset()
	sh.exec(ctx, "offline sys/nope/1")
	if !strings.Contains(buf.String(), "Unknown device") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestWriteScalesWaveform(t *testing.T) {
	sh, buf, _ := newTestShell(t)
	ctx := context.Background()

	sh.exec(ctx, "write sys/tg_test/1 ampli 2.5")
	if !strings.Contains(buf.String(), "ampli = 2.5") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	dev, _ := sh.db.Device("sys/tg_test/1")
	attr, err := dev.Attribute("ampli")
	if err != nil {
		t.Fatalf("Attribute failed: %v", err)
	}
	if attr.Value() != 2.5 {
		t.Errorf("ampli = %v, want 2.5", attr.Value())
	}

	buf.Reset()
	sh.exec(ctx, "read device_tango")
	if !strings.Contains(buf.String(), "2.5") {
		t.Errorf("read after write did not report the new value:\n%s", buf.String())
	}
}

func TestWriteErrors(t *testing.T) {
	sh, buf, _ := newTestShell(t)
	ctx := context.Background()

	for _, tt := range []struct {
		line string
		want string
	}{
		{"write sys/tg_test/1 ampli", "Usage: write"},
		{"write sys/nope/1 ampli 1", "Unknown device"},
		{"write sys/tg_test/1 nope 1", "not found"},
		{"write sys/tg_test/1 ampli lots", "invalid value type"},
		{"write sys/tg_test/1 State ON", "not writable"},
		{"write sys/tg_test/1 double_spectrum 1", "SPECTRUM"},
	} {
		buf.Reset()
		sh.exec(ctx, tt.line)
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("%q: output missing %q:\n%s", tt.line, tt.want, buf.String())
		}
	}
}

func TestQuality(t *testing.T) {
	sh, buf, _ := newTestShell(t)
	ctx := context.Background()

	sh.exec(ctx, "quality sys/tg_test/1 ampli alarm")
	if !strings.Contains(buf.String(), "ampli quality is ATTR_ALARM") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	dev, _ := sh.db.Device("sys/tg_test/1")
	got, err := dev.ReadAttributes(ctx, []string{"ampli"})
	if err != nil {
		t.Fatalf("ReadAttributes failed: %v", err)
	}
	if got[0].Quality != tango.AttrAlarm {
		t.Errorf("quality = %s, want ATTR_ALARM", got[0].Quality)
	}

	buf.Reset()
	sh.exec(ctx, "quality sys/tg_test/1 ampli superb")
	if !strings.Contains(buf.String(), "Unknown quality: superb") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestFormatValue(t *testing.T) {
	if got := formatValue(1.5); got != "1.5" {
		t.Errorf("formatValue = %q", got)
	}
	long := formatValue(make([]float64, 100))
	if len(long) != maxValueWidth || !strings.HasSuffix(long, "...") {
		t.Errorf("formatValue did not truncate: %q", long)
	}
}

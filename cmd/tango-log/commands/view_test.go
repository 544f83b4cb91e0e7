package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tangobridge/tangobridge/pkg/log"
	"github.com/tangobridge/tangobridge/pkg/version"
)

func TestFormatEvent(t *testing.T) {
	events := sampleEvents()

	var buf bytes.Buffer
	formatEvent(&buf, events[1])
	out := buf.String()

	for _, want := range []string{
		"2026-03-02T09:30:00.002000Z",
		"[proxy:aaaaaaaa]",
		"REPLY",
		"read sys/tg_test/1",
		"Attributes: double_scalar",
		"Duration: 2.000ms",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatEventRequestHasNoDuration(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[0])
	if strings.Contains(buf.String(), "Duration") {
		t.Errorf("request should not print a duration:\n%s", buf.String())
	}
}

func TestFormatEventError(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[3])
	want := "Error: attribute nope not found (API_AttrNotFound)"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("output missing %q:\n%s", want, buf.String())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Nanosecond, "0.500us"},
		{1500 * time.Microsecond, "1.500ms"},
		{2 * time.Second, "2.000s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestShortenID(t *testing.T) {
	if got := shortenID("0123456789"); got != "01234567" {
		t.Errorf("shortenID = %q", got)
	}
	if got := shortenID("abc"); got != "abc" {
		t.Errorf("shortenID = %q", got)
	}
}

func TestRunView(t *testing.T) {
	path := createTestTraceFile(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunView(path, FilterOptions{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	if got := strings.Count(buf.String(), "[proxy:"); got != 4 {
		t.Errorf("expected 4 events, got %d", got)
	}
}

func TestRunViewFiltered(t *testing.T) {
	path := createTestTraceFile(t, sampleEvents())

	var buf bytes.Buffer
	opts := FilterOptions{Operation: "read_attributes", Direction: "reply"}
	if err := RunView(path, opts, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	out := buf.String()
	if got := strings.Count(out, "[proxy:"); got != 1 {
		t.Fatalf("expected 1 event, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "bbbbbbbb") {
		t.Errorf("wrong event selected:\n%s", out)
	}
}

func TestRunViewMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := RunView("/nonexistent/trace.tlog", FilterOptions{}, &buf); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunViewBadFilter(t *testing.T) {
	path := createTestTraceFile(t, sampleEvents())
	var buf bytes.Buffer
	if err := RunView(path, FilterOptions{Operation: "write"}, &buf); err == nil {
		t.Error("expected error for unknown operation")
	}
}


func TestRunViewRejectsIncompatibleTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.tlog")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	enc := log.NewEncoder(f)
	if err := enc.Encode(log.Header{Format: "2.0"}); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	for _, e := range sampleEvents() {
		if err := enc.Encode(e); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}
	f.Close()

	var buf bytes.Buffer
	err = RunView(path, FilterOptions{}, &buf)
	if !errors.Is(err, version.ErrIncompatibleFormat) {
		t.Fatalf("RunView error = %v, want ErrIncompatibleFormat", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got:\n%s", buf.String())
	}

	if err := RunStats(path, &buf); !errors.Is(err, version.ErrIncompatibleFormat) {
		t.Errorf("RunStats error = %v, want ErrIncompatibleFormat", err)
	}
}

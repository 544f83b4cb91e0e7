package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/tangobridge/tangobridge/pkg/log"
)

func createTestTraceFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.tlog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("failed to close logger: %v", err)
	}
	return path
}

var testTime = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

// sampleEvents is one successful read and one failed batch read.
func sampleEvents() []log.Event {
	return []log.Event{
		{
			Timestamp:  testTime,
			ProxyID:    "aaaaaaaa-1111",
			Direction:  log.DirectionRequest,
			Operation:  log.OpRead,
			Device:     "sys/tg_test/1",
			Attributes: []string{"double_scalar"},
		},
		{
			Timestamp:  testTime.Add(2 * time.Millisecond),
			ProxyID:    "aaaaaaaa-1111",
			Direction:  log.DirectionReply,
			Operation:  log.OpRead,
			Device:     "sys/tg_test/1",
			Attributes: []string{"double_scalar"},
			Duration:   2 * time.Millisecond,
		},
		{
			Timestamp:  testTime.Add(time.Second),
			ProxyID:    "bbbbbbbb-2222",
			Direction:  log.DirectionRequest,
			Operation:  log.OpReadAttributes,
			Device:     "sys/tg_test/2",
			Attributes: []string{"ampli", "nope"},
		},
		{
			Timestamp:  testTime.Add(time.Second + 4*time.Millisecond),
			ProxyID:    "bbbbbbbb-2222",
			Direction:  log.DirectionReply,
			Operation:  log.OpReadAttributes,
			Device:     "sys/tg_test/2",
			Attributes: []string{"ampli", "nope"},
			Duration:   4 * time.Millisecond,
			Error: &log.ErrorEventData{
				Message: "attribute nope not found",
				Reason:  "API_AttrNotFound",
			},
		},
	}
}

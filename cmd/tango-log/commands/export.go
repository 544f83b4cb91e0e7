package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tangobridge/tangobridge/pkg/log"
)

// exportEvent is the JSON representation of a trace event.
type exportEvent struct {
	Timestamp  string   `json:"timestamp"`
	ProxyID    string   `json:"proxy_id"`
	Direction  string   `json:"direction"`
	Operation  string   `json:"operation"`
	Device     string   `json:"device"`
	Attributes []string `json:"attributes,omitempty"`
	DurationUs *int64   `json:"duration_us,omitempty"`
	Payload    any      `json:"payload,omitempty"`
	Error      string   `json:"error,omitempty"`
	Reason     string   `json:"reason,omitempty"`
}

func toExportEvent(e log.Event) exportEvent {
	out := exportEvent{
		Timestamp:  e.Timestamp.UTC().Format(time.RFC3339Nano),
		ProxyID:    e.ProxyID,
		Direction:  e.Direction.String(),
		Operation:  e.Operation.String(),
		Device:     e.Device,
		Attributes: e.Attributes,
		Payload:    e.Payload,
	}
	if e.Direction == log.DirectionReply {
		us := e.Duration.Microseconds()
		out.DurationUs = &us
	}
	if e.Error != nil {
		out.Error = e.Error.Message
		out.Reason = e.Error.Reason
	}
	return out
}

// RunExport writes the matching events as JSON lines to output, or to
// stdout when output is empty.
func RunExport(path string, opts FilterOptions, output string) error {
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return exportJSONL(path, opts, w)
}

func exportJSONL(path string, opts FilterOptions, w io.Writer) error {
	enc := json.NewEncoder(w)
	return forEach(path, opts, func(e log.Event) error {
		return enc.Encode(toExportEvent(e))
	})
}

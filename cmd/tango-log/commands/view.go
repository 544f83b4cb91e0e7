package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tangobridge/tangobridge/pkg/log"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [proxy:id] DIRECTION operation device
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [proxy:%s] %-7s %s %s\n",
		ts, shortenID(event.ProxyID), event.Direction, event.Operation, event.Device)

	if len(event.Attributes) > 0 {
		fmt.Fprintf(w, "  Attributes: %s\n", strings.Join(event.Attributes, ", "))
	}
	if event.Direction == log.DirectionReply {
		fmt.Fprintf(w, "  Duration: %s\n", formatDuration(event.Duration))
	}
	if event.Payload != nil {
		fmt.Fprintf(w, "  Payload: %v\n", event.Payload)
	}
	if event.Error != nil {
		if event.Error.Reason != "" {
			fmt.Fprintf(w, "  Error: %s (%s)\n", event.Error.Message, event.Error.Reason)
		} else {
			fmt.Fprintf(w, "  Error: %s\n", event.Error.Message)
		}
	}

	fmt.Fprintln(w)
}

// shortenID returns the first 8 characters of a proxy ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// RunView executes the view command.
func RunView(path string, opts FilterOptions, output io.Writer) error {
	return forEach(path, opts, func(e log.Event) error {
		formatEvent(output, e)
		return nil
	})
}

// Package commands implements the tango-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tangobridge/tangobridge/pkg/log"
)

// FilterOptions holds the filter flags as given on the command line.
type FilterOptions struct {
	ProxyID    string
	Device     string
	Operation  string
	Direction  string
	ErrorsOnly bool
	TimeStart  string
	TimeEnd    string
}

// Filter converts the options into a log.Filter.
func (o FilterOptions) Filter() (log.Filter, error) {
	f := log.Filter{
		ProxyID:    o.ProxyID,
		Device:     strings.ToLower(o.Device),
		ErrorsOnly: o.ErrorsOnly,
	}

	if o.Operation != "" {
		op, ok := log.ParseOperation(strings.ToLower(o.Operation))
		if !ok {
			return log.Filter{}, fmt.Errorf("invalid operation: %s", o.Operation)
		}
		f.Operation = &op
	}

	if o.Direction != "" {
		d, ok := log.ParseDirection(o.Direction)
		if !ok {
			return log.Filter{}, fmt.Errorf("invalid direction: %s (must be request or reply)", o.Direction)
		}
		f.Direction = &d
	}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start: %w", err)
		}
		f.TimeStart = &t
	}

	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end: %w", err)
		}
		f.TimeEnd = &t
	}

	return f, nil
}

// forEach calls fn for every event in path that matches opts.
func forEach(path string, opts FilterOptions, fn func(log.Event) error) error {
	filter, err := opts.Filter()
	if err != nil {
		return err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := fn(event); err != nil {
			return err
		}
	}
}

// RunFilter copies the matching events of path into output and returns
// how many were written.
func RunFilter(path string, opts FilterOptions, output string) (int, error) {
	out, err := log.NewFileLogger(output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}

	n := 0
	err = forEach(path, opts, func(e log.Event) error {
		out.Log(e)
		n++
		return nil
	})
	if cerr := out.Close(); err == nil && cerr != nil {
		err = cerr
	}
	return n, err
}

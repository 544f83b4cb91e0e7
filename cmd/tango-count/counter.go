package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/tangobridge/tangobridge/pkg/acquire"
	"github.com/tangobridge/tangobridge/pkg/adapter"
	"github.com/tangobridge/tangobridge/pkg/engine"
)

// counter runs count plans over registry objects and prints a live table
// and per-field statistics for each run.
type counter struct {
	re       *engine.RunEngine
	registry *adapter.Registry
	out      io.Writer

	// plotPath, when set, gets one image per run named after its objects.
	plotPath string
}

func newCounter(re *engine.RunEngine, registry *adapter.Registry, out io.Writer) *counter {
	return &counter{re: re, registry: registry, out: out}
}

// Count runs one count plan over the named objects.
func (c *counter) Count(ctx context.Context, num int, delay time.Duration, names ...string) error {
	detectors := make([]acquire.Readable, 0, len(names))
	for _, name := range names {
		obj, err := c.registry.Get(name)
		if err != nil {
			return err
		}
		detectors = append(detectors, obj)
	}

	table := engine.NewLiveTable(nil, c.out)
	stats := engine.NewStats()
	tokens := []int{c.re.Subscribe(table.Handle), c.re.Subscribe(stats.Handle)}

	var pw *engine.PlotWriter
	if c.plotPath != "" {
		pw = engine.NewPlotWriter(plotPathFor(c.plotPath, names))
		tokens = append(tokens, c.re.Subscribe(pw.Handle))
	}

	defer func() {
		for _, tok := range tokens {
			_ = c.re.Unsubscribe(tok)
		}
	}()

	_, err := c.re.Count(ctx, detectors, num, delay, map[string]any{"objects": names})

	fmt.Fprintln(c.out)
	stats.Print(c.out)
	fmt.Fprintln(c.out)

	if err != nil {
		return err
	}
	if pw != nil && pw.Err() != nil {
		return fmt.Errorf("saving plot: %w", pw.Err())
	}
	return nil
}

// plotPathFor inserts the object names before the extension of path.
func plotPathFor(path string, names []string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + strings.Join(names, "+") + ext
}

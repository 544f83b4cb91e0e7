package engine

import (
	"fmt"
	"sort"
	"sync"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/tangobridge/tangobridge/pkg/wire"
)

// PlotWriter draws numeric scalar fields against seq_num and saves the
// plot when the run stops. The image format follows the file extension
// (png, svg, pdf).
type PlotWriter struct {
	mu sync.Mutex

	path   string
	fields map[string]bool

	// Width and Height of the saved image.
	Width  vg.Length
	Height vg.Length

	title  string
	series map[string]plotter.XYs
	err    error
	saved  int
}

// NewPlotWriter creates a plot callback saving to path. With no fields
// every numeric scalar is plotted.
func NewPlotWriter(path string, fields ...string) *PlotWriter {
	pw := &PlotWriter{
		path:   path,
		Width:  10 * vg.Inch,
		Height: 5 * vg.Inch,
		series: make(map[string]plotter.XYs),
	}
	if len(fields) > 0 {
		pw.fields = make(map[string]bool, len(fields))
		for _, f := range fields {
			pw.fields[f] = true
		}
	}
	return pw
}

// Handle is the engine callback.
func (pw *PlotWriter) Handle(kind wire.Kind, doc any) {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	switch d := doc.(type) {
	case *wire.RunStart:
		pw.series = make(map[string]plotter.XYs)
		pw.title = fmt.Sprintf("%s (scan %d)", d.PlanName, d.ScanID)
	case *wire.Event:
		for key, v := range d.Data {
			if pw.fields != nil && !pw.fields[key] {
				continue
			}
			if y, ok := toFloat(v); ok {
				pw.series[key] = append(pw.series[key], plotter.XY{X: float64(d.SeqNum), Y: y})
			}
		}
	case *wire.RunStop:
		if len(pw.series) == 0 {
			return
		}
		if err := pw.save(); err != nil {
			pw.err = err
			return
		}
		pw.saved++
	}
}

func (pw *PlotWriter) save() error {
	p := plot.New()
	p.Title.Text = pw.title
	p.X.Label.Text = "seq_num"
	p.Y.Label.Text = "value"

	names := make([]string, 0, len(pw.series))
	for name := range pw.series {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		line, points, err := plotter.NewLinePoints(pw.series[name])
		if err != nil {
			return fmt.Errorf("plot %s: %w", name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		points.Color = plotutil.Color(i)
		p.Add(line, points)
		p.Legend.Add(name, line, points)
	}
	p.Legend.Top = true

	if err := p.Save(pw.Width, pw.Height, pw.path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

// Saved returns the number of plots written.
func (pw *PlotWriter) Saved() int {
	pw.mu.Lock()
	defer pw.mu.Unlock()
	return pw.saved
}

// Err returns the last save error.
func (pw *PlotWriter) Err() error {
	pw.mu.Lock()
	defer pw.mu.Unlock()
	return pw.err
}

package engine

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tangobridge/tangobridge/pkg/wire"
)

const minColumnWidth = 10

// LiveTable prints one row per event as a fixed-width text table.
type LiveTable struct {
	mu sync.Mutex

	fields []string
	w      io.Writer

	// Location is used for the time column. Defaults to time.Local.
	Location *time.Location

	start   *wire.RunStart
	columns []string
	widths  []int
}

// NewLiveTable creates a table printing fields to w. With no fields, the
// descriptor's hinted fields are used, or failing that every scalar key.
func NewLiveTable(fields []string, w io.Writer) *LiveTable {
	return &LiveTable{
		fields:   append([]string(nil), fields...),
		w:        w,
		Location: time.Local,
	}
}

// Handle is the engine callback.
func (t *LiveTable) Handle(kind wire.Kind, doc any) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch d := doc.(type) {
	case *wire.RunStart:
		t.start = d
		t.columns = nil
	case *wire.EventDescriptor:
		if d.Name != PrimaryStream {
			return
		}
		t.setColumns(d)
		t.printSeparator()
		t.printRow(append([]string{"seq_num", "time"}, t.columns...))
		t.printSeparator()
	case *wire.Event:
		if t.columns == nil {
			return
		}
		cells := make([]string, 0, len(t.columns)+2)
		cells = append(cells, fmt.Sprintf("%d", d.SeqNum))
		ts := time.Unix(0, int64(d.Time*1e9)).In(t.Location)
		cells = append(cells, ts.Format("15:04:05.0"))
		for i, col := range t.columns {
			cells = append(cells, formatCell(d.Data[col], t.widths[i+2]))
		}
		t.printRow(cells)
	case *wire.RunStop:
		if t.columns != nil {
			t.printSeparator()
		}
		if t.start != nil {
			uid := t.start.UID
			if len(uid) > 8 {
				uid = uid[:8]
			}
			fmt.Fprintf(t.w, "generator %s ['%s'] (scan num: %d)\n", t.start.PlanName, uid, t.start.ScanID)
		}
		if d.ExitStatus != wire.ExitSuccess {
			fmt.Fprintf(t.w, "exit status: %s: %s\n", d.ExitStatus, d.Reason)
		}
		t.start = nil
		t.columns = nil
	}
}

func (t *LiveTable) setColumns(d *wire.EventDescriptor) {
	cols := t.fields
	if len(cols) == 0 {
		cols = hintedFields(d)
	}
	if len(cols) == 0 {
		for _, key := range d.DataKeys.Keys() {
			if len(d.DataKeys[key].Shape) <= 1 && product(d.DataKeys[key].Shape) <= 1 {
				cols = append(cols, key)
			}
		}
	}

	t.columns = cols
	t.widths = []int{minColumnWidth, minColumnWidth}
	for _, c := range cols {
		t.widths = append(t.widths, max(len(c), minColumnWidth))
	}
}

func (t *LiveTable) printSeparator() {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range t.widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	fmt.Fprintln(t.w, b.String())
}

func (t *LiveTable) printRow(cells []string) {
	var b strings.Builder
	b.WriteByte('|')
	for i, c := range cells {
		fmt.Fprintf(&b, " %*s |", t.widths[i], c)
	}
	fmt.Fprintln(t.w, b.String())
}

func hintedFields(d *wire.EventDescriptor) []string {
	objects := make([]string, 0, len(d.Hints))
	for name := range d.Hints {
		objects = append(objects, name)
	}
	sort.Strings(objects)

	var fields []string
	for _, name := range objects {
		fields = append(fields, d.Hints[name].Fields...)
	}
	return fields
}

func product(shape []int) int {
	p := 1
	for _, n := range shape {
		p *= n
	}
	return p
}

func formatCell(v any, width int) string {
	var s string
	switch x := v.(type) {
	case nil:
		s = ""
	case float64:
		s = fmt.Sprintf("%.3f", x)
	case float32:
		s = fmt.Sprintf("%.3f", x)
	case string:
		s = x
	default:
		if f, ok := toFloat(v); ok {
			s = fmt.Sprintf("%g", f)
		} else {
			s = fmt.Sprintf("%v", v)
		}
	}
	if len(s) > width {
		s = s[:width]
	}
	return s
}

// Package interactive provides the interactive command-line interface
// for tango-count.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/tangobridge/tangobridge/pkg/acquire"
	"github.com/tangobridge/tangobridge/pkg/adapter"
	"github.com/tangobridge/tangobridge/pkg/devsim"
	"github.com/tangobridge/tangobridge/pkg/tango"
)

// maxValueWidth truncates long values such as spectra in read output.
const maxValueWidth = 60

// Counter runs count plans over named registry objects.
type Counter interface {
	Count(ctx context.Context, num int, delay time.Duration, names ...string) error
}

// Shell handles interactive mode for tango-count.
type Shell struct {
	registry *adapter.Registry
	db       *devsim.Database
	counter  Counter
	rl       *readline.Instance
	out      io.Writer
}

// New creates a new interactive shell.
func New(registry *adapter.Registry, db *devsim.Database, counter Counter) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "tango> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(registry, db),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Shell{
		registry: registry,
		db:       db,
		counter:  counter,
		rl:       rl,
		out:      rl.Stdout(),
	}, nil
}

func completer(registry *adapter.Registry, db *devsim.Database) *readline.PrefixCompleter {
	objects := func(string) []string { return registry.Names() }
	devices := func(string) []string { return db.Names() }
	return readline.NewPrefixCompleter(
		readline.PcItem("list"),
		readline.PcItem("read", readline.PcItemDynamic(objects)),
		readline.PcItem("describe", readline.PcItemDynamic(objects)),
		readline.PcItem("config", readline.PcItemDynamic(objects)),
		readline.PcItem("count"),
		readline.PcItem("offline", readline.PcItemDynamic(devices)),
		readline.PcItem("online", readline.PcItemDynamic(devices)),
		readline.PcItem("write", readline.PcItemDynamic(devices)),
		readline.PcItem("quality", readline.PcItemDynamic(devices)),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// Stdout returns a writer that properly coordinates with the readline input.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if !s.exec(ctx, line) {
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}
	}
}

// exec runs one command line. It returns false when the shell should exit.
func (s *Shell) exec(ctx context.Context, line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "list", "ls":
		s.cmdList()
	case "read", "r":
		s.cmdRead(ctx, args)
	case "describe", "d":
		s.cmdDescribe(ctx, args)
	case "config", "c":
		s.cmdConfig(ctx, args)
	case "count":
		s.cmdCount(ctx, args)
	case "offline":
		s.cmdOnline(args, false)
	case "online":
		s.cmdOnline(args, true)
	case "write", "w":
		s.cmdWrite(args)
	case "quality":
		s.cmdQuality(args)
	case "quit", "exit", "q":
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Commands:
  Objects:
    list                      - List configured objects
    read <obj>                - Read current values
    describe <obj>            - Describe data keys
    config <obj>              - Read configuration values

  Acquisition:
    count <n> [delay] [obj..] - Count objects (default: each object separately)

  Simulation:
    offline <device>          - Make a simulated device unreachable
    online <device>           - Make a simulated device reachable again
    write <dev> <attr> <v>    - Write a scalar attribute value
    quality <dev> <attr> <q>  - Set the quality of later readings

  Other:
    help                      - Show this help
    quit                      - Exit`)
}

func (s *Shell) cmdList() {
	for _, name := range s.registry.Names() {
		obj, err := s.registry.Get(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(s.out, "  %-16s %s\n", name, summarize(obj))
	}
}

// summarize describes an object's type in one line.
func summarize(obj acquire.Readable) string {
	switch o := obj.(type) {
	case *adapter.Attribute:
		return fmt.Sprintf("attribute %s/%s (%s)", o.Proxy().DeviceName(), o.Proxy().Name(), o.Kind())
	case *adapter.Device:
		if o.ReadsAll() {
			return fmt.Sprintf("device %s reading all %d attributes", o.Proxy().DevName(), len(o.Attributes()))
		}
		return fmt.Sprintf("device %s reading %s", o.Proxy().DevName(), strings.Join(o.ReadAttrs(), ", "))
	case *adapter.Composite:
		comps := o.Components()
		attrs := make([]string, len(comps))
		for i, c := range comps {
			attrs[i] = c.Attr
		}
		return fmt.Sprintf("composite of %s", strings.Join(attrs, ", "))
	default:
		return fmt.Sprintf("%T", obj)
	}
}

func (s *Shell) object(args []string, usage string) (acquire.Readable, bool) {
	if len(args) != 1 {
		fmt.Fprintf(s.out, "Usage: %s\n", usage)
		return nil, false
	}
	obj, err := s.registry.Get(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil, false
	}
	return obj, true
}

func (s *Shell) cmdRead(ctx context.Context, args []string) {
	obj, ok := s.object(args, "read <obj>")
	if !ok {
		return
	}
	reading, err := obj.Read(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.printReading(reading)
}

func (s *Shell) cmdConfig(ctx context.Context, args []string) {
	obj, ok := s.object(args, "config <obj>")
	if !ok {
		return
	}
	reading, err := obj.ReadConfiguration(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if len(reading) == 0 {
		fmt.Fprintln(s.out, "  (no configuration)")
		return
	}
	s.printReading(reading)
}

func (s *Shell) printReading(reading acquire.Reading) {
	for _, key := range reading.Keys() {
		rv := reading[key]
		ts := time.Unix(0, int64(rv.Timestamp*float64(time.Second))).Format("15:04:05.000")
		fmt.Fprintf(s.out, "  %-24s %s  %s\n", key, ts, formatValue(rv.Value))
	}
}

func formatValue(v any) string {
	s := fmt.Sprintf("%v", v)
	if len(s) > maxValueWidth {
		return s[:maxValueWidth-3] + "..."
	}
	return s
}

func (s *Shell) cmdDescribe(ctx context.Context, args []string) {
	obj, ok := s.object(args, "describe <obj>")
	if !ok {
		return
	}
	desc, err := obj.Describe(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	for _, key := range desc.Keys() {
		dk := desc[key]
		fmt.Fprintf(s.out, "  %-24s shape=%v dtype=%s\n", key, dk.Shape, dk.Dtype)
	}
}

func (s *Shell) cmdCount(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: count <n> [delay] [obj...]")
		return
	}
	num, err := strconv.Atoi(args[0])
	if err != nil || num < 1 {
		fmt.Fprintf(s.out, "Invalid count: %s\n", args[0])
		return
	}
	args = args[1:]

	var delay time.Duration
	if len(args) > 0 {
		if d, err := time.ParseDuration(args[0]); err == nil {
			delay = d
			args = args[1:]
		}
	}

	if len(args) > 0 {
		if err := s.counter.Count(ctx, num, delay, args...); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
		return
	}

	for _, name := range s.registry.Names() {
		if err := s.counter.Count(ctx, num, delay, name); err != nil {
			fmt.Fprintf(s.out, "Error: %s: %v\n", name, err)
		}
	}
}

func (s *Shell) cmdOnline(args []string, online bool) {
	if len(args) != 1 {
		if online {
			fmt.Fprintln(s.out, "Usage: online <device>")
		} else {
			fmt.Fprintln(s.out, "Usage: offline <device>")
		}
		return
	}
	dev, ok := s.db.Device(args[0])
	if !ok {
		fmt.Fprintf(s.out, "Unknown device: %s\n", args[0])
		return
	}
	dev.SetOnline(online)
	if online {
		fmt.Fprintf(s.out, "%s is online\n", dev.Name())
	} else {
		fmt.Fprintf(s.out, "%s is offline\n", dev.Name())
	}
}

// attribute looks up a simulated device attribute from "<device> <attr> <arg>".
func (s *Shell) attribute(args []string, usage string) (*devsim.Attribute, string, bool) {
	if len(args) != 3 {
		fmt.Fprintf(s.out, "Usage: %s\n", usage)
		return nil, "", false
	}
	dev, ok := s.db.Device(args[0])
	if !ok {
		fmt.Fprintf(s.out, "Unknown device: %s\n", args[0])
		return nil, "", false
	}
	attr, err := dev.Attribute(args[1])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil, "", false
	}
	return attr, args[2], true
}

func (s *Shell) cmdWrite(args []string) {
	attr, text, ok := s.attribute(args, "write <device> <attr> <value>")
	if !ok {
		return
	}
	if err := attr.WriteString(text); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s = %s\n", attr.Name(), formatValue(attr.Value()))
}

func (s *Shell) cmdQuality(args []string) {
	attr, text, ok := s.attribute(args, "quality <device> <attr> <quality>")
	if !ok {
		return
	}
	q, ok := tango.ParseQuality(text)
	if !ok {
		fmt.Fprintf(s.out, "Unknown quality: %s\n", text)
		return
	}
	attr.SetQuality(q)
	fmt.Fprintf(s.out, "%s quality is %s\n", attr.Name(), q)
}

// Command tango-log is a tool for viewing and analyzing proxy call traces.
//
// Trace files are written by tango-count when run with the -trace flag.
//
// Usage:
//
//	tango-log <command> [flags] <file.tlog>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSON lines
//	filter   Filter trace file and write to new file
//	stats    Show per-operation call statistics
//	version  Print version
//
// Examples:
//
//	# View all events
//	tango-log view run.tlog
//
//	# View only failed replies of batch reads
//	tango-log view -op read_attributes -direction reply -errors run.tlog
//
//	# Keep one device's calls
//	tango-log filter -device sys/tg_test/1 -o tg.tlog run.tlog
//
//	# Show statistics
//	tango-log stats run.tlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tangobridge/tangobridge/cmd/tango-log/commands"
	"github.com/tangobridge/tangobridge/pkg/version"
)

const usage = `tango-log - Proxy Call Trace Analyzer

Usage:
  tango-log <command> [flags] <file.tlog>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSON lines
  filter   Filter trace file and write to new file
  stats    Show per-operation call statistics
  version  Print version

Use "tango-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "version", "-version", "--version":
		fmt.Println(version.String("tango-log"))
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// filterFlags registers the flags shared by view, export and filter.
func filterFlags(fs *flag.FlagSet) func() (commands.FilterOptions, error) {
	proxyID := fs.String("proxy", "", "Filter by proxy ID")
	device := fs.String("device", "", "Filter by device name")
	op := fs.String("op", "", "Filter by operation (import, read, read_attributes, get_attribute_list, attribute_list_query, get_config)")
	direction := fs.String("direction", "", "Filter by direction (request, reply)")
	errorsOnly := fs.Bool("errors", false, "Show only failed calls")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")

	return func() (commands.FilterOptions, error) {
		opts := commands.FilterOptions{
			ProxyID:    *proxyID,
			Device:     *device,
			Operation:  *op,
			Direction:  *direction,
			ErrorsOnly: *errorsOnly,
			TimeStart:  *timeStart,
			TimeEnd:    *timeEnd,
		}
		_, err := opts.Filter()
		return opts, err
	}
}

func parseFile(fs *flag.FlagSet, args []string) string {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `tango-log view - View trace file in human-readable format

Usage:
  tango-log view [flags] <file.tlog>

Flags:
`)
		fs.PrintDefaults()
	}
	options := filterFlags(fs)
	path := parseFile(fs, args)

	opts, err := options()
	if err != nil {
		fail(err)
	}
	if err := commands.RunView(path, opts, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `tango-log export - Export trace file to JSON lines

Usage:
  tango-log export [flags] <file.tlog>

Flags:
`)
		fs.PrintDefaults()
	}
	output := fs.String("o", "", "Output file (default: stdout)")
	options := filterFlags(fs)
	path := parseFile(fs, args)

	opts, err := options()
	if err != nil {
		fail(err)
	}
	if err := commands.RunExport(path, opts, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `tango-log filter - Filter trace file and write to new file

Usage:
  tango-log filter [flags] <file.tlog>

Flags:
`)
		fs.PrintDefaults()
	}
	output := fs.String("o", "", "Output file (required)")
	options := filterFlags(fs)
	path := parseFile(fs, args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts, err := options()
	if err != nil {
		fail(err)
	}
	n, err := commands.RunFilter(path, opts, *output)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %d events to %s\n", n, *output)
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `tango-log stats - Show per-operation call statistics

Usage:
  tango-log stats <file.tlog>

`)
	}
	path := parseFile(fs, args)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}

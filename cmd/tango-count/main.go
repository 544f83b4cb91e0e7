// Command tango-count acquires readings from simulated control-system
// devices through the adapter layer and runs count plans over them.
//
// Every object declared by the configuration is counted on its own, since
// objects may share data keys. Objects named on the command line are
// counted together in one run.
//
// Usage:
//
//	tango-count [flags] [object...]
//
// Flags:
//
//	-config string        Object configuration file (default: built-in)
//	-devices string       Comma-separated simulated device names (default "sys/tg_test/1")
//	-num int              Number of readings per run (default 1)
//	-delay duration       Delay between readings
//	-log-level string     Log level: debug, info, warn, error (default "info")
//	-trace string         Write a proxy call trace to this file
//	-docs string          Write run documents to this file
//	-plot string          Plot numeric scalars to this image file
//	-metrics-addr string  Serve Prometheus metrics on this address
//	-interactive          Start an interactive shell instead of counting
//	-version              Print version and exit
//
// Examples:
//
//	# Count every configured object five times
//	tango-count -num 5
//
//	# Count two objects together and keep the documents
//	tango-count -num 10 -delay 100ms -docs run.docs tango_attr some_name
//
//	# Explore the objects interactively with a call trace
//	tango-count -interactive -trace run.tlog
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tangobridge/tangobridge/cmd/tango-count/interactive"
	"github.com/tangobridge/tangobridge/pkg/adapter"
	"github.com/tangobridge/tangobridge/pkg/config"
	"github.com/tangobridge/tangobridge/pkg/devsim"
	"github.com/tangobridge/tangobridge/pkg/engine"
	"github.com/tangobridge/tangobridge/pkg/log"
	"github.com/tangobridge/tangobridge/pkg/tango"
	"github.com/tangobridge/tangobridge/pkg/version"
)

// Config holds the command configuration.
type Config struct {
	ConfigFile  string
	Devices     string
	Num         int
	Delay       time.Duration
	LogLevel    string
	TraceFile   string
	DocsFile    string
	PlotFile    string
	MetricsAddr string
	Interactive bool
	Version     bool
}

var cfg Config

func init() {
	flag.StringVar(&cfg.ConfigFile, "config", "", "Object configuration file (default: built-in)")
	flag.StringVar(&cfg.Devices, "devices", devsim.DefaultTestName, "Comma-separated simulated device names")
	flag.IntVar(&cfg.Num, "num", 1, "Number of readings per run")
	flag.DurationVar(&cfg.Delay, "delay", 0, "Delay between readings")
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&cfg.TraceFile, "trace", "", "Write a proxy call trace to this file")
	flag.StringVar(&cfg.DocsFile, "docs", "", "Write run documents to this file")
	flag.StringVar(&cfg.PlotFile, "plot", "", "Plot numeric scalars to this image file (.png, .svg, .pdf)")
	flag.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	flag.BoolVar(&cfg.Interactive, "interactive", false, "Start an interactive shell instead of counting")
	flag.BoolVar(&cfg.Version, "version", false, "Print version and exit")
}

func main() {
	flag.Parse()

	if cfg.Version {
		fmt.Println(version.String("tango-count"))
		return
	}

	logger := setupLogging(cfg.LogLevel, os.Stderr)

	if err := validateConfig(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, flag.Args()); err != nil {
		if engine.IsAborted(err) {
			logger.Warn("aborted")
			os.Exit(130)
		}
		logger.Error("failed", "error", err)
		os.Exit(1)
	}
}

func setupLogging(level string, w *os.File) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}

func validateConfig() error {
	if cfg.Num < 1 {
		return fmt.Errorf("num must be at least 1, got %d", cfg.Num)
	}
	if cfg.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", cfg.Delay)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s", cfg.LogLevel)
	}
	if strings.TrimSpace(cfg.Devices) == "" {
		return errors.New("at least one simulated device is required")
	}
	return nil
}

func loadObjectConfig() (*config.Config, error) {
	if cfg.ConfigFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfg.ConfigFile)
}

// newDatabase creates one simulated test device per name.
func newDatabase(names string) (*devsim.Database, error) {
	db := devsim.NewDatabase()
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if err := db.Add(devsim.NewTangoTest(name, nil)); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func run(ctx context.Context, logger *slog.Logger, objects []string) error {
	objCfg, err := loadObjectConfig()
	if err != nil {
		return err
	}

	db, err := newDatabase(cfg.Devices)
	if err != nil {
		return err
	}

	clientOpts := []tango.Option{tango.WithLogger(logger)}

	if cfg.TraceFile != "" {
		trace, err := log.NewFileLogger(cfg.TraceFile)
		if err != nil {
			return fmt.Errorf("opening trace file: %w", err)
		}
		defer trace.Close()

		var tracer log.Logger = trace
		if logger.Enabled(ctx, slog.LevelDebug) {
			tracer = log.NewMultiLogger(trace, log.NewSlogAdapter(logger))
		}
		clientOpts = append(clientOpts, tango.WithTrace(tracer))
	}

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		clientOpts = append(clientOpts, tango.WithMetrics(tango.NewMetrics(reg)))

		srv := serveMetrics(cfg.MetricsAddr, reg, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	client := tango.NewClient(db, clientOpts...)

	registry, err := adapter.FromConfig(ctx, client, objCfg)
	if err != nil {
		return fmt.Errorf("building objects: %w", err)
	}
	logger.Info("objects ready", "count", registry.Len(), "devices", db.Names())

	re := engine.New(
		engine.WithLogger(logger),
		engine.WithMetadata(map[string]any{"versions": version.Versions()}),
	)

	c := newCounter(re, registry, os.Stdout)
	c.plotPath = cfg.PlotFile

	if cfg.DocsFile != "" {
		f, err := os.Create(cfg.DocsFile)
		if err != nil {
			return fmt.Errorf("creating documents file: %w", err)
		}
		defer f.Close()

		dw := engine.NewDocumentWriter(f)
		re.Subscribe(dw.Handle)
		defer func() {
			if err := dw.Err(); err != nil {
				logger.Error("writing documents", "error", err)
				return
			}
			logger.Info("documents written", "path", cfg.DocsFile, "count", dw.Count())
		}()
	}

	if cfg.Interactive {
		sh, err := interactive.New(registry, db, c)
		if err != nil {
			return err
		}
		c.out = sh.Stdout()
		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		sh.Run(runCtx, cancel)
		return nil
	}

	if len(objects) > 0 {
		return c.Count(ctx, cfg.Num, cfg.Delay, objects...)
	}
	for _, name := range registry.Names() {
		if err := c.Count(ctx, cfg.Num, cfg.Delay, name); err != nil {
			return err
		}
	}
	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()
	return srv
}

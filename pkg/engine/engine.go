package engine

import (
	"errors"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tangobridge/tangobridge/pkg/wire"
)

// Engine errors.
var (
	ErrInvalidNum       = errors.New("number of points must be positive")
	ErrNoDetectors      = errors.New("no detectors given")
	ErrDuplicateKey     = errors.New("data key produced by more than one detector")
	ErrAborted          = errors.New("run aborted")
	ErrCallbackNotFound = errors.New("callback not found")
)

// PrimaryStream is the name of the descriptor every plan emits.
const PrimaryStream = "primary"

// Callback receives run documents. doc is a *wire.RunStart,
// *wire.EventDescriptor, *wire.Event or *wire.RunStop according to kind.
type Callback func(kind wire.Kind, doc any)

type subscriber struct {
	token int
	fn    Callback
}

// RunEngine executes plans and dispatches their documents.
type RunEngine struct {
	mu sync.Mutex

	logger *slog.Logger
	clock  func() time.Time
	newUID func() string

	// md is merged into every RunStart.
	md map[string]any

	subscribers []subscriber
	nextToken   int
	scanID      int
}

// Option configures a RunEngine.
type Option func(*RunEngine)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(re *RunEngine) {
		if logger != nil {
			re.logger = logger
		}
	}
}

// WithClock sets the time source for document timestamps.
func WithClock(clock func() time.Time) Option {
	return func(re *RunEngine) {
		if clock != nil {
			re.clock = clock
		}
	}
}

// WithUIDGenerator sets the document uid source. Defaults to random UUIDs.
func WithUIDGenerator(gen func() string) Option {
	return func(re *RunEngine) {
		if gen != nil {
			re.newUID = gen
		}
	}
}

// WithMetadata sets metadata included in every run.
func WithMetadata(md map[string]any) Option {
	return func(re *RunEngine) {
		maps.Copy(re.md, md)
	}
}

// New creates a run engine.
func New(opts ...Option) *RunEngine {
	re := &RunEngine{
		logger: slog.Default(),
		clock:  time.Now,
		newUID: func() string { return uuid.New().String() },
		md:     make(map[string]any),
	}
	for _, opt := range opts {
		opt(re)
	}
	return re
}

// Subscribe registers a callback and returns a token for Unsubscribe.
func (re *RunEngine) Subscribe(fn Callback) int {
	re.mu.Lock()
	defer re.mu.Unlock()

	re.nextToken++
	re.subscribers = append(re.subscribers, subscriber{token: re.nextToken, fn: fn})
	return re.nextToken
}

// Unsubscribe removes a callback.
func (re *RunEngine) Unsubscribe(token int) error {
	re.mu.Lock()
	defer re.mu.Unlock()

	for i, s := range re.subscribers {
		if s.token == token {
			re.subscribers = append(re.subscribers[:i], re.subscribers[i+1:]...)
			return nil
		}
	}
	return ErrCallbackNotFound
}

// SetMetadata sets a metadata entry included in every later run.
func (re *RunEngine) SetMetadata(key string, value any) {
	re.mu.Lock()
	defer re.mu.Unlock()
	re.md[key] = value
}

// ScanID returns the scan number of the most recent run.
func (re *RunEngine) ScanID() int {
	re.mu.Lock()
	defer re.mu.Unlock()
	return re.scanID
}

// emit dispatches a document to every subscriber in subscription order.
func (re *RunEngine) emit(kind wire.Kind, doc any) {
	re.mu.Lock()
	subs := make([]subscriber, len(re.subscribers))
	copy(subs, re.subscribers)
	re.mu.Unlock()

	for _, s := range subs {
		s.fn(kind, doc)
	}
}

// now returns the current time as fractional Unix seconds.
func (re *RunEngine) now() float64 {
	return float64(re.clock().UnixNano()) / 1e9
}

// nextScan allocates a scan number and snapshots the engine metadata
// merged with md.
func (re *RunEngine) nextScan(md map[string]any) (int, map[string]any) {
	re.mu.Lock()
	defer re.mu.Unlock()

	re.scanID++
	merged := make(map[string]any, len(re.md)+len(md))
	maps.Copy(merged, re.md)
	maps.Copy(merged, md)
	return re.scanID, merged
}

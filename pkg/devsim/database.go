package devsim

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tangobridge/tangobridge/pkg/tango"
)

// Database errors.
var (
	ErrDuplicateDevice = errors.New("duplicate device name")
)

// Database is a registry of simulated devices. It implements tango.Backend.
type Database struct {
	mu      sync.RWMutex
	devices map[string]*Device
}

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{devices: make(map[string]*Device)}
}

// Add registers a device.
func (db *Database) Add(dev *Device) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.devices[dev.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateDevice, dev.Name())
	}
	db.devices[dev.Name()] = dev
	return nil
}

// Device returns a registered device.
func (db *Database) Device(name string) (*Device, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	dev, ok := db.devices[strings.ToLower(name)]
	return dev, ok
}

// Names lists registered device names, sorted.
func (db *Database) Names() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()

	names := make([]string, 0, len(db.devices))
	for name := range db.devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Import resolves a device for a proxy.
func (db *Database) Import(ctx context.Context, name string) (tango.Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dev, ok := db.Device(name)
	if !ok {
		return nil, tango.NewDevFailed(tango.ErrDeviceNotFound,
			fmt.Sprintf("device %s not defined in the database", name), "Database.Import")
	}
	if !dev.Online() {
		return nil, tango.NewDevFailed(tango.ErrDeviceUnreachable,
			fmt.Sprintf("device %s is not exported", name), "Database.Import")
	}
	return dev, nil
}

// Compile-time interface satisfaction check.
var _ tango.Backend = (*Database)(nil)

package acquire

import (
	"context"
	"sort"
)

// Placeholder values reported by describe calls that do not inspect the
// remote data type.
const (
	// DtypeNumber is the JSON-schema type tag reported for every data key.
	DtypeNumber = "number"

	// PlaceholderText is reported for source and unit.
	PlaceholderText = "..."
)

// ReadingValue is a single value and the time it was acquired.
type ReadingValue struct {
	// Value is a scalar or an array as returned by the remote side.
	Value any `cbor:"value" json:"value"`

	// Timestamp is seconds since the Unix epoch.
	Timestamp float64 `cbor:"timestamp" json:"timestamp"`
}

// Reading maps a data key name to its current value.
type Reading map[string]ReadingValue

// DataKey describes the shape and type of one data key.
type DataKey struct {
	Shape  []int  `cbor:"shape" json:"shape"`
	Dtype  string `cbor:"dtype" json:"dtype"`
	Source string `cbor:"source" json:"source"`
	Unit   string `cbor:"unit" json:"unit"`

	// ObjectName is filled in by the run engine; adapters leave it empty.
	ObjectName string `cbor:"object_name,omitempty" json:"object_name,omitempty"`
}

// Description maps a data key name to its metadata.
type Description map[string]DataKey

// Readable is implemented by everything the run engine can acquire from.
type Readable interface {
	// Name is the externally visible object name.
	Name() string

	// Read returns the current values.
	Read(ctx context.Context) (Reading, error)

	// Describe returns metadata for the keys Read produces.
	Describe(ctx context.Context) (Description, error)

	// ReadConfiguration returns configuration values.
	ReadConfiguration(ctx context.Context) (Reading, error)

	// DescribeConfiguration returns metadata for ReadConfiguration.
	DescribeConfiguration(ctx context.Context) (Description, error)
}

// Merge copies all entries of other into r. Existing keys are overwritten.
func (r Reading) Merge(other Reading) {
	for k, v := range other {
		r[k] = v
	}
}

// Keys returns the reading's keys in sorted order.
func (r Reading) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge copies all entries of other into d. Existing keys are overwritten.
func (d Description) Merge(other Description) {
	for k, v := range other {
		d[k] = v
	}
}

// Keys returns the description's keys in sorted order.
func (d Description) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Split separates a reading into its values and timestamps, the layout
// used by event documents.
func (r Reading) Split() (data map[string]any, timestamps map[string]float64) {
	data = make(map[string]any, len(r))
	timestamps = make(map[string]float64, len(r))
	for k, v := range r {
		data[k] = v.Value
		timestamps[k] = v.Timestamp
	}
	return data, timestamps
}

package devsim

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"time"

	"github.com/tangobridge/tangobridge/pkg/tango"
)

// Attribute errors.
var (
	ErrAttributeNotWritable = errors.New("attribute is not writable")
	ErrAttributeValueType   = errors.New("invalid value type for attribute")
	ErrAttributeDimension   = errors.New("value exceeds attribute dimensions")
)

// AttributeMetadata describes an attribute's static configuration.
type AttributeMetadata struct {
	// Name is the attribute name as reported to clients.
	Name string

	// Format is the dimensionality class.
	Format tango.AttrDataFormat

	// Type is the element data type.
	Type tango.CmdArgType

	// Writable defines whether clients may write.
	Writable tango.AttrWriteType

	// MaxDimX and MaxDimY bound spectrum length and image size.
	// Scalars ignore them and always report 1 and 0.
	MaxDimX int
	MaxDimY int

	// Default is the initial value.
	Default any

	Unit          string
	Label         string
	Description   string
	DisplayFormat string
}

// ReadHook produces the value to report for a read at time now.
// It is called without the attribute lock held.
type ReadHook func(now time.Time) any

// Attribute is a simulated attribute with its current value.
type Attribute struct {
	mu       sync.RWMutex
	metadata *AttributeMetadata
	value    any
	quality  tango.AttrQuality
	hook     ReadHook
}

// NewAttribute creates an attribute with the given metadata.
func NewAttribute(meta *AttributeMetadata) *Attribute {
	return &Attribute{
		metadata: meta,
		value:    meta.Default,
		quality:  tango.AttrValid,
	}
}

// Name returns the attribute name.
func (a *Attribute) Name() string {
	return a.metadata.Name
}

// Metadata returns the attribute metadata.
func (a *Attribute) Metadata() *AttributeMetadata {
	return a.metadata
}

// Value returns the stored value.
func (a *Attribute) Value() any {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.value
}

// SetValue stores a value written by a client.
func (a *Attribute) SetValue(value any) error {
	if a.metadata.Writable == tango.Read {
		return ErrAttributeNotWritable
	}
	return a.SetValueInternal(value)
}

// WriteString parses text as a scalar of the attribute's type and stores
// it as a client write. Spectrum and image attributes cannot be written
// from text.
func (a *Attribute) WriteString(text string) error {
	if a.metadata.Format != tango.Scalar {
		return fmt.Errorf("%w: %s is a %s attribute", ErrAttributeValueType, a.metadata.Name, a.metadata.Format)
	}
	value, err := parseScalar(a.metadata.Type, text)
	if err != nil {
		return err
	}
	return a.SetValue(value)
}

// SetValueInternal stores a value without checking write access.
// Used by device implementations to update read-only attributes.
func (a *Attribute) SetValueInternal(value any) error {
	if err := a.validateValue(value); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.value = value
	return nil
}

// SetQuality sets the quality reported with subsequent reads.
func (a *Attribute) SetQuality(q tango.AttrQuality) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.quality = q
}

// SetReadHook installs a hook that computes the value on every read.
// A nil hook restores reading the stored value.
func (a *Attribute) SetReadHook(hook ReadHook) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hook = hook
}

// read produces a reading at time now.
func (a *Attribute) read(now time.Time) *tango.DeviceAttribute {
	a.mu.RLock()
	hook := a.hook
	value := a.value
	quality := a.quality
	a.mu.RUnlock()

	if hook != nil {
		value = hook(now)
	}

	dimX, dimY := dimensions(a.metadata.Format, value)
	return &tango.DeviceAttribute{
		Name:       a.metadata.Name,
		Value:      value,
		Quality:    quality,
		Time:       tango.NewTimeVal(now),
		DimX:       dimX,
		DimY:       dimY,
		DataFormat: a.metadata.Format,
		Type:       a.metadata.Type,
	}
}

// Info returns the attribute configuration as seen by clients.
func (a *Attribute) Info() *tango.AttributeInfo {
	m := a.metadata
	maxX, maxY := m.MaxDimX, m.MaxDimY
	switch m.Format {
	case tango.Scalar:
		maxX, maxY = 1, 0
	case tango.Spectrum:
		maxY = 0
	}

	label := m.Label
	if label == "" {
		label = m.Name
	}

	return &tango.AttributeInfo{
		Name:        m.Name,
		DataFormat:  m.Format,
		DataType:    m.Type,
		Writable:    m.Writable,
		MaxDimX:     maxX,
		MaxDimY:     maxY,
		Label:       label,
		Description: m.Description,
		Unit:        m.Unit,
		Format:      m.DisplayFormat,
	}
}

// validateValue checks the value against the declared format and type.
func (a *Attribute) validateValue(value any) error {
	m := a.metadata
	switch m.Format {
	case tango.Scalar:
		if !scalarMatches(m.Type, reflect.TypeOf(value)) {
			return fmt.Errorf("%w: expected scalar %s, got %T", ErrAttributeValueType, m.Type, value)
		}

	case tango.Spectrum:
		v := reflect.ValueOf(value)
		if v.Kind() != reflect.Slice || !scalarMatches(m.Type, v.Type().Elem()) {
			return fmt.Errorf("%w: expected []%s, got %T", ErrAttributeValueType, m.Type, value)
		}
		if m.MaxDimX > 0 && v.Len() > m.MaxDimX {
			return fmt.Errorf("%w: length %d > %d", ErrAttributeDimension, v.Len(), m.MaxDimX)
		}

	case tango.Image:
		v := reflect.ValueOf(value)
		if v.Kind() != reflect.Slice || v.Type().Elem().Kind() != reflect.Slice ||
			!scalarMatches(m.Type, v.Type().Elem().Elem()) {
			return fmt.Errorf("%w: expected [][]%s, got %T", ErrAttributeValueType, m.Type, value)
		}
		if m.MaxDimY > 0 && v.Len() > m.MaxDimY {
			return fmt.Errorf("%w: %d rows > %d", ErrAttributeDimension, v.Len(), m.MaxDimY)
		}
		for i := 0; i < v.Len(); i++ {
			if m.MaxDimX > 0 && v.Index(i).Len() > m.MaxDimX {
				return fmt.Errorf("%w: row %d has %d columns > %d", ErrAttributeDimension, i, v.Index(i).Len(), m.MaxDimX)
			}
		}
	}
	return nil
}

// parseScalar converts text to the Go type scalarMatches expects for dt.
func parseScalar(dt tango.CmdArgType, text string) (any, error) {
	bad := func(err error) error {
		return fmt.Errorf("%w: %q is not a valid %s: %v", ErrAttributeValueType, text, dt, err)
	}
	switch dt {
	case tango.DevBoolean:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return nil, bad(err)
		}
		return v, nil
	case tango.DevShort, tango.DevEnum:
		v, err := strconv.ParseInt(text, 10, 16)
		if err != nil {
			return nil, bad(err)
		}
		return int16(v), nil
	case tango.DevLong:
		v, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return nil, bad(err)
		}
		return int32(v), nil
	case tango.DevLong64:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, bad(err)
		}
		return v, nil
	case tango.DevUChar:
		v, err := strconv.ParseUint(text, 10, 8)
		if err != nil {
			return nil, bad(err)
		}
		return uint8(v), nil
	case tango.DevUShort:
		v, err := strconv.ParseUint(text, 10, 16)
		if err != nil {
			return nil, bad(err)
		}
		return uint16(v), nil
	case tango.DevULong:
		v, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return nil, bad(err)
		}
		return uint32(v), nil
	case tango.DevULong64:
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, bad(err)
		}
		return v, nil
	case tango.DevFloat:
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, bad(err)
		}
		return float32(v), nil
	case tango.DevDouble:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, bad(err)
		}
		return v, nil
	case tango.DevString:
		return text, nil
	case tango.DevState:
		st, ok := tango.ParseState(text)
		if !ok {
			return nil, bad(errors.New("unknown state"))
		}
		return st, nil
	default:
		return nil, fmt.Errorf("%w: cannot write %s from text", ErrAttributeValueType, dt)
	}
}

// scalarMatches reports whether Go type t can carry values of data type dt.
func scalarMatches(dt tango.CmdArgType, t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch dt {
	case tango.DevBoolean:
		return t.Kind() == reflect.Bool
	case tango.DevShort:
		return t.Kind() == reflect.Int16
	case tango.DevLong:
		return t.Kind() == reflect.Int32
	case tango.DevLong64:
		return t.Kind() == reflect.Int64
	case tango.DevUShort:
		return t.Kind() == reflect.Uint16
	case tango.DevULong:
		return t.Kind() == reflect.Uint32
	case tango.DevULong64:
		return t.Kind() == reflect.Uint64
	case tango.DevUChar:
		return t.Kind() == reflect.Uint8
	case tango.DevFloat:
		return t.Kind() == reflect.Float32
	case tango.DevDouble:
		return t.Kind() == reflect.Float64
	case tango.DevString:
		return t.Kind() == reflect.String
	case tango.DevState:
		return t == reflect.TypeOf(tango.DevStateValue(0))
	case tango.DevEnum:
		return t.Kind() == reflect.Int16
	default:
		return false
	}
}

// dimensions returns the actual (x, y) dimensions of a value.
func dimensions(format tango.AttrDataFormat, value any) (int, int) {
	switch format {
	case tango.Spectrum:
		v := reflect.ValueOf(value)
		if v.Kind() != reflect.Slice {
			return 0, 0
		}
		return v.Len(), 0
	case tango.Image:
		v := reflect.ValueOf(value)
		if v.Kind() != reflect.Slice || v.Len() == 0 {
			return 0, 0
		}
		return v.Index(0).Len(), v.Len()
	default:
		return 1, 0
	}
}

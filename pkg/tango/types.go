package tango

import (
	"math"
	"strings"
	"time"
)

// AttrDataFormat is the dimensionality class of an attribute.
type AttrDataFormat uint8

const (
	Scalar AttrDataFormat = iota
	Spectrum
	Image
	FmtUnknown
)

// String returns the format name.
func (f AttrDataFormat) String() string {
	switch f {
	case Scalar:
		return "SCALAR"
	case Spectrum:
		return "SPECTRUM"
	case Image:
		return "IMAGE"
	default:
		return "FMT_UNKNOWN"
	}
}

// CmdArgType is the data type of an attribute value.
type CmdArgType uint8

const (
	DevVoid CmdArgType = iota
	DevBoolean
	DevShort
	DevLong
	DevFloat
	DevDouble
	DevUShort
	DevULong
	DevString
	DevLong64
	DevULong64
	DevUChar
	DevState
	DevEnum
)

// String returns the data type name.
func (t CmdArgType) String() string {
	names := []string{
		"DevVoid", "DevBoolean", "DevShort", "DevLong", "DevFloat", "DevDouble",
		"DevUShort", "DevULong", "DevString", "DevLong64", "DevULong64",
		"DevUChar", "DevState", "DevEnum",
	}
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// IsNumeric reports whether values of this type are numbers.
func (t CmdArgType) IsNumeric() bool {
	switch t {
	case DevShort, DevLong, DevFloat, DevDouble, DevUShort, DevULong,
		DevLong64, DevULong64, DevUChar:
		return true
	default:
		return false
	}
}

// AttrQuality is the quality factor attached to a reading.
type AttrQuality uint8

const (
	AttrValid AttrQuality = iota
	AttrInvalid
	AttrAlarm
	AttrChanging
	AttrWarning
)

// String returns the quality name.
func (q AttrQuality) String() string {
	switch q {
	case AttrValid:
		return "ATTR_VALID"
	case AttrInvalid:
		return "ATTR_INVALID"
	case AttrAlarm:
		return "ATTR_ALARM"
	case AttrChanging:
		return "ATTR_CHANGING"
	case AttrWarning:
		return "ATTR_WARNING"
	default:
		return "ATTR_UNKNOWN"
	}
}

// ParseQuality parses a quality name as printed by String. The "ATTR_"
// prefix and case are optional.
func ParseQuality(s string) (AttrQuality, bool) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(name, "ATTR_") {
		name = "ATTR_" + name
	}
	for q := AttrValid; q <= AttrWarning; q++ {
		if q.String() == name {
			return q, true
		}
	}
	return 0, false
}

// AttrWriteType describes whether an attribute can be written.
type AttrWriteType uint8

const (
	Read AttrWriteType = iota
	ReadWithWrite
	Write
	ReadWrite
)

// String returns the write type name.
func (w AttrWriteType) String() string {
	switch w {
	case Read:
		return "READ"
	case ReadWithWrite:
		return "READ_WITH_WRITE"
	case Write:
		return "WRITE"
	case ReadWrite:
		return "READ_WRITE"
	default:
		return "WT_UNKNOWN"
	}
}

// DevStateValue is the value of a device's State attribute.
type DevStateValue uint8

const (
	StateOn DevStateValue = iota
	StateOff
	StateClose
	StateOpen
	StateInsert
	StateExtract
	StateMoving
	StateStandby
	StateFault
	StateInit
	StateRunning
	StateAlarm
	StateDisable
	StateUnknown
)

// String returns the state name.
func (s DevStateValue) String() string {
	names := []string{
		"ON", "OFF", "CLOSE", "OPEN", "INSERT", "EXTRACT", "MOVING",
		"STANDBY", "FAULT", "INIT", "RUNNING", "ALARM", "DISABLE", "UNKNOWN",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "UNKNOWN"
}

// ParseState parses a state name such as "ON" or "running".
func ParseState(s string) (DevStateValue, bool) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for st := StateOn; st <= StateUnknown; st++ {
		if st.String() == name {
			return st, true
		}
	}
	return 0, false
}

// TimeVal is a reading timestamp with microsecond resolution.
type TimeVal struct {
	Sec  int64
	Usec int64
}

// NewTimeVal converts t to a TimeVal, truncating to microseconds.
func NewTimeVal(t time.Time) TimeVal {
	return TimeVal{Sec: t.Unix(), Usec: int64(t.Nanosecond() / 1000)}
}

// TimeValFromSeconds converts fractional Unix seconds to a TimeVal.
func TimeValFromSeconds(s float64) TimeVal {
	sec, frac := math.Modf(s)
	return TimeVal{Sec: int64(sec), Usec: int64(math.Round(frac * 1e6))}
}

// Seconds returns the timestamp as fractional seconds since the Unix epoch.
func (tv TimeVal) Seconds() float64 {
	return float64(tv.Sec) + float64(tv.Usec)/1e6
}

// Time returns the timestamp as a time.Time.
func (tv TimeVal) Time() time.Time {
	return time.Unix(tv.Sec, tv.Usec*1000)
}

// DeviceAttribute is one attribute reading as returned by the device.
type DeviceAttribute struct {
	// Name is the attribute name as reported by the device.
	Name string

	// Value is the read value: a scalar, a []T for spectra or a [][]T for images.
	Value any

	// Quality is the reading's quality factor.
	Quality AttrQuality

	// Time is when the value was acquired.
	Time TimeVal

	// DimX and DimY are the actual dimensions of Value.
	// Scalars report DimX=1, DimY=0.
	DimX int
	DimY int

	DataFormat AttrDataFormat
	Type       CmdArgType
}

// AttributeInfo is an attribute's static configuration.
type AttributeInfo struct {
	Name       string
	DataFormat AttrDataFormat
	DataType   CmdArgType
	Writable   AttrWriteType

	// MaxDimX and MaxDimY bound the value's dimensions.
	// Scalars report MaxDimX=1, MaxDimY=0.
	MaxDimX int
	MaxDimY int

	Label       string
	Description string
	Unit        string
	Format      string
}

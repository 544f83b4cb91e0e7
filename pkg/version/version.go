// Package version reports the module version and the format version of
// document streams and trace files.
package version

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"
)

// Current is the document and trace format version written by this module.
const Current = "1.0"

// ErrIncompatibleFormat is returned for files written with another major
// format version.
var ErrIncompatibleFormat = errors.New("incompatible format version")

// develVersion is reported when no module version is embedded.
const develVersion = "(devel)"

// FormatVersion represents a parsed "major.minor" format version.
type FormatVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (FormatVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return FormatVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return FormatVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return FormatVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return FormatVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the version as "major.minor".
func (v FormatVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
func (v FormatVersion) Compatible(other FormatVersion) bool {
	return v.Major == other.Major
}

// CheckFormat validates a format version recorded in a file against
// Current.
func CheckFormat(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	cur, err := Parse(Current)
	if err != nil {
		return err
	}
	if !cur.Compatible(v) {
		return fmt.Errorf("%w: file has %s, reader supports %d.x", ErrIncompatibleFormat, v, cur.Major)
	}
	return nil
}

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Module returns the main module version from the build info.
func Module() string {
	info, ok := readBuildInfo()
	if !ok || info.Main.Version == "" {
		return develVersion
	}
	return info.Main.Version
}

// Versions returns the versions recorded in run metadata.
func Versions() map[string]any {
	return map[string]any{
		"tangobridge": Module(),
		"format":      Current,
	}
}

// String returns a one-line version banner for CLIs.
func String(cmd string) string {
	return fmt.Sprintf("%s %s (format %s)", cmd, Module(), Current)
}

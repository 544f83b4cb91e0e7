package version

import (
	"errors"
	"runtime/debug"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		major uint16
		minor uint16
	}{
		{"1.0", 1, 0},
		{"1.1", 1, 1},
		{"2.0", 2, 0},
		{"10.23", 10, 23},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if v.Major != tt.major || v.Minor != tt.minor {
				t.Errorf("Parse(%q) = %d.%d, want %d.%d", tt.input, v.Major, v.Minor, tt.major, tt.minor)
			}
			if v.String() != tt.input {
				t.Errorf("String() = %q, want %q", v.String(), tt.input)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "1", "abc", "1.0.0", "1.x", "-1.0", ".1"} {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); err == nil {
				t.Errorf("Parse(%q) should return error", input)
			}
		})
	}
}

func TestCurrentParses(t *testing.T) {
	if _, err := Parse(Current); err != nil {
		t.Fatalf("Current %q does not parse: %v", Current, err)
	}
}

func TestCompatible(t *testing.T) {
	v1, _ := Parse("1.0")
	v11, _ := Parse("1.1")
	v2, _ := Parse("2.0")

	if !v1.Compatible(v11) {
		t.Error("1.0 should be compatible with 1.1")
	}
	if v1.Compatible(v2) {
		t.Error("1.0 should not be compatible with 2.0")
	}
}

func TestCheckFormat(t *testing.T) {
	for _, ok := range []string{Current, "1.7"} {
		if err := CheckFormat(ok); err != nil {
			t.Errorf("CheckFormat(%q) = %v", ok, err)
		}
	}
	if err := CheckFormat("2.0"); !errors.Is(err, ErrIncompatibleFormat) {
		t.Errorf("CheckFormat(2.0) = %v, want ErrIncompatibleFormat", err)
	}
	if err := CheckFormat("one"); err == nil || errors.Is(err, ErrIncompatibleFormat) {
		t.Errorf("CheckFormat(one) = %v, want parse error", err)
	}
}

func TestModule(t *testing.T) {
	saved := readBuildInfo
	defer func() { readBuildInfo = saved }()

	readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }
	if got := Module(); got != develVersion {
		t.Errorf("Module() = %q, want %q", got, develVersion)
	}

	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "v0.3.1"}}, true
	}
	if got := Module(); got != "v0.3.1" {
		t.Errorf("Module() = %q, want v0.3.1", got)
	}

	vs := Versions()
	if vs["tangobridge"] != "v0.3.1" || vs["format"] != Current {
		t.Errorf("Versions() = %v", vs)
	}
	if got := String("tango-count"); got != "tango-count v0.3.1 (format 1.0)" {
		t.Errorf("String() = %q", got)
	}
}

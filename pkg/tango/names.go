package tango

import (
	"fmt"
	"strings"
)

const schemePrefix = "tango://"

// ParseDeviceName normalizes a device name to "domain/family/member".
// An optional "tango://host:port/" prefix is stripped and the result is
// lower-cased.
func ParseDeviceName(name string) (string, error) {
	parts, err := splitName(name, 3)
	if err != nil {
		return "", err
	}
	return strings.Join(parts, "/"), nil
}

// ParseAttributeName splits a full attribute name into its device name and
// attribute name. Only the device part is lower-cased; the attribute name
// keeps the case the caller wrote.
func ParseAttributeName(name string) (device, attr string, err error) {
	parts, err := splitName(name, 4)
	if err != nil {
		return "", "", err
	}
	return strings.Join(parts[:3], "/"), parts[3], nil
}

func splitName(name string, fields int) ([]string, error) {
	s := strings.TrimSpace(name)
	if len(s) >= len(schemePrefix) && strings.EqualFold(s[:len(schemePrefix)], schemePrefix) {
		rest := s[len(schemePrefix):]
		i := strings.IndexByte(rest, '/')
		if i <= 0 {
			return nil, invalidName(name)
		}
		s = rest[i+1:]
	}

	parts := strings.Split(s, "/")
	if len(parts) != fields {
		return nil, invalidName(name)
	}
	for i, p := range parts {
		if p == "" {
			return nil, invalidName(name)
		}
		if i < 3 {
			parts[i] = strings.ToLower(p)
		}
	}
	return parts, nil
}

func invalidName(name string) error {
	return NewDevFailed(ErrInvalidName, fmt.Sprintf("malformed name %q", name), "ParseName")
}

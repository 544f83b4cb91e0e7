package acquire

import (
	"fmt"
	"strings"
)

// Kind classifies how a component takes part in acquisition.
type Kind uint8

const (
	// KindOmitted components are never read by aggregation.
	KindOmitted Kind = 0

	// KindNormal components are read by Read.
	KindNormal Kind = 1 << 0

	// KindConfig components are read by ReadConfiguration.
	KindConfig Kind = 1 << 1

	// KindHinted components are normal and additionally suggested for display.
	KindHinted Kind = 1<<2 | KindNormal
)

// IsNormal reports whether the kind includes the normal bit.
func (k Kind) IsNormal() bool { return k&KindNormal != 0 }

// IsConfig reports whether the kind includes the config bit.
func (k Kind) IsConfig() bool { return k&KindConfig != 0 }

// IsHinted reports whether the kind includes the hinted bit.
func (k Kind) IsHinted() bool { return k&KindHinted == KindHinted }

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindOmitted:
		return "omitted"
	case KindNormal:
		return "normal"
	case KindConfig:
		return "config"
	case KindHinted:
		return "hinted"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind parses a kind name. The empty string yields KindNormal.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return KindNormal, nil
	case "omitted":
		return KindOmitted, nil
	case "config":
		return KindConfig, nil
	case "hinted":
		return KindHinted, nil
	default:
		return KindOmitted, fmt.Errorf("unknown kind %q", s)
	}
}

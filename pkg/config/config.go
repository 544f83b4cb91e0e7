package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tangobridge/tangobridge/pkg/acquire"
)

//go:embed default.yaml
var defaultYAML []byte

// Validation errors.
var (
	ErrDuplicateName = errors.New("duplicate object name")
	ErrEmptyField    = errors.New("required field is empty")
)

// Config lists the objects to build. Objects are built in the order
// attributes, composites, devices, each in declaration order.
type Config struct {
	Attributes []AttributeConfig `yaml:"attributes"`
	Composites []CompositeConfig `yaml:"composites"`
	Devices    []DeviceConfig    `yaml:"devices"`
}

// AttributeConfig declares a standalone attribute adapter.
type AttributeConfig struct {
	Name  string `yaml:"name"`
	Tango string `yaml:"tango"`
	Kind  string `yaml:"kind,omitempty"`
}

// CompositeConfig declares a composite built from attribute components.
// Each component's full attribute name is Prefix + Suffix.
type CompositeConfig struct {
	Name       string            `yaml:"name"`
	Prefix     string            `yaml:"prefix"`
	Components []ComponentConfig `yaml:"components"`
}

// ComponentConfig declares one component of a composite.
type ComponentConfig struct {
	Attr   string `yaml:"attr"`
	Suffix string `yaml:"suffix"`
	Kind   string `yaml:"kind,omitempty"`
}

// DeviceConfig declares a device adapter. A missing read_attrs reads
// every attribute; an empty list reads none.
type DeviceConfig struct {
	Name      string   `yaml:"name"`
	Device    string   `yaml:"device"`
	ReadAttrs []string `yaml:"read_attrs,omitempty"`
}

// Parse parses a configuration from YAML bytes and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded default is invalid: %v", err))
	}
	return cfg
}

// Validate checks object names and fields. All problems are reported
// together.
func (c *Config) Validate() error {
	var errs []error
	seen := make(map[string]bool)

	checkName := func(section, name string) {
		if name == "" {
			errs = append(errs, fmt.Errorf("%s: name: %w", section, ErrEmptyField))
			return
		}
		if seen[name] {
			errs = append(errs, fmt.Errorf("%s %q: %w", section, name, ErrDuplicateName))
		}
		seen[name] = true
	}
	checkKind := func(where, kind string) {
		if _, err := acquire.ParseKind(kind); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", where, err))
		}
	}

	for _, a := range c.Attributes {
		checkName("attribute", a.Name)
		if a.Tango == "" {
			errs = append(errs, fmt.Errorf("attribute %q: tango: %w", a.Name, ErrEmptyField))
		}
		checkKind(fmt.Sprintf("attribute %q", a.Name), a.Kind)
	}

	for _, comp := range c.Composites {
		checkName("composite", comp.Name)
		if len(comp.Components) == 0 {
			errs = append(errs, fmt.Errorf("composite %q: components: %w", comp.Name, ErrEmptyField))
		}
		attrs := make(map[string]bool)
		for _, cc := range comp.Components {
			where := fmt.Sprintf("composite %q component %q", comp.Name, cc.Attr)
			switch {
			case cc.Attr == "":
				errs = append(errs, fmt.Errorf("composite %q: attr: %w", comp.Name, ErrEmptyField))
			case attrs[cc.Attr]:
				errs = append(errs, fmt.Errorf("%s: %w", where, ErrDuplicateName))
			}
			attrs[cc.Attr] = true
			if comp.Prefix+cc.Suffix == "" {
				errs = append(errs, fmt.Errorf("%s: suffix: %w", where, ErrEmptyField))
			}
			checkKind(where, cc.Kind)
		}
	}

	for _, d := range c.Devices {
		checkName("device", d.Name)
		if d.Device == "" {
			errs = append(errs, fmt.Errorf("device %q: device: %w", d.Name, ErrEmptyField))
		}
	}

	return errors.Join(errs...)
}

// Names returns every object name in build order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Attributes)+len(c.Composites)+len(c.Devices))
	for _, a := range c.Attributes {
		names = append(names, a.Name)
	}
	for _, comp := range c.Composites {
		names = append(names, comp.Name)
	}
	for _, d := range c.Devices {
		names = append(names, d.Name)
	}
	return names
}

// Package config declares the acquisition objects a process builds at
// startup: standalone attributes, whole devices and composites of
// attributes. Definitions are read from YAML.
package config

package source

import (
	"maps"
	"os"
	"strings"
)

// Names of the built-in sources.
const (
	EnvironmentName = "environment"
	SystemName      = "system"
)

// Source provides read-only string properties. Properties is called on every
// resolution, so implementations reflect live state. A missing value is
// expressed by leaving the key out.
type Source interface {
	Name() string
	Properties() map[string]string
}

// Environment exposes the process environment variables.
type Environment struct{}

// NewEnvironment creates an environment variable source.
func NewEnvironment() *Environment {
	return &Environment{}
}

// Name implements Source.
func (e *Environment) Name() string {
	return EnvironmentName
}

// Properties returns the current environment. Entries without a key are
// skipped.
func (e *Environment) Properties() map[string]string {
	environ := os.Environ()
	properties := make(map[string]string, len(environ))

	for _, entry := range environ {
		key, value, _ := strings.Cut(entry, "=")
		if key == "" {
			continue
		}

		properties[key] = value
	}

	return properties
}

// Map is a named static set of properties.
type Map struct {
	name       string
	properties map[string]string
}

// NewMap creates a source holding a copy of properties.
func NewMap(name string, properties map[string]string) *Map {
	return &Map{
		name:       name,
		properties: maps.Clone(properties),
	}
}

// Name implements Source.
func (m *Map) Name() string {
	return m.name
}

// Properties returns a copy of the stored properties.
func (m *Map) Properties() map[string]string {
	return maps.Clone(m.properties)
}

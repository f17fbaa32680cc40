package source

import (
	"maps"
	"slices"
	"sync"
)

type entry struct {
	source  Source
	enabled bool
}

// Registry is an ordered list of property sources with enable flags.
// Merging applies sources in registration order, so a later registration
// wins a key collision. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
}

// NewRegistry creates a registry holding sources, all enabled.
func NewRegistry(sources ...Source) *Registry {
	registry := &Registry{
		mu:      sync.RWMutex{},
		entries: nil,
	}

	for _, src := range sources {
		registry.Register(src)
	}

	return registry
}

// Default creates a registry with the environment variables followed by the
// process-wide system properties.
func Default() *Registry {
	return NewRegistry(NewEnvironment(), SystemProperties())
}

// Register appends src as an enabled source. Nil sources are ignored.
func (r *Registry) Register(src Source) {
	if src == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry{source: src, enabled: true})
}

// SetEnabled toggles every source registered under name and reports whether
// any was found. Other sources are left untouched.
func (r *Registry) SetEnabled(name string, enabled bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false

	for i := range r.entries {
		if r.entries[i].source.Name() == name {
			r.entries[i].enabled = enabled
			found = true
		}
	}

	return found
}

// Enabled reports whether at least one enabled source is registered under name.
func (r *Registry) Enabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.ContainsFunc(r.entries, func(e entry) bool {
		return e.enabled && e.source.Name() == name
	})
}

// Sources returns the enabled sources in registration order.
func (r *Registry) Sources() []Source {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sources := make([]Source, 0, len(r.entries))

	for _, e := range r.entries {
		if e.enabled {
			sources = append(sources, e.source)
		}
	}

	return sources
}

// Clone returns an independent registry with the same sources and flags.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &Registry{
		mu:      sync.RWMutex{},
		entries: slices.Clone(r.entries),
	}
}

// Without returns a clone with the sources registered under name disabled.
func (r *Registry) Without(name string) *Registry {
	clone := r.Clone()
	clone.SetEnabled(name, false)

	return clone
}

// Merge flattens the enabled sources into one map. Values are read live.
func (r *Registry) Merge() map[string]string {
	merged := make(map[string]string)

	for _, src := range r.Sources() {
		maps.Copy(merged, src.Properties())
	}

	return merged
}

// Package source provides the property sources consulted when a placeholder
// is not found in the configuration tree.
//
// Built-in sources are the process environment (Environment) and the runtime
// system properties (System). Applications add their own sources to a
// Registry; merging follows registration order with the later source winning.
// Built-ins can be disabled by name without removing custom sources:
//
//	registry := source.Default()
//	registry.Register(source.NewMap("overrides", map[string]string{"region": "eu"}))
//	registry.SetEnabled(source.EnvironmentName, false)
//	properties := registry.Merge()
package source

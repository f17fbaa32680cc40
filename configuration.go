package conf

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/0xalexb/hjarta-conf/config/parser/yaml"
	"github.com/0xalexb/hjarta-conf/resolver"
	"github.com/0xalexb/hjarta-conf/source"
	"github.com/0xalexb/hjarta-conf/tree"
)

// ErrPathNotFound is returned when a path does not lead to a value.
var ErrPathNotFound = errors.New("path not found")

// Configuration is a configuration tree bound to a resolver and a set of
// property sources. Placeholder tokens in the tree are resolved on read; the
// tree itself keeps the raw text.
//
// Reads are safe for concurrent use. Put must not run concurrently with
// other calls.
type Configuration struct {
	document *tree.Document
	resolver *resolver.Resolver
	sources  *source.Registry
	parser   Parser
}

// New binds root to a resolver and property sources. Without options the
// default resolver, the environment and system sources and the YAML parser
// are used.
func New(root tree.Node, opts ...Option) *Configuration {
	options := newOptions(opts)

	return &Configuration{
		document: tree.NewDocument(root),
		resolver: options.Resolver,
		sources:  options.registry(),
		parser:   options.Parser,
	}
}

// Root returns the raw, unresolved tree.
func (c *Configuration) Root() tree.Node {
	return c.document.Root()
}

// Registry returns the property sources used for resolution. Toggling a
// source on the returned registry affects this configuration.
func (c *Configuration) Registry() *source.Registry {
	return c.sources
}

// Node returns the raw node at path.
func (c *Configuration) Node(path string) (tree.Node, bool) {
	return c.document.Node(path)
}

// Has reports whether path leads to a non-null value.
func (c *Configuration) Has(path string) bool {
	return c.document.Has(path)
}

// Get returns the resolved text of the value at path. Mappings and
// sequences are rendered as flow YAML before resolution.
func (c *Configuration) Get(path string) (string, bool) {
	raw, ok := c.document.Lookup(path)
	if !ok {
		return "", false
	}

	return c.resolver.Resolve(raw, c.document, c.sources.Merge()), true
}

// Format resolves the tokens in template against the tree and the property
// sources. Keys in extra take precedence over every registered source; when
// several extra maps define a key the last one wins.
func (c *Configuration) Format(template string, extra ...map[string]string) string {
	layers := make([]map[string]string, 0, len(extra)+1)
	layers = append(layers, c.sources.Merge())
	layers = append(layers, extra...)

	return c.resolver.Resolve(template, c.document, layers...)
}

// Properties returns the merged properties of the enabled sources.
func (c *Configuration) Properties() map[string]string {
	return c.sources.Merge()
}

// Resolve returns a copy of the tree in which every string scalar has been
// resolved. Records are copied into mappings; non-string scalars are kept.
func (c *Configuration) Resolve() tree.Node {
	return c.resolveNode(c.document.Root())
}

func (c *Configuration) resolveNode(node tree.Node) tree.Node {
	properties := c.sources.Merge()

	return tree.Transform(node, func(scalar *tree.Scalar) tree.Node {
		if !scalar.IsString() {
			return tree.NewScalar(scalar.Value())
		}

		return tree.NewScalar(c.resolver.Resolve(scalar.String(), c.document, properties))
	})
}

// ResolveBytes encodes the resolved tree with the configuration's parser.
func (c *Configuration) ResolveBytes() ([]byte, error) {
	encoded, err := c.parser.Encode(c.Resolve())
	if err != nil {
		return nil, fmt.Errorf("encoding resolved tree: %w", err)
	}

	return encoded, nil
}

// ResolveString is ResolveBytes as a string.
func (c *Configuration) ResolveString() (string, error) {
	encoded, err := c.ResolveBytes()
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// ResolveReader is ResolveBytes as a reader, ready to be loaded again.
func (c *Configuration) ResolveReader() (io.Reader, error) {
	encoded, err := c.ResolveBytes()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(encoded), nil
}

// ResolveAs decodes the whole resolved tree into target using yaml struct
// tags.
func (c *Configuration) ResolveAs(target any) error {
	return c.Decode("", target)
}

// Decode resolves the section at path and decodes it into target using yaml
// struct tags. An empty path decodes the whole tree.
func (c *Configuration) Decode(path string, target any) error {
	node := c.document.Root()

	if path != "" {
		var ok bool

		node, ok = c.document.Node(path)
		if !ok {
			return fmt.Errorf("%w: %q", ErrPathNotFound, path)
		}
	}

	err := yaml.Decode(c.resolveNode(node), target)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", path, err)
	}

	return nil
}

// Put writes value at path and reports whether the write was applied. The
// parent of the last segment must exist; sequences are only written in
// range. Maps, slices and plain values are converted to tree nodes.
func (c *Configuration) Put(path string, value any) bool {
	return c.document.Put(path, tree.FromValue(value))
}

// WithoutEnvironmentVariables returns a configuration sharing this tree that
// does not resolve against environment variables.
func (c *Configuration) WithoutEnvironmentVariables() *Configuration {
	return c.derive(c.sources.Without(source.EnvironmentName))
}

// WithoutSystemProperties returns a configuration sharing this tree that
// does not resolve against system properties.
func (c *Configuration) WithoutSystemProperties() *Configuration {
	return c.derive(c.sources.Without(source.SystemName))
}

// WithSources returns a configuration sharing this tree with sources
// registered after the existing ones, so they win key collisions.
func (c *Configuration) WithSources(sources ...source.Source) *Configuration {
	registry := c.sources.Clone()

	for _, src := range sources {
		registry.Register(src)
	}

	return c.derive(registry)
}

func (c *Configuration) derive(registry *source.Registry) *Configuration {
	return &Configuration{
		document: c.document,
		resolver: c.resolver,
		sources:  registry,
		parser:   c.parser,
	}
}

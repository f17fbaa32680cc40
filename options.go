package conf

import (
	"github.com/0xalexb/hjarta-conf/config/parser/yaml"
	"github.com/0xalexb/hjarta-conf/resolver"
	"github.com/0xalexb/hjarta-conf/source"
)

// Options holds the collaborators of a Configuration.
type Options struct {
	Resolver *resolver.Resolver
	Registry *source.Registry
	Sources  []source.Source
	Parser   Parser

	WithoutEnvironment bool
	WithoutSystem      bool
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithResolver sets the token resolver. Defaults to resolver.New().
func WithResolver(r *resolver.Resolver) Option {
	return func(opts *Options) {
		opts.Resolver = r
	}
}

// WithRegistry sets the property source registry. The registry is used as
// is, so toggling its sources later affects the configuration, unless
// WithSources, WithProperties, WithoutEnvironment or WithoutSystem are also
// given; those apply to a private copy. Defaults to source.Default().
func WithRegistry(registry *source.Registry) Option {
	return func(opts *Options) {
		opts.Registry = registry
	}
}

// WithSources registers custom property sources after the built-in ones.
func WithSources(sources ...source.Source) Option {
	return func(opts *Options) {
		opts.Sources = append(opts.Sources, sources...)
	}
}

// WithProperties registers a static map of properties as a custom source.
func WithProperties(name string, properties map[string]string) Option {
	return WithSources(source.NewMap(name, properties))
}

// WithoutEnvironment disables the environment variable source.
func WithoutEnvironment() Option {
	return func(opts *Options) {
		opts.WithoutEnvironment = true
	}
}

// WithoutSystem disables the system property source.
func WithoutSystem() Option {
	return func(opts *Options) {
		opts.WithoutSystem = true
	}
}

// WithParser sets the parser used to load and encode documents.
// Defaults to YAML.
func WithParser(parser Parser) Option {
	return func(opts *Options) {
		opts.Parser = parser
	}
}

func newOptions(opts []Option) *Options {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if options.Resolver == nil {
		options.Resolver = resolver.New()
	}

	if options.Parser == nil {
		options.Parser = yaml.NewParser()
	}

	return &options
}

// registry returns the registry a Configuration reads from. A registry
// given with WithRegistry is cloned before sources are added or disabled,
// so the caller's registry is never changed and repeated calls do not
// register the same sources twice.
func (o *Options) registry() *source.Registry {
	registry := o.Registry

	switch {
	case registry == nil:
		registry = source.Default()
	case len(o.Sources) > 0 || o.WithoutEnvironment || o.WithoutSystem:
		registry = registry.Clone()
	}

	for _, src := range o.Sources {
		registry.Register(src)
	}

	if o.WithoutEnvironment {
		registry.SetEnabled(source.EnvironmentName, false)
	}

	if o.WithoutSystem {
		registry.SetEnabled(source.SystemName, false)
	}

	return registry
}

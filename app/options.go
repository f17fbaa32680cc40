package app

import (
	"io"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/config"
	"github.com/0xalexb/hjarta-conf/server"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfigFile loads the configuration document at path and provides
// *conf.Configuration to the graph.
func WithConfigFile(path string, opts ...conf.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, config.NewModule(path, opts...))
	}
}

// WithConfiguration supplies an already loaded configuration to the graph.
// Use it instead of WithConfigFile.
func WithConfiguration(cfg *conf.Configuration) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, fx.Supply(cfg))
	}
}

// WithHTTPServer adds an HTTP server module exposing the configuration.
// Options override the "server" section of the configuration document.
func WithHTTPServer(name string, opts ...server.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, server.NewModule(name, opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput sets where logs are written. Defaults to os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

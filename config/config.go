package config

import (
	"fmt"
	"log/slog"

	conf "github.com/0xalexb/hjarta-conf"
	filefetcher "github.com/0xalexb/hjarta-conf/config/fetcher/file"

	"go.uber.org/fx"
)

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that decodes the resolved section at path,
// sets defaults and validates the result. An empty path decodes the whole
// document.
func Provider[T any](target *T, path string) func(*conf.Configuration) (*T, error) {
	return func(cfg *conf.Configuration) (*T, error) {
		err := cfg.Decode(path, target)
		if err != nil {
			return nil, fmt.Errorf("decoding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

// Section provides *T decoded from the section at path of the
// *conf.Configuration in the graph.
func Section[T any](path string) fx.Option {
	return fx.Provide(Provider(new(T), path))
}

// NewModule returns an Fx module providing the *conf.Configuration loaded
// from the file at path. The parser is chosen from the file extension.
func NewModule(path string, opts ...conf.Option) fx.Option {
	return fx.Module("config",
		fx.Provide(
			fx.Private,
			filefetcher.NewFetcher(path),
		),
		fx.Provide(func(fetcher *filefetcher.Fetcher) (*conf.Configuration, error) {
			cfg, err := conf.Load(fetcher, conf.ParserFor(fetcher.Extension()), opts...)
			if err != nil {
				return nil, fmt.Errorf("loading %q: %w", fetcher.Path(), err)
			}

			slog.Info("configuration loaded", slog.String("path", fetcher.Path()))

			return cfg, nil
		}),
	)
}

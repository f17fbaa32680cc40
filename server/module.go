package server

import (
	"fmt"
	"log/slog"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/config"

	"go.uber.org/fx"
)

// ConfigPath is the section of the configuration document the server
// settings are read from.
const ConfigPath = "server"

// NewModule creates an Fx module serving the *conf.Configuration found in
// the graph. Settings come from the "server" section of that configuration
// when present; options override them.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Invoke(func(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, cfg *conf.Configuration) error {
			serverCfg, err := loadConfig(cfg, opts)
			if err != nil {
				return err
			}

			srv, err := NewServer(name, NewHandler(cfg, serverCfg), serverCfg, func() {
				shutdownErr := shutdowner.Shutdown()
				if shutdownErr != nil {
					slog.Error("failed to trigger shutdown", "name", name, "error", shutdownErr)
				}
			})
			if err != nil {
				return err
			}

			lifecycle.Append(fx.Hook{
				OnStart: srv.Start,
				OnStop:  srv.Stop,
			})

			return nil
		}),
	)
}

func loadConfig(cfg *conf.Configuration, opts []Option) (Config, error) {
	var serverCfg Config

	if cfg.Has(ConfigPath) {
		_, err := config.Provider(&serverCfg, ConfigPath)(cfg)
		if err != nil {
			return Config{}, fmt.Errorf("server config: %w", err)
		}
	}

	for _, apply := range opts {
		apply(&serverCfg)
	}

	return serverCfg, nil
}

// Package config turns sections of a resolved configuration into typed Go
// values and wires the configuration into an Fx application.
//
// Two optional interfaces hook into decoding:
//   - Defaulter: applies default values after decoding
//   - Validator: validates the section after defaults are set
//
// # Sections
//
// Provider decodes the section at a dotted path, after every placeholder
// token in it has been resolved:
//
//	"api"                     -> config["api"]
//	"database.connection"     -> config["database"]["connection"]
//	"servers[0]"              -> first element of the servers sequence
//	""                        -> entire document
//
// # Example
//
//	type APIConfig struct {
//	    Timeout int    `yaml:"timeout"`
//	    BaseURL string `yaml:"base_url"`
//	}
//
//	fx.New(
//	    config.NewModule("config.yaml"),
//	    config.Section[APIConfig]("services.api"),
//	    fx.Invoke(func(api *APIConfig) { ... }),
//	)
package config

package server

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Defaults for the HTTP server.
const (
	DefaultAddress            = ":8080"
	DefaultMaxBodyBytes int64 = 1 << 20
	DefaultRequestTimeout     = 30 * time.Second
)

var (
	// ErrEmptyAddress is returned when the address is empty.
	ErrEmptyAddress = errors.New("address must not be empty")
	// ErrListenFailed is returned when the server fails to listen on the configured address.
	ErrListenFailed = errors.New("failed to listen")
	// ErrShutdownFailed is returned when the server fails to shut down gracefully.
	ErrShutdownFailed = errors.New("shutdown failed")
	// ErrEmptyName is returned when the server name is empty.
	ErrEmptyName = errors.New("server name must not be empty")
	// ErrNilHandler is returned when a nil http.Handler is provided.
	ErrNilHandler = errors.New("handler must not be nil")
	// ErrInvalidBodyLimit is returned when the request body limit is negative.
	ErrInvalidBodyLimit = errors.New("max body bytes must not be negative")
	// ErrInvalidTimeout is returned when the request timeout is negative.
	ErrInvalidTimeout = errors.New("request timeout must not be negative")
	// ErrInvalidOrigin is returned when an allowed origin is not a bare hostname or "*".
	ErrInvalidOrigin = errors.New("allowed origin must be a bare hostname or *")
)

// Config holds the configuration for the HTTP server. It can be decoded
// from the "server" section of the configuration document.
//
// AllowedOrigins enables CORS for the listed browser origins, given as bare
// hostnames; "*" allows any origin. CORS is off when the list is empty.
type Config struct {
	Address        string        `yaml:"address"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() bool {
	changed := false

	if c.Address == "" {
		c.Address = DefaultAddress
		changed = true
	}

	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
		changed = true
	}

	if c.RequestTimeout == 0 {
		c.RequestTimeout = DefaultRequestTimeout
		changed = true
	}

	return changed
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBodyLimit, c.MaxBodyBytes)
	}

	if c.RequestTimeout < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.RequestTimeout)
	}

	for _, origin := range c.AllowedOrigins {
		if origin == "" || strings.ContainsAny(origin, "/:") {
			return fmt.Errorf("%w: %q", ErrInvalidOrigin, origin)
		}
	}

	return nil
}

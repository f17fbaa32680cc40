package server

import "time"

// Option defines a function type for configuring the HTTP server.
type Option func(*Config)

// WithAddress sets the listen address.
func WithAddress(addr string) Option {
	return func(cfg *Config) {
		cfg.Address = addr
	}
}

// WithMaxBodyBytes limits the size of request bodies.
func WithMaxBodyBytes(limit int64) Option {
	return func(cfg *Config) {
		cfg.MaxBodyBytes = limit
	}
}

// WithRequestTimeout bounds the time a handler may take before the client
// gets 503 Service Unavailable.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.RequestTimeout = timeout
	}
}

// WithAllowedOrigins enables CORS for the given bare hostnames, or "*".
func WithAllowedOrigins(origins ...string) Option {
	return func(cfg *Config) {
		cfg.AllowedOrigins = origins
	}
}

// Package app assembles the configuration service as an Fx application:
// a slog logger, the loaded configuration and optional HTTP servers.
package app

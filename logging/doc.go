// Package logging builds log/slog loggers in JSON or text format for the
// command line tool and the Fx application.
package logging

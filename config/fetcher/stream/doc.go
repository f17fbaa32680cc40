// Package stream fetches a configuration document from an io.Reader, such
// as standard input or an embedded file.
package stream

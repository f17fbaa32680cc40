package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathIsDirectory is returned when the configuration path points to a directory.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher reads a configuration document from disk once and serves copies
// of the cached bytes.
type Fetcher struct {
	path string
	data []byte
}

// New reads the document at path. The path is cleaned before use.
func New(path string) (*Fetcher, error) {
	cleanPath := filepath.Clean(path)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- configuration path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return &Fetcher{
		path: cleanPath,
		data: data,
	}, nil
}

// NewFetcher returns a constructor for New, suitable for fx.Provide.
func NewFetcher(path string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		return New(path)
	}
}

// Fetch returns a copy of the cached document.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

// Path returns the cleaned path the document was read from.
func (f *Fetcher) Path() string {
	return f.path
}

// Extension returns the lower-cased file extension without the leading dot,
// e.g. "yaml" or "toml". It is empty when the file has no extension.
func (f *Fetcher) Extension() string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(f.path)), ".")
}

package stream

import (
	"errors"
	"fmt"
	"io"
)

// ErrNilReader is returned when no reader is given.
var ErrNilReader = errors.New("nil reader")

// Fetcher drains a reader once and serves copies of what it read.
type Fetcher struct {
	data []byte
}

// New reads r to EOF. The reader is not closed.
func New(r io.Reader) (*Fetcher, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading stream: %w", err)
	}

	return &Fetcher{data: data}, nil
}

// Fetch returns a copy of the data read at construction.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

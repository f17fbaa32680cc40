package stream_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/0xalexb/hjarta-conf/config/fetcher/stream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestNew(t *testing.T) {
	t.Parallel()

	fetcher, err := stream.New(strings.NewReader("key: value"))
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, "key: value", string(data))

	data[0] = 'X'

	again, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, "key: value", string(again))
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := stream.New(nil)
	require.ErrorIs(t, err, stream.ErrNilReader)

	_, err = stream.New(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading stream")
}

package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	return path
}

func TestNew_ReadsDocument(t *testing.T) {
	t.Parallel()

	content := []byte("app:\n  storage:\n    path: /storage\n")
	path := writeFile(t, "config.yaml", content)

	fetcher, err := New(path)
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, path, fetcher.Path())
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	fetcher, err := New("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Nil(t, fetcher)
	assert.Contains(t, err.Error(), "stat file")
	assert.Contains(t, err.Error(), "nonexistent")

	fetcher, err = New(t.TempDir())
	require.ErrorIs(t, err, ErrPathIsDirectory)
	assert.Nil(t, fetcher)
}

func TestNew_EmptyFile(t *testing.T) {
	t.Parallel()

	fetcher, err := New(writeFile(t, "empty.yaml", nil))
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestNewFetcher_Constructor(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "config.toml", []byte(`key = "value"`))

	constructor := NewFetcher(path)
	require.NotNil(t, constructor)

	fetcher, err := constructor()
	require.NoError(t, err)
	assert.Equal(t, path, fetcher.path)
}

func TestFetcher_Fetch_CachedAndCopied(t *testing.T) {
	t.Parallel()

	original := []byte(`version: "1.0"`)
	path := writeFile(t, "config.yaml", original)

	fetcher, err := New(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`version: "2.0"`), 0o600))

	first, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, original, first, "Fetch should return data read at construction")

	first[0] = 'X'

	second, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, original, second, "mutating a fetched copy must not affect the cache")
}

func TestFetcher_Extension(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		want string
	}{
		{name: "config.yaml", want: "yaml"},
		{name: "config.YML", want: "yml"},
		{name: "settings.toml", want: "toml"},
		{name: "app.jsonc", want: "jsonc"},
		{name: "noext", want: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			fetcher, err := New(writeFile(t, testCase.name, []byte("a: b")))
			require.NoError(t, err)
			assert.Equal(t, testCase.want, fetcher.Extension())
		})
	}
}

// Package file fetches configuration documents from the local filesystem.
//
// The file is read once when the Fetcher is created; every Fetch returns a
// copy of those bytes, so a running process keeps a consistent view of its
// configuration even if the file changes on disk.
//
// Usage:
//
//	fetcher, err := file.New("/etc/app/config.yaml")
//	if err != nil {
//	    // not found, permission denied, path is a directory...
//	}
//	data, err := fetcher.Fetch()
//
// Errors carry the offending path. Use errors.Is(err, file.ErrPathIsDirectory)
// to detect a directory.
package file

package source

import (
	"maps"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
)

//nolint:gochecknoglobals // process-wide properties, like the environment itself.
var systemProperties = NewSystem()

// SystemProperties returns the process-wide system property source.
func SystemProperties() *System {
	return systemProperties
}

// System exposes runtime properties of the current process (user, host,
// platform, working directory) plus overrides set by the application.
// Overrides win over computed values. It is safe for concurrent use.
type System struct {
	mu        sync.RWMutex
	overrides map[string]string
}

// NewSystem creates a system property source without overrides.
func NewSystem() *System {
	return &System{
		mu:        sync.RWMutex{},
		overrides: make(map[string]string),
	}
}

// Name implements Source.
func (s *System) Name() string {
	return SystemName
}

// Set overrides the property key.
func (s *System) Set(key, value string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.overrides[key] = value
}

// Unset removes the override for key.
func (s *System) Unset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.overrides, key)
}

// Properties computes the runtime properties and applies the overrides.
// Properties that cannot be determined are left out.
func (s *System) Properties() map[string]string {
	properties := map[string]string{
		"os.name":        runtime.GOOS,
		"os.arch":        runtime.GOARCH,
		"go.version":     runtime.Version(),
		"tmp.dir":        os.TempDir(),
		"file.separator": string(filepath.Separator),
		"path.separator": string(filepath.ListSeparator),
		"line.separator": lineSeparator(),
		"process.id":     strconv.Itoa(os.Getpid()),
	}

	if current, err := user.Current(); err == nil {
		properties["user.name"] = current.Username
		properties["user.home"] = current.HomeDir
	}

	if home, err := os.UserHomeDir(); err == nil && properties["user.home"] == "" {
		properties["user.home"] = home
	}

	if wd, err := os.Getwd(); err == nil {
		properties["user.dir"] = wd
	}

	if host, err := os.Hostname(); err == nil {
		properties["host.name"] = host
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	maps.Copy(properties, s.overrides)

	return properties
}

func lineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}

	return "\n"
}

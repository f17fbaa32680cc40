package config_test

import (
	"os"
	"path/filepath"
	"testing"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type listenConfig struct {
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestNewModule_ProvidesConfiguration(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		file    string
		content string
	}{
		{name: "yaml", file: "app.yaml", content: "listen:\n  address: ${listen.host}:${listen.port}\n  host: 0.0.0.0\n  port: 8080\n"},
		{name: "toml", file: "app.toml", content: "[listen]\naddress = \"${listen.host}:${listen.port}\"\nhost = \"0.0.0.0\"\nport = 8080\n"},
		{name: "jsonc", file: "app.jsonc", content: "{\n  // listener\n  \"listen\": {\"address\": \"${listen.host}:${listen.port}\", \"host\": \"0.0.0.0\", \"port\": 8080,},\n}\n"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, testCase.file, testCase.content)

			var (
				cfg    *conf.Configuration
				listen *listenConfig
			)

			app := fxtest.New(t,
				config.NewModule(path, conf.WithoutEnvironment()),
				config.Section[listenConfig]("listen"),
				fx.Populate(&cfg, &listen),
			)

			app.RequireStart()
			defer app.RequireStop()

			require.NotNil(t, cfg)
			assert.Equal(t, "0.0.0.0:8080", listen.Address)
			assert.Equal(t, 8080, listen.Port)
		})
	}
}

func TestNewModule_MissingFile(t *testing.T) {
	t.Parallel()

	app := fx.New(
		fx.NopLogger,
		config.NewModule(filepath.Join(t.TempDir(), "missing.yaml")),
		fx.Invoke(func(*conf.Configuration) {}),
	)

	require.Error(t, app.Err())
	assert.Contains(t, app.Err().Error(), "stat file")
}

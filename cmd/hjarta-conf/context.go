package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/logging"
)

// propertiesSourceName names the source holding --set properties.
const propertiesSourceName = "flags"

var errInvalidProperty = errors.New("property must be key=value")

type commandContext struct {
	configPath string
	sets       []string
	noEnv      bool
	noSystem   bool
	logLevel   string
	logFormat  string

	configOnce sync.Once
	config     *conf.Configuration
	configErr  error
}

func (c *commandContext) logger(w io.Writer) *slog.Logger {
	return logging.NewLogger(logging.LoggerConfig{Level: c.logLevel, Format: c.logFormat}, w)
}

// properties parses the --set flags.
func (c *commandContext) properties() (map[string]string, error) {
	properties := make(map[string]string, len(c.sets))

	for _, set := range c.sets {
		key, value, ok := strings.Cut(set, "=")
		key = strings.TrimSpace(key)

		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", errInvalidProperty, set)
		}

		properties[key] = value
	}

	return properties, nil
}

func (c *commandContext) options() ([]conf.Option, error) {
	properties, err := c.properties()
	if err != nil {
		return nil, err
	}

	opts := []conf.Option{conf.WithProperties(propertiesSourceName, properties)}

	if c.noEnv {
		opts = append(opts, conf.WithoutEnvironment())
	}

	if c.noSystem {
		opts = append(opts, conf.WithoutSystem())
	}

	return opts, nil
}

// ensureConfig loads the document once, from --config or from stdin.
func (c *commandContext) ensureConfig(stdin io.Reader) (*conf.Configuration, error) {
	c.configOnce.Do(func() {
		opts, err := c.options()
		if err != nil {
			c.configErr = err

			return
		}

		path := strings.TrimSpace(c.configPath)
		if path == "" || path == "-" {
			c.config, c.configErr = conf.LoadReader(stdin, opts...)
		} else {
			c.config, c.configErr = conf.LoadFile(path, opts...)
		}

		if c.configErr != nil {
			c.configErr = fmt.Errorf("load configuration: %w", c.configErr)
		}
	})

	return c.config, c.configErr
}

package main

import (
	"fmt"
	"os"

	"github.com/dacapoday/gstr/growth"
	"github.com/pelletier/go-toml/v2"
)

const (
	defaultWidth = 80
	minWidth     = 16
)

type config struct {
	Growth struct {
		Stride int `toml:"stride"`
		Floor  int `toml:"floor"`
	} `toml:"growth"`
	Display struct {
		// Width of the state line. 0 follows the terminal.
		Width int `toml:"width"`
	} `toml:"display"`
}

// ConfigError reports a config file that could not be decoded.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// loadConfig reads the TOML file at path. An empty path yields the defaults.
func loadConfig(path string) (*config, error) {
	if path == "" {
		return new(config), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parseConfig(path, data)
}

func parseConfig(source string, data []byte) (*config, error) {
	cfg := new(config)
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &ConfigError{Path: source, Err: err}
	}
	if cfg.Growth.Stride < 0 || cfg.Growth.Floor < 0 {
		return nil, &ConfigError{Path: source, Err: fmt.Errorf("negative growth setting")}
	}
	if cfg.Display.Width < 0 {
		return nil, &ConfigError{Path: source, Err: fmt.Errorf("negative display width")}
	}
	return cfg, nil
}

func (c *config) policy() growth.Policy {
	return growth.Policy{Stride: c.Growth.Stride, Floor: c.Growth.Floor}.Normalize()
}

// width resolves the display width, asking term for the terminal size when
// the config leaves it at 0.
func (c *config) width(term func() (int, bool)) int {
	w := c.Display.Width
	if w == 0 {
		var ok bool
		if w, ok = term(); !ok {
			w = defaultWidth
		}
	}
	return max(w, minWidth)
}

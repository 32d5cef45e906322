// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Open reads the config file, which must end in .toml, .yaml or .yml,
// over the default values, and validates the result.
func Open(file string) (*Config, error) {
	c := Default()
	if err := c.Open(file); err != nil {
		return nil, err
	}
	return c, nil
}

// Open reads the given file into the config, keeping the current value
// of any setting the file does not mention, and validates the result.
// Unknown settings are an error.
func (c *Config) Open(file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("config.Open: %w", err)
	}
	if err := c.Read(bytes.NewReader(b), Format(file)); err != nil {
		return fmt.Errorf("config.Open %q: %w", file, err)
	}
	return c.Validate()
}

// Read decodes the config from the given reader in the given format,
// which is "toml" or "yaml".
func (c *Config) Read(r io.Reader, format string) error {
	switch format {
	case "toml":
		return toml.NewDecoder(r).DisallowUnknownFields().Decode(c)
	case "yaml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err := dec.Decode(c)
		if err == io.EOF { // empty file
			return nil
		}
		return err
	}
	return fmt.Errorf("unsupported config format %q", format)
}

// Save writes the config to the given file in the format given by
// its extension.
func (c *Config) Save(file string) error {
	var b []byte
	var err error
	switch f := Format(file); f {
	case "toml":
		b, err = toml.Marshal(c)
	case "yaml":
		b, err = yaml.Marshal(c)
	default:
		err = fmt.Errorf("unsupported config format %q", f)
	}
	if err != nil {
		return fmt.Errorf("config.Save %q: %w", file, err)
	}
	return os.WriteFile(file, b, 0o644)
}

// Format returns the config format implied by the file extension:
// "toml", "yaml", or the extension itself if it is not supported.
func Format(file string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file), "."))
	if ext == "yml" {
		return "yaml"
	}
	return ext
}

// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML configuration file with the given name from fsys and
// overlays it on [Default]. A missing or empty file results in the defaults.
// Unknown keys are rejected. The result is validated with [Config.Validate].
func Load(fsys fs.FS, name string) (Config, error) {
	cfg := Default()

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("read file: %w", err)
	}

	err = Decode(data, &cfg)
	if err != nil {
		return Config{}, err
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Decode decodes YAML data into cfg. Values not present in data are kept.
func Decode(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err := decoder.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}

	return nil
}

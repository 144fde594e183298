/*
 * config.go, part of mlabs.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

// Package config reads the mlabs settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	chem "github.com/rmera/mlabs"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the settings file path.
const EnvVar = "MLABS_CONFIG"

// DefaultPath is used when neither a flag nor EnvVar gives a path.
const DefaultPath = "data/settings.yaml"

// ModelList is a list of model artifact paths. In YAML it can be a sequence
// or a single whitespace-separated string.
type ModelList []string

// UnmarshalYAML accepts both a sequence and a whitespace-separated string.
func (m *ModelList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*m = strings.Fields(node.Value)
		return nil
	case yaml.SequenceNode:
		var paths []string
		if err := node.Decode(&paths); err != nil {
			return err
		}
		out := make([]string, 0, len(paths))
		for _, p := range paths {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		*m = out
		return nil
	}
	return fmt.Errorf("ml_models must be a list or a string, line %d", node.Line)
}

// Descriptor holds the descriptor settings.
type Descriptor struct {
	Kappa     float64 `yaml:"kappa"`
	Numbering string  `yaml:"numbering,omitempty"`
}

// Options returns the descriptor options for these settings.
func (d Descriptor) Options() (*chem.DescriptorOptions, error) {
	n, err := chem.ParseNumbering(d.Numbering)
	if err != nil {
		return nil, err
	}
	return &chem.DescriptorOptions{Kappa: d.Kappa, Numbering: n}, nil
}

// Server holds the HTTP server settings.
type Server struct {
	Addr     string        `yaml:"addr"`
	LogLevel string        `yaml:"log_level,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
}

// DB holds the database settings. An empty Driver means no database.
type DB struct {
	Driver string `yaml:"driver,omitempty"`
	DSN    string `yaml:"dsn,omitempty"`
	Table  string `yaml:"table,omitempty"`
}

// Enabled reports whether a database is configured.
func (d DB) Enabled() bool {
	return d.Driver != "" && d.DSN != ""
}

// Config is the in-memory representation of the settings file.
type Config struct {
	ServeUI     bool       `yaml:"serve_ui"`
	MLModels    ModelList  `yaml:"ml_models,omitempty"`
	APIKey      string     `yaml:"api_key,omitempty"`
	APIEndpoint string     `yaml:"api_endpoint,omitempty"`
	Descriptor  Descriptor `yaml:"descriptor"`
	Server      Server     `yaml:"server"`
	DB          DB         `yaml:"db,omitempty"`
}

// DefaultConfig returns the settings used when there is no settings file.
func DefaultConfig() *Config {
	return &Config{
		ServeUI:    true,
		Descriptor: Descriptor{Kappa: chem.DefaultKappa, Numbering: chem.AtomicNumber.String()},
		Server:     Server{Addr: ":5000", LogLevel: "info", Timeout: 30 * time.Second},
		DB:         DB{Table: "ml_knn"},
	}
}

// Path returns the settings path: flag if not empty, else $MLABS_CONFIG, else DefaultPath.
func Path(flag string) string {
	if flag != "" {
		return flag
	}
	if p := os.Getenv(EnvVar); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the settings file at path. Values missing in the file keep
// their defaults. A missing file gives the defaults and no error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that the rest of the program can't recover from.
func (c *Config) Validate() error {
	if !(c.Descriptor.Kappa > 0) {
		return fmt.Errorf("descriptor.kappa must be positive, got %v", c.Descriptor.Kappa)
	}
	if _, err := chem.ParseNumbering(c.Descriptor.Numbering); err != nil {
		return err
	}
	if c.DB.Driver != "" && c.DB.Table == "" {
		return fmt.Errorf("db.table is required when db.driver is set")
	}
	return nil
}

// Save marshals cfg and writes it to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

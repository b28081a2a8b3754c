// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the Tally CLI.
//
// Configuration is resolved in three layers, lowest precedence first:
//
//  1. A YAML file named by the TALLY_CONFIG environment variable or a
//     --config flag. There is no automatic discovery: no ~/.config
//     search, no fallbacks. Absent variable means no file.
//  2. Environment variables (TALLY_SERVICE_URL, TALLY_ADMIN_KEY,
//     TALLY_EMAIL, TALLY_PASSWORD). A .env file in the working
//     directory is honored before these are read.
//  3. Command-line flags, applied by the caller on top of the loaded
//     Config.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names understood by [Load].
const (
	EnvConfigFile = "TALLY_CONFIG"
	EnvServiceURL = "TALLY_SERVICE_URL"
	EnvAdminKey   = "TALLY_ADMIN_KEY"
	EnvEmail      = "TALLY_EMAIL"
	EnvPassword   = "TALLY_PASSWORD"
)

// Config holds the connection settings for the accounting service.
// Fields are optional at this layer; each command validates that the
// settings it actually needs are present.
type Config struct {
	// ServiceURL is the base URL of the accounting service.
	ServiceURL string `yaml:"service_url"`

	// AdminKey is the administrative bearer key, needed only by
	// "tally admin" commands.
	AdminKey string `yaml:"admin_key"`

	// Email identifies the user for "tally user" commands.
	Email string `yaml:"email"`

	// Password is the user's password. Leaving it out of the file and
	// supplying it via TALLY_PASSWORD or an interactive prompt is the
	// recommended arrangement.
	Password string `yaml:"password"`
}

// Load resolves configuration from the file layer and the environment
// layer. path overrides TALLY_CONFIG when non-empty; when neither
// names a file, only the environment contributes. A named file that
// does not exist is an error — a typo'd path should not silently
// degrade to env-only operation.
func Load(path string) (*Config, error) {
	// A .env in the working directory feeds the environment layer.
	// Missing files are fine; malformed ones are not.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: loading .env: %w", err)
	}

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	config := &Config{}
	if path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	config.applyEnvironment()
	return config, nil
}

// LoadFile reads and parses a single YAML configuration file, without
// the environment layer.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var config Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &config, nil
}

// applyEnvironment overrides fields from TALLY_* variables.
func (config *Config) applyEnvironment() {
	if value := os.Getenv(EnvServiceURL); value != "" {
		config.ServiceURL = value
	}
	if value := os.Getenv(EnvAdminKey); value != "" {
		config.AdminKey = value
	}
	if value := os.Getenv(EnvEmail); value != "" {
		config.Email = value
	}
	if value := os.Getenv(EnvPassword); value != "" {
		config.Password = value
	}
}

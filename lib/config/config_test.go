// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeConfig writes a YAML config file into a temp directory and
// returns its path.
func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tally.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
service_url: https://tally.example.com
admin_key: key-123
email: alice@example.com
`)
	config, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if config.ServiceURL != "https://tally.example.com" {
		t.Errorf("service_url = %q", config.ServiceURL)
	}
	if config.AdminKey != "key-123" {
		t.Errorf("admin_key = %q", config.AdminKey)
	}
	if config.Email != "alice@example.com" {
		t.Errorf("email = %q", config.Email)
	}
	if config.Password != "" {
		t.Errorf("password = %q, want empty", config.Password)
	}
}

func TestLoadFile_UnknownField(t *testing.T) {
	path := writeConfig(t, "service_uri: oops\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadFile_Empty(t *testing.T) {
	path := writeConfig(t, "")
	config, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if *config != (Config{}) {
		t.Errorf("empty file should yield zero config, got %+v", config)
	}
}

func TestLoad_MissingNamedFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("a named but missing config file must be an error")
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
service_url: https://file.example.com
email: file@example.com
`)
	t.Setenv(EnvConfigFile, path)
	t.Setenv(EnvServiceURL, "https://env.example.com")
	t.Setenv(EnvPassword, "env-pw")

	config, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if config.ServiceURL != "https://env.example.com" {
		t.Errorf("service_url = %q, want the env value", config.ServiceURL)
	}
	if config.Email != "file@example.com" {
		t.Errorf("email = %q, want the file value", config.Email)
	}
	if config.Password != "env-pw" {
		t.Errorf("password = %q, want the env value", config.Password)
	}
}

func TestLoad_ExplicitPathBeatsEnvVar(t *testing.T) {
	flagPath := writeConfig(t, "service_url: https://flag.example.com\n")
	envPath := writeConfig(t, "service_url: https://envfile.example.com\n")
	t.Setenv(EnvConfigFile, envPath)
	t.Setenv(EnvServiceURL, "")

	config, err := Load(flagPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if config.ServiceURL != "https://flag.example.com" {
		t.Errorf("service_url = %q, want the explicit file's value", config.ServiceURL)
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvServiceURL, "https://env.example.com")
	t.Setenv(EnvAdminKey, "env-key")

	config, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if config.ServiceURL != "https://env.example.com" || config.AdminKey != "env-key" {
		t.Errorf("unexpected config: %+v", config)
	}
}

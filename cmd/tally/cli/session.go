// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/tally-foundation/tally/lib/accounting"
	"github.com/tally-foundation/tally/lib/config"
)

// ServiceConfig carries the flags every command that talks to the
// accounting service shares: the service URL and the config file
// path. It implements [FlagBinder], so parameter structs embed it and
// the flags appear automatically.
type ServiceConfig struct {
	URL        string
	ConfigFile string
}

// AddFlags binds the shared service flags.
func (s *ServiceConfig) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&s.URL, "url", "", "base URL of the accounting service (or TALLY_SERVICE_URL)")
	flagSet.StringVar(&s.ConfigFile, "config", "", "path to a tally config file (or TALLY_CONFIG)")
}

// resolve loads the layered configuration and applies this struct's
// flag values on top. Fails when no service URL emerges from any
// layer.
func (s *ServiceConfig) resolve() (*config.Config, error) {
	resolved, err := config.Load(s.ConfigFile)
	if err != nil {
		return nil, err
	}
	if s.URL != "" {
		resolved.ServiceURL = s.URL
	}
	if resolved.ServiceURL == "" {
		return nil, fmt.Errorf("no service URL configured (use --url, %s, or a config file)", config.EnvServiceURL)
	}
	return resolved, nil
}

// ServiceURL resolves the service base URL from flags, environment,
// and the config file, without requiring any credential. Commands that
// talk to the service unauthenticated (sign-up) use this directly.
func (s *ServiceConfig) ServiceURL() (string, error) {
	resolved, err := s.resolve()
	if err != nil {
		return "", err
	}
	return resolved.ServiceURL, nil
}

// AdminSession resolves an administrative connection from flags,
// environment, and the config file. Embed it in an admin command's
// parameter struct.
type AdminSession struct {
	ServiceConfig
	Key string
}

// AddFlags binds the service flags plus the admin key.
func (s *AdminSession) AddFlags(flagSet *pflag.FlagSet) {
	s.ServiceConfig.AddFlags(flagSet)
	flagSet.StringVar(&s.Key, "admin-key", "", "administrative API key (or TALLY_ADMIN_KEY)")
}

// Connect builds an authenticated AdminClient.
func (s *AdminSession) Connect(logger *slog.Logger) (*accounting.AdminClient, error) {
	resolved, err := s.resolve()
	if err != nil {
		return nil, err
	}
	key := s.Key
	if key == "" {
		key = resolved.AdminKey
	}
	if key == "" {
		return nil, fmt.Errorf("no admin key configured (use --admin-key, %s, or a config file)", config.EnvAdminKey)
	}
	return accounting.NewAdminClient(accounting.AdminConfig{
		URL:    resolved.ServiceURL,
		Key:    key,
		Logger: logger,
	})
}

// UserSession resolves a user connection from flags, environment, and
// the config file, prompting for the password as a last resort.
type UserSession struct {
	ServiceConfig
	Email    string
	Password string
}

// AddFlags binds the service flags plus the user identity.
func (s *UserSession) AddFlags(flagSet *pflag.FlagSet) {
	s.ServiceConfig.AddFlags(flagSet)
	flagSet.StringVar(&s.Email, "email", "", "email to authenticate as (or TALLY_EMAIL)")
	flagSet.StringVar(&s.Password, "password", "", "password (or TALLY_PASSWORD; prompted when absent)")
}

// Connect builds an authenticated UserClient. When no password is
// available from any layer, the user is prompted on the terminal.
func (s *UserSession) Connect(logger *slog.Logger) (*accounting.UserClient, error) {
	resolved, err := s.resolve()
	if err != nil {
		return nil, err
	}

	email := s.Email
	if email == "" {
		email = resolved.Email
	}
	if email == "" {
		return nil, fmt.Errorf("no email configured (use --email, %s, or a config file)", config.EnvEmail)
	}

	password := s.Password
	if password == "" {
		password = resolved.Password
	}
	if password == "" {
		password, err = ReadPassword(fmt.Sprintf("Password for %s: ", email))
		if err != nil {
			return nil, err
		}
		if password == "" {
			return nil, fmt.Errorf("password is empty")
		}
	}

	return accounting.NewUserClient(accounting.UserConfig{
		URL:      resolved.ServiceURL,
		Email:    email,
		Password: password,
		Logger:   logger,
	})
}

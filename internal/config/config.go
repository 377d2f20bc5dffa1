// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads the two external API credentials the pipeline
// requires. Keys come from the environment (optionally seeded from a .env
// file), with a .secrets/ directory of plain-text key files as a fallback:
// the filename is the key name (tavily-api-key, anthropic-api-key) and the
// trimmed file contents are the value.
//
// A missing credential is a startup-time fatal configuration error, not a
// per-request one.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ErrMissingKey reports an absent required credential.
var ErrMissingKey = errors.New("missing required API key")

// secretsDir is the fallback directory of plain-text key files.
var secretsDir = ".secrets"

// Credentials holds the API keys for the external search and generative
// text services.
type Credentials struct {
	TavilyAPIKey    string `envconfig:"TAVILY_API_KEY"`
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`
}

// Load reads credentials from .env, the process environment, and the
// .secrets/ fallback directory, in that order of increasing precedence for
// the fallback (a secret file only fills a key the environment left empty).
func Load() (Credentials, error) {
	// Env vars set in the shell win; a missing .env is not an error.
	_ = godotenv.Load(".env")

	var creds Credentials
	if err := envconfig.Process("", &creds); err != nil {
		return Credentials{}, fmt.Errorf("reading environment: %w", err)
	}

	fallback := loadSecretFiles(secretsDir)
	if creds.TavilyAPIKey == "" {
		creds.TavilyAPIKey = fallback["tavily-api-key"]
	}
	if creds.AnthropicAPIKey == "" {
		creds.AnthropicAPIKey = fallback["anthropic-api-key"]
	}

	if err := creds.Validate(); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

// Validate checks that both required keys are present.
func (c Credentials) Validate() error {
	if c.TavilyAPIKey == "" {
		return fmt.Errorf("%w: TAVILY_API_KEY", ErrMissingKey)
	}
	if c.AnthropicAPIKey == "" {
		return fmt.Errorf("%w: ANTHROPIC_API_KEY", ErrMissingKey)
	}
	return nil
}

// loadSecretFiles reads every file in dir into a map of filename to trimmed
// contents. A missing directory yields an empty map; unreadable files
// produce a warning on stderr but do not abort.
func loadSecretFiles(dir string) map[string]string {
	secrets := make(map[string]string)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return secrets
	}

	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", entry.Name(), err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[entry.Name()] = value
		}
	}
	return secrets
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TAVILY_API_KEY", "tvly-test")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	creds, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tvly-test", creds.TavilyAPIKey)
	assert.Equal(t, "sk-ant-test", creds.AnthropicAPIKey)
}

func TestLoad_MissingTavilyKey(t *testing.T) {
	t.Setenv("TAVILY_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	withSecretsDir(t, t.TempDir())

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingKey)
	assert.Contains(t, err.Error(), "TAVILY_API_KEY")
}

func TestLoad_MissingAnthropicKey(t *testing.T) {
	t.Setenv("TAVILY_API_KEY", "tvly-test")
	t.Setenv("ANTHROPIC_API_KEY", "")
	withSecretsDir(t, t.TempDir())

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingKey)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestLoad_SecretsFileFallback(t *testing.T) {
	t.Setenv("TAVILY_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-env")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tavily-api-key"), []byte("tvly-file\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "anthropic-api-key"), []byte("sk-ant-file\n"), 0o644))
	withSecretsDir(t, dir)

	creds, err := Load()
	require.NoError(t, err)
	// File only fills keys the environment left empty.
	assert.Equal(t, "tvly-file", creds.TavilyAPIKey)
	assert.Equal(t, "sk-ant-env", creds.AnthropicAPIKey)
}

func TestLoadSecretFiles_MissingDirIsEmpty(t *testing.T) {
	got := loadSecretFiles(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Empty(t, got)
}

func TestLoadSecretFiles_SkipsHiddenAndEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty-key"), []byte("  \n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real-key"), []byte(" value \n"), 0o644))

	got := loadSecretFiles(dir)
	assert.Equal(t, map[string]string{"real-key": "value"}, got)
}

// withSecretsDir points the package at a test directory for the duration of
// the test.
func withSecretsDir(t *testing.T, dir string) {
	t.Helper()
	old := secretsDir
	secretsDir = dir
	t.Cleanup(func() { secretsDir = old })
}

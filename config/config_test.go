package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ionap "github.com/ionite/ion-ap-client-go"
)

func TestResolve_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	creds, err := Resolve(filepath.Join(t.TempDir(), "nope.conf"))
	require.NoError(t, err)

	assert.Equal(t, ionap.PlaceholderAPIKey, creds.APIKey)
	assert.Equal(t, ionap.DefaultBaseURL, creds.BaseURL)
	assert.False(t, creds.Valid())
}

func TestResolve_ReadsFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	path := filepath.Join(t.TempDir(), "client.conf")
	require.NoError(t, os.WriteFile(path, []byte("api_key: file-key\napi_url: https://ap.example.com/api/\n"), 0o600))

	creds, err := Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", creds.APIKey)
	assert.Equal(t, "https://ap.example.com/api/", creds.BaseURL)
	assert.True(t, creds.Valid())
}

func TestResolve_EnvOverridesFileKeyOnly(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")

	path := filepath.Join(t.TempDir(), "client.conf")
	require.NoError(t, os.WriteFile(path, []byte("api_key: file-key\napi_url: https://ap.example.com/api/\n"), 0o600))

	creds, err := Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", creds.APIKey)
	// The base URL comes only from the file.
	assert.Equal(t, "https://ap.example.com/api/", creds.BaseURL)
}

func TestResolve_UnparsableFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	path := filepath.Join(t.TempDir(), "client.conf")
	require.NoError(t, os.WriteFile(path, []byte("api_key: [unclosed\n"), 0o600))

	_, err := Resolve(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, path, cfgErr.Path)
}

func TestWriteDefault_RoundTrip(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	path := filepath.Join(t.TempDir(), "client.conf")

	written, err := WriteDefault(path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	creds, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, ionap.PlaceholderAPIKey, creds.APIKey)
	assert.Equal(t, ionap.DefaultBaseURL, creds.BaseURL)
}

func TestWriteDefault_OwnerOnlyPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "client.conf")

	_, err := WriteDefault(path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteDefault_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.conf")
	require.NoError(t, os.WriteFile(path, []byte("api_key: precious\n"), 0o600))

	_, err := WriteDefault(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExists))

	// The existing file is untouched.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "api_key: precious\n", string(data))
}

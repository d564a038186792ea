// Package config resolves ion-AP credentials from the environment and
// an optional YAML config file, and writes an initial default file.
//
// Precedence is fixed: built-in defaults, then the config file when it
// exists, then the IONAP_API_KEY environment variable for the key only.
// A missing config file is not an error; a file that exists but does
// not parse is a [ConfigError].
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	ionap "github.com/ionite/ion-ap-client-go"
)

// EnvAPIKey overrides the config file's api_key when set. The base URL
// comes only from the file.
const EnvAPIKey = "IONAP_API_KEY"

// DefaultFileName is the config file looked up under the home
// directory when no explicit path is given.
const DefaultFileName = ".ion-ap-client.conf"

// File is the on-disk config shape.
type File struct {
	APIKey string `yaml:"api_key"`
	APIURL string `yaml:"api_url"`
}

// ConfigError reports a config file that exists but cannot be read or
// parsed. It is fatal for the invocation.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config file %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ErrExists is returned by [WriteDefault] when the target file already
// exists; an existing config is never overwritten.
var ErrExists = errors.New("config file already exists")

// DefaultPath returns the default config file location under the
// user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Resolve produces the credentials for one invocation. An empty path
// selects the default location. The result is an immutable value; the
// key may still be the placeholder, which the client rejects before
// any network call.
func Resolve(path string) (ionap.Credentials, error) {
	creds := ionap.Credentials{
		APIKey:  ionap.PlaceholderAPIKey,
		BaseURL: ionap.DefaultBaseURL,
	}

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return ionap.Credentials{}, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var f File
		if err := yaml.Unmarshal(data, &f); err != nil {
			return ionap.Credentials{}, &ConfigError{Path: path, Err: err}
		}
		if f.APIKey != "" {
			creds.APIKey = f.APIKey
		}
		if f.APIURL != "" {
			creds.BaseURL = f.APIURL
		}
	case os.IsNotExist(err):
		// No config file is fine, the defaults stand.
	default:
		return ionap.Credentials{}, &ConfigError{Path: path, Err: err}
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		creds.APIKey = key
	}
	return creds, nil
}

// WriteDefault creates a config file with the placeholder key and the
// default base URL, readable and writable by the owner only. It never
// overwrites: an existing file fails with [ErrExists]. The resolved
// path is returned for display.
func WriteDefault(path string) (string, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return "", err
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%s: %w", path, ErrExists)
	}

	data, err := yaml.Marshal(File{
		APIKey: ionap.PlaceholderAPIKey,
		APIURL: ionap.DefaultBaseURL,
	})
	if err != nil {
		return path, err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return path, fmt.Errorf("writing config file: %w", err)
	}
	return path, nil
}

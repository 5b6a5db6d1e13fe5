package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
host = "0.0.0.0"
port = 9000
log_level = "debug"

[library]
root = "/media/esde"
read_only = true

[fetch]
timeout = "10s"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "/media/esde", cfg.Library.Root)
	assert.True(t, cfg.Library.ReadOnly)
	assert.Equal(t, 10*time.Second, cfg.Fetch.Timeout)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[library]
root = "/media/esde"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8980, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.False(t, cfg.Library.ReadOnly)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("GAMEDIA_TEST_ROOT", "/from/env")
	path := writeConfig(t, `
[library]
root = "${GAMEDIA_TEST_ROOT}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Library.Root)
}

func TestLoad_MissingEnvLeftAlone(t *testing.T) {
	path := writeConfig(t, `
[library]
root = "${GAMEDIA_DEFINITELY_UNSET}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "${GAMEDIA_DEFINITELY_UNSET}", cfg.Library.Root)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	root := t.TempDir()

	cfg := Default(root)
	assert.Empty(t, cfg.Validate())

	cfg = Default("")
	errs := cfg.Validate()
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "library.root")

	cfg = Default(root)
	cfg.Server.Port = 99999
	errs = cfg.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "server.port")

	cfg = Default(root)
	cfg.Server.LogLevel = "loud"
	errs = cfg.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "server.log_level")
}

func TestConfigError(t *testing.T) {
	e := &ConfigError{Path: "config.toml", Errors: []string{"library.root: required"}}
	assert.True(t, e.HasErrors())
	assert.Contains(t, e.Error(), "library.root: required")

	empty := &ConfigError{}
	assert.False(t, empty.HasErrors())
	assert.Empty(t, empty.Error())
}

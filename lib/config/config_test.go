package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shiroyk/biscuit/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "biscuit", "config.yml")

	config, err := ReadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
	assert.FileExists(t, file)

	config, err = ReadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, api.DefaultAddress, config.API.Address)
	assert.Equal(t, time.Minute, config.API.Timeout)
}

func TestReadConfigOverride(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(file, []byte("api:\n  address: :9000\n  h2c: true\nlog:\n  level: debug\n"), 0o600))

	config, err := ReadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, ":9000", config.API.Address)
	assert.True(t, config.API.H2C)
	assert.Equal(t, api.DefaultTimeout, config.API.Timeout)
	assert.Equal(t, "debug", config.Log.Level)
}

func TestReadConfigInvalid(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(file, []byte("api: [\n"), 0o600))

	_, err := ReadConfig(file)
	assert.Error(t, err)
}

func TestWriteConfigExists(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "config.yml")

	require.NoError(t, WriteConfig(file, DefaultConfig()))
	assert.ErrorIs(t, WriteConfig(file, DefaultConfig()), ErrConfigExists)
}

func TestContext(t *testing.T) {
	t.Parallel()
	assert.Equal(t, DefaultConfig(), FromContext(context.Background()))

	config := DefaultConfig()
	config.API.Token = "token"
	assert.Equal(t, "token", FromContext(NewContext(context.Background(), config)).API.Token)
}

package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(serverEnv, "")
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	require.Equal(t, defaultServerURL, cfg.ServerURL)
	require.Equal(t, defaultTimeout, cfg.Timeout)
	require.Contains(t, cfg.SessionPath, "session.json")
}

func TestLoadConfig_EnvAndFlags(t *testing.T) {
	t.Setenv(serverEnv, "http://env:1")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	require.Equal(t, "http://env:1", cfg.ServerURL)

	cfg, err = LoadConfig([]string{"--server", "http://flag:2", "--session", "/tmp/s.json", "--timeout", "3s"})
	require.NoError(t, err)
	require.Equal(t, "http://flag:2", cfg.ServerURL)
	require.Equal(t, "/tmp/s.json", cfg.SessionPath)
	require.Equal(t, 3*time.Second, cfg.Timeout)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig([]string{"--bogus"})
	require.Error(t, err)

	_, err = LoadConfig([]string{"--server", ""})
	require.Error(t, err)
}

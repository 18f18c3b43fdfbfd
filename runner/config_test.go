package runner_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/CoreumFoundation/explorer-kit/runner"
)

func TestInitAndReadConfig(t *testing.T) {
	t.Parallel()

	defaultCfg := runner.DefaultConfig()

	yamlStringConfig, err := yaml.Marshal(defaultCfg)
	require.NoError(t, err)
	require.Equal(t, getDefaultConfigString(), string(yamlStringConfig))
	// create temp dir to store the config
	tempDir := t.TempDir()
	//  try to read none-existing config
	_, err = runner.ReadConfig(tempDir)
	require.Error(t, err)

	// init the config first time
	require.NoError(t, runner.InitConfig(tempDir, defaultCfg))

	// try to init the config second time
	require.Error(t, runner.InitConfig(tempDir, defaultCfg))

	// read config
	readConfig, err := runner.ReadConfig(tempDir)
	require.NoError(t, err)
	require.Equal(t, defaultCfg, readConfig)
}

func TestReadConfig_PartialFile(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	configPath := runner.BuildFilePath(tempDir)
	require.NoError(t, os.WriteFile(configPath, []byte(`version: v1
store:
    backend: bolt
    path: explorer.db
`), 0o600))

	readConfig, err := runner.ReadConfig(tempDir)
	require.NoError(t, err)

	expectedCfg := runner.DefaultConfig()
	expectedCfg.Store.Backend = runner.StoreBackendBolt
	expectedCfg.Store.Path = "explorer.db"
	require.Equal(t, expectedCfg, readConfig)
}

//nolint:paralleltest // the test modifies the environment
func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("EXPLORER_LOG_LEVEL", "debug")
	t.Setenv("EXPLORER_STORE_BACKEND", "memory")
	t.Setenv("EXPLORER_EXTENSION_URL", "http://127.0.0.1:9999")
	t.Setenv("EXPLORER_KEY_NAME", "")
	t.Setenv("EXPLORER_METRICS_FILE", "/tmp/explorer-kit.prom")

	cfg, err := runner.ApplyEnvOverrides(runner.DefaultConfig())
	require.NoError(t, err)

	expectedCfg := runner.DefaultConfig()
	expectedCfg.LoggingConfig.Level = "debug"
	expectedCfg.Store.Backend = runner.StoreBackendMemory
	expectedCfg.Extension.URL = "http://127.0.0.1:9999"
	expectedCfg.Metrics.File = "/tmp/explorer-kit.prom"
	require.Equal(t, expectedCfg, cfg)
	require.Equal(t, 2*time.Minute, cfg.Extension.RequestTimeout)
}

func TestStorePath(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	require.Equal(t, filepath.Join(home, "data"), runner.StorePath(home, runner.StoreConfig{Path: "data"}))

	absPath := filepath.Join(t.TempDir(), "db")
	require.Equal(t, absPath, runner.StorePath(home, runner.StoreConfig{Path: absPath}))
}

// the func returns the default config snapshot as string.
func getDefaultConfigString() string {
	return `version: v1
logging:
    level: info
    format: console
store:
    backend: leveldb
    path: data
ledger:
    transport: usb
extension:
    url: http://localhost:8090
    request_timeout: 2m0s
keyring:
    key_name: explorer
metrics:
    file: ""
theme:
    primary: '#7367F0'
    secondary: '#82868B'
    success: '#28C76F'
    info: '#00CFE8'
    warning: '#FF9F43'
    danger: '#EA5455'
    light: '#F6F6F6'
    dark: '#4B4B4B'
`
}

//nolint:tagliatelle // yaml naming
package runner

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/CoreumFoundation/explorer-kit/extension"
	"github.com/CoreumFoundation/explorer-kit/format"
	"github.com/CoreumFoundation/explorer-kit/logger"
	"github.com/CoreumFoundation/explorer-kit/signer"
)

const (
	configVersion = "v1"
	// ConfigFileName is file name used for the explorer kit config.
	ConfigFileName = "explorer-kit.yaml"
	// EnvPrefix is the prefix of the environment variables overriding the config.
	EnvPrefix = "EXPLORER"
)

// StoreBackend is the backend of the local store.
type StoreBackend string

// StoreBackend values.
const (
	StoreBackendMemory  StoreBackend = "memory"
	StoreBackendLevelDB StoreBackend = "leveldb"
	StoreBackendBolt    StoreBackend = "bolt"
)

// LoggingConfig is logging config.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// StoreConfig is local store config.
type StoreConfig struct {
	Backend StoreBackend `yaml:"backend"`
	// Path is relative to the home if not absolute.
	Path string `yaml:"path"`
}

// LedgerConfig is ledger config.
type LedgerConfig struct {
	Transport string `yaml:"transport"`
}

// ExtensionConfig is wallet bridge config.
type ExtensionConfig struct {
	URL            string        `yaml:"url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// KeyringConfig is keyring signer config.
type KeyringConfig struct {
	KeyName string `yaml:"key_name"`
}

// MetricsConfig is metrics config.
type MetricsConfig struct {
	// File receives the metrics in the prometheus text format when the components are closed. Empty disables it.
	File string `yaml:"file"`
}

// Config is runner config.
type Config struct {
	Version       string             `yaml:"version"`
	LoggingConfig LoggingConfig      `yaml:"logging"`
	Store         StoreConfig        `yaml:"store"`
	Ledger        LedgerConfig       `yaml:"ledger"`
	Extension     ExtensionConfig    `yaml:"extension"`
	Keyring       KeyringConfig      `yaml:"keyring"`
	Metrics       MetricsConfig      `yaml:"metrics"`
	Theme         format.ThemeColors `yaml:"theme"`
}

// envOverrides are the config values which might be set with the environment variables.
type envOverrides struct {
	LogLevel        string `envconfig:"LOG_LEVEL"`
	LogFormat       string `envconfig:"LOG_FORMAT"`
	StoreBackend    string `envconfig:"STORE_BACKEND"`
	StorePath       string `envconfig:"STORE_PATH"`
	LedgerTransport string `envconfig:"LEDGER_TRANSPORT"`
	ExtensionURL    string `envconfig:"EXTENSION_URL"`
	KeyName         string `envconfig:"KEY_NAME"`
	MetricsFile     string `envconfig:"METRICS_FILE"`
}

// DefaultConfig returns default runner config.
func DefaultConfig() Config {
	defaultExtensionCfg := extension.DefaultConfig()

	return Config{
		Version:       configVersion,
		LoggingConfig: LoggingConfig(logger.DefaultZapLoggerConfig()),
		Store: StoreConfig{
			Backend: StoreBackendLevelDB,
			Path:    "data",
		},
		Ledger: LedgerConfig{
			Transport: string(signer.TransportUSB),
		},
		Extension: ExtensionConfig{
			URL:            defaultExtensionCfg.URL,
			RequestTimeout: defaultExtensionCfg.RequestTimeout,
		},
		Keyring: KeyringConfig{
			KeyName: "explorer",
		},
		Theme: format.DefaultThemeColors(),
	}
}

// InitConfig creates config yaml file.
func InitConfig(homePath string, cfg Config) error {
	path := BuildFilePath(homePath)
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		return errors.Errorf("failed to init config, file already exists, path:%s", path)
	}

	err := os.MkdirAll(homePath, 0o700)
	if err != nil {
		return errors.Errorf("failed to create dirs by path:%s", path)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return errors.Wrapf(err, "failed to create config file, path:%s", path)
	}
	defer file.Close()

	yamlStringConfig, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed convert default config to yaml")
	}
	if _, err := file.Write(yamlStringConfig); err != nil {
		return errors.Wrapf(err, "failed to write yaml config file, path:%s", path)
	}

	return nil
}

// ReadConfig reads config yaml file.
func ReadConfig(homePath string) (Config, error) {
	path := BuildFilePath(homePath)
	file, err := os.OpenFile(path, os.O_RDONLY, 0o600)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, errors.Errorf("config file does not exist, path:%s", path)
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to open config file, path:%s", path)
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read bytes from file, path:%s", path)
	}

	// the values absent in the file stay default
	config := DefaultConfig()
	if err := yaml.Unmarshal(fileBytes, &config); err != nil {
		return Config{}, errors.Wrapf(err, "failed to unmarshal file to yaml, path:%s", path)
	}

	return config, nil
}

// ApplyEnvOverrides overrides the config values with the EXPLORER_* environment variables.
func ApplyEnvOverrides(cfg Config) (Config, error) {
	var overrides envOverrides
	if err := envconfig.Process(EnvPrefix, &overrides); err != nil {
		return Config{}, errors.Wrap(err, "failed to process env config")
	}

	setIfPresent(&cfg.LoggingConfig.Level, overrides.LogLevel)
	setIfPresent(&cfg.LoggingConfig.Format, overrides.LogFormat)
	setIfPresent((*string)(&cfg.Store.Backend), overrides.StoreBackend)
	setIfPresent(&cfg.Store.Path, overrides.StorePath)
	setIfPresent(&cfg.Ledger.Transport, overrides.LedgerTransport)
	setIfPresent(&cfg.Extension.URL, overrides.ExtensionURL)
	setIfPresent(&cfg.Keyring.KeyName, overrides.KeyName)
	setIfPresent(&cfg.Metrics.File, overrides.MetricsFile)

	return cfg, nil
}

// BuildFilePath returns the path of the config file in the home.
func BuildFilePath(homePath string) string {
	return filepath.Join(homePath, ConfigFileName)
}

// StorePath returns the absolute store path.
func StorePath(homePath string, cfg StoreConfig) string {
	if filepath.IsAbs(cfg.Path) {
		return cfg.Path
	}

	return filepath.Join(homePath, cfg.Path)
}

func setIfPresent(target *string, value string) {
	if value != "" {
		*target = value
	}
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"sigs.k8s.io/yaml"

	"github.com/CoreumFoundation/explorer-kit/buildinfo"
	"github.com/CoreumFoundation/explorer-kit/logger"
	"github.com/CoreumFoundation/explorer-kit/runner"
)

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	DefaultHomeDir = filepath.Join(userHomeDir, ".explorer-kit")
}

// DefaultHomeDir is default home for the explorer kit.
var DefaultHomeDir string

const (
	// FlagHome is home flag.
	FlagHome = "home"
	// FlagKeyName is key name flag.
	FlagKeyName = "key-name"
	// FlagDevice is signer device flag.
	FlagDevice = "device"
	// FlagTransport is Ledger transport flag.
	FlagTransport = "transport"
	// FlagHDPath is hd path flag.
	FlagHDPath = "hd-path"
	// FlagStoreBackend is store backend flag.
	FlagStoreBackend = "store-backend"
	// FlagExtensionURL is wallet bridge URL flag.
	FlagExtensionURL = "extension-url"
	// FlagChain is chain name flag.
	FlagChain = "chain"
	// FlagOp is the operation flag of the tx history record.
	FlagOp = "op"
	// FlagFraction is the token amount fraction flag.
	FlagFraction = "fraction"
	// FlagDecimals is the number decimals flag.
	FlagDecimals = "decimals"
	// FlagAbbr is the number abbreviation flag.
	FlagAbbr = "abbr"
	// FlagFormat is the time format flag.
	FlagFormat = "format"
	// FlagLength is the abbreviation length flag.
	FlagLength = "length"
	// FlagCoinType is the key coin type flag.
	FlagCoinType = "coin-type"
	// FlagMetricsFile is the metrics file flag.
	FlagMetricsFile = "metrics-file"
)

// GetCLILogger returns the console logger initialised with the default logger config.
func GetCLILogger() (*logger.ZapLogger, error) {
	zapLogger, err := logger.NewZapLogger(logger.DefaultZapLoggerConfig())
	if err != nil {
		return nil, err
	}

	return zapLogger, nil
}

// GetHomeRunnerConfig reads runner config from home directory and applies the environment overrides.
func GetHomeRunnerConfig(cmd *cobra.Command) (runner.Config, error) {
	home, err := getHome(cmd)
	if err != nil {
		return runner.Config{}, err
	}

	cfg, err := runner.ReadConfig(home)
	if err != nil {
		return runner.Config{}, err
	}

	return runner.ApplyEnvOverrides(cfg)
}

// NewComponents creates components based on CLI input.
func NewComponents(cmd *cobra.Command, log logger.Logger) (runner.Components, error) {
	cfg, err := GetHomeRunnerConfig(cmd)
	if err != nil {
		return runner.Components{}, err
	}
	home, err := getHome(cmd)
	if err != nil {
		return runner.Components{}, err
	}

	if cmd.Flags().Lookup(FlagMetricsFile) != nil {
		metricsFile, err := cmd.Flags().GetString(FlagMetricsFile)
		if err != nil {
			return runner.Components{}, errors.Wrapf(err, "failed to read %s", FlagMetricsFile)
		}
		if metricsFile != "" {
			cfg.Metrics.File = metricsFile
		}
	}

	kr, err := newKeyring(client.GetClientContextFromCmd(cmd), cmd.Flags(), home)
	if err != nil {
		return runner.Components{}, errors.Wrap(err, "failed to configure keyring")
	}

	return runner.NewComponents(cfg, home, kr, log)
}

// InitCmd returns the init cmd.
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initializes the explorer kit home with the default config and chains.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			home, err := getHome(cmd)
			if err != nil {
				return err
			}
			log, err := GetCLILogger()
			if err != nil {
				return err
			}
			log.Info(ctx, "Generating settings", zap.String("home", home))

			cfg := runner.DefaultConfig()
			storeBackend, err := cmd.Flags().GetString(FlagStoreBackend)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagStoreBackend)
			}
			cfg.Store.Backend = runner.StoreBackend(storeBackend)

			extensionURL, err := cmd.Flags().GetString(FlagExtensionURL)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagExtensionURL)
			}
			cfg.Extension.URL = extensionURL

			if err = runner.InitConfig(home, cfg); err != nil {
				return err
			}

			components, err := runner.NewComponents(cfg, home, nil, log)
			if err != nil {
				return err
			}
			if err := runner.SeedChains(components.LocalStore); err != nil {
				_ = components.Close()
				return err
			}
			if err := components.Close(); err != nil {
				return err
			}

			log.Info(ctx, "Settings are generated successfully")
			return nil
		},
	}

	defaultCfg := runner.DefaultConfig()
	cmd.PersistentFlags().String(
		FlagStoreBackend, string(defaultCfg.Store.Backend), "Store backend (memory|leveldb|bolt).",
	)
	cmd.PersistentFlags().String(FlagExtensionURL, defaultCfg.Extension.URL, "Wallet bridge address.")
	AddHomeFlag(cmd)

	return cmd
}

// VersionCmd returns a CLI command to interactively print the application binary version information.
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application binary version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printYAML(cmd, map[string]string{
				"version": buildinfo.VersionTag,
				"commit":  buildinfo.GitCommit,
			})
		},
	}
}

// AddHomeFlag adds home flag to the command.
func AddHomeFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String(FlagHome, DefaultHomeDir, "Explorer kit home directory")
}

// AddKeyringFlags adds keyring flags to the command.
func AddKeyringFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(
		flags.FlagKeyringBackend,
		flags.DefaultKeyringBackend,
		"Select keyring's backend (os|file|kwallet|pass|test)",
	)
	cmd.PersistentFlags().String(
		flags.FlagKeyringDir,
		"", "The client Keyring directory; if omitted, the default 'home' directory will be used")
}

// AddKeyNameFlag adds key-name flag to the command.
func AddKeyNameFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String(FlagKeyName, "", "Key name from the keyring, the configured one is used if empty")
}

// AddMetricsFileFlag adds metrics-file flag to the command.
func AddMetricsFileFlag(cmd *cobra.Command) {
	cmd.Flags().String(
		FlagMetricsFile, "", "File to write the prometheus metrics to on exit, the configured one is used if empty",
	)
}

func getHome(cmd *cobra.Command) (string, error) {
	return cmd.Flags().GetString(FlagHome)
}

// newKeyring returns the keyring of the keyring flags or nil if the command has no keyring flags.
func newKeyring(clientCtx client.Context, flagSet *pflag.FlagSet, home string) (keyring.Keyring, error) {
	if flagSet.Lookup(flags.FlagKeyringDir) == nil || flagSet.Lookup(flags.FlagKeyringBackend) == nil {
		return nil, nil //nolint:nilnil // nil keyring is expected for the commands without keyring
	}
	keyringDir, err := flagSet.GetString(flags.FlagKeyringDir)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if keyringDir == "" {
		keyringDir = filepath.Join(home, "keyring")
	}
	keyringBackend, err := flagSet.GetString(flags.FlagKeyringBackend)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if clientCtx.Codec == nil {
		registry := codectypes.NewInterfaceRegistry()
		cryptocodec.RegisterInterfaces(registry)
		clientCtx = clientCtx.WithCodec(codec.NewProtoCodec(registry))
	}
	if clientCtx.Input == nil {
		clientCtx = clientCtx.WithInput(os.Stdin)
	}

	kr, err := client.NewKeyringFromBackend(clientCtx.WithKeyringDir(keyringDir), keyringBackend)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return kr, nil
}

func printYAML(cmd *cobra.Command, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal output to yaml")
	}
	if _, err := fmt.Fprint(cmd.OutOrStdout(), string(out)); err != nil {
		return errors.Wrap(err, "failed to print output")
	}

	return nil
}

func runComponentsCmd(
	f func(cmd *cobra.Command, args []string, components runner.Components) error,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log, err := GetCLILogger()
		if err != nil {
			return err
		}

		components, err := NewComponents(cmd, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := components.Close(); err != nil {
				log.Warn(cmd.Context(), "Failed to close components", zap.Error(err))
			}
		}()

		return f(cmd, args, components)
	}
}

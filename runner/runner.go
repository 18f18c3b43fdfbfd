package runner

import (
	"strconv"

	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	coreumchainconstant "github.com/CoreumFoundation/coreum/v5/pkg/config/constant"
	"github.com/CoreumFoundation/explorer-kit/extension"
	"github.com/CoreumFoundation/explorer-kit/logger"
	"github.com/CoreumFoundation/explorer-kit/metrics"
	"github.com/CoreumFoundation/explorer-kit/signer"
	"github.com/CoreumFoundation/explorer-kit/store"
	"github.com/CoreumFoundation/explorer-kit/types"
)

// DefaultChains returns the chains stored by the init if no chains are stored yet.
func DefaultChains() []types.Chain {
	coinType := strconv.FormatUint(uint64(coreumchainconstant.CoinType), 10)

	return []types.Chain{
		{
			ChainName:  "coreum",
			ChainID:    string(coreumchainconstant.ChainIDMain),
			AddrPrefix: coreumchainconstant.AddressPrefixMain,
			CoinType:   coinType,
			MinTxFee:   "0.0625" + coreumchainconstant.DenomMain,
		},
		{
			ChainName:  "coreum-testnet",
			ChainID:    string(coreumchainconstant.ChainIDTest),
			AddrPrefix: coreumchainconstant.AddressPrefixTest,
			CoinType:   coinType,
			MinTxFee:   "0.0625" + coreumchainconstant.DenomTest,
		},
	}
}

// Components are the explorer kit components used by the CLI commands.
type Components struct {
	Log             logger.Logger
	RunnerConfig    Config
	MetricsRegistry *metrics.Registry
	MetricsGatherer prometheus.Gatherer
	Store           store.Store
	LocalStore      *store.LocalStore
	HDPaths         *signer.HDPathResolver
	Transports      signer.Transports
	Dispatcher      *signer.Dispatcher
	Extension       *extension.Client
	Keyring         keyring.Keyring
}

// NewComponents creates components required by CLI commands.
func NewComponents(
	cfg Config,
	homePath string,
	kr keyring.Keyring,
	log logger.Logger,
) (Components, error) {
	promRegistry := prometheus.NewRegistry()
	metricsRegistry := metrics.NewRegistry()
	if err := metricsRegistry.Register(promRegistry); err != nil {
		return Components{}, err
	}
	log = logger.WithMetrics(log, metricsRegistry)

	st, err := OpenStore(homePath, cfg.Store)
	if err != nil {
		return Components{}, err
	}
	localStore := store.NewLocalStore(st)

	transports := signer.DefaultTransports()

	return Components{
		Log:             log,
		RunnerConfig:    cfg,
		MetricsRegistry: metricsRegistry,
		MetricsGatherer: promRegistry,
		Store:           st,
		LocalStore:      localStore,
		HDPaths:         signer.NewHDPathResolver(localStore),
		Transports:      transports,
		Dispatcher:      signer.NewDispatcher(log, metricsRegistry, transports),
		Extension: extension.NewClient(extension.Config{
			URL:            cfg.Extension.URL,
			RequestTimeout: cfg.Extension.RequestTimeout,
		}),
		Keyring: kr,
	}, nil
}

// Close writes the metrics file if configured and releases the components resources.
func (c Components) Close() error {
	var metricsErr error
	if c.RunnerConfig.Metrics.File != "" && c.MetricsGatherer != nil {
		metricsErr = metrics.WriteTextFile(c.RunnerConfig.Metrics.File, c.MetricsGatherer)
	}
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			return err
		}
	}

	return metricsErr
}

// Backend returns the signer backend of the device.
func (c Components) Backend(device signer.Device, chainID string) (signer.Backend, error) {
	switch device {
	case signer.DeviceLedgerUSB:
		return signer.NewLedgerBackend(c.Transports, signer.TransportUSB, c.HDPaths), nil
	case signer.DeviceLedgerBLE:
		return signer.NewLedgerBackend(c.Transports, signer.TransportBLE, c.HDPaths), nil
	case signer.DeviceKeyring:
		if c.Keyring == nil {
			return nil, errors.New("keyring is not configured")
		}
		return signer.NewKeyringBackend(c.Keyring, c.RunnerConfig.Keyring.KeyName), nil
	default:
		return signer.NewExtensionBackend(c.Extension, chainID), nil
	}
}

// SeedChains stores the default chains if the store has no chains.
func SeedChains(localStore *store.LocalStore) error {
	chains, err := localStore.Chains()
	if err != nil {
		return err
	}
	if len(chains) > 0 {
		return nil
	}

	return localStore.SaveChains(DefaultChains())
}

// OpenStore opens the store of the configured backend.
func OpenStore(homePath string, cfg StoreConfig) (store.Store, error) {
	switch cfg.Backend {
	case StoreBackendMemory:
		return store.NewMemStore(), nil
	case StoreBackendLevelDB:
		return store.NewLevelDBStore(StorePath(homePath, cfg))
	case StoreBackendBolt:
		return store.NewBoltStore(StorePath(homePath, cfg))
	default:
		return nil, errors.Errorf("unsupported store backend:%s", cfg.Backend)
	}
}

package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/CoreumFoundation/explorer-kit/logger"
	"github.com/CoreumFoundation/explorer-kit/runner"
	"github.com/CoreumFoundation/explorer-kit/signer"
	"github.com/CoreumFoundation/explorer-kit/store"
	"github.com/CoreumFoundation/explorer-kit/testutils"
	"github.com/CoreumFoundation/explorer-kit/types"
)

func TestNewComponents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		backend runner.StoreBackend
		wantErr bool
	}{
		{
			name:    "memory",
			backend: runner.StoreBackendMemory,
		},
		{
			name:    "leveldb",
			backend: runner.StoreBackendLevelDB,
		},
		{
			name:    "bolt",
			backend: runner.StoreBackendBolt,
		},
		{
			name:    "unknown",
			backend: "redis",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			cfg := runner.DefaultConfig()
			cfg.Store.Backend = tt.backend

			components, err := runner.NewComponents(cfg, t.TempDir(), nil, logger.NewAnyLogMock(ctrl))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			t.Cleanup(func() {
				require.NoError(t, components.Close())
			})

			require.NoError(t, components.LocalStore.SetCurrency("eur"))
			currency, err := components.LocalStore.Currency()
			require.NoError(t, err)
			require.Equal(t, "eur", currency)
		})
	}
}

func TestComponents_Backend(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	cfg := runner.DefaultConfig()
	cfg.Store.Backend = runner.StoreBackendMemory

	components, err := runner.NewComponents(cfg, t.TempDir(), nil, logger.NewAnyLogMock(ctrl))
	require.NoError(t, err)

	backend, err := components.Backend(signer.DeviceLedgerUSB, "cosmoshub-4")
	require.NoError(t, err)
	require.Equal(t, signer.DeviceLedgerUSB, backend.Device())

	backend, err = components.Backend(signer.DeviceLedgerBLE, "cosmoshub-4")
	require.NoError(t, err)
	require.Equal(t, signer.DeviceLedgerBLE, backend.Device())

	backend, err = components.Backend(signer.DeviceKeplr, "cosmoshub-4")
	require.NoError(t, err)
	require.Equal(t, signer.DeviceKeplr, backend.Device())

	// no keyring
	_, err = components.Backend(signer.DeviceKeyring, "cosmoshub-4")
	require.Error(t, err)

	components.Keyring = testutils.NewInMemoryKeyring()
	backend, err = components.Backend(signer.DeviceKeyring, "cosmoshub-4")
	require.NoError(t, err)
	require.Equal(t, signer.DeviceKeyring, backend.Device())
}

func TestSeedChains(t *testing.T) {
	t.Parallel()

	localStore := store.NewLocalStore(store.NewMemStore())
	require.NoError(t, runner.SeedChains(localStore))

	chains, err := localStore.Chains()
	require.NoError(t, err)
	require.Equal(t, runner.DefaultChains(), chains)
	require.Equal(t, "coreum-mainnet-1", chains[0].ChainID)
	require.Equal(t, "core", chains[0].AddrPrefix)
	require.Equal(t, "990", chains[0].CoinType)

	// the stored chains are kept
	custom := []types.Chain{{ChainName: "cosmos", ChainID: "cosmoshub-4"}}
	require.NoError(t, localStore.SaveChains(custom))
	require.NoError(t, runner.SeedChains(localStore))
	chains, err = localStore.Chains()
	require.NoError(t, err)
	require.Equal(t, custom, chains)
}

func TestComponents_CloseWritesMetricsFile(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	cfg := runner.DefaultConfig()
	cfg.Store.Backend = runner.StoreBackendMemory
	cfg.Metrics.File = filepath.Join(t.TempDir(), "metrics.prom")

	components, err := runner.NewComponents(cfg, t.TempDir(), nil, logger.NewAnyLogMock(ctrl))
	require.NoError(t, err)

	components.MetricsRegistry.IncrementSignRequests(string(signer.DeviceLedgerUSB))
	components.Log.Warn(context.Background(), "warn")
	require.NoFileExists(t, cfg.Metrics.File)
	require.NoError(t, components.Close())

	content, err := os.ReadFile(cfg.Metrics.File)
	require.NoError(t, err)
	require.Contains(t, string(content), `sign_requests_total{device="ledgerUSB"} 1`)
	require.Contains(t, string(content), `explorer_kit_log_messages_total{level="warn"} 1`)
}

func TestComponents_CloseWithoutMetricsFile(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	cfg := runner.DefaultConfig()
	cfg.Store.Backend = runner.StoreBackendMemory
	home := t.TempDir()

	components, err := runner.NewComponents(cfg, home, nil, logger.NewAnyLogMock(ctrl))
	require.NoError(t, err)
	require.NoError(t, components.Close())

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	require.Empty(t, entries)
}

package signer

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"

	"github.com/CoreumFoundation/explorer-kit/address"
)

// Device is the signing device tag.
type Device string

// The signing devices.
const (
	DeviceLedgerBLE Device = "ledgerBle"
	DeviceLedgerUSB Device = "ledgerUSB"
	DeviceKeplr     Device = "keplr"
	DeviceKeyring   Device = "keyring"
)

// ParseDevice returns the device of the tag. Unknown tags select the keplr extension.
func ParseDevice(tag string) Device {
	switch device := Device(tag); device {
	case DeviceLedgerBLE, DeviceLedgerUSB, DeviceKeyring:
		return device
	default:
		return DeviceKeplr
	}
}

var (
	_ Backend = &LedgerBackend{}
	_ Backend = &ExtensionBackend{}
	_ Backend = &KeyringBackend{}
)

// LedgerBackend signs with the Ledger device connected over the transport.
type LedgerBackend struct {
	transports Transports
	transport  Transport
	hdPaths    *HDPathResolver
}

// NewLedgerBackend returns new instance of the LedgerBackend.
func NewLedgerBackend(transports Transports, transport Transport, hdPaths *HDPathResolver) *LedgerBackend {
	return &LedgerBackend{
		transports: transports,
		transport:  transport,
		hdPaths:    hdPaths,
	}
}

// Device returns the ledger device of the transport.
func (b *LedgerBackend) Device() Device {
	if b.transport == TransportUSB {
		return DeviceLedgerUSB
	}

	return DeviceLedgerBLE
}

// Signer opens the transport and returns the signer bound to the stored hd path of the signer address.
// The returned signer must be closed.
func (b *LedgerBackend) Signer(ctx context.Context, signerAddress string) (OfflineAminoSigner, error) {
	hdPath, err := b.hdPaths.Resolve(signerAddress)
	if err != nil {
		return nil, err
	}
	app, err := b.transports.Open(ctx, b.transport)
	if err != nil {
		return nil, err
	}

	return NewLedgerSigner(app, hdPath, address.SignPrefix), nil
}

// ExtensionBackend signs with the extension wallet.
type ExtensionBackend struct {
	extension Extension
	chainID   string
}

// NewExtensionBackend returns new instance of the ExtensionBackend. The extension may be nil if it's not installed.
func NewExtensionBackend(extension Extension, chainID string) *ExtensionBackend {
	return &ExtensionBackend{
		extension: extension,
		chainID:   chainID,
	}
}

// Device returns the keplr device.
func (b *ExtensionBackend) Device() Device {
	return DeviceKeplr
}

// Signer enables the chain in the extension and returns its amino only signer.
func (b *ExtensionBackend) Signer(ctx context.Context, _ string) (OfflineAminoSigner, error) {
	if b.extension == nil {
		return nil, errorsmod.Wrap(ErrExtensionNotInstalled, "extension is not configured")
	}
	if err := b.extension.Enable(ctx, b.chainID); err != nil {
		return nil, err
	}

	return b.extension.OfflineSignerOnlyAmino(ctx, b.chainID)
}

// KeyringBackend signs with the key of the cosmos keyring.
type KeyringBackend struct {
	kr      keyring.Keyring
	keyName string
}

// NewKeyringBackend returns new instance of the KeyringBackend.
func NewKeyringBackend(kr keyring.Keyring, keyName string) *KeyringBackend {
	return &KeyringBackend{
		kr:      kr,
		keyName: keyName,
	}
}

// Device returns the keyring device.
func (b *KeyringBackend) Device() Device {
	return DeviceKeyring
}

// Signer returns the signer of the key.
func (b *KeyringBackend) Signer(_ context.Context, _ string) (OfflineAminoSigner, error) {
	return NewKeyringSigner(b.kr, b.keyName, address.SignPrefix), nil
}

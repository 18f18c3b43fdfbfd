package signer

import (
	"context"
)

//go:generate mockgen -destination=model_mocks_test.go -package=signer_test . OfflineAminoSigner,Backend,Extension,LedgerApp,MetricRecorder

// OfflineAminoSigner is the signer of the amino JSON sign docs.
type OfflineAminoSigner interface {
	GetAccounts(ctx context.Context) ([]AccountData, error)
	SignAmino(ctx context.Context, signerAddress string, signDoc StdSignDoc) (AminoSignResponse, error)
}

// Backend is the signing device backend.
type Backend interface {
	Device() Device
	// Signer returns the signer able to sign for the signer address.
	Signer(ctx context.Context, signerAddress string) (OfflineAminoSigner, error)
}

// Extension is the browser-extension style wallet.
type Extension interface {
	Enable(ctx context.Context, chainID string) error
	OfflineSignerOnlyAmino(ctx context.Context, chainID string) (OfflineAminoSigner, error)
}

// LedgerApp is the cosmos app running on the Ledger device.
type LedgerApp interface {
	GetAddressPubKeySECP256K1(bip32Path []uint32, hrp string) ([]byte, string, error)
	SignSECP256K1(bip32Path []uint32, transaction []byte, p2 byte) ([]byte, error)
	Close() error
}

// MetricRecorder records the signing metrics.
type MetricRecorder interface {
	IncrementSignRequests(device string)
	IncrementSignFailures(device string)
	IncrementLedgerAccountQueries(transport string)
}

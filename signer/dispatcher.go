package signer

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/CoreumFoundation/explorer-kit/address"
	"github.com/CoreumFoundation/explorer-kit/logger"
	"github.com/CoreumFoundation/explorer-kit/tracing"
)

// SignRequest is the request to sign the messages.
type SignRequest struct {
	SignerAddress string
	Msgs          []AminoMsg
	Fee           StdFee
	Memo          string
	SignerData    SignerData
}

// Dispatcher signs the transactions with the device backends.
type Dispatcher struct {
	log        logger.Logger
	metrics    MetricRecorder
	transports Transports
}

// NewDispatcher returns new instance of the Dispatcher.
func NewDispatcher(log logger.Logger, metrics MetricRecorder, transports Transports) *Dispatcher {
	return &Dispatcher{
		log:        log,
		metrics:    metrics,
		transports: transports,
	}
}

// Sign signs the request with the backend signer. The signer address is re-encoded with the cosmos prefix for all
// backends apart from the extension one, since the device apps expect the canonical prefix.
func (d *Dispatcher) Sign(ctx context.Context, backend Backend, req SignRequest) (SignedTx, error) {
	device := backend.Device()
	ctx = tracing.WithTracingDevice(tracing.WithTracingID(ctx), string(device))
	ctx = tracing.WithTracingChainID(ctx, req.SignerData.ChainID)

	d.metrics.IncrementSignRequests(string(device))
	d.log.Debug(
		ctx,
		"Signing transaction",
		zap.String("signerAddress", req.SignerAddress),
		zap.Int("msgs", len(req.Msgs)),
	)
	signedTx, err := d.sign(ctx, backend, req)
	if err != nil {
		d.metrics.IncrementSignFailures(string(device))
		return SignedTx{}, err
	}
	d.log.Info(ctx, "Transaction signed", zap.String("signerAddress", req.SignerAddress))

	return signedTx, nil
}

// LedgerAddresses returns the accounts of the Ledger connected over the transport for the hd path.
// The empty hd path selects the DefaultHDPath.
func (d *Dispatcher) LedgerAddresses(ctx context.Context, transport Transport, hdPath string) ([]AccountData, error) {
	ctx = tracing.WithTracingID(ctx)
	if hdPath == "" {
		hdPath = DefaultHDPath
	}
	path, err := ParseHDPath(hdPath)
	if err != nil {
		return nil, err
	}

	d.metrics.IncrementLedgerAccountQueries(string(transport))
	app, err := d.transports.Open(ctx, transport)
	if err != nil {
		return nil, err
	}
	signer := NewLedgerSigner(app, path, address.SignPrefix)
	defer d.closeSigner(ctx, signer)

	return signer.GetAccounts(ctx)
}

func (d *Dispatcher) sign(ctx context.Context, backend Backend, req SignRequest) (SignedTx, error) {
	signerAddress := req.SignerAddress
	if backend.Device() != DeviceKeplr {
		var err error
		signerAddress, err = address.ToSignAddress(signerAddress)
		if err != nil {
			return SignedTx{}, err
		}
	}

	signer, err := backend.Signer(ctx, req.SignerAddress)
	if err != nil {
		return SignedTx{}, err
	}
	defer d.closeSigner(ctx, signer)

	return NewSigningClient(signer).SignAmino(ctx, signerAddress, req.Msgs, req.Fee, req.Memo, req.SignerData)
}

func (d *Dispatcher) closeSigner(ctx context.Context, signer OfflineAminoSigner) {
	closer, ok := signer.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		d.log.Warn(ctx, "Failed to close signer transport", zap.Error(err))
	}
}

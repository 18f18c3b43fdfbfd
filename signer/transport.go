package signer

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	ledgercosmos "github.com/cosmos/ledger-cosmos-go"
)

// Transport is the Ledger device transport.
type Transport string

// The Ledger transports.
const (
	TransportUSB Transport = "usb"
	TransportBLE Transport = "ble"
)

// ParseTransport parses the transport name. The empty name selects the BLE transport.
func ParseTransport(name string) (Transport, error) {
	switch name {
	case string(TransportUSB):
		return TransportUSB, nil
	case string(TransportBLE), "":
		return TransportBLE, nil
	default:
		return "", errorsmod.Wrapf(ErrTransportUnavailable, "unknown transport:%s", name)
	}
}

// LedgerOpener opens the cosmos app on the device.
type LedgerOpener func(ctx context.Context) (LedgerApp, error)

// Transports holds the openers of the Ledger transports. Nil opener means the transport is not available.
type Transports struct {
	USB LedgerOpener
	BLE LedgerOpener
}

// DefaultTransports returns the transports available on the host: USB only, since there is no BLE HID transport.
func DefaultTransports() Transports {
	return Transports{
		USB: OpenLedgerUSB,
	}
}

// Open opens the cosmos app over the transport.
func (t Transports) Open(ctx context.Context, transport Transport) (LedgerApp, error) {
	var opener LedgerOpener
	switch transport {
	case TransportUSB:
		opener = t.USB
	case TransportBLE:
		opener = t.BLE
	}
	if opener == nil {
		return nil, errorsmod.Wrapf(ErrTransportUnavailable, "transport %s is not configured", transport)
	}

	app, err := opener(ctx)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrTransportUnavailable, "failed to open %s transport: %s", transport, err)
	}

	return app, nil
}

// OpenLedgerUSB opens the cosmos app on the device connected over USB.
func OpenLedgerUSB(ctx context.Context) (LedgerApp, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	app, err := ledgercosmos.FindLedgerCosmosUserApp()
	if err != nil {
		return nil, err
	}

	return app, nil
}

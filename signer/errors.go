package signer

import (
	errorsmod "cosmossdk.io/errors"
)

const codespace = "signer"

var (
	// ErrExtensionNotInstalled is returned when the extension wallet is not available.
	ErrExtensionNotInstalled = errorsmod.Register(codespace, 2, "Please install keplr extension")
	// ErrTransportUnavailable is returned when the device transport can't be opened.
	ErrTransportUnavailable = errorsmod.Register(codespace, 3, "transport unavailable")
	// ErrSignerAddressMismatch is returned when the signer has no account with the signer address.
	ErrSignerAddressMismatch = errorsmod.Register(codespace, 4, "signer address mismatch")
	// ErrInvalidHDPath is returned for malformed derivation paths.
	ErrInvalidHDPath = errorsmod.Register(codespace, 5, "invalid hd path")
)

package testutils

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	"github.com/cosmos/go-bip39"

	"github.com/CoreumFoundation/explorer-kit/address"
	"github.com/CoreumFoundation/explorer-kit/types"
)

const (
	cosmosCoinType  = 118
	mnemonicEntropy = 256
)

// GenAddressBytes generates random 20 bytes address payload.
func GenAddressBytes() []byte {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return buf
}

// GenAccountAddress generates random bech32 account address with the prefix.
func GenAccountAddress(prefix string) string {
	addr, err := address.Encode(prefix, GenAddressBytes())
	if err != nil {
		panic(err)
	}
	return addr
}

// GenMnemonic generates random 24 words mnemonic.
func GenMnemonic() string {
	entropy, err := bip39.NewEntropy(mnemonicEntropy)
	if err != nil {
		panic(err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		panic(err)
	}
	return mnemonic
}

// NewInMemoryKeyring returns the in-memory keyring able to hold the secp256k1 keys.
func NewInMemoryKeyring() keyring.Keyring {
	registry := codectypes.NewInterfaceRegistry()
	cryptocodec.RegisterInterfaces(registry)
	return keyring.NewInMemory(codec.NewProtoCodec(registry))
}

// GenKeyringAccount adds the key with the random mnemonic to the keyring and returns its cosmos address.
func GenKeyringAccount(kr keyring.Keyring, keyName string) string {
	record, err := kr.NewAccount(
		keyName,
		GenMnemonic(),
		"",
		hd.CreateHDPath(cosmosCoinType, 0, 0).String(),
		hd.Secp256k1,
	)
	if err != nil {
		panic(err)
	}
	accAddress, err := record.GetAddress()
	if err != nil {
		panic(err)
	}
	addr, err := address.Encode(address.SignPrefix, accAddress)
	if err != nil {
		panic(err)
	}
	return addr
}

// GenValidator generates the validator with random operator address and ed25519 consensus pubkey.
func GenValidator(operatorPrefix, moniker string) types.Validator {
	operatorAddress, err := address.Encode(operatorPrefix, GenAddressBytes())
	if err != nil {
		panic(err)
	}

	return types.Validator{
		OperatorAddress: operatorAddress,
		ConsensusPubkey: address.NewStructuredConsensusPubkey(
			"tendermint/PubKeyEd25519",
			base64.StdEncoding.EncodeToString(ed25519.GenPrivKey().PubKey().Bytes()),
		),
		Status: "BOND_STATUS_BONDED",
		Description: types.ValidatorDescription{
			Moniker: moniker,
		},
	}
}

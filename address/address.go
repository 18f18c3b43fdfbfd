package address

import (
	"bytes"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/cometbft/cometbft/crypto/tmhash"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/pkg/errors"
)

const (
	// SignPrefix is the account prefix the hardware signer apps expect the addresses in.
	SignPrefix = "cosmos"

	validatorOperatorInfix = "valoper"
	// the limit is the max length of the encoded string
	pubkeyAddressLengthLimit = 40
)

var (
	// aminoConsensusPubkeyPrefix is the amino prefix of the ed25519 consensus pubkey.
	aminoConsensusPubkeyPrefix = []byte{0x16, 0x24, 0xde, 0x64, 0x20}

	// irregularAccountPrefixes maps operator prefixes which don't follow the <account>valoper rule.
	irregularAccountPrefixes = map[string]string{
		"iva":        "iaa",
		"ivavaloper": "iaa",
		"crocncl":    "cro",
	}

	hexAddressRegexp = regexp.MustCompile(`^[A-Z\d]{40}$`)
)

// Decode decodes the bech32 address into its prefix and payload bytes.
func Decode(address string) (string, []byte, error) {
	prefix, data, err := bech32.DecodeAndConvert(address)
	if err != nil {
		return "", nil, errors.Wrapf(err, "failed to decode bech32 address, address:%s", address)
	}

	return prefix, data, nil
}

// Encode encodes the payload bytes into the bech32 address with the prefix.
func Encode(prefix string, data []byte) (string, error) {
	address, err := bech32.ConvertAndEncode(prefix, data)
	if err != nil {
		return "", errors.Wrapf(err, "failed to encode bech32 address, prefix:%s", prefix)
	}

	return address, nil
}

// OperatorAddressToAccount converts the validator operator address to the account address of the same key.
func OperatorAddressToAccount(operatorAddress string) (string, error) {
	prefix, data, err := Decode(operatorAddress)
	if err != nil {
		return "", err
	}

	return Encode(AccountPrefix(prefix), data)
}

// AccountPrefix returns the account prefix matching the validator operator prefix.
func AccountPrefix(operatorPrefix string) string {
	if accountPrefix, ok := irregularAccountPrefixes[operatorPrefix]; ok {
		return accountPrefix
	}

	return strings.Replace(operatorPrefix, validatorOperatorInfix, "", 1)
}

// PubkeyToAccountAddress encodes the raw pubkey bytes as bech32 address.
// The encoded address must fit the 40 chars limit, so only short payloads are accepted.
func PubkeyToAccountAddress(pubkey []byte, prefix string) (string, error) {
	address, err := Encode(prefix, pubkey)
	if err != nil {
		return "", err
	}
	if len(address) > pubkeyAddressLengthLimit {
		return "", errors.Errorf(
			"encoded address exceeds length limit, length:%d, limit:%d", len(address), pubkeyAddressLengthLimit,
		)
	}

	return address, nil
}

// ToSignAddress re-encodes the address with the cosmos prefix.
func ToSignAddress(address string) (string, error) {
	_, data, err := Decode(address)
	if err != nil {
		return "", err
	}

	return Encode(SignPrefix, data)
}

// ConsensusPubkeyToHexAddress returns the consensus address of the pubkey, the first 20 bytes of its SHA-256 in
// upper case hex.
func ConsensusPubkeyToHexAddress(pubkey ConsensusPubkey) (string, error) {
	raw, err := pubkey.Bytes()
	if err != nil {
		return "", err
	}

	return strings.ToUpper(hex.EncodeToString(tmhash.SumTruncated(raw))), nil
}

// IsHexAddress returns true if the value is the upper case hex consensus address.
func IsHexAddress(v string) bool {
	return hexAddressRegexp.MatchString(v)
}

func trimAminoPrefix(data []byte) []byte {
	return bytes.TrimPrefix(data, aminoConsensusPubkeyPrefix)
}

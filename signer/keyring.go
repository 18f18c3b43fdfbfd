package signer

import (
	"context"

	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	"github.com/pkg/errors"

	"github.com/CoreumFoundation/explorer-kit/address"
)

var _ OfflineAminoSigner = &KeyringSigner{}

// KeyringSigner is the OfflineAminoSigner of the cosmos keyring key.
type KeyringSigner struct {
	kr      keyring.Keyring
	keyName string
	prefix  string
}

// NewKeyringSigner returns new instance of the KeyringSigner.
func NewKeyringSigner(kr keyring.Keyring, keyName, prefix string) *KeyringSigner {
	return &KeyringSigner{
		kr:      kr,
		keyName: keyName,
		prefix:  prefix,
	}
}

// GetAccounts returns the account of the key.
func (s *KeyringSigner) GetAccounts(_ context.Context) ([]AccountData, error) {
	pubKey, err := s.pubKey()
	if err != nil {
		return nil, err
	}
	addr, err := address.Encode(s.prefix, pubKey.Address())
	if err != nil {
		return nil, err
	}

	return []AccountData{
		{
			Address: addr,
			Algo:    AlgoSecp256k1,
			PubKey:  pubKey.Bytes(),
		},
	}, nil
}

// SignAmino signs the sign doc with the key.
func (s *KeyringSigner) SignAmino(
	ctx context.Context,
	signerAddress string,
	signDoc StdSignDoc,
) (AminoSignResponse, error) {
	if err := ensureAccount(ctx, s, signerAddress); err != nil {
		return AminoSignResponse{}, err
	}

	signBytes, err := SerializeSignDoc(signDoc)
	if err != nil {
		return AminoSignResponse{}, err
	}
	signature, pubKey, err := s.kr.Sign(s.keyName, signBytes, signing.SignMode_SIGN_MODE_LEGACY_AMINO_JSON)
	if err != nil {
		return AminoSignResponse{}, errors.Wrapf(err, "failed to sign with keyring, key name:%s", s.keyName)
	}

	return AminoSignResponse{
		Signed:    signDoc,
		Signature: encodeSecp256k1Signature(pubKey.Bytes(), signature),
	}, nil
}

func (s *KeyringSigner) pubKey() (*secp256k1.PubKey, error) {
	key, err := s.kr.Key(s.keyName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get key from the keyring, key name:%s", s.keyName)
	}
	pubKey, err := key.GetPubKey()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get pubkey, key name:%s", s.keyName)
	}
	secpPubKey, ok := pubKey.(*secp256k1.PubKey)
	if !ok {
		return nil, errors.Errorf("unsupported key type %s, key name:%s", pubKey.Type(), s.keyName)
	}

	return secpPubKey, nil
}

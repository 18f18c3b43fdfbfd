package signer

import (
	"context"
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/pkg/errors"
)

const (
	// the p2 value of the amino JSON sign mode
	ledgerP2AminoJSON byte = 0

	compactSignatureLength = 64
)

var _ OfflineAminoSigner = &LedgerSigner{}

// LedgerSigner is the OfflineAminoSigner of the single Ledger account.
type LedgerSigner struct {
	app    LedgerApp
	hdPath HDPath
	prefix string
}

// NewLedgerSigner returns new instance of the LedgerSigner bound to the hd path. The prefix is the address prefix
// the app displays the address with.
func NewLedgerSigner(app LedgerApp, hdPath HDPath, prefix string) *LedgerSigner {
	return &LedgerSigner{
		app:    app,
		hdPath: hdPath,
		prefix: prefix,
	}
}

// GetAccounts returns the account of the hd path.
func (s *LedgerSigner) GetAccounts(ctx context.Context) ([]AccountData, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	pubKey, addr, err := s.app.GetAddressPubKeySECP256K1(s.hdPath, s.prefix)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get ledger address, hd path:%s", s.hdPath)
	}

	return []AccountData{
		{
			Address: addr,
			Algo:    AlgoSecp256k1,
			PubKey:  pubKey,
		},
	}, nil
}

// SignAmino signs the sign doc on the device.
func (s *LedgerSigner) SignAmino(
	ctx context.Context,
	signerAddress string,
	signDoc StdSignDoc,
) (AminoSignResponse, error) {
	accounts, err := s.GetAccounts(ctx)
	if err != nil {
		return AminoSignResponse{}, err
	}
	account := accounts[0]
	if account.Address != signerAddress {
		return AminoSignResponse{}, errorsmod.Wrapf(
			ErrSignerAddressMismatch, "ledger address %s, signer address %s", account.Address, signerAddress,
		)
	}

	signBytes, err := SerializeSignDoc(signDoc)
	if err != nil {
		return AminoSignResponse{}, err
	}
	derSignature, err := s.app.SignSECP256K1(s.hdPath, signBytes, ledgerP2AminoJSON)
	if err != nil {
		return AminoSignResponse{}, errors.Wrapf(err, "failed to sign with ledger, hd path:%s", s.hdPath)
	}
	signature, err := convertDERToCompact(derSignature)
	if err != nil {
		return AminoSignResponse{}, err
	}

	return AminoSignResponse{
		Signed:    signDoc,
		Signature: encodeSecp256k1Signature(account.PubKey, signature),
	}, nil
}

// Close closes the device app.
func (s *LedgerSigner) Close() error {
	return s.app.Close()
}

// convertDERToCompact converts the DER signature to the 64 bytes R || S with the low S.
func convertDERToCompact(derSignature []byte) ([]byte, error) {
	sig, err := ecdsa.ParseDERSignature(derSignature)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse DER signature")
	}
	// the serialized signature has the low S and the layout:
	// 0x30 <total length> 0x02 <length of R> <R> 0x02 <length of S> <S>
	canonical := sig.Serialize()
	rLen := int(canonical[3])
	r := canonical[4 : 4+rLen]
	sLen := int(canonical[4+rLen+1])
	sBytes := canonical[4+rLen+2 : 4+rLen+2+sLen]

	compact := make([]byte, compactSignatureLength)
	new(big.Int).SetBytes(r).FillBytes(compact[:32])
	new(big.Int).SetBytes(sBytes).FillBytes(compact[32:])

	return compact, nil
}

package signer

import (
	"context"
	"encoding/base64"

	errorsmod "cosmossdk.io/errors"
	"github.com/samber/lo"
)

// SigningClient signs the transactions with the offline amino signer.
type SigningClient struct {
	signer OfflineAminoSigner
}

// NewSigningClient returns new instance of the SigningClient.
func NewSigningClient(signer OfflineAminoSigner) *SigningClient {
	return &SigningClient{
		signer: signer,
	}
}

// SignAmino signs the messages in the amino JSON mode and returns the signed transaction.
func (c *SigningClient) SignAmino(
	ctx context.Context,
	signerAddress string,
	msgs []AminoMsg,
	fee StdFee,
	memo string,
	signerData SignerData,
) (SignedTx, error) {
	if err := ensureAccount(ctx, c.signer, signerAddress); err != nil {
		return SignedTx{}, err
	}

	res, err := c.signer.SignAmino(ctx, signerAddress, MakeSignDoc(msgs, fee, memo, signerData))
	if err != nil {
		return SignedTx{}, err
	}

	return SignedTx{
		Tx: StdTx{
			Msgs:       res.Signed.Msgs,
			Fee:        res.Signed.Fee,
			Signatures: []StdSignature{res.Signature},
			Memo:       res.Signed.Memo,
		},
		Signed:    res.Signed,
		Signature: res.Signature,
	}, nil
}

func ensureAccount(ctx context.Context, signer OfflineAminoSigner, signerAddress string) error {
	accounts, err := signer.GetAccounts(ctx)
	if err != nil {
		return err
	}
	if !lo.ContainsBy(accounts, func(acc AccountData) bool {
		return acc.Address == signerAddress
	}) {
		return errorsmod.Wrapf(ErrSignerAddressMismatch, "address %s is not found in the signer accounts", signerAddress)
	}

	return nil
}

func encodeSecp256k1Signature(pubKey, signature []byte) StdSignature {
	return StdSignature{
		PubKey: PubKey{
			Type:  PubKeyTypeSecp256k1,
			Value: base64.StdEncoding.EncodeToString(pubKey),
		},
		Signature: base64.StdEncoding.EncodeToString(signature),
	}
}

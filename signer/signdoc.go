package signer

import (
	"encoding/json"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"github.com/CoreumFoundation/explorer-kit/types"
)

// MakeSignDoc builds the amino sign doc of the messages.
func MakeSignDoc(msgs []AminoMsg, fee StdFee, memo string, signerData SignerData) StdSignDoc {
	if msgs == nil {
		msgs = []AminoMsg{}
	}

	return StdSignDoc{
		ChainID:       signerData.ChainID,
		AccountNumber: strconv.FormatUint(signerData.AccountNumber, 10),
		Sequence:      strconv.FormatUint(signerData.Sequence, 10),
		Fee:           fee,
		Msgs:          msgs,
		Memo:          memo,
	}
}

// SerializeSignDoc returns the canonical sign bytes, the JSON with the sorted keys.
func SerializeSignDoc(signDoc StdSignDoc) ([]byte, error) {
	if signDoc.Fee.Amount == nil {
		signDoc.Fee.Amount = []types.Token{}
	}
	data, err := json.Marshal(signDoc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal sign doc")
	}
	sorted, err := sdk.SortJSON(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sort sign doc")
	}

	return sorted, nil
}

package signer

import (
	"encoding/json"

	"github.com/CoreumFoundation/explorer-kit/types"
)

const (
	// AlgoSecp256k1 is the secp256k1 account algorithm.
	AlgoSecp256k1 = "secp256k1"
	// PubKeyTypeSecp256k1 is the amino type of the secp256k1 pubkey.
	PubKeyTypeSecp256k1 = "tendermint/PubKeySecp256k1"
)

// AccountData is the account the signer can sign for.
type AccountData struct {
	Address string `json:"address"`
	Algo    string `json:"algo"`
	PubKey  []byte `json:"pubkey"`
}

// AminoMsg is the amino JSON message.
type AminoMsg struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// StdFee is the amino JSON fee.
type StdFee struct {
	Amount  []types.Token `json:"amount"`
	Gas     string        `json:"gas"`
	Payer   string        `json:"payer,omitempty"`
	Granter string        `json:"granter,omitempty"`
}

// StdSignDoc is the amino JSON sign doc.
//
//nolint:tagliatelle // the amino JSON naming
type StdSignDoc struct {
	ChainID       string     `json:"chain_id"`
	AccountNumber string     `json:"account_number"`
	Sequence      string     `json:"sequence"`
	TimeoutHeight string     `json:"timeout_height,omitempty"`
	Fee           StdFee     `json:"fee"`
	Msgs          []AminoMsg `json:"msgs"`
	Memo          string     `json:"memo"`
}

// PubKey is the amino JSON pubkey.
type PubKey struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// StdSignature is the amino JSON signature.
//
//nolint:tagliatelle // the amino JSON naming
type StdSignature struct {
	PubKey    PubKey `json:"pub_key"`
	Signature string `json:"signature"`
}

// AminoSignResponse is the result of the amino signing. The signer may change the sign doc, so the signed doc is
// returned together with the signature.
type AminoSignResponse struct {
	Signed    StdSignDoc   `json:"signed"`
	Signature StdSignature `json:"signature"`
}

// StdTx is the amino JSON transaction.
type StdTx struct {
	Msgs       []AminoMsg     `json:"msg"`
	Fee        StdFee         `json:"fee"`
	Signatures []StdSignature `json:"signatures"`
	Memo       string         `json:"memo"`
}

// SignerData is the account data the sign doc is bound to.
type SignerData struct {
	AccountNumber uint64 `json:"accountNumber"`
	Sequence      uint64 `json:"sequence"`
	ChainID       string `json:"chainId"`
}

// SignedTx is the signed transaction envelope.
type SignedTx struct {
	Tx        StdTx        `json:"tx"`
	Signed    StdSignDoc   `json:"signed"`
	Signature StdSignature `json:"signature"`
}

package address

import (
	"encoding/base64"
	"encoding/json"

	"github.com/pkg/errors"
)

// ConsensusPubkey is the validator consensus pubkey. It is either the bech32 encoded amino pubkey or the structured
// pubkey with base64 value.
type ConsensusPubkey struct {
	bech32 string
	typ    string
	value  string
}

type structuredConsensusPubkey struct {
	Type      string `json:"type,omitempty"`
	ProtoType string `json:"@type,omitempty"`
	Value     string `json:"value,omitempty"`
	Key       string `json:"key,omitempty"`
}

// NewBech32ConsensusPubkey returns the bech32 variant of the ConsensusPubkey.
func NewBech32ConsensusPubkey(pubkey string) ConsensusPubkey {
	return ConsensusPubkey{
		bech32: pubkey,
	}
}

// NewStructuredConsensusPubkey returns the structured variant of the ConsensusPubkey.
func NewStructuredConsensusPubkey(typ, base64Value string) ConsensusPubkey {
	return ConsensusPubkey{
		typ:   typ,
		value: base64Value,
	}
}

// IsBech32 returns true if the pubkey is the bech32 variant.
func (pk ConsensusPubkey) IsBech32() bool {
	return pk.bech32 != ""
}

// Type returns the type of the structured pubkey.
func (pk ConsensusPubkey) Type() string {
	return pk.typ
}

// Bytes returns the raw pubkey bytes.
func (pk ConsensusPubkey) Bytes() ([]byte, error) {
	if pk.IsBech32() {
		_, data, err := Decode(pk.bech32)
		if err != nil {
			return nil, err
		}
		return trimAminoPrefix(data), nil
	}

	raw, err := base64.StdEncoding.DecodeString(pk.value)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode base64 consensus pubkey, value:%s", pk.value)
	}

	return raw, nil
}

// String returns the bech32 or the base64 value of the pubkey.
func (pk ConsensusPubkey) String() string {
	if pk.IsBech32() {
		return pk.bech32
	}

	return pk.value
}

// MarshalJSON marshals the pubkey to the string for the bech32 variant and to the object for the structured.
func (pk ConsensusPubkey) MarshalJSON() ([]byte, error) {
	if pk.IsBech32() {
		return json.Marshal(pk.bech32)
	}

	return json.Marshal(structuredConsensusPubkey{
		Type:  pk.typ,
		Value: pk.value,
	})
}

// UnmarshalJSON accepts the bech32 string, the amino `{type, value}` object and the proto `{@type, key}` object.
func (pk *ConsensusPubkey) UnmarshalJSON(data []byte) error {
	var bech32Pubkey string
	if err := json.Unmarshal(data, &bech32Pubkey); err == nil {
		*pk = NewBech32ConsensusPubkey(bech32Pubkey)
		return nil
	}

	var structured structuredConsensusPubkey
	if err := json.Unmarshal(data, &structured); err != nil {
		return errors.Wrapf(err, "failed to unmarshal consensus pubkey, data:%s", string(data))
	}
	typ := structured.Type
	if typ == "" {
		typ = structured.ProtoType
	}
	value := structured.Value
	if value == "" {
		value = structured.Key
	}
	*pk = NewStructuredConsensusPubkey(typ, value)

	return nil
}

package types

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// StringList is the list of strings which is encoded as a single string when it holds one value.
type StringList []string

// MarshalJSON marshals the single value list to the string.
func (l StringList) MarshalJSON() ([]byte, error) {
	if len(l) == 1 {
		return json.Marshal(l[0])
	}

	return json.Marshal([]string(l))
}

// UnmarshalJSON accepts both the string and the array of strings.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.Wrapf(err, "failed to unmarshal string list, data:%s", string(data))
	}
	*l = list

	return nil
}

// Chain is the chain descriptor of the explorer.
//
//nolint:tagliatelle // the explorer config naming
type Chain struct {
	ChainName  string     `json:"chain_name"`
	ChainID    string     `json:"chain_id,omitempty"`
	API        StringList `json:"api,omitempty"`
	RPC        StringList `json:"rpc,omitempty"`
	SDKVersion string     `json:"sdk_version,omitempty"`
	AddrPrefix string     `json:"addr_prefix,omitempty"`
	CoinType   string     `json:"coin_type,omitempty"`
	MinTxFee   string     `json:"min_tx_fee,omitempty"`
	Logo       string     `json:"logo,omitempty"`
}

// AccountAddress is one address of the stored account.
type AccountAddress struct {
	Chain  string `json:"chain,omitempty"`
	Addr   string `json:"addr"`
	HDPath string `json:"hdpath,omitempty"`
}

// Account is the stored account.
type Account struct {
	Name    string           `json:"name,omitempty"`
	Device  string           `json:"device,omitempty"`
	Address []AccountAddress `json:"address"`
}

// TxRecord is the transaction history record.
type TxRecord struct {
	Chain string    `json:"chain"`
	Op    string    `json:"op,omitempty"`
	Hash  string    `json:"hash"`
	Time  time.Time `json:"time"`
}

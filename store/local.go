package store

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/CoreumFoundation/explorer-kit/format"
	"github.com/CoreumFoundation/explorer-kit/types"
)

// Keys of the explorer local store.
const (
	ChainsKey          = "chains"
	AccountsKey        = "accounts"
	TxHistoryKey       = "txHistory"
	CurrencyKey        = "currency"
	validatorKeyPrefix = "validators-"

	// DefaultCurrency is the currency used when the user has not selected one.
	DefaultCurrency = "usd"
)

// ValidatorsKey returns the key of the cached validators of the chain.
func ValidatorsKey(chainName string) string {
	return validatorKeyPrefix + chainName
}

// LocalStore provides the typed access to the explorer values kept in the Store.
type LocalStore struct {
	store Store

	txHistoryMu sync.Mutex
}

// NewLocalStore returns new instance of the LocalStore.
func NewLocalStore(store Store) *LocalStore {
	return &LocalStore{
		store: store,
	}
}

// Store returns the underlying Store.
func (s *LocalStore) Store() Store {
	return s.store
}

// Object reads the JSON value of the key into the out. It returns false if the key is absent.
func (s *LocalStore) Object(key string, out any) (bool, error) {
	text, found, err := s.store.Get(key)
	if err != nil {
		return false, err
	}
	if !found || text == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return false, errors.Wrapf(err, "failed to unmarshal stored value, key:%s", key)
	}

	return true, nil
}

// SetObject writes the JSON encoded value to the key.
func (s *LocalStore) SetObject(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal value, key:%s", key)
	}

	return s.store.Set(key, string(data))
}

// Chains returns the stored chains or nil if nothing is stored.
func (s *LocalStore) Chains() ([]types.Chain, error) {
	var chains []types.Chain
	if _, err := s.Object(ChainsKey, &chains); err != nil {
		return nil, err
	}

	return chains, nil
}

// SaveChains overwrites the stored chains.
func (s *LocalStore) SaveChains(chains []types.Chain) error {
	return s.SetObject(ChainsKey, chains)
}

// Accounts returns the stored accounts or nil if nothing is stored.
func (s *LocalStore) Accounts() (map[string]types.Account, error) {
	var accounts map[string]types.Account
	if _, err := s.Object(AccountsKey, &accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

// SaveAccounts overwrites the stored accounts.
func (s *LocalStore) SaveAccounts(accounts map[string]types.Account) error {
	return s.SetObject(AccountsKey, accounts)
}

// TxHistory returns the stored transaction history or nil if nothing is stored.
func (s *LocalStore) TxHistory() ([]types.TxRecord, error) {
	var txs []types.TxRecord
	if _, err := s.Object(TxHistoryKey, &txs); err != nil {
		return nil, err
	}

	return txs, nil
}

// AppendTxHistory appends the record to the history and writes back the whole history.
// The calls on the same LocalStore are serialized, but the writers sharing the Store without the LocalStore may
// overwrite each other.
func (s *LocalStore) AppendTxHistory(tx types.TxRecord) error {
	s.txHistoryMu.Lock()
	defer s.txHistoryMu.Unlock()

	txs, err := s.TxHistory()
	if err != nil {
		return err
	}

	return s.SetObject(TxHistoryKey, append(txs, tx))
}

// Currency returns the user currency, "usd" by default.
func (s *LocalStore) Currency() (string, error) {
	currency, found, err := s.store.Get(CurrencyKey)
	if err != nil {
		return "", err
	}
	if !found || currency == "" {
		return DefaultCurrency, nil
	}

	return currency, nil
}

// SetCurrency sets the user currency.
func (s *LocalStore) SetCurrency(currency string) error {
	return s.store.Set(CurrencyKey, currency)
}

// CurrencySign returns the symbol of the user currency.
func (s *LocalStore) CurrencySign() (string, error) {
	currency, err := s.Currency()
	if err != nil {
		return "", err
	}

	return format.CurrencySign(currency), nil
}

// CachedValidators returns the raw JSON of the cached validators of the chain and false if nothing is cached.
func (s *LocalStore) CachedValidators(chainName string) (string, bool, error) {
	return s.store.Get(ValidatorsKey(chainName))
}

// SetCachedValidators caches the raw JSON of the validators of the chain.
func (s *LocalStore) SetCachedValidators(chainName, validatorsJSON string) error {
	if !json.Valid([]byte(validatorsJSON)) {
		return errors.Errorf("invalid validators JSON, chain:%s", chainName)
	}

	return s.store.Set(ValidatorsKey(chainName), validatorsJSON)
}

// Package validator resolves the validator monikers from the cached chain validators.
package validator

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/CoreumFoundation/explorer-kit/address"
	"github.com/CoreumFoundation/explorer-kit/format"
	"github.com/CoreumFoundation/explorer-kit/store"
	"github.com/CoreumFoundation/explorer-kit/types"
)

// the length of the hex address abbreviation returned when the validator is unknown
const hexAbbrLength = 6

// CachedValidators returns the cached validators of the chain or nil if nothing is cached.
func CachedValidators(ls *store.LocalStore, chainName string) ([]types.Validator, error) {
	raw, found, err := ls.CachedValidators(chainName)
	if err != nil {
		return nil, err
	}
	if !found || raw == "" {
		return nil, nil
	}

	var validators []types.Validator
	if err := json.Unmarshal([]byte(raw), &validators); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal cached validators, chain:%s", chainName)
	}

	return validators, nil
}

// ByHex returns the moniker of the validator with the consensus hex address or the abbreviated hex if not found.
func ByHex(ls *store.LocalStore, chainName, hex string) (string, error) {
	validator, found, err := find(ls, chainName, func(v types.Validator) (bool, error) {
		consensusHex, err := address.ConsensusPubkeyToHexAddress(v.ConsensusPubkey)
		if err != nil {
			return false, err
		}
		return consensusHex == hex, nil
	})
	if err != nil {
		return "", err
	}
	if !found {
		return format.Abbr(hex, hexAbbrLength), nil
	}

	return validator.Description.Moniker, nil
}

// ByAccount returns the moniker of the validator operated by the account or the account address if not found.
func ByAccount(ls *store.LocalStore, chainName, accountAddress string) (string, error) {
	validator, found, err := find(ls, chainName, func(v types.Validator) (bool, error) {
		operatorAccount, err := address.OperatorAddressToAccount(v.OperatorAddress)
		if err != nil {
			return false, err
		}
		return operatorAccount == accountAddress, nil
	})
	if err != nil {
		return "", err
	}
	if !found {
		return accountAddress, nil
	}

	return validator.Description.Moniker, nil
}

// ByOperator returns the moniker of the validator with the operator address. If the validator is not found the
// address is returned, cut to the last length chars when the length is positive.
func ByOperator(ls *store.LocalStore, chainName, operatorAddress string, length int) (string, error) {
	validators, err := CachedValidators(ls, chainName)
	if err != nil {
		return "", err
	}
	validator, found := lo.Find(validators, func(v types.Validator) bool {
		return v.OperatorAddress == operatorAddress
	})
	if found {
		return validator.Description.Moniker, nil
	}
	if length > 0 && length < len(operatorAddress) {
		return operatorAddress[len(operatorAddress)-length:], nil
	}

	return operatorAddress, nil
}

func find(
	ls *store.LocalStore,
	chainName string,
	match func(v types.Validator) (bool, error),
) (types.Validator, bool, error) {
	validators, err := CachedValidators(ls, chainName)
	if err != nil {
		return types.Validator{}, false, err
	}
	for _, v := range validators {
		ok, err := match(v)
		if err != nil {
			return types.Validator{}, false, errors.Wrapf(err, "invalid cached validator, operator:%s", v.OperatorAddress)
		}
		if ok {
			return v, true, nil
		}
	}

	return types.Validator{}, false, nil
}

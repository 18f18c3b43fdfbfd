package types

import "github.com/CoreumFoundation/explorer-kit/address"

// ValidatorDescription is the validator description.
type ValidatorDescription struct {
	Moniker  string `json:"moniker"`
	Identity string `json:"identity,omitempty"`
	Website  string `json:"website,omitempty"`
	Details  string `json:"details,omitempty"`
}

// Validator is the cached staking validator.
//
//nolint:tagliatelle // the chain API naming
type Validator struct {
	OperatorAddress string                  `json:"operator_address"`
	ConsensusPubkey address.ConsensusPubkey `json:"consensus_pubkey"`
	Jailed          bool                    `json:"jailed,omitempty"`
	Status          string                  `json:"status,omitempty"`
	Tokens          string                  `json:"tokens,omitempty"`
	Description     ValidatorDescription    `json:"description"`
}

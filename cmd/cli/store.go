package cli

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/CoreumFoundation/explorer-kit/address"
	"github.com/CoreumFoundation/explorer-kit/runner"
	"github.com/CoreumFoundation/explorer-kit/signer"
	"github.com/CoreumFoundation/explorer-kit/types"
	"github.com/CoreumFoundation/explorer-kit/validator"
)

// CurrencyCmd returns the user currency cmd.
func CurrencyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Get or set the user currency.",
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Args:  cobra.NoArgs,
		Short: "Print the user currency and its sign.",
		RunE: runComponentsCmd(func(cmd *cobra.Command, _ []string, components runner.Components) error {
			currency, err := components.LocalStore.Currency()
			if err != nil {
				return err
			}
			sign, err := components.LocalStore.CurrencySign()
			if err != nil {
				return err
			}

			return printYAML(cmd, map[string]string{
				"currency": currency,
				"sign":     sign,
			})
		}),
	}

	setCmd := &cobra.Command{
		Use:   "set [currency]",
		Args:  cobra.ExactArgs(1),
		Short: "Set the user currency, e.g. usd.",
		RunE: runComponentsCmd(func(cmd *cobra.Command, args []string, components runner.Components) error {
			return components.LocalStore.SetCurrency(strings.ToLower(args[0]))
		}),
	}

	cmd.AddCommand(getCmd, setCmd)
	AddHomeFlag(cmd)

	return cmd
}

// HistoryCmd returns the transaction history cmd.
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List or add the transaction history records.",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Args:  cobra.NoArgs,
		Short: "List the transaction history.",
		RunE: runComponentsCmd(func(cmd *cobra.Command, _ []string, components runner.Components) error {
			txs, err := components.LocalStore.TxHistory()
			if err != nil {
				return err
			}
			if txs == nil {
				txs = make([]types.TxRecord, 0)
			}

			return printYAML(cmd, txs)
		}),
	}

	addCmd := &cobra.Command{
		Use:   "add [chain] [tx-hash]",
		Args:  cobra.ExactArgs(2),
		Short: "Append the transaction to the history.",
		RunE: runComponentsCmd(func(cmd *cobra.Command, args []string, components runner.Components) error {
			op, err := cmd.Flags().GetString(FlagOp)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagOp)
			}

			return components.LocalStore.AppendTxHistory(types.TxRecord{
				Chain: args[0],
				Op:    op,
				Hash:  args[1],
				Time:  time.Now().UTC(),
			})
		}),
	}
	addCmd.Flags().String(FlagOp, "", "Operation of the transaction, e.g. send")

	cmd.AddCommand(listCmd, addCmd)
	AddHomeFlag(cmd)

	return cmd
}

// ChainsCmd returns the stored chains cmd.
func ChainsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chains",
		Args:  cobra.NoArgs,
		Short: "List the stored chains.",
		RunE: runComponentsCmd(func(cmd *cobra.Command, _ []string, components runner.Components) error {
			chains, err := components.LocalStore.Chains()
			if err != nil {
				return err
			}

			return printYAML(cmd, chains)
		}),
	}
	AddHomeFlag(cmd)

	return cmd
}

// AccountsCmd returns the stored accounts cmd.
func AccountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List or add the stored accounts.",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Args:  cobra.NoArgs,
		Short: "List the stored accounts.",
		RunE: runComponentsCmd(func(cmd *cobra.Command, _ []string, components runner.Components) error {
			accounts, err := components.LocalStore.Accounts()
			if err != nil {
				return err
			}

			return printYAML(cmd, accounts)
		}),
	}

	addCmd := &cobra.Command{
		Use:   "add [name] [chain] [address]",
		Args:  cobra.ExactArgs(3),
		Short: "Add the address to the stored account, the account is created if absent.",
		RunE: runComponentsCmd(func(cmd *cobra.Command, args []string, components runner.Components) error {
			name, chain, addr := args[0], args[1], args[2]
			if _, _, err := address.Decode(addr); err != nil {
				return err
			}
			device, err := cmd.Flags().GetString(FlagDevice)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagDevice)
			}
			hdPath, err := cmd.Flags().GetString(FlagHDPath)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagHDPath)
			}
			if hdPath != "" {
				if _, err := signer.ParseHDPath(hdPath); err != nil {
					return err
				}
			}

			accounts, err := components.LocalStore.Accounts()
			if err != nil {
				return err
			}
			if accounts == nil {
				accounts = make(map[string]types.Account)
			}
			account := accounts[name]
			account.Name = name
			if device != "" {
				account.Device = string(signer.ParseDevice(device))
			}
			account.Address = append(
				lo.Reject(account.Address, func(a types.AccountAddress, _ int) bool {
					return a.Addr == addr
				}),
				types.AccountAddress{
					Chain:  chain,
					Addr:   addr,
					HDPath: hdPath,
				},
			)
			accounts[name] = account

			return components.LocalStore.SaveAccounts(accounts)
		}),
	}
	addCmd.Flags().String(FlagDevice, "", "Device of the account (ledgerUSB|ledgerBle|keplr|keyring)")
	addCmd.Flags().String(FlagHDPath, "", "HD path of the address, e.g. m/44'/118/0'/0/0")

	cmd.AddCommand(listCmd, addCmd)
	AddHomeFlag(cmd)

	return cmd
}

// ValidatorsCmd returns the cached validators cmd.
func ValidatorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validators",
		Short: "Cache the chain validators and resolve their monikers.",
	}

	importCmd := &cobra.Command{
		Use:   "import [chain] [validators-json-file]",
		Args:  cobra.ExactArgs(2),
		Short: "Cache the validators of the chain from the JSON file.",
		RunE: runComponentsCmd(func(cmd *cobra.Command, args []string, components runner.Components) error {
			chain, path := args[0], args[1]
			content, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "failed to read validators file, path:%s", path)
			}
			var validators []types.Validator
			if err := json.Unmarshal(content, &validators); err != nil {
				return errors.Wrapf(err, "failed to unmarshal validators file, path:%s", path)
			}
			if err := components.LocalStore.SetCachedValidators(chain, string(content)); err != nil {
				return err
			}

			return printYAML(cmd, map[string]int{"imported": len(validators)})
		}),
	}

	monikerCmd := &cobra.Command{
		Use:   "moniker [chain] [address]",
		Args:  cobra.ExactArgs(2),
		Short: "Resolve the moniker of the validator by the consensus hex, operator or account address.",
		RunE: runComponentsCmd(func(cmd *cobra.Command, args []string, components runner.Components) error {
			chain, addr := args[0], args[1]
			length, err := cmd.Flags().GetInt(FlagLength)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagLength)
			}

			moniker, err := resolveMoniker(components, chain, addr, length)
			if err != nil {
				return err
			}

			return printYAML(cmd, map[string]string{"moniker": moniker})
		}),
	}
	monikerCmd.Flags().Int(FlagLength, 0, "Length of the operator address suffix printed for the unknown validator")

	cmd.AddCommand(importCmd, monikerCmd)
	AddHomeFlag(cmd)

	return cmd
}

func resolveMoniker(components runner.Components, chain, addr string, length int) (string, error) {
	if address.IsHexAddress(addr) {
		return validator.ByHex(components.LocalStore, chain, addr)
	}
	prefix, _, err := address.Decode(addr)
	if err != nil {
		return "", err
	}
	if strings.Contains(prefix, "valoper") {
		return validator.ByOperator(components.LocalStore, chain, addr, length)
	}

	return validator.ByAccount(components.LocalStore, chain, addr)
}

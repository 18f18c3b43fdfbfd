package cli

import (
	"encoding/json"
	"os"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/go-bip39"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CoreumFoundation/explorer-kit/address"
	"github.com/CoreumFoundation/explorer-kit/runner"
	"github.com/CoreumFoundation/explorer-kit/signer"
	"github.com/CoreumFoundation/explorer-kit/types"
)

const (
	// FlagPrefix is the address prefix flag.
	FlagPrefix = "prefix"

	defaultCoinType = 118
	mnemonicEntropy = 256
)

// signRequestFile is the sign request file content.
//
//nolint:tagliatelle // the amino JSON naming
type signRequestFile struct {
	SignerAddress string            `json:"signer_address"`
	ChainID       string            `json:"chain_id"`
	AccountNumber uint64            `json:"account_number"`
	Sequence      uint64            `json:"sequence"`
	Msgs          []signer.AminoMsg `json:"msgs"`
	Fee           signer.StdFee     `json:"fee"`
	Memo          string            `json:"memo"`
}

// SignCmd returns the cmd signing the amino JSON transaction with the selected device.
func SignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign [sign-request-file]",
		Args:  cobra.ExactArgs(1),
		Short: "Sign the amino JSON transaction with the Ledger, the wallet bridge or the keyring key.",
		Long: `Sign the amino JSON transaction with the Ledger, the wallet bridge or the keyring key.
The device of the stored account of the signer is used if the --device is not set.
Example:
$ sign tx.json --device ledgerUSB
$ sign tx.json --device keyring --key-name explorer --keyring-backend test
`,
		RunE: runComponentsCmd(func(cmd *cobra.Command, args []string, components runner.Components) error {
			ctx := cmd.Context()
			req, err := readSignRequestFile(args[0])
			if err != nil {
				return err
			}

			device, err := cmd.Flags().GetString(FlagDevice)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagDevice)
			}
			if device == "" {
				device, err = storedAccountDevice(components, req.SignerAddress)
				if err != nil {
					return err
				}
			}
			keyName, err := cmd.Flags().GetString(FlagKeyName)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagKeyName)
			}
			if keyName != "" {
				components.RunnerConfig.Keyring.KeyName = keyName
			}

			backend, err := components.Backend(signer.ParseDevice(device), req.ChainID)
			if err != nil {
				return err
			}
			components.Log.Info(
				ctx,
				"Signing transaction",
				zap.String("device", string(backend.Device())),
				zap.String("signerAddress", req.SignerAddress),
			)

			signedTx, err := components.Dispatcher.Sign(ctx, backend, signer.SignRequest{
				SignerAddress: req.SignerAddress,
				Msgs:          req.Msgs,
				Fee:           req.Fee,
				Memo:          req.Memo,
				SignerData: signer.SignerData{
					AccountNumber: req.AccountNumber,
					Sequence:      req.Sequence,
					ChainID:       req.ChainID,
				},
			})
			if err != nil {
				return err
			}

			return printYAML(cmd, signedTx)
		}),
	}
	cmd.Flags().String(FlagDevice, "", "Signer device (ledgerUSB|ledgerBle|keplr|keyring)")
	AddKeyNameFlag(cmd)
	AddKeyringFlags(cmd)
	AddMetricsFileFlag(cmd)
	AddHomeFlag(cmd)

	return cmd
}

// LedgerAccountsCmd returns the cmd printing the Ledger accounts.
func LedgerAccountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger-accounts",
		Args:  cobra.NoArgs,
		Short: "Print the account of the connected Ledger for the hd path.",
		RunE: runComponentsCmd(func(cmd *cobra.Command, _ []string, components runner.Components) error {
			transportName, err := cmd.Flags().GetString(FlagTransport)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagTransport)
			}
			if transportName == "" {
				transportName = components.RunnerConfig.Ledger.Transport
			}
			transport, err := signer.ParseTransport(transportName)
			if err != nil {
				return err
			}
			hdPath, err := cmd.Flags().GetString(FlagHDPath)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagHDPath)
			}

			accounts, err := components.Dispatcher.LedgerAddresses(cmd.Context(), transport, hdPath)
			if err != nil {
				return err
			}

			return printYAML(cmd, accounts)
		}),
	}
	cmd.Flags().String(FlagTransport, "", "Ledger transport (usb|ble), the configured one is used if empty")
	cmd.Flags().String(FlagHDPath, signer.DefaultHDPath, "HD path of the account")
	AddMetricsFileFlag(cmd)
	AddHomeFlag(cmd)

	return cmd
}

// KeysCmd returns the keyring keys cmd.
func KeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage the keyring keys used by the keyring signer.",
	}

	addCmd := &cobra.Command{
		Use:   "add [name]",
		Args:  cobra.ExactArgs(1),
		Short: "Generate the key with the new mnemonic.",
		RunE: runComponentsCmd(func(cmd *cobra.Command, args []string, components runner.Components) error {
			coinType, err := cmd.Flags().GetUint32(FlagCoinType)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagCoinType)
			}
			prefix, err := cmd.Flags().GetString(FlagPrefix)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagPrefix)
			}

			entropy, err := bip39.NewEntropy(mnemonicEntropy)
			if err != nil {
				return errors.Wrap(err, "failed to generate entropy")
			}
			mnemonic, err := bip39.NewMnemonic(entropy)
			if err != nil {
				return errors.Wrap(err, "failed to generate mnemonic")
			}
			record, err := components.Keyring.NewAccount(
				args[0],
				mnemonic,
				"",
				hd.CreateHDPath(coinType, 0, 0).String(),
				hd.Secp256k1,
			)
			if err != nil {
				return errors.Wrapf(err, "failed to add key, name:%s", args[0])
			}
			addr, err := record.GetAddress()
			if err != nil {
				return errors.Wrapf(err, "failed to get key address, name:%s", args[0])
			}
			encodedAddress, err := address.Encode(prefix, addr)
			if err != nil {
				return err
			}

			return printYAML(cmd, map[string]string{
				"name":     args[0],
				"address":  encodedAddress,
				"mnemonic": mnemonic,
			})
		}),
	}
	addCmd.Flags().Uint32(FlagCoinType, defaultCoinType, "Coin type of the hd path")
	addCmd.Flags().String(FlagPrefix, address.SignPrefix, "Prefix of the printed address")

	listCmd := &cobra.Command{
		Use:   "list",
		Args:  cobra.NoArgs,
		Short: "List the keys.",
		RunE: runComponentsCmd(func(cmd *cobra.Command, _ []string, components runner.Components) error {
			records, err := components.Keyring.List()
			if err != nil {
				return errors.Wrap(err, "failed to list keys")
			}
			keys := make([]map[string]string, 0, len(records))
			for _, record := range records {
				addr, err := record.GetAddress()
				if err != nil {
					return errors.Wrapf(err, "failed to get key address, name:%s", record.Name)
				}
				encodedAddress, err := address.Encode(address.SignPrefix, addr)
				if err != nil {
					return err
				}
				keys = append(keys, map[string]string{
					"name":    record.Name,
					"address": encodedAddress,
				})
			}

			return printYAML(cmd, keys)
		}),
	}

	cmd.AddCommand(addCmd, listCmd)
	AddKeyringFlags(cmd)
	AddHomeFlag(cmd)

	return cmd
}

func readSignRequestFile(path string) (signRequestFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return signRequestFile{}, errors.Wrapf(err, "failed to read sign request file, path:%s", path)
	}
	var req signRequestFile
	if err := json.Unmarshal(content, &req); err != nil {
		return signRequestFile{}, errors.Wrapf(err, "failed to unmarshal sign request file, path:%s", path)
	}

	return req, nil
}

// storedAccountDevice returns the device of the stored account holding the address or empty string.
func storedAccountDevice(components runner.Components, addr string) (string, error) {
	accounts, err := components.LocalStore.Accounts()
	if err != nil {
		return "", err
	}
	account, _ := lo.Find(lo.Values(accounts), func(a types.Account) bool {
		return lo.ContainsBy(a.Address, func(aa types.AccountAddress) bool {
			return aa.Addr == addr
		})
	})

	return account.Device, nil
}

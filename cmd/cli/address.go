package cli

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/CoreumFoundation/explorer-kit/address"
)

// FlagPubkeyType is the structured consensus pubkey type flag.
const FlagPubkeyType = "pubkey-type"

// AddressCmd returns the address codec cmd.
func AddressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Bech32 address and pubkey conversions.",
	}

	cmd.AddCommand(
		addressDecodeCmd(),
		addressEncodeCmd(),
		addressOperatorToAccountCmd(),
		addressToSignCmd(),
		addressConsensusHexCmd(),
		addressPubkeyToAccountCmd(),
	)

	return cmd
}

func addressDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [address]",
		Args:  cobra.ExactArgs(1),
		Short: "Decode the bech32 address into its prefix and hex payload.",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, data, err := address.Decode(args[0])
			if err != nil {
				return err
			}

			return printYAML(cmd, map[string]string{
				"prefix": prefix,
				"data":   strings.ToUpper(hex.EncodeToString(data)),
			})
		},
	}
}

func addressEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [prefix] [hex-data]",
		Args:  cobra.ExactArgs(2),
		Short: "Encode the hex payload into the bech32 address with the prefix.",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(args[1])
			if err != nil {
				return errors.Wrapf(err, "failed to decode hex data, data:%s", args[1])
			}
			addr, err := address.Encode(args[0], data)
			if err != nil {
				return err
			}

			return printYAML(cmd, map[string]string{"address": addr})
		},
	}
}

func addressOperatorToAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "operator-to-account [operator-address]",
		Args:  cobra.ExactArgs(1),
		Short: "Convert the validator operator address to the account address.",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := address.OperatorAddressToAccount(args[0])
			if err != nil {
				return err
			}

			return printYAML(cmd, map[string]string{"address": addr})
		},
	}
}

func addressToSignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-sign [address]",
		Args:  cobra.ExactArgs(1),
		Short: "Re-encode the address with the prefix expected by the hardware signers.",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := address.ToSignAddress(args[0])
			if err != nil {
				return err
			}

			return printYAML(cmd, map[string]string{"address": addr})
		},
	}
}

func addressConsensusHexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consensus-hex [pubkey]",
		Args:  cobra.ExactArgs(1),
		Short: "Compute the hex consensus address of the validator consensus pubkey.",
		Long: `Compute the hex consensus address of the validator consensus pubkey.
The pubkey is the bech32 string, or the base64 value if the --pubkey-type is set.
Example:
$ consensus-hex cosmosvalconspub1zcjduepq...
$ consensus-hex 6L3... --pubkey-type tendermint/PubKeyEd25519
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pubkeyType, err := cmd.Flags().GetString(FlagPubkeyType)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagPubkeyType)
			}

			pubkey := address.NewBech32ConsensusPubkey(args[0])
			if pubkeyType != "" {
				pubkey = address.NewStructuredConsensusPubkey(pubkeyType, args[0])
			}
			hexAddress, err := address.ConsensusPubkeyToHexAddress(pubkey)
			if err != nil {
				return err
			}

			return printYAML(cmd, map[string]string{"address": hexAddress})
		},
	}
	cmd.Flags().String(FlagPubkeyType, "", "Type of the structured pubkey, e.g. tendermint/PubKeyEd25519")

	return cmd
}

func addressPubkeyToAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey-to-account [base64-pubkey] [prefix]",
		Args:  cobra.ExactArgs(2),
		Short: "Derive the account address of the secp256k1 pubkey.",
		RunE: func(cmd *cobra.Command, args []string) error {
			pubkey, err := base64.StdEncoding.DecodeString(args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to decode base64 pubkey, pubkey:%s", args[0])
			}
			addr, err := address.PubkeyToAccountAddress(pubkey, args[1])
			if err != nil {
				return err
			}

			return printYAML(cmd, map[string]string{"address": addr})
		},
	}
}

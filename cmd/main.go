package main

import (
	"context"
	"os"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/CoreumFoundation/coreum-tools/pkg/run"
	"github.com/CoreumFoundation/explorer-kit/cmd/cli"
)

func main() {
	run.Tool("explorer-kit", func(ctx context.Context) error {
		rootCmd := RootCmd(ctx)
		if err := rootCmd.Execute(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		return nil
	})
}

// RootCmd returns the root cmd.
//
//nolint:contextcheck // the context is passed in the command
func RootCmd(ctx context.Context) *cobra.Command {
	registry := codectypes.NewInterfaceRegistry()
	cryptocodec.RegisterInterfaces(registry)
	clientCtx := client.Context{}.
		WithCodec(codec.NewProtoCodec(registry)).
		WithInterfaceRegistry(registry).
		WithInput(os.Stdin)
	ctx = context.WithValue(ctx, client.ClientContextKey, &clientCtx)
	cmd := &cobra.Command{
		Use:   "explorer-kit",
		Short: "Cosmos explorer and wallet helpers.",
	}
	cmd.SetContext(ctx)

	cmd.AddCommand(cli.InitCmd())
	cmd.AddCommand(cli.VersionCmd())
	cmd.AddCommand(cli.AddressCmd())
	cmd.AddCommand(cli.FormatCmd())
	cmd.AddCommand(cli.CurrencyCmd())
	cmd.AddCommand(cli.HistoryCmd())
	cmd.AddCommand(cli.ChainsCmd())
	cmd.AddCommand(cli.AccountsCmd())
	cmd.AddCommand(cli.ValidatorsCmd())
	cmd.AddCommand(cli.KeysCmd())
	cmd.AddCommand(cli.SignCmd())
	cmd.AddCommand(cli.LedgerAccountsCmd())

	return cmd
}

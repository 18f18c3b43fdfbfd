package cli

import (
	"strconv"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/CoreumFoundation/explorer-kit/format"
	"github.com/CoreumFoundation/explorer-kit/runner"
	"github.com/CoreumFoundation/explorer-kit/types"
)

const defaultTokenFraction = 2

// FormatCmd returns the formatters cmd.
func FormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Display formatters of the explorer.",
	}

	cmd.AddCommand(
		formatTokenCmd(),
		formatAmountCmd(),
		formatDenomCmd(),
		formatNumberCmd(),
		formatPercentCmd(),
		formatDurationCmd(),
		formatTimeCmd(),
		formatAbbrCmd(),
		formatCompareVersionsCmd(),
		formatChartColorsCmd(),
	)

	return cmd
}

func formatTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token [coin]...",
		Args:  cobra.MinimumNArgs(1),
		Short: "Format the coins, e.g. 1000000uatom.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := make([]types.Token, 0, len(args))
			for _, arg := range args {
				coin, err := sdk.ParseCoinNormalized(arg)
				if err != nil {
					return errors.Wrapf(err, "failed to parse coin, coin:%s", arg)
				}
				tokens = append(tokens, types.Token{
					Denom:  coin.Denom,
					Amount: coin.Amount.String(),
				})
			}

			formatted, err := format.TokenFormatter(tokens...)
			if err != nil {
				return err
			}

			return printYAML(cmd, map[string]string{"token": formatted})
		},
	}
}

func formatAmountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amount [amount] [denom]",
		Args:  cobra.ExactArgs(2),
		Short: "Convert the base denom amount to the display amount.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fraction, err := cmd.Flags().GetInt32(FlagFraction)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagFraction)
			}
			amount, err := format.FormatTokenAmount(args[0], fraction, args[1])
			if err != nil {
				return err
			}

			return printYAML(cmd, map[string]string{"amount": amount.String()})
		},
	}
	cmd.Flags().Int32(FlagFraction, defaultTokenFraction, "Fraction digits of the amounts above the rounding threshold")

	return cmd
}

func formatDenomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "denom [denom]",
		Args:  cobra.ExactArgs(1),
		Short: "Format the denom to its display name.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printYAML(cmd, map[string]string{"denom": format.FormatTokenDenom(args[0])})
		},
	}
}

func formatNumberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "number [number]",
		Args:  cobra.ExactArgs(1),
		Short: "Format the number, optionally with the K/M/B abbreviation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseFloatArg(args[0])
			if err != nil {
				return err
			}
			withAbbr, err := cmd.Flags().GetBool(FlagAbbr)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagAbbr)
			}
			decimals, err := cmd.Flags().GetInt32(FlagDecimals)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagDecimals)
			}

			return printYAML(cmd, map[string]string{"number": format.FormatNumber(number, withAbbr, decimals)})
		},
	}
	cmd.Flags().Bool(FlagAbbr, false, "Abbreviate the number")
	cmd.Flags().Int32(FlagDecimals, 2, "Decimals of the abbreviated number")

	return cmd
}

func formatPercentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "percent [ratio]",
		Args:  cobra.ExactArgs(1),
		Short: "Convert the ratio to the percent rounded to two decimals.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ratio, err := parseFloatArg(args[0])
			if err != nil {
				return err
			}

			return printYAML(cmd, map[string]float64{"percent": format.Percent(ratio)})
		},
	}
}

func formatDurationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duration [duration]",
		Args:  cobra.ExactArgs(1),
		Short: "Humanize the duration, e.g. 3h.",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := time.ParseDuration(args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to parse duration, duration:%s", args[0])
			}

			return printYAML(cmd, map[string]string{"duration": format.ToDuration(d)})
		},
	}
}

func formatTimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time [rfc3339-time]",
		Args:  cobra.ExactArgs(1),
		Short: "Format the time.",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := time.Parse(time.RFC3339, args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to parse time, time:%s", args[0])
			}
			dayFormat, err := cmd.Flags().GetString(FlagFormat)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagFormat)
			}

			return printYAML(cmd, map[string]string{"time": format.ToDay(t, dayFormat)})
		},
	}
	cmd.Flags().String(FlagFormat, format.DayFormatLong, "Format of the time (long|date|time|from|to)")

	return cmd
}

func formatAbbrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "abbr [text]",
		Args:  cobra.ExactArgs(1),
		Short: "Abbreviate the text.",
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := cmd.Flags().GetInt(FlagLength)
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", FlagLength)
			}

			return printYAML(cmd, map[string]string{"text": format.Abbr(args[0], length)})
		},
	}
	cmd.Flags().Int(FlagLength, 6, "Length of the kept text")

	return cmd
}

func formatCompareVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare-versions [version-a] [version-b]",
		Args:  cobra.ExactArgs(2),
		Short: "Compare the versions, prints -1, 0 or 1.",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := format.CompareVersions(args[0], args[1])
			if err != nil {
				return err
			}

			return printYAML(cmd, map[string]int{"result": result})
		},
	}
}

func formatChartColorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart-colors",
		Args:  cobra.NoArgs,
		Short: "Print the chart colors of the configured theme.",
		RunE: runComponentsCmd(func(cmd *cobra.Command, _ []string, components runner.Components) error {
			return printYAML(cmd, map[string][]string{
				"colors": format.ChartColors(components.RunnerConfig.Theme),
			})
		}),
	}
	AddHomeFlag(cmd)

	return cmd
}

func parseFloatArg(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse number, number:%s", arg)
	}

	return v, nil
}

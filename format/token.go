package format

import (
	"strings"

	sdkmath "cosmossdk.io/math"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/CoreumFoundation/explorer-kit/types"
)

const (
	defaultTokenDecimals = 6
	rowanTokenDecimals   = 18
	rowanDenomPrefix     = "rowan"

	tokenFraction = 2
	// the amounts above the threshold are rounded to the fraction
	roundingThreshold = 10
)

// FormatTokenDenom returns the display denom: upper-cased without the micro unit prefix.
func FormatTokenDenom(denom string) string {
	if denom == "" {
		return ""
	}

	denom = strings.ToUpper(denom)
	switch {
	case strings.HasPrefix(denom, "U"):
		return denom[1:]
	case denom == "BASECRO":
		return "CRO"
	case strings.HasPrefix(denom, "IBC"):
		return "IBC..."
	default:
		return denom
	}
}

// FormatDenomTrace returns the display denom of the IBC denom trace base denom.
func FormatDenomTrace(trace types.IBCDenomTrace) string {
	return FormatTokenDenom(trace.DenomTrace.BaseDenom)
}

// FormatTokenAmount converts the integer amount of the denom base units to the display units.
// The fractional part of the amount is truncated. The result is rounded to the fraction only when it exceeds 10.
func FormatTokenAmount(amount string, fraction int32, denom string) (decimal.Decimal, error) {
	if idx := strings.Index(amount, "."); idx > 0 {
		amount = amount[:idx]
	}
	intAmount, ok := sdkmath.NewIntFromString(amount)
	if !ok {
		return decimal.Decimal{}, errors.Errorf("invalid token amount:%s", amount)
	}

	tokenDecimals := int32(defaultTokenDecimals)
	if strings.HasPrefix(denom, rowanDenomPrefix) {
		tokenDecimals = rowanTokenDecimals
	}

	result := decimal.NewFromBigInt(intAmount.BigInt(), -tokenDecimals)
	if result.GreaterThan(decimal.NewFromInt(roundingThreshold)) {
		result = result.Round(fraction)
	}

	return result, nil
}

// FormatToken returns the "<amount> <DENOM>" representation of the token.
// The ibcDenoms resolves the IBC denoms to their traces and may be nil.
func FormatToken(token types.Token, ibcDenoms map[string]types.IBCDenomTrace) (string, error) {
	amount, err := FormatTokenAmount(token.Amount, tokenFraction, token.Denom)
	if err != nil {
		return "", err
	}

	denom := FormatTokenDenom(token.Denom)
	if trace, ok := ibcDenoms[token.Denom]; ok {
		denom = FormatDenomTrace(trace)
	}

	return amount.String() + " " + denom, nil
}

// TokenFormatter formats the tokens and joins them with the comma.
func TokenFormatter(tokens ...types.Token) (string, error) {
	formatted := make([]string, 0, len(tokens))
	for _, token := range tokens {
		text, err := FormatToken(token, nil)
		if err != nil {
			return "", err
		}
		formatted = append(formatted, text)
	}

	return strings.Join(formatted, ","), nil
}

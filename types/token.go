package types

// Token is the amount of the denom as returned by the chain APIs. The amount may be an integer or a decimal string.
type Token struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// DenomTrace is the IBC denom trace.
//
//nolint:tagliatelle // the chain API naming
type DenomTrace struct {
	Path      string `json:"path"`
	BaseDenom string `json:"base_denom"`
}

// IBCDenomTrace is the IBC denom with its trace.
//
//nolint:tagliatelle // the chain API naming
type IBCDenomTrace struct {
	DenomTrace DenomTrace `json:"denom_trace"`
}

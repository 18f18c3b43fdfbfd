package format

// CurrencySign returns the symbol of the currency.
func CurrencySign(currency string) string {
	switch currency {
	case "cny", "jpy":
		return "¥"
	case "krw":
		return "₩"
	case "eur":
		return "€"
	default:
		return "$"
	}
}

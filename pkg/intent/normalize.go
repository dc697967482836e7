// Package intent turns free-text chat messages into structured commands.
//
// Classification is lexical only: an ordered list of regexp rules is tried
// against the lowercased message and the first match wins. There is no NLU
// beyond these fixed patterns.
package intent

import (
	"strconv"
	"strings"
)

const (
	// DefaultFiatCurrency is assumed when a deposit omits the currency code.
	DefaultFiatCurrency = "USD"
	// DefaultAssetSymbol is assumed when a buy/sell omits the asset.
	DefaultAssetSymbol = "BTC"
)

// NormalizeNumber parses locale-formatted numeric text, accepting either
// "." or "," as the decimal separator. Malformed text normalizes to 0.0
// rather than failing; callers must treat 0.0 as potentially unparseable.
func NormalizeNumber(text string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0.0
	}
	return f
}

// NormalizeSymbol uppercases a raw currency/asset token, falling back to
// the given default when the token is absent.
func NormalizeSymbol(token, fallback string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return strings.ToUpper(fallback)
	}
	return strings.ToUpper(token)
}

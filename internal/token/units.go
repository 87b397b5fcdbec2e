// Package token converts base-unit (wei scale) MOR amounts into display
// values. Amounts arrive from the subgraphs as decimal strings because they
// routinely exceed the safe float integer range; conversion to floating form
// happens exactly once, after any accumulation.
package token

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimals is the MOR token exponent.
const Decimals = 18

// WeiToMOR converts a base-unit decimal string into token units. Malformed
// or empty input yields 0, it never fails.
func WeiToMOR(wei string) float64 {
	n, ok := ParseWei(wei)
	if !ok {
		return 0
	}
	return BigWeiToMOR(n)
}

// BigWeiToMOR converts an exact base-unit integer into token units.
func BigWeiToMOR(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}
	f, _ := decimal.NewFromBigInt(wei, -Decimals).Float64()
	return f
}

// ParseWei parses a base-unit decimal string. The sign is preserved.
func ParseWei(wei string) (*big.Int, bool) {
	wei = strings.TrimSpace(wei)
	if wei == "" {
		return nil, false
	}
	return new(big.Int).SetString(wei, 10)
}

// SumWei accumulates base-unit amounts exactly. Malformed entries contribute
// zero so that one broken upstream record cannot poison a total.
func SumWei(amounts []string) *big.Int {
	total := new(big.Int)
	for _, a := range amounts {
		n, ok := ParseWei(a)
		if !ok {
			continue
		}
		total.Add(total, n)
	}
	return total
}

// FormatMOR renders a base-unit amount string at the given number of decimal
// places, e.g. "1500000000000000000" -> "1.50" for places=2.
func FormatMOR(wei string, places int32) string {
	n, ok := ParseWei(wei)
	if !ok {
		n = new(big.Int)
	}
	return decimal.NewFromBigInt(n, -Decimals).StringFixed(places)
}

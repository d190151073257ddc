package format

import (
	"fmt"
	"strings"
)

const (
	// CurrencyUSD is the only currency code Money recognises.
	CurrencyUSD = "usd"

	// Free is returned for a zero amount in any currency.
	Free = "Free"
	// Unknown is returned for unrecognised currency codes.
	Unknown = "?"
)

// Money renders an amount given in minor units (cents) for the given currency.
//
// Trailing zeros of the fractional part are dropped, along with the decimal point
// when nothing is left after it: 1230 -> "$12.3", 1200 -> "$12". Negative amounts
// carry the sign before the symbol: -64 -> "-$0.64".
func Money(currency string, amount int64) string {
	if amount == 0 {
		return Free
	}

	switch currency {
	case CurrencyUSD:
		return sign(amount) + "$" + minorUnits(amount)
	default:
		return Unknown
	}
}

func sign(amount int64) string {
	if amount < 0 {
		return "-"
	}
	return ""
}

// minorUnits renders |amount| hundredths exactly, without going through float64.
func minorUnits(amount int64) string {
	abs := uint64(amount)
	if amount < 0 {
		abs = -abs
	}
	return trimFraction(fmt.Sprintf("%d.%02d", abs/100, abs%100))
}

func trimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

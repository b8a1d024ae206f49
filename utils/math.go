package utils

import (
	"cosmossdk.io/math"
)

// ExpDec approximates e^x with the first `terms` terms of its Maclaurin series.
// The result is deterministic and safe to compute on chain.
//
//	e^x = 1 + x + x^2/2! + ... + x^n/n!
func ExpDec(x math.LegacyDec, terms int) math.LegacyDec {
	result := math.LegacyOneDec()
	term := math.LegacyOneDec()

	for i := 1; i <= terms; i++ {
		term = term.Mul(x).QuoInt64(int64(i))
		result = result.Add(term)
	}

	return result
}

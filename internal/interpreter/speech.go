package interpreter

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SpeechPrice renders cents for the speech synthesizer, which mispronounces
// decimal punctuation. Whole-dollar amounts drop the cents group entirely;
// otherwise the cents come as a separate two-digit group:
//
//	2400 -> "$24"
//	1250 -> "$12 50"
//	1205 -> "$12 05"
func SpeechPrice(cents int64) string {
	dollars := cents / 100
	rem := cents % 100
	if rem == 0 {
		return fmt.Sprintf("$%d", dollars)
	}
	return fmt.Sprintf("$%d %02d", dollars, rem)
}

// averageCents делит сумму на количество с округлением до цента
// (half away from zero), чтобы средние значения были детерминированы.
func averageCents(sumCents int64, n int) int64 {
	if n == 0 {
		return 0
	}
	return decimal.NewFromInt(sumCents).
		DivRound(decimal.NewFromInt(int64(n)), 0).
		IntPart()
}

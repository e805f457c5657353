package ebi

import (
	"math/big"
)

// bigDigitsPerWord is the number of our digits held in one big.Word.
const bigDigitsPerWord = intSize / DigitBits

// IntFromBigInt creates an Int from a big.Int using the default context.
func IntFromBigInt(v *big.Int) (Int, error) {
	return defaultContext.IntFromBigInt(v)
}

// IntFromBigInt creates an Int from a big.Int. The result is a
// CapacityExceeded error if v needs more digits than c allows.
func (c *Context) IntFromBigInt(v *big.Int) (Int, error) {
	words := v.Bits()
	if len(words) == 0 {
		return zeroInt, nil
	}

	need := (v.BitLen() + DigitBits - 1) / DigitBits
	if need > c.maxDigits {
		return zeroInt, CapacityExceeded.New("%d digits, limit is %d", need, c.maxDigits)
	}

	digits := make([]uint8, 0, len(words)*bigDigitsPerWord)
	for _, w := range words {
		for j := 0; j < bigDigitsPerWord; j++ {
			digits = append(digits, uint8(w&(Radix-1)))
			w >>= DigitBits
		}
	}
	return c.newInt(v.Sign() < 0, digits)
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	mag := i.mag()
	words := make([]big.Word, (len(mag)+bigDigitsPerWord-1)/bigDigitsPerWord)
	for idx := len(mag) - 1; idx >= 0; idx-- {
		w := idx / bigDigitsPerWord
		words[w] = words[w]<<DigitBits | big.Word(mag[idx])
	}
	b.SetBits(words)
	if i.neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (i Int) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

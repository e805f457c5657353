package ebi

import (
	"math"
)

// shlMag returns d * Radix^k in a new slice.
func shlMag(d []uint8, k int) []uint8 {
	out := make([]uint8, k+len(d))
	copy(out[k:], d)
	return out
}

// shrMag returns d / Radix^k, truncated, in a new slice.
func shrMag(d []uint8, k int) []uint8 {
	if k >= len(d) {
		return []uint8{0}
	}
	out := make([]uint8, len(d)-k)
	copy(out, d[k:])
	return out
}

// LshDigits returns x * Radix^k.
func (c *Context) LshDigits(x Int, k int) (Int, error) {
	if k < 0 {
		return zeroInt, InvalidShiftAmount.New("negative shift %d", k)
	}
	if x.IsZero() || k == 0 {
		return c.fits(x)
	}
	if k > c.maxDigits-x.Len() {
		return zeroInt, CapacityExceeded.New("%d digits shifted by %d, limit is %d", x.Len(), k, c.maxDigits)
	}
	return c.newInt(x.neg, shlMag(x.mag(), k))
}

// RshDigits returns x / Radix^k, truncated toward zero.
func (c *Context) RshDigits(x Int, k int) (Int, error) {
	if k < 0 {
		return zeroInt, InvalidShiftAmount.New("negative shift %d", k)
	}
	if x.IsZero() || k == 0 {
		return c.fits(x)
	}
	return c.newInt(x.neg, shrMag(x.mag(), k))
}

// Lsh returns x << n. n must be a multiple of DigitBits.
func (c *Context) Lsh(x Int, n uint) (Int, error) {
	k, err := shiftDigits(n)
	if err != nil {
		return zeroInt, err
	}
	return c.LshDigits(x, k)
}

// Rsh returns x >> n, truncated toward zero. n must be a multiple of
// DigitBits.
func (c *Context) Rsh(x Int, n uint) (Int, error) {
	k, err := shiftDigits(n)
	if err != nil {
		return zeroInt, err
	}
	return c.RshDigits(x, k)
}

func shiftDigits(n uint) (int, error) {
	if n%DigitBits != 0 {
		return 0, InvalidShiftAmount.New("%d bits is not a multiple of %d", n, DigitBits)
	}
	k := n / DigitBits
	if k > math.MaxInt {
		return 0, InvalidShiftAmount.New("%d bits is too large", n)
	}
	return int(k), nil
}

func (i Int) LshDigits(k int) (Int, error) { return defaultContext.LshDigits(i, k) }
func (i Int) RshDigits(k int) (Int, error) { return defaultContext.RshDigits(i, k) }
func (i Int) Lsh(n uint) (Int, error)      { return defaultContext.Lsh(i, n) }
func (i Int) Rsh(n uint) (Int, error)      { return defaultContext.Rsh(i, n) }

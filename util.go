package ebi

// RandSource supplies the random bits used by Rand. *math/rand.Rand and
// *math/rand/v2.PCG both satisfy it.
type RandSource interface {
	Uint64() uint64
}

// Rand returns a random positive Int with exactly digits digits using the
// default context. See Context.Rand.
func Rand(source RandSource, digits int) (Int, error) {
	return defaultContext.Rand(source, digits)
}

// Rand returns a random positive Int with exactly digits digits; the most
// significant digit is never zero. If digits <= 0, the result is zero.
func (c *Context) Rand(source RandSource, digits int) (Int, error) {
	if digits <= 0 {
		return zeroInt, nil
	}
	if digits > c.maxDigits {
		return zeroInt, CapacityExceeded.New("%d digits, limit is %d", digits, c.maxDigits)
	}

	out := make([]uint8, digits)
	var bits uint64
	var left int
	for idx := range out {
		if left == 0 {
			bits, left = source.Uint64(), 64/DigitBits
		}
		out[idx] = uint8(bits & (Radix - 1))
		bits >>= DigitBits
		left--
	}
	for out[digits-1] == 0 {
		out[digits-1] = uint8(source.Uint64() & (Radix - 1))
	}
	return Int{digits: out}, nil
}

// Difference returns |a - b|.
func Difference(a, b Int) (Int, error) {
	if a.GreaterThan(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}

// Larger returns the larger of a and b, or a if they are equal.
func Larger(a, b Int) Int {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

// Smaller returns the smaller of a and b, or a if they are equal.
func Smaller(a, b Int) Int {
	if b.LessThan(a) {
		return b
	}
	return a
}

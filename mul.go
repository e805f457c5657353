package ebi

// mulMag returns a * b. Each digit of b contributes a partial product built
// by repeated addition of a, shifted into place and added to the total.
func mulMag(a, b []uint8) []uint8 {
	total := []uint8{0}
	for idx, d := range b {
		if d == 0 {
			continue
		}
		partial := []uint8{0}
		for j := uint8(0); j < d; j++ {
			partial = addMag(partial, a)
		}
		total = addMag(total, shlMag(partial, idx))
	}
	return total
}

// Mul returns x * y.
//
// The capacity check is conservative: it fails if the digit counts of x and y
// together exceed the limit, even when the product itself would fit.
func (c *Context) Mul(x, y Int) (Int, error) {
	switch {
	case x.IsZero() || y.IsZero():
		return zeroInt, nil
	case x.isOne():
		return c.fits(y)
	case y.isOne():
		return c.fits(x)
	case x.isNegOne():
		return c.fits(y.Neg())
	case y.isNegOne():
		return c.fits(x.Neg())
	}

	if x.Len()+y.Len() > c.maxDigits {
		return zeroInt, CapacityExceeded.New("%d digits * %d digits, limit is %d", x.Len(), y.Len(), c.maxDigits)
	}

	// The sign must be assigned last, after the magnitude is complete:
	return c.newInt(x.neg != y.neg, mulMag(x.mag(), y.mag()))
}

// Pow returns x**exp. Pow(x, 0) is 1 for every x, including 0.
func (c *Context) Pow(x Int, exp uint) (Int, error) {
	result := oneInt
	base := x
	for exp > 0 {
		var err error
		if exp&1 == 1 {
			result, err = c.Mul(result, base)
			if err != nil {
				return zeroInt, err
			}
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		base, err = c.Mul(base, base)
		if err != nil {
			return zeroInt, err
		}
	}
	return result, nil
}

func (i Int) Mul(n Int) (Int, error)    { return defaultContext.Mul(i, n) }
func (i Int) Pow(exp uint) (Int, error) { return defaultContext.Pow(i, exp) }

package ebi

// quoRemMag divides magnitude a by non-zero magnitude b. Both results are new,
// trimmed slices.
func quoRemMag(a, b []uint8) (q, r []uint8) {
	if cmpMag(a, b) < 0 {
		r = make([]uint8, len(a))
		copy(r, a)
		return []uint8{0}, r
	}
	if len(b) == 1 {
		return quoRemDigit(a, b[0])
	}

	r = make([]uint8, len(a))
	copy(r, a)
	q = []uint8{0}

	for cmpMag(r, b) >= 0 {
		// Largest shift of b that does not exceed r is either len(r)-len(b)
		// digits or one less:
		n := len(r) - len(b)
		sub := shlMag(b, n)
		if cmpMag(r, sub) < 0 {
			if n == 0 {
				panic("ebi: division shift underflow")
			}
			n--
			sub = shlMag(b, n)
		}
		r = subMag(r, sub)
		q = addMag(q, shlMag(oneInt.digits, n))
	}
	return q, r
}

// quoRemDigit is schoolbook short division of a by the single digit d.
func quoRemDigit(a []uint8, d uint8) (q, r []uint8) {
	if d == 0 {
		panic("ebi: division by zero digit")
	}
	q = make([]uint8, len(a))
	var rem uint
	for idx := len(a) - 1; idx >= 0; idx-- {
		cur := rem*Radix + uint(a[idx])
		q[idx] = uint8(cur / uint(d))
		rem = cur % uint(d)
	}
	return trimDigits(q), []uint8{uint8(rem)}
}

// QuoRem returns the quotient q and remainder r of x / y for y != 0. If
// y == 0, the error is DivideByZero.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// so r always has the sign of x.
func (c *Context) QuoRem(x, y Int) (q, r Int, err error) {
	if y.IsZero() {
		return zeroInt, zeroInt, DivideByZero.New("%d-digit dividend / 0", x.Len())
	}
	if y.isOne() || y.isNegOne() {
		if y.neg {
			x = x.Neg()
		}
		if q, err = c.fits(x); err != nil {
			return zeroInt, zeroInt, err
		}
		return q, zeroInt, nil
	}

	qm, rm := quoRemMag(x.mag(), y.mag())

	// Signs must be assigned last, once the magnitudes are complete:
	if q, err = c.newInt(x.neg != y.neg, qm); err != nil {
		return zeroInt, zeroInt, err
	}
	if r, err = c.newInt(x.neg, rm); err != nil {
		return zeroInt, zeroInt, err
	}
	return q, r, nil
}

// Quo returns the quotient x/y for y != 0, truncated toward zero. See QuoRem.
func (c *Context) Quo(x, y Int) (Int, error) {
	q, _, err := c.QuoRem(x, y)
	return q, err
}

// Rem returns the remainder x%y for y != 0. The result has the sign of x. See
// QuoRem.
func (c *Context) Rem(x, y Int) (Int, error) {
	_, r, err := c.QuoRem(x, y)
	return r, err
}

// Mod returns x mod y using c's ModMode.
//
// With ModTruncated (the default), Mod is the same as Rem and satisfies
// x == (x/y)*y + x mod y, so -7 mod 2 == -1.
//
// With ModNonNegative, y must be positive (InvalidModulus otherwise) and the
// result is in [0, y), so -7 mod 2 == 1.
func (c *Context) Mod(x, y Int) (Int, error) {
	switch c.modMode {
	case ModTruncated:
		return c.Rem(x, y)

	case ModNonNegative:
		if y.IsZero() {
			return zeroInt, DivideByZero.New("%d-digit dividend mod 0", x.Len())
		}
		if y.neg {
			return zeroInt, InvalidModulus.New("%s mod %s: modulus must be positive", x, y)
		}
		r, err := c.Rem(x, y)
		if err != nil || !r.neg {
			return r, err
		}
		return c.Add(r, y)

	default:
		panic("ebi: unknown ModMode " + c.modMode.String())
	}
}

func (i Int) QuoRem(by Int) (q, r Int, err error) { return defaultContext.QuoRem(i, by) }
func (i Int) Quo(by Int) (Int, error)              { return defaultContext.Quo(i, by) }
func (i Int) Rem(by Int) (Int, error)              { return defaultContext.Rem(i, by) }
func (i Int) Mod(by Int) (Int, error)              { return defaultContext.Mod(i, by) }

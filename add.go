package ebi

// addMag returns a + b in a new slice. Positions past the end of the shorter
// operand count as zero.
func addMag(a, b []uint8) []uint8 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint8, n, n+1)
	var carry uint
	for idx := 0; idx < n; idx++ {
		sum := uint(digitAt(a, idx)) + uint(digitAt(b, idx)) + carry
		out[idx] = uint8(sum % Radix)
		carry = sum / Radix
	}
	if carry > 0 {
		out = append(out, uint8(carry))
	}
	return out
}

// subMag returns a - b in a new, trimmed slice. a must not be smaller than b.
func subMag(a, b []uint8) []uint8 {
	if cmpMag(a, b) < 0 {
		panic("ebi: magnitude subtraction underflow")
	}
	out := make([]uint8, len(a))
	var borrow int
	for idx := range a {
		v := int(a[idx]) - int(digitAt(b, idx)) - borrow
		if v < 0 {
			v += Radix
			borrow = 1
		} else {
			borrow = 0
		}
		out[idx] = uint8(v)
	}
	return trimDigits(out)
}

func digitAt(d []uint8, idx int) uint8 {
	if idx < len(d) {
		return d[idx]
	}
	return 0
}

// addSigned resolves every sign combination of a + b to one magnitude add or
// subtract:
//
//	signs equal         |a| + |b|          sign of a
//	signs differ, |a|>=|b|  |a| - |b|      sign of a
//	signs differ, |a|<|b|   |b| - |a|      sign of b
//
// Subtraction is addSigned with b's sign flipped.
func (c *Context) addSigned(aNeg bool, a []uint8, bNeg bool, b []uint8) (Int, error) {
	if aNeg == bNeg {
		return c.newInt(aNeg, addMag(a, b))
	}
	if cmpMag(a, b) >= 0 {
		return c.newInt(aNeg, subMag(a, b))
	}
	return c.newInt(bNeg, subMag(b, a))
}

// Add returns x + y.
func (c *Context) Add(x, y Int) (Int, error) {
	return c.addSigned(x.neg, x.mag(), y.neg, y.mag())
}

// Sub returns x - y.
func (c *Context) Sub(x, y Int) (Int, error) {
	yNeg := y.neg
	if !y.IsZero() {
		yNeg = !yNeg
	}
	return c.addSigned(x.neg, x.mag(), yNeg, y.mag())
}

// Inc returns x + 1.
func (c *Context) Inc(x Int) (Int, error) { return c.Add(x, oneInt) }

// Dec returns x - 1.
func (c *Context) Dec(x Int) (Int, error) { return c.Sub(x, oneInt) }

func (i Int) Add(n Int) (Int, error) { return defaultContext.Add(i, n) }
func (i Int) Sub(n Int) (Int, error) { return defaultContext.Sub(i, n) }
func (i Int) Inc() (Int, error)      { return defaultContext.Inc(i) }
func (i Int) Dec() (Int, error)      { return defaultContext.Dec(i) }

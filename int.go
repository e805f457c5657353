package ebi

// Int is an arbitrary-precision signed integer.
//
// The zero value is 0 and is ready to use. Int values are immutable once
// constructed and may be shared freely between goroutines.
type Int struct {
	neg bool

	// digits holds the magnitude, least significant digit first. Canonical
	// values have no zero digits at the top; zero is a single 0 digit, though
	// an empty slice (the Go zero value) is also treated as zero.
	digits []uint8
}

// IntFrom64 creates an Int from an int64.
func IntFrom64(v int64) Int {
	if v < 0 {
		// -(v+1)+1 avoids overflow on math.MinInt64:
		u := uint64(-(v + 1))
		return Int{neg: true, digits: u64Digits(u + 1)}
	}
	return Int{digits: u64Digits(uint64(v))}
}

func IntFrom32(v int32) Int   { return IntFrom64(int64(v)) }
func IntFromInt(v int) Int    { return IntFrom64(int64(v)) }
func IntFromU64(v uint64) Int { return Int{digits: u64Digits(v)} }

// IntFromDigits creates an Int from a sign and a raw digit sequence, least
// significant digit first, using the default context. See
// Context.IntFromDigits.
func IntFromDigits(negative bool, digits []uint8) (Int, error) {
	return defaultContext.IntFromDigits(negative, digits)
}

func u64Digits(u uint64) []uint8 {
	if u == 0 {
		return []uint8{0}
	}
	out := make([]uint8, 0, 16)
	for u > 0 {
		out = append(out, uint8(u%Radix))
		u /= Radix
	}
	return out
}

// trimDigits removes zero digits from the most significant end, leaving at
// least one digit.
func trimDigits(d []uint8) []uint8 {
	n := len(d)
	for n > 1 && d[n-1] == 0 {
		n--
	}
	return d[:n]
}

func isZeroMag(d []uint8) bool {
	return len(d) == 0 || (len(d) == 1 && d[0] == 0)
}

// mag returns the magnitude digits of i. Never nil, never to be written to.
func (i Int) mag() []uint8 {
	if len(i.digits) == 0 {
		return zeroDigits
	}
	return i.digits
}

var zeroDigits = []uint8{0}

// Len returns the number of digits in the magnitude of i. Zero has one digit.
func (i Int) Len() int {
	if len(i.digits) == 0 {
		return 1
	}
	return len(i.digits)
}

// Digit returns the digit at position idx, counting from 0 at the least
// significant digit. Positions outside the magnitude are 0.
func (i Int) Digit(idx int) uint8 {
	if idx < 0 || idx >= len(i.digits) {
		return 0
	}
	return i.digits[idx]
}

// Digits returns a copy of the magnitude digits, least significant first.
func (i Int) Digits() []uint8 {
	m := i.mag()
	out := make([]uint8, len(m))
	copy(out, m)
	return out
}

// Copy returns a copy of i that shares no storage with it.
func (i Int) Copy() Int {
	return Int{neg: i.neg, digits: i.Digits()}
}

func (i Int) IsZero() bool { return isZeroMag(i.digits) }

// IsNegative reports whether i < 0. Zero is never negative.
func (i Int) IsNegative() bool { return i.neg }

// Sign returns -1 if i < 0, 0 if i == 0 and +1 if i > 0.
func (i Int) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.neg {
		return -1
	}
	return 1
}

// Neg returns -i in new storage. Negating zero returns zero.
func (i Int) Neg() Int {
	if i.IsZero() {
		return zeroInt
	}
	return Int{neg: !i.neg, digits: i.Digits()}
}

// Abs returns |i| in new storage.
func (i Int) Abs() Int {
	if i.IsZero() {
		return zeroInt
	}
	return Int{digits: i.Digits()}
}

func (i Int) isOne() bool    { return !i.neg && len(i.digits) == 1 && i.digits[0] == 1 }
func (i Int) isNegOne() bool { return i.neg && len(i.digits) == 1 && i.digits[0] == 1 }

package ebi

// cmpMag compares two magnitudes and returns -1, 0 or +1. Both must be
// trimmed; a shorter magnitude is smaller.
func cmpMag(a, b []uint8) int {
	if len(a) < len(b) {
		return -1
	} else if len(a) > len(b) {
		return 1
	}
	for idx := len(a) - 1; idx >= 0; idx-- {
		if a[idx] < b[idx] {
			return -1
		} else if a[idx] > b[idx] {
			return 1
		}
	}
	return 0
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
func (i Int) Cmp(n Int) int {
	if i.neg != n.neg {
		// Zero is never negative, so differing signs can't both be zero.
		if i.neg {
			return -1
		}
		return 1
	}
	c := cmpMag(i.mag(), n.mag())
	if i.neg {
		return -c
	}
	return c
}

func (i Int) Equal(n Int) bool {
	if i.neg != n.neg {
		return false
	}
	a, b := i.mag(), n.mag()
	if len(a) != len(b) {
		return false
	}
	for idx := range a {
		if a[idx] != b[idx] {
			return false
		}
	}
	return true
}

func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }
func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }

// CmpAbs compares |i| to |n|.
func (i Int) CmpAbs(n Int) int {
	return cmpMag(i.mag(), n.mag())
}

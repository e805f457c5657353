package ebi

import (
	"fortio.org/safecast"
)

// magUint64 returns the magnitude of i as a uint64, and false if it doesn't
// fit.
func (i Int) magUint64() (uint64, bool) {
	mag := i.mag()
	if len(mag) > 64/DigitBits {
		return 0, false
	}
	var u uint64
	for idx := len(mag) - 1; idx >= 0; idx-- {
		u = u<<DigitBits | uint64(mag[idx])
	}
	return u, true
}

// IsInt64 reports whether i can be represented as an int64.
func (i Int) IsInt64() bool {
	_, err := i.AsInt64()
	return err == nil
}

// IsUint64 reports whether i can be represented as a uint64.
func (i Int) IsUint64() bool {
	_, ok := i.magUint64()
	return ok && !i.neg
}

// AsInt64 returns i as an int64, or an Overflow error if i is outside
// [math.MinInt64, math.MaxInt64].
func (i Int) AsInt64() (int64, error) {
	u, ok := i.magUint64()
	if !ok {
		return 0, Overflow.New("%s does not fit in int64", i)
	}
	if !i.neg {
		if u > maxInt64 {
			return 0, Overflow.New("%s does not fit in int64", i)
		}
		return int64(u), nil
	}
	if u > maxInt64+1 {
		return 0, Overflow.New("%s does not fit in int64", i)
	}
	// -(u-1)-1 avoids overflow on math.MinInt64:
	return -int64(u-1) - 1, nil
}

// AsInt32 returns i as an int32, or an Overflow error if it doesn't fit.
func (i Int) AsInt32() (int32, error) {
	v, err := i.AsInt64()
	if err != nil {
		return 0, err
	}
	out, err := safecast.Conv[int32](v)
	if err != nil {
		return 0, Overflow.New("%s does not fit in int32: %v", i, err)
	}
	return out, nil
}

// AsInt returns i as an int, or an Overflow error if it doesn't fit.
func (i Int) AsInt() (int, error) {
	v, err := i.AsInt64()
	if err != nil {
		return 0, err
	}
	out, err := safecast.Conv[int](v)
	if err != nil {
		return 0, Overflow.New("%s does not fit in int: %v", i, err)
	}
	return out, nil
}

// AsUint64 returns i as a uint64, or an Overflow error if i is negative or
// too large.
func (i Int) AsUint64() (uint64, error) {
	u, ok := i.magUint64()
	if !ok || i.neg {
		return 0, Overflow.New("%s does not fit in uint64", i)
	}
	return u, nil
}

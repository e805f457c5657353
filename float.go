package ebi

import (
	"math"
	"math/big"
)

// exactFloatDigits is the most digits that always fit in a float64 mantissa.
const exactFloatDigits = 52 / DigitBits

// AsFloat64 returns the float64 nearest to i. Values too large for a float64
// become ±Inf.
func (i Int) AsFloat64() float64 {
	mag := i.mag()
	if len(mag) > exactFloatDigits {
		f, _ := new(big.Float).SetInt(i.AsBigInt()).Float64()
		return f
	}

	var f float64
	for idx := len(mag) - 1; idx >= 0; idx-- {
		f = f*Radix + float64(mag[idx])
	}
	if i.neg {
		f = -f
	}
	return f
}

// IntFromFloat64 creates an Int from f using the default context. See
// Context.IntFromFloat64.
func IntFromFloat64(f float64) (Int, error) {
	return defaultContext.IntFromFloat64(f)
}

// IntFromFloat64 creates an Int from f, truncating toward zero. NaN and ±Inf
// are an Overflow error.
func (c *Context) IntFromFloat64(f float64) (Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return zeroInt, Overflow.New("%v has no integer value", f)
	}
	f = math.Trunc(f)

	// -2^63 is exact, 2^63 is not an int64:
	if f >= -(1<<63) && f < 1<<63 {
		return IntFrom64(int64(f)), nil
	}

	b, _ := big.NewFloat(f).Int(nil)
	return c.IntFromBigInt(b)
}

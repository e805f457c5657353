package ebi

import (
	"fmt"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// ModMode selects the sign convention used by Mod.
type ModMode uint8

const (
	// ModTruncated defines x mod y as x - (x/y)*y with truncated division, so
	// the result takes the sign of x. This is the same as Rem.
	ModTruncated ModMode = iota

	// ModNonNegative only accepts y > 0 and always returns a result in
	// [0, y).
	ModNonNegative
)

func (m ModMode) String() string {
	switch m {
	case ModTruncated:
		return "truncated"
	case ModNonNegative:
		return "nonnegative"
	default:
		return fmt.Sprintf("ModMode(%d)", uint8(m))
	}
}

// ParseMode selects how malformed text input is handled.
type ParseMode uint8

const (
	// ParseStrict returns a ParseError for malformed input.
	ParseStrict ParseMode = iota

	// ParseLenient substitutes zero for malformed input and logs a warning.
	ParseLenient
)

func (m ParseMode) String() string {
	switch m {
	case ParseStrict:
		return "strict"
	case ParseLenient:
		return "lenient"
	default:
		return fmt.Sprintf("ParseMode(%d)", uint8(m))
	}
}

// A Context carries the capacity limit and conventions used to build Int
// values. Configure a Context with its Set methods before sharing it between
// goroutines; after that it is only read.
type Context struct {
	maxDigits int
	modMode   ModMode
	parseMode ParseMode
	log       zerolog.Logger
}

var defaultContext = NewContext(DefaultMaxDigits)

// NewContext creates a Context that allows at most maxDigits digits per value.
// If maxDigits <= 0, DefaultMaxDigits is used; values below 16 are raised to
// 16 so any 64-bit machine integer fits.
func NewContext(maxDigits int) *Context {
	return new(Context).SetMaxDigits(maxDigits).SetLogger(zlog.Logger)
}

// Default returns a new Context with the same settings as the one used by the
// package-level functions and the methods on Int.
func Default() *Context {
	c := *defaultContext
	return &c
}

func (c *Context) MaxDigits() int       { return c.maxDigits }
func (c *Context) ModMode() ModMode     { return c.modMode }
func (c *Context) ParseMode() ParseMode { return c.parseMode }

// SetMaxDigits sets c's capacity and returns c. See NewContext for how
// out-of-range values are treated.
func (c *Context) SetMaxDigits(maxDigits int) *Context {
	if maxDigits <= 0 {
		maxDigits = DefaultMaxDigits
	}
	if maxDigits < minMaxDigits {
		maxDigits = minMaxDigits
	}
	c.maxDigits = maxDigits
	return c
}

// SetModMode sets the convention used by Mod and returns c.
func (c *Context) SetModMode(mode ModMode) *Context {
	c.modMode = mode
	return c
}

// SetParseMode sets how malformed text is handled and returns c.
func (c *Context) SetParseMode(mode ParseMode) *Context {
	c.parseMode = mode
	return c
}

// SetLogger sets the logger that receives lenient-mode parse warnings and
// returns c.
func (c *Context) SetLogger(log zerolog.Logger) *Context {
	c.log = log
	return c
}

// IntFromDigits creates an Int from a sign and a raw digit sequence, least
// significant digit first. The digits are copied.
//
// An empty sequence, or one made only of zeros, is zero with a positive sign.
// Zero digits at the most significant end are dropped. Each digit must be
// less than Radix.
func (c *Context) IntFromDigits(negative bool, digits []uint8) (Int, error) {
	for idx, d := range digits {
		if d >= Radix {
			return zeroInt, InvalidDigit.New("digit %d at position %d is not below %d", d, idx, Radix)
		}
	}
	own := make([]uint8, len(digits))
	copy(own, digits)
	return c.newInt(negative, own)
}

// newInt is the one place new values are assembled. It takes ownership of
// digits, which must not be referenced by any other Int.
func (c *Context) newInt(neg bool, digits []uint8) (Int, error) {
	if isZeroMag(digits) {
		return zeroInt, nil
	}
	digits = trimDigits(digits)
	if len(digits) == 1 && digits[0] == 0 {
		return zeroInt, nil
	}
	if len(digits) > c.maxDigits {
		return zeroInt, CapacityExceeded.New("%d digits, limit is %d", len(digits), c.maxDigits)
	}
	return Int{neg: neg, digits: digits}, nil
}

// fits returns v unchanged if it is within c's capacity. Operations that hand
// back an operand without building a new value must go through here.
func (c *Context) fits(v Int) (Int, error) {
	if n := v.Len(); n > c.maxDigits {
		return zeroInt, CapacityExceeded.New("%d digits, limit is %d", n, c.maxDigits)
	}
	return v, nil
}

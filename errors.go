package ebi

import (
	"github.com/zeebo/errs"
)

// Error kinds returned by Int operations. Test for a kind with Has:
//
//	if ebi.CapacityExceeded.Has(err) { ... }
var (
	// DivideByZero is returned by Quo, Rem, QuoRem and Mod for a zero divisor.
	DivideByZero = errs.Class("ebi: divide by zero")

	// CapacityExceeded is returned when a result would need more digits than
	// the Context allows.
	CapacityExceeded = errs.Class("ebi: capacity exceeded")

	// Overflow is returned when a value does not fit the requested machine
	// type.
	Overflow = errs.Class("ebi: overflow")

	// ParseError is returned for text or binary input that can't be decoded.
	ParseError = errs.Class("ebi: parse error")

	// InvalidShiftAmount is returned for shifts that are not a whole number of
	// digits.
	InvalidShiftAmount = errs.Class("ebi: invalid shift amount")

	// UnsupportedFormat is returned when asked for a base other than 10 or 16.
	UnsupportedFormat = errs.Class("ebi: unsupported format")

	// InvalidDigit is returned by IntFromDigits for a digit >= Radix.
	InvalidDigit = errs.Class("ebi: invalid digit")

	// InvalidModulus is returned by Mod in ModNonNegative mode for a negative
	// modulus.
	InvalidModulus = errs.Class("ebi: invalid modulus")
)

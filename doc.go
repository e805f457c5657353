/*
Package ebi provides Int, an arbitrary-precision signed integer bounded by a
configurable maximum number of digits.

Int is a value type; all operations return new values and never modify their
operands. Values are stored as sign and magnitude, with the magnitude held as
base-16 digits (one hex nibble per digit), so shifts are only supported in
whole-digit (4 bit) steps.

Simple example:

	a := ebi.MustIntFromString("123456789012345678901234567890")
	b, _ := a.Add(ebi.IntFrom64(1))
	fmt.Println(b)
	// Output: 123456789012345678901234567891

Operations that can fail return an error; the error kinds are zeebo/errs
classes and can be tested with Has:

	_, err := ebi.IntFrom64(5).Quo(ebi.IntFrom64(0))
	if ebi.DivideByZero.Has(err) {
		...
	}

Int can be created from a variety of sources:

	IntFrom64(v int64) Int
	IntFrom32(v int32) Int
	IntFromInt(v int) Int
	IntFromU64(v uint64) Int
	IntFromDigits(negative bool, digits []uint8) (Int, error)
	IntFromString(s string) (Int, error)
	IntFromText(s string, base int) (Int, error)
	IntFromBigInt(v *big.Int) (Int, error)
	IntFromFloat64(f float64) (Int, error)

The package-level constructors and the methods on Int use a default Context
with a capacity of DefaultMaxDigits digits. Use NewContext to pick another
capacity, modulo convention or parse mode:

	ctx := ebi.NewContext(64).SetModMode(ebi.ModNonNegative)
	r, err := ctx.Mod(ebi.IntFrom64(-7), ebi.IntFrom64(2))
	// r == 1

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- fmt.Scanner
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler
	- msgpack.CustomEncoder
	- msgpack.CustomDecoder
	- cbor.Marshaler
	- cbor.Unmarshaler

*/
package ebi

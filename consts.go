package ebi

const (
	// Radix is the base of a single stored digit.
	Radix = 16

	// DigitBits is the number of bits held by one digit. Bit shifts must be a
	// multiple of this.
	DigitBits = 4

	// DefaultMaxDigits is the capacity of the default context: 10000 bits.
	DefaultMaxDigits = 10000 / DigitBits

	// minMaxDigits is the smallest capacity a Context accepts; it is enough to
	// hold any 64-bit machine integer, so the IntFromXX constructors can't
	// fail.
	minMaxDigits = 64 / DigitBits

	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	intSize = 32 << (^uint(0) >> 63)

	hexDigits      = "0123456789abcdef"
	upperHexDigits = "0123456789ABCDEF"
)

var (
	zeroInt Int
	oneInt  = Int{digits: []uint8{1}}
	tenInt  = Int{digits: []uint8{10}}
)

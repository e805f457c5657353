package ebi

import (
	"fmt"
	"io"
)

// String returns the decimal representation of i.
func (i Int) String() string {
	return string(i.appendDec(nil))
}

// Text returns the representation of i in base 10 or 16. Hex output uses
// lower-case letters, one character per stored digit, without a prefix.
// Any other base is an UnsupportedFormat error.
func (i Int) Text(base int) (string, error) {
	b, err := i.Append(nil, base)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Append appends the representation of i in base 10 or 16 to buf. See Text.
func (i Int) Append(buf []byte, base int) ([]byte, error) {
	switch base {
	case 10:
		return i.appendDec(buf), nil
	case 16:
		if i.neg {
			buf = append(buf, '-')
		}
		return appendMagHex(buf, i.mag(), hexDigits), nil
	default:
		return buf, UnsupportedFormat.New("base %d", base)
	}
}

func (i Int) appendDec(buf []byte) []byte {
	if i.neg {
		buf = append(buf, '-')
	}
	return appendMagDec(buf, i.mag())
}

// appendMagDec emits the remainders of repeated division by ten, most
// significant first.
func appendMagDec(buf []byte, mag []uint8) []byte {
	if isZeroMag(mag) {
		return append(buf, '0')
	}

	var rev []byte
	q := mag
	for !isZeroMag(q) {
		var r []uint8
		q, r = quoRemMag(q, tenInt.digits)
		rev = append(rev, '0'+r[0])
	}

	for idx := len(rev) - 1; idx >= 0; idx-- {
		buf = append(buf, rev[idx])
	}
	return buf
}

func appendMagHex(buf []byte, mag []uint8, charset string) []byte {
	for idx := len(mag) - 1; idx >= 0; idx-- {
		buf = append(buf, charset[mag[idx]])
	}
	return buf
}

// Format implements fmt.Formatter. It accepts the verbs 'd', 's' and 'v'
// (decimal), 'x' (lower-case hex) and 'X' (upper-case hex). The '+' and ' '
// flags control the sign of non-negative values, '#' adds a "0x" or "0X"
// prefix to hex output, and width, precision, '-' and '0' pad in the same way
// as for the built-in integer types.
//
// Other verbs produce fmt's bad-verb form, like "%!o(ebi.Int=8)".
func (i Int) Format(s fmt.State, ch rune) {
	var digits []byte
	var prefix string

	switch ch {
	case 'd', 's', 'v':
		digits = appendMagDec(nil, i.mag())
	case 'x':
		digits = appendMagHex(nil, i.mag(), hexDigits)
		if s.Flag('#') {
			prefix = "0x"
		}
	case 'X':
		digits = appendMagHex(nil, i.mag(), upperHexDigits)
		if s.Flag('#') {
			prefix = "0X"
		}
	default:
		fmt.Fprintf(s, "%%!%c(ebi.Int=%s)", ch, i.String())
		return
	}

	var sign string
	switch {
	case i.neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	// Precision is the minimum number of digits:
	var zeros int
	prec, hasPrec := s.Precision()
	if hasPrec {
		if len(digits) < prec {
			zeros = prec - len(digits)
		} else if prec == 0 && i.IsZero() {
			// "%.0d" prints nothing for zero, like the built-in types:
			digits, sign, prefix = nil, "", ""
		}
	}

	length := len(sign) + len(prefix) + zeros + len(digits)
	var pad int
	if width, ok := s.Width(); ok && width > length {
		pad = width - length
	}

	switch {
	case s.Flag('-'):
		writeStrings(s, sign, prefix)
		writeMultiple(s, "0", zeros)
		s.Write(digits)
		writeMultiple(s, " ", pad)

	case s.Flag('0') && !hasPrec:
		// Zeros fill the width after the sign; a hex prefix is added on top
		// of that, as for the built-in types:
		width, _ := s.Width()
		writeStrings(s, sign, prefix)
		writeMultiple(s, "0", width-len(sign)-len(digits))
		s.Write(digits)

	default:
		writeMultiple(s, " ", pad)
		writeStrings(s, sign, prefix)
		writeMultiple(s, "0", zeros)
		s.Write(digits)
	}
}

func writeStrings(w io.Writer, strs ...string) {
	for _, str := range strs {
		io.WriteString(w, str)
	}
}

// writeMultiple writes count copies of text to w.
func writeMultiple(w io.Writer, text string, count int) {
	for ; count > 0; count-- {
		io.WriteString(w, text)
	}
}

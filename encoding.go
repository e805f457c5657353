package ebi

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
)

var (
	_ encoding.TextMarshaler     = Int{}
	_ encoding.TextUnmarshaler   = (*Int)(nil)
	_ encoding.BinaryMarshaler   = Int{}
	_ encoding.BinaryUnmarshaler = (*Int)(nil)
	_ json.Marshaler             = Int{}
	_ json.Unmarshaler           = (*Int)(nil)
	_ fmt.Formatter              = Int{}
	_ fmt.Scanner                = (*Int)(nil)
	_ fmt.Stringer               = Int{}
)

// MarshalText implements encoding.TextMarshaler using the decimal form.
func (i Int) MarshalText() ([]byte, error) {
	return i.appendDec(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts anything
// IntFromString does.
func (i *Int) UnmarshalText(text []byte) error {
	v, err := defaultContext.IntFromString(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalJSON implements json.Marshaler. The value is a quoted decimal
// string, so it survives decoders that read numbers into a float64.
func (i Int) MarshalJSON() ([]byte, error) {
	out := append(make([]byte, 0, i.Len()+3), '"')
	out = i.appendDec(out)
	return append(out, '"'), nil
}

// UnmarshalJSON implements json.Unmarshaler. Both quoted strings and bare
// numbers are accepted; null leaves i unchanged.
func (i *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return i.UnmarshalText(data)
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// big-endian bytes of |i|*2 + s, where s is 1 for a negative value, with no
// leading zero bytes. Zero is a single 0 byte.
func (i Int) MarshalBinary() ([]byte, error) {
	mag := i.mag()

	// Pack two digits per byte, least significant first, then shift the
	// whole thing left one bit to make room for the sign:
	le := make([]byte, len(mag)/2+1)
	for idx, d := range mag {
		le[idx/2] |= d << (DigitBits * uint(idx%2))
	}
	var carry byte
	if i.neg {
		carry = 1
	}
	for idx := range le {
		next := le[idx] >> 7
		le[idx] = le[idx]<<1 | carry
		carry = next
	}
	if carry != 0 {
		le = append(le, carry)
	}

	n := len(le)
	for n > 1 && le[n-1] == 0 {
		n--
	}
	out := make([]byte, n)
	for idx := 0; idx < n; idx++ {
		out[idx] = le[n-1-idx]
	}
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. See MarshalBinary
// for the layout. A negative zero decodes to zero.
func (i *Int) UnmarshalBinary(data []byte) error {
	v, err := defaultContext.intFromBinary(data)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (c *Context) intFromBinary(data []byte) (Int, error) {
	if len(data) == 0 {
		return zeroInt, ParseError.New("empty binary integer")
	}

	neg := data[len(data)-1]&1 == 1
	digits := make([]uint8, 0, len(data)*2)
	for idx := len(data) - 1; idx >= 0; idx-- {
		// Each output byte takes its low 7 bits from this byte and its top bit
		// from the next more significant one:
		b := data[idx] >> 1
		if idx > 0 {
			b |= data[idx-1] << 7
		}
		digits = append(digits, b&(Radix-1), b>>DigitBits)
	}
	return c.newInt(neg, digits)
}

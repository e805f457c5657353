package ebi

import (
	"fmt"
	"strings"
	"unicode"
)

// IntFromString creates an Int from text using the default context. See
// Context.IntFromString.
func IntFromString(s string) (Int, error) {
	return defaultContext.IntFromString(s)
}

// IntFromText creates an Int from text in the given base using the default
// context. See Context.IntFromText.
func IntFromText(s string, base int) (Int, error) {
	return defaultContext.IntFromText(s, base)
}

// MustIntFromString is like IntFromString but panics if s can't be parsed.
// It simplifies initialisation of values from literals.
func MustIntFromString(s string) Int {
	v, err := IntFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IntFromString creates an Int from text of the form:
//
//	[sign] ("0x"|"0X") hex-digit+
//	[sign] decimal-digit+
//
// where sign is '+' or '-'. Surrounding whitespace is ignored.
//
// Malformed input is a ParseError, unless c is in ParseLenient mode, in which
// case the result is zero and a warning is logged.
func (c *Context) IntFromString(s string) (Int, error) {
	return c.IntFromText(s, 0)
}

// IntFromText is like IntFromString, with the base fixed: base 0 selects by
// prefix as IntFromString does, base 10 only accepts decimal digits and base
// 16 accepts hex digits with or without the "0x" prefix. Any other base is an
// UnsupportedFormat error.
func (c *Context) IntFromText(s string, base int) (Int, error) {
	if base != 0 && base != 10 && base != 16 {
		return zeroInt, UnsupportedFormat.New("base %d", base)
	}
	v, err := c.parseText(s, base)
	if err != nil && c.parseMode == ParseLenient && ParseError.Has(err) {
		c.log.Warn().Str("input", s).Err(err).Msg("ebi: malformed integer text, using 0")
		return zeroInt, nil
	}
	return v, err
}

func (c *Context) parseText(s string, base int) (Int, error) {
	text := strings.TrimSpace(s)

	neg := false
	if len(text) > 0 && (text[0] == '+' || text[0] == '-') {
		neg = text[0] == '-'
		text = text[1:]
	}

	hasPrefix := len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X')
	if base == 16 || (base == 0 && hasPrefix) {
		if hasPrefix {
			text = text[2:]
		}
		return c.parseHex(neg, text, s)
	}
	return c.parseDec(neg, text, s)
}

// parseHex assembles hex characters straight into digits, most significant
// first.
func (c *Context) parseHex(neg bool, text, orig string) (Int, error) {
	if text == "" {
		return zeroInt, ParseError.New("%q: no hex digits", orig)
	}
	for idx := 0; idx < len(text); idx++ {
		if _, ok := hexValue(text[idx]); !ok {
			return zeroInt, ParseError.New("%q: invalid hex digit %q", orig, text[idx])
		}
	}

	text = strings.TrimLeft(text, "0")
	if len(text) > c.maxDigits {
		return zeroInt, CapacityExceeded.New("%d hex digits, limit is %d", len(text), c.maxDigits)
	}

	digits := make([]uint8, len(text))
	for idx := 0; idx < len(text); idx++ {
		d, _ := hexValue(text[idx])
		digits[len(text)-1-idx] = d
	}
	return c.newInt(neg, digits)
}

// parseDec accumulates value*10 + digit for each decimal character.
func (c *Context) parseDec(neg bool, text, orig string) (Int, error) {
	if text == "" {
		return zeroInt, ParseError.New("%q: no decimal digits", orig)
	}

	mag := []uint8{0}
	for idx := 0; idx < len(text); idx++ {
		ch := text[idx]
		if ch < '0' || ch > '9' {
			return zeroInt, ParseError.New("%q: invalid decimal digit %q", orig, ch)
		}
		mag = trimDigits(addMag(mulMag(mag, tenInt.digits), []uint8{ch - '0'}))
		if len(mag) > c.maxDigits {
			return zeroInt, CapacityExceeded.New("%q needs more than %d digits", orig, c.maxDigits)
		}
	}
	return c.newInt(neg, mag)
}

func hexValue(ch byte) (uint8, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	default:
		return 0, false
	}
}

// Scan implements fmt.Scanner. It reads one whitespace-delimited token using
// the default context. The verbs 'd' (decimal), 'x' and 'X' (hex, prefix
// optional), 's' and 'v' (prefix decides) are supported.
func (i *Int) Scan(state fmt.ScanState, verb rune) error {
	base := 0
	switch verb {
	case 's', 'v':
	case 'd':
		base = 10
	case 'x', 'X':
		base = 16
	default:
		return UnsupportedFormat.New("scan verb %%%c", verb)
	}

	state.SkipSpace()
	tok, err := state.Token(false, func(r rune) bool { return !unicode.IsSpace(r) })
	if err != nil {
		return err
	}
	v, err := defaultContext.IntFromText(string(tok), base)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

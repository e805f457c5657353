package ebi

import (
	"fmt"
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestString(t *testing.T) {
	for _, tc := range []struct {
		in  Int
		out string
	}{
		{Int{}, "0"},
		{IntFrom64(-1), "-1"},
		{IntFrom64(9), "9"},
		{IntFrom64(10), "10"},
		{IntFrom64(math.MinInt64), "-9223372036854775808"},
		{IntFromU64(maxUint64), "18446744073709551615"},
		{ints("0xf1245ab3341ff3461818881767676819ee"), "82056373577192766440263908030568869665262"},
	} {
		t.Run(tc.out, func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.String())

			dec, err := tc.in.Text(10)
			tt.MustOK(err)
			tt.MustEqual(tc.out, dec)
		})
	}
}

func TestTextHex(t *testing.T) {
	for _, tc := range []struct {
		in  Int
		out string
	}{
		{Int{}, "0"},
		{IntFrom64(-1), "-1"},
		{IntFrom64(0xabc), "abc"},
		{IntFrom64(-0xabc), "-abc"},
		{ints("82056373577192766440263908030568869665262"), "f1245ab3341ff3461818881767676819ee"},
	} {
		t.Run(tc.out, func(t *testing.T) {
			tt := assert.WrapTB(t)
			hex, err := tc.in.Text(16)
			tt.MustOK(err)
			tt.MustEqual(tc.out, hex)

			// Hex text round-trips through base 16:
			back, err := IntFromText(hex, 16)
			tt.MustOK(err)
			tt.MustAssert(back.Equal(tc.in))
		})
	}
}

func TestTextUnsupportedBase(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, base := range []int{0, 2, 8, 36} {
		_, err := IntFrom64(1).Text(base)
		tt.MustAssert(UnsupportedFormat.Has(err), "%d: %v", base, err)
	}
}

func TestAppend(t *testing.T) {
	tt := assert.WrapTB(t)
	buf := []byte("n=")
	buf, err := IntFrom64(-255).Append(buf, 10)
	tt.MustOK(err)
	buf = append(buf, ' ')
	buf, err = IntFrom64(-255).Append(buf, 16)
	tt.MustOK(err)
	tt.MustEqual("n=-255 -ff", string(buf))

	buf, err = IntFrom64(1).Append(buf, 2)
	tt.MustAssert(UnsupportedFormat.Has(err))
	tt.MustEqual("n=-255 -ff", string(buf))
}

// Int's Format should match the built-in integer types for every verb and
// flag combination it supports.
func TestFormatMatchesInt64(t *testing.T) {
	formats := []string{
		"%d", "%v", "%x", "%X", "%#x", "%#X",
		"%+d", "% d", "%+x", "% x", "%+#x",
		"%5d", "%-5d|", "%05d", "%-05d|", "%08x", "%#08x", "%#3x", "%+06d",
		"%.3d", "%.0d", "%5.0d", "%+.0d|", "%8.3d", "%-8.3x|", "%08.3d", "%#.4x",
		"%1d", "%30d",
	}
	for _, v := range []int64{0, 1, -1, 5, -5, 42, -42, 255, -255, 0xabcdef, math.MaxInt64, math.MinInt64} {
		for _, format := range formats {
			t.Run(fmt.Sprintf("%s/%d", format, v), func(t *testing.T) {
				tt := assert.WrapTB(t)
				exp := fmt.Sprintf(format, v)
				tt.MustEqual(exp, fmt.Sprintf(format, IntFrom64(v)))
			})
		}
	}
}

func TestFormatBig(t *testing.T) {
	tt := assert.WrapTB(t)
	v := ints("-0xf1245ab3341ff3461818881767676819ee")
	tt.MustEqual("-82056373577192766440263908030568869665262", fmt.Sprintf("%d", v))
	tt.MustEqual("-82056373577192766440263908030568869665262", fmt.Sprintf("%s", v))
	tt.MustEqual("-0XF1245AB3341FF3461818881767676819EE", fmt.Sprintf("%#X", v))
	tt.MustEqual("[-f1245ab3341ff3461818881767676819ee]", fmt.Sprintf("[%x]", v))
	tt.MustEqual("{-82056373577192766440263908030568869665262}", fmt.Sprintf("%v", struct{ V Int }{v}))
}

func TestFormatBadVerb(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("%!o(ebi.Int=8)", fmt.Sprintf("%o", IntFrom64(8)))
	tt.MustEqual("%!q(ebi.Int=-1)", fmt.Sprintf("%q", IntFrom64(-1)))
}

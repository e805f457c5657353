package ebi

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestMul(t *testing.T) {
	for _, tc := range []struct {
		a, b, c Int
	}{
		{IntFrom64(0), IntFrom64(-5), IntFrom64(0)},
		{IntFrom64(1), IntFrom64(-5), IntFrom64(-5)},
		{IntFrom64(-1), IntFrom64(-5), IntFrom64(5)},
		{IntFrom64(-1), IntFrom64(0), IntFrom64(0)},
		{IntFrom64(6), IntFrom64(7), IntFrom64(42)},
		{IntFrom64(-6), IntFrom64(7), IntFrom64(-42)},
		{IntFrom64(-6), IntFrom64(-7), IntFrom64(42)},
		{ints("0xf"), ints("0xf"), ints("0xe1")},
		{IntFromU64(maxUint64), IntFromU64(maxUint64), ints("0xffff ffff ffff fffe 0000 0000 0000 0001")},
		{
			ints("0xf1245ab3341ff3461818881767676819ee"),
			ints("0xf1245ab3341ff3461818881767676819ee"),
			ints("0xe32577ef0aad4f1ecb6d72ea95367eafa2ed43e99f4572ec2671411290b698005944"),
		},
	} {
		t.Run(fmt.Sprintf("%s*%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := tc.a.Mul(tc.b)
			tt.MustOK(err)
			tt.MustAssert(tc.c.Equal(v), "found %s", v)
			tt.MustAssert(!v.IsZero() || !v.IsNegative())

			v, err = tc.b.Mul(tc.a)
			tt.MustOK(err)
			tt.MustAssert(tc.c.Equal(v), "found %s", v)
		})
	}
}

func TestPow(t *testing.T) {
	for _, tc := range []struct {
		x   Int
		exp uint
		out Int
	}{
		{IntFrom64(0), 0, IntFrom64(1)},
		{IntFrom64(0), 5, IntFrom64(0)},
		{IntFrom64(7), 0, IntFrom64(1)},
		{IntFrom64(7), 1, IntFrom64(7)},
		{IntFrom64(-2), 3, IntFrom64(-8)},
		{IntFrom64(-2), 4, IntFrom64(16)},
		{IntFrom64(2), 64, ints("18446744073709551616")},
		{IntFrom64(3), 40, ints("12157665459056928801")},
		{IntFrom64(-3), 41, ints("-36472996377170786403")},
	} {
		t.Run(fmt.Sprintf("%s**%d=%s", tc.x, tc.exp, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := tc.x.Pow(tc.exp)
			tt.MustOK(err)
			tt.MustAssert(tc.out.Equal(v), "found %s", v)
		})
	}
}

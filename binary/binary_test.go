package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nkuznetsov/bignum/bigerr"
)

func TestNewRoundTrip(t *testing.T) {
	cases := []string{
		"0", "1", "-1", "9", "-9", "123456789012345678901234567890",
		"-123456789012345678901234567890", "18446744073709551616",
	}
	for _, s := range cases {
		x, err := New(s)
		require.NoError(t, err)
		require.Equal(t, s, x.String())
	}
}

func TestNewInvalid(t *testing.T) {
	for _, s := range []string{"", "-", "01", "-01", "12a3", "1 2", "--1"} {
		_, err := New(s)
		require.Error(t, err)
		var pe *bigerr.ParseError
		require.ErrorAs(t, err, &pe)
	}
}

func TestAddScenario(t *testing.T) {
	a := MustNew("123456789012345678901234567890")
	b := MustNew("98765432109876543210987654321")
	require.Equal(t, "222222221122222222112222222211", a.Add(b).String())
}

func TestDivScenarios(t *testing.T) {
	q, err := MustNew("65550").Quo(MustNew("3"))
	require.NoError(t, err)
	require.Equal(t, "21850", q.String())
	r, err := MustNew("65550").Mod(MustNew("3"))
	require.NoError(t, err)
	require.Equal(t, "0", r.String())

	q, err = MustNew("21850").Quo(MustNew("4"))
	require.NoError(t, err)
	require.Equal(t, "5462", q.String())
	r, err = MustNew("21850").Mod(MustNew("4"))
	require.NoError(t, err)
	require.Equal(t, "2", r.String())
}

func TestIsqrtLarge(t *testing.T) {
	x := MustNew("12345678901234567890123456789012345678900000000000000000000000000000000000000000000000000000000000000")
	r, err := x.Isqrt()
	require.NoError(t, err)
	require.Equal(t, "111111110611111109936111105818611081081542864454310", r.String())
}

func TestDivisionByZero(t *testing.T) {
	x := NewInt64(42)
	_, err := x.Quo(NewInt64(0))
	require.Error(t, err)
	var dz *bigerr.DivisionByZeroError
	require.ErrorAs(t, err, &dz)

	_, err = x.Mod(NewInt64(0))
	require.Error(t, err)
	require.ErrorAs(t, err, &dz)
}

func TestIsqrtDomain(t *testing.T) {
	_, err := MustNew("-1").Isqrt()
	require.Error(t, err)
	var de *bigerr.DomainError
	require.ErrorAs(t, err, &de)
}

func TestSignAndZero(t *testing.T) {
	require.False(t, NewInt64(0).Sign())
	require.True(t, NewInt64(-5).Sign())
	require.True(t, NewInt64(0).IsZero())
	require.Equal(t, "0", MustNew("-0").String())
}

func TestCmp(t *testing.T) {
	require.Equal(t, 0, NewInt64(5).Cmp(NewInt64(5)))
	require.Equal(t, -1, NewInt64(-5).Cmp(NewInt64(5)))
	require.Equal(t, 1, NewInt64(5).Cmp(NewInt64(-5)))
	require.Equal(t, -1, NewInt64(2).Cmp(NewInt64(3)))
	require.Equal(t, 1, NewInt64(3).Cmp(NewInt64(2)))
}

func TestMulSignsAndZero(t *testing.T) {
	require.Equal(t, "-6", NewInt64(2).Mul(NewInt64(-3)).String())
	require.Equal(t, "6", NewInt64(-2).Mul(NewInt64(-3)).String())
	require.Equal(t, "0", NewInt64(0).Mul(NewInt64(-3)).String())
}

func TestModSignFollowsDividend(t *testing.T) {
	r, err := NewInt64(-7).Mod(NewInt64(3))
	require.NoError(t, err)
	require.Equal(t, "-1", r.String())

	r, err = NewInt64(7).Mod(NewInt64(-3))
	require.NoError(t, err)
	require.Equal(t, "1", r.String())
}

func TestPow(t *testing.T) {
	require.Equal(t, "1", NewInt64(0).Pow(0).String())
	require.Equal(t, "1", NewInt64(5).Pow(0).String())
	require.Equal(t, "5", NewInt64(5).Pow(1).String())
	require.Equal(t, "1024", NewInt64(2).Pow(10).String())
}

func TestIncDec(t *testing.T) {
	require.Equal(t, "1", NewInt64(0).Inc().String())
	require.Equal(t, "-1", NewInt64(0).Dec().String())
}

func TestNativeIntBridging(t *testing.T) {
	v, err := MustNew("127").Int8()
	require.NoError(t, err)
	require.Equal(t, int8(127), v)

	_, err = MustNew("128").Int8()
	require.Error(t, err)
	var oe *bigerr.OverflowError
	require.ErrorAs(t, err, &oe)

	u, err := MustNew("255").Uint8()
	require.NoError(t, err)
	require.Equal(t, uint8(255), u)

	_, err = MustNew("256").Uint8()
	require.Error(t, err)

	_, err = MustNew("-1").Uint8()
	require.Error(t, err)

	i64, err := NewInt64(-9223372036854775808).Int64()
	require.NoError(t, err)
	require.Equal(t, int64(-9223372036854775808), i64)
}

func TestMarshalText(t *testing.T) {
	x := MustNew("-123456789012345678901234567890")
	buf, err := x.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "-123456789012345678901234567890", string(buf))

	var y Int
	require.NoError(t, y.UnmarshalText(buf))
	require.Equal(t, 0, x.Cmp(&y))
}

func TestRingAxioms(t *testing.T) {
	a := MustNew("123456789")
	b := MustNew("-987654321")
	c := MustNew("42")

	require.Equal(t, a.Add(b).Add(c).String(), a.Add(b.Add(c)).String())
	require.Equal(t, a.Add(b).String(), b.Add(a).String())
	require.Equal(t, a.String(), a.Add(NewInt64(0)).String())
	require.Equal(t, a.String(), a.Mul(NewInt64(1)).String())
	require.Equal(t, "0", a.Mul(NewInt64(0)).String())
	require.Equal(t, "0", a.Sub(a).String())
	require.Equal(t, a.Mul(b).Mul(c).String(), a.Mul(b.Mul(c)).String())
	require.Equal(t, a.Mul(b.Add(c)).String(), a.Mul(b).Add(a.Mul(c)).String())
}

package factorial

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nkuznetsov/bignum/bigerr"
)

func TestNewRoundTrip(t *testing.T) {
	cases := []string{
		"0", "1", "-1", "2", "9", "23", "119", "719", "5040",
		"123456789012345678901234567890", "-123456789012345678901234567890",
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

func TestCodecRoundTrip(t *testing.T) {
	x := zero()
	for idx := uint64(0); idx <= 100; idx++ {
		v := idx / 2
		require.NoError(t, x.put(idx, v))
	}
	for idx := uint64(0); idx <= 100; idx++ {
		v, ok := x.extract(idx)
		require.True(t, ok)
		require.Equal(t, idx/2, v)
	}
}

func TestPutInvalidCoefficient(t *testing.T) {
	x := zero()
	err := x.put(3, 4)
	require.Error(t, err)
	var ic *bigerr.InvalidCoefficientError
	require.ErrorAs(t, err, &ic)
}

func TestAddScenario(t *testing.T) {
	a := MustNew("719") // 6!-1
	b := MustNew("1")
	require.Equal(t, "720", a.Add(b).String())
}

func TestSubScenario(t *testing.T) {
	a := MustNew("5040")
	b := MustNew("4320")
	require.Equal(t, "720", a.Sub(b).String())
}

func TestMulDivScenario(t *testing.T) {
	a := MustNew("123")
	b := MustNew("456")
	require.Equal(t, "56088", a.Mul(b).String())

	q, err := MustNew("56088").Quo(MustNew("456"))
	require.NoError(t, err)
	require.Equal(t, "123", q.String())

	r, err := MustNew("100").Mod(MustNew("7"))
	require.NoError(t, err)
	require.Equal(t, "2", r.String())
}

func TestDivisionByZero(t *testing.T) {
	_, err := NewInt64(5).Quo(NewInt64(0))
	require.Error(t, err)
	var dz *bigerr.DivisionByZeroError
	require.ErrorAs(t, err, &dz)
}

func TestIsqrt(t *testing.T) {
	r, err := MustNew("144").Isqrt()
	require.NoError(t, err)
	require.Equal(t, "12", r.String())

	_, err = MustNew("-1").Isqrt()
	require.Error(t, err)
	var de *bigerr.DomainError
	require.ErrorAs(t, err, &de)
}

func TestCmp(t *testing.T) {
	require.Equal(t, 0, NewInt64(5).Cmp(NewInt64(5)))
	require.Equal(t, -1, NewInt64(-5).Cmp(NewInt64(5)))
	require.Equal(t, 1, NewInt64(5).Cmp(NewInt64(-5)))
	require.Equal(t, -1, NewInt64(2).Cmp(NewInt64(3)))
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
	require.Equal(t, a.Mul(b.Add(c)).String(), a.Mul(b).Add(a.Mul(c)).String())
}

func TestNativeIntBridging(t *testing.T) {
	v, err := MustNew("127").Int8()
	require.NoError(t, err)
	require.Equal(t, int8(127), v)

	_, err = MustNew("128").Int8()
	require.Error(t, err)

	i64, err := NewInt64(-9223372036854775808).Int64()
	require.NoError(t, err)
	require.Equal(t, int64(-9223372036854775808), i64)
}

func TestMarshalText(t *testing.T) {
	x := MustNew("-123456789012345678901234567890")
	buf, err := x.MarshalText()
	require.NoError(t, err)

	var y Int
	require.NoError(t, y.UnmarshalText(buf))
	require.Equal(t, 0, x.Cmp(&y))
}

package decstr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nkuznetsov/bignum/bigerr"
)

func TestIsValidIntegral(t *testing.T) {
	valid := []string{"0", "1", "9", "10", "-0", "123456789012345678901234567890"}
	for _, s := range valid {
		require.True(t, IsValidIntegral(s), s)
	}
	invalid := []string{"", "-", "01", "00", "1.0", "1e5", "12a", " 1", "1 "}
	for _, s := range invalid {
		require.False(t, IsValidIntegral(s), s)
	}
}

func TestGe(t *testing.T) {
	require.True(t, Ge("10", "9"))
	require.True(t, Ge("9", "9"))
	require.False(t, Ge("9", "10"))
	require.True(t, Ge("100", "099"))
}

func TestTrimZeros(t *testing.T) {
	require.Equal(t, "1", TrimZeros("0001", TrimLeading))
	require.Equal(t, "0", TrimZeros("0000", TrimLeading))
	require.Equal(t, "1", TrimZeros("1000", TrimTrailing))
	require.Equal(t, "0", TrimZeros("0000", TrimTrailing))
	require.Equal(t, "0", TrimZeros("", TrimLeading))
}

func TestAdd(t *testing.T) {
	require.Equal(t, "1000", Add("999", "1"))
	require.Equal(t, "0", Add("0", "0"))
	require.Equal(t, "246", Add("123", "123"))
	require.Equal(t, "100000000000000000000", Add("99999999999999999999", "1"))
}

func TestSub(t *testing.T) {
	r, err := Sub("1000", "1")
	require.NoError(t, err)
	require.Equal(t, "999", r)

	r, err = Sub("5", "5")
	require.NoError(t, err)
	require.Equal(t, "0", r)

	_, err = Sub("5", "10")
	require.Error(t, err)
	var ue *bigerr.UnderflowError
	require.ErrorAs(t, err, &ue)
}

func TestMul(t *testing.T) {
	require.Equal(t, "0", Mul("0", "12345"))
	require.Equal(t, "123456789", Mul("123456789", "1"))
	require.Equal(t, "56088", Mul("123", "456"))
	require.Equal(t, "10000000000", Mul("100000", "100000"))
}

func TestDivBySmall(t *testing.T) {
	q, r, err := DivBySmall("100", 3)
	require.NoError(t, err)
	require.Equal(t, "33", q)
	require.Equal(t, uint64(1), r)

	q, r, err = DivBySmall("0", 7)
	require.NoError(t, err)
	require.Equal(t, "0", q)
	require.Equal(t, uint64(0), r)

	_, _, err = DivBySmall("100", 0)
	require.Error(t, err)
	var dz *bigerr.DivisionByZeroError
	require.ErrorAs(t, err, &dz)
}

func TestDiv(t *testing.T) {
	q, r, err := Div("56088", "456")
	require.NoError(t, err)
	require.Equal(t, "123", q)
	require.Equal(t, "0", r)

	q, r, err = Div("100", "7")
	require.NoError(t, err)
	require.Equal(t, "14", q)
	require.Equal(t, "2", r)

	q, r, err = Div("5", "10")
	require.NoError(t, err)
	require.Equal(t, "0", q)
	require.Equal(t, "5", r)

	_, _, err = Div("5", "0")
	require.Error(t, err)
	var dz *bigerr.DivisionByZeroError
	require.ErrorAs(t, err, &dz)
}

// Package decstr implements sign-free, leading-zero-free decimal string
// arithmetic: validation, addition, subtraction, multiplication and division,
// plus the zero-trimming helpers the binary and factorial kernels use to
// parse from and format to decimal.
//
// All functions here operate on unsigned decimal strings; the sign of a
// value is handled by the caller (binary.Int / factorial.Int), exactly as
// spec.md separates decimal-string utilities from the two arithmetic
// kernels.
package decstr

import (
	"strings"

	"github.com/nkuznetsov/bignum/bigerr"
)

// IsValidIntegral reports whether s is a valid signed decimal integer: an
// optional leading '-', followed by one or more digits '0'-'9', with no
// leading zero unless the value is the literal "0".
func IsValidIntegral(s string) bool {
	if s == "" {
		return false
	}
	start := 0
	if s[0] == '-' {
		if len(s) == 1 {
			return false
		}
		start = 1
	}
	if len(s)-start > 1 && s[start] == '0' {
		return false
	}
	for i := start; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Ge reports whether unsigned decimal string a is numerically greater than
// or equal to b. Both must be leading-zero-free (except "0").
func Ge(a, b string) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a >= b
}

// TrimMode selects which end TrimZeros removes zeros from.
type TrimMode int

const (
	// TrimLeading removes leading zeros, as when normalizing a decimal
	// digit string after arithmetic.
	TrimLeading TrimMode = iota
	// TrimTrailing removes trailing zeros, as when normalizing a
	// least-significant-digit-first digit buffer.
	TrimTrailing
)

// TrimZeros removes leading or trailing '0' characters from s. If every
// character is a zero, the result is the single character "0".
func TrimZeros(s string, mode TrimMode) string {
	if s == "" {
		return "0"
	}
	if mode == TrimLeading {
		s = strings.TrimLeft(s, "0")
	} else {
		s = strings.TrimRight(s, "0")
	}
	if s == "" {
		return "0"
	}
	return s
}

// Add returns the sum a+b of two unsigned decimal strings.
func Add(a, b string) string {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]byte, len(a)+1)
	pos := len(out)
	carry := 0
	i, j := len(a)-1, len(b)-1
	for i >= 0 || carry != 0 {
		da := 0
		if i >= 0 {
			da = int(a[i] - '0')
		}
		db := 0
		if j >= 0 {
			db = int(b[j] - '0')
		}
		sum := da + db + carry
		pos--
		out[pos] = byte(sum%10) + '0'
		carry = sum / 10
		i--
		j--
	}
	return TrimZeros(string(out[pos:]), TrimLeading)
}

// Sub returns the difference a-b of two unsigned decimal strings. It fails
// with *bigerr.UnderflowError if a < b: Sub is an internal helper that
// callers must only invoke once they have established a >= b.
func Sub(a, b string) (string, error) {
	if b == "0" {
		return a, nil
	}
	if a == b {
		return "0", nil
	}
	if !Ge(a, b) {
		return "", &bigerr.UnderflowError{Func: "decstr.Sub", A: a, B: b}
	}
	out := make([]byte, len(a))
	pos := len(out)
	borrow := 0
	i, j := len(a)-1, len(b)-1
	for i >= 0 {
		da := int(a[i] - '0')
		db := 0
		if j >= 0 {
			db = int(b[j] - '0')
		}
		diff := da - db - borrow
		if diff < 0 {
			diff += 10
			borrow = 1
		} else {
			borrow = 0
		}
		pos--
		out[pos] = byte(diff) + '0'
		i--
		j--
	}
	return TrimZeros(string(out), TrimLeading), nil
}

// Mul returns the product a*b of two unsigned decimal strings.
func Mul(a, b string) string {
	if a == "0" || b == "0" {
		return "0"
	}
	digits := make([]int, len(a)+len(b))
	for i := len(a) - 1; i >= 0; i-- {
		da := int(a[i] - '0')
		for j := len(b) - 1; j >= 0; j-- {
			db := int(b[j] - '0')
			sum := da*db + digits[i+j+1]
			digits[i+j+1] = sum % 10
			digits[i+j] += sum / 10
		}
	}
	out := make([]byte, len(digits))
	for i, d := range digits {
		out[i] = byte(d) + '0'
	}
	return TrimZeros(string(out), TrimLeading)
}

// DivBySmall divides unsigned decimal string a by the integral divisor k
// (k > 0), returning the quotient string and the remainder. It fails with
// *bigerr.DivisionByZeroError if k is zero.
func DivBySmall(a string, k uint64) (quotient string, remainder uint64, err error) {
	if k == 0 {
		return "", 0, &bigerr.DivisionByZeroError{Func: "decstr.DivBySmall"}
	}
	if a == "0" {
		return "0", 0, nil
	}
	out := make([]byte, len(a))
	var rem uint64
	for i := 0; i < len(a); i++ {
		acc := rem*10 + uint64(a[i]-'0')
		out[i] = byte(acc/k) + '0'
		rem = acc % k
	}
	return TrimZeros(string(out), TrimLeading), rem, nil
}

// Div performs school long division of unsigned decimal string a by b,
// returning the normalized quotient and remainder. It fails with
// *bigerr.DivisionByZeroError if b is "0".
func Div(a, b string) (quotient, remainder string, err error) {
	if b == "0" {
		return "", "", &bigerr.DivisionByZeroError{Func: "decstr.Div"}
	}
	if a == "0" {
		return "0", "0", nil
	}
	if !Ge(a, b) {
		return "0", a, nil
	}

	var q strings.Builder
	q.Grow(len(a))
	rem := "0"
	for i := 0; i < len(a); i++ {
		rem = TrimZeros(rem+string(a[i]), TrimLeading)
		count := 0
		for Ge(rem, b) {
			rem, err = Sub(rem, b)
			if err != nil {
				return "", "", err
			}
			count++
		}
		q.WriteByte(byte(count) + '0')
	}
	return TrimZeros(q.String(), TrimLeading), TrimZeros(rem, TrimLeading), nil
}

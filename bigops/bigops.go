// Package bigops provides the generic signed-arithmetic scaffolding shared
// by the binary and factorial representations: sign-aware dispatch for
// addition and subtraction, multiplication/division sign combination,
// negation, absolute value, exponentiation by squaring, and integer square
// root by binary search.
//
// This is the Go-idiomatic stand-in for a C++ CRTP base class: instead of a
// template base every representation inherits from, Magnitude is a
// self-referential generic interface and the operations below are free
// functions parameterized over it. Each representation (binary.Int,
// factorial.Int) implements Magnitude by supplying its own unsigned
// magnitude kernel (add/sub/mul/divide on non-negative values); everything
// about sign handling, abs, pow and isqrt is written once, here.
package bigops

import "github.com/nkuznetsov/bignum/bigerr"

// Magnitude is the set of primitives a representation must provide for the
// sign-aware operators in this package to be built on top of it. All
// methods except Sign/SetSign/IsZero/Copy operate on, or return, unsigned
// magnitudes — the sign is applied by the functions in this package, never
// by the Magnitude implementation itself.
type Magnitude[T any] interface {
	// Sign reports whether the value is negative.
	Sign() bool
	// SetSign sets the sign in place.
	SetSign(neg bool)
	// IsZero reports whether the magnitude is zero.
	IsZero() bool
	// Zero returns a fresh canonical zero value of the same representation.
	Zero() T
	// One returns a fresh canonical value of 1.
	One() T
	// Copy returns an independent deep copy.
	Copy() T
	// CmpMag compares |receiver| to |other|: -1, 0 or 1.
	CmpMag(other T) int
	// AddMag returns |receiver| + |other|, sign false.
	AddMag(other T) T
	// SubMag returns |receiver| - |other|, sign false. The caller must
	// ensure |receiver| >= |other|.
	SubMag(other T) T
	// MulMag returns |receiver| * |other|, sign false.
	MulMag(other T) T
	// QuoRemMag returns |receiver| / |other| and |receiver| % |other|,
	// both sign false. The caller must ensure |other| != 0.
	QuoRemMag(other T) (quo, rem T, err error)
}

// Cmp returns -1, 0 or 1 as a < b, a == b or a > b, honoring sign.
func Cmp[T Magnitude[T]](a, b T) int {
	az, bz := a.IsZero(), b.IsZero()
	if az && bz {
		return 0
	}
	if a.Sign() != b.Sign() {
		if a.Sign() {
			return -1
		}
		return 1
	}
	c := a.CmpMag(b)
	if a.Sign() {
		c = -c
	}
	return c
}

// Add returns a + b.
func Add[T Magnitude[T]](a, b T) T {
	if a.Sign() == b.Sign() {
		r := a.AddMag(b)
		r.SetSign(a.Sign())
		return r
	}
	if a.CmpMag(b) >= 0 {
		r := a.SubMag(b)
		if !r.IsZero() {
			r.SetSign(a.Sign())
		}
		return r
	}
	r := b.SubMag(a)
	if !r.IsZero() {
		r.SetSign(b.Sign())
	}
	return r
}

// Neg returns -a.
func Neg[T Magnitude[T]](a T) T {
	r := a.Copy()
	if !r.IsZero() {
		r.SetSign(!r.Sign())
	}
	return r
}

// Sub returns a - b, defined as a + (-b).
func Sub[T Magnitude[T]](a, b T) T {
	return Add(a, Neg(b))
}

// Mul returns a * b, sign the XOR of the operand signs.
func Mul[T Magnitude[T]](a, b T) T {
	if a.IsZero() || b.IsZero() {
		return a.Zero()
	}
	r := a.MulMag(b)
	r.SetSign(a.Sign() != b.Sign())
	return r
}

// QuoRem returns the truncated quotient a/b and the remainder a%b, with
// sign(quo) the XOR of the operand signs and sign(rem) the sign of a (the
// dividend), matching truncating integer division. It fails with
// *bigerr.DivisionByZeroError if b is zero.
func QuoRem[T Magnitude[T]](a, b T) (quo, rem T, err error) {
	if b.IsZero() {
		var zero T
		return zero, zero, &bigerr.DivisionByZeroError{Func: "bigops.QuoRem"}
	}
	if a.IsZero() {
		return a.Zero(), a.Zero(), nil
	}
	quo, rem, err = a.QuoRemMag(b)
	if err != nil {
		var zero T
		return zero, zero, err
	}
	if !quo.IsZero() {
		quo.SetSign(a.Sign() != b.Sign())
	}
	if !rem.IsZero() {
		rem.SetSign(a.Sign())
	}
	return quo, rem, nil
}

// Abs returns |a|.
func Abs[T Magnitude[T]](a T) T {
	r := a.Copy()
	r.SetSign(false)
	return r
}

// Pow returns base raised to the unsigned exponent exp, by squaring.
// Pow(x, 0) == 1 for all x, including Pow(0, 0) == 1.
func Pow[T Magnitude[T]](base T, exp uint64) T {
	result := base.One()
	b := base.Copy()
	for exp > 0 {
		if exp&1 == 1 {
			result = Mul(result, b)
		}
		b = Mul(b, b)
		exp >>= 1
	}
	return result
}

// Isqrt returns floor(sqrt(x)) by binary search on [1, x]. It fails with
// *bigerr.DomainError if x is negative.
func Isqrt[T Magnitude[T]](x T) (T, error) {
	if x.Sign() && !x.IsZero() {
		var zero T
		return zero, &bigerr.DomainError{Func: "bigops.Isqrt", Msg: "argument is negative"}
	}
	if x.IsZero() {
		return x.Zero(), nil
	}
	two := Add(x.One(), x.One())
	low, high := x.One(), x.Copy()
	for Cmp(low, high) <= 0 {
		mid, _, err := QuoRem(Add(low, high), two)
		if err != nil {
			return x.Zero(), err
		}
		sq := Mul(mid, mid)
		switch Cmp(sq, x) {
		case 0:
			return mid, nil
		case -1:
			low = Add(mid, x.One())
		default:
			high = Sub(mid, x.One())
		}
	}
	return high, nil
}

// Inc returns a + 1.
func Inc[T Magnitude[T]](a T) T {
	return Add(a, a.One())
}

// Dec returns a - 1.
func Dec[T Magnitude[T]](a T) T {
	return Sub(a, a.One())
}

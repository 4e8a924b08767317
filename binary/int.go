package binary

import (
	"golang.org/x/exp/constraints"

	"github.com/nkuznetsov/bignum/bigerr"
	"github.com/nkuznetsov/bignum/bigops"
	"github.com/nkuznetsov/bignum/decstr"
)

var _ bigops.Magnitude[*Int] = (*Int)(nil)

// New parses the signed decimal string s into an Int. It fails with
// *bigerr.ParseError if s is not a valid signed decimal integer (optional
// leading '-', digits only, no leading zeros except the literal "0").
func New(s string) (*Int, error) {
	if !decstr.IsValidIntegral(s) {
		return nil, &bigerr.ParseError{Func: "binary.New", Text: s}
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	x := &Int{words: parseMagnitude(s), neg: neg}
	x.trim()
	return x, nil
}

// MustNew is like New but panics if s is invalid. Intended for literals
// known to be valid at compile time.
func MustNew(s string) *Int {
	x, err := New(s)
	if err != nil {
		panic(err)
	}
	return x
}

// fromUnsigned builds an Int from an unsigned magnitude, base-2^wordBits.
func fromUnsigned(v uint64, neg bool) *Int {
	if v == 0 {
		return zero()
	}
	var words []word
	for v != 0 {
		words = append(words, word(v&uint64(wordMax)))
		v >>= wordBits
	}
	return &Int{words: words, neg: neg}
}

// NewInt64 returns a new Int with the value of v.
func NewInt64(v int64) *Int {
	if v == 0 {
		return zero()
	}
	neg := v < 0
	var u uint64
	if neg {
		u = uint64(-(v + 1)) + 1 // avoids overflow on MinInt64
	} else {
		u = uint64(v)
	}
	return fromUnsigned(u, neg)
}

// NewUint64 returns a new Int with the value of v.
func NewUint64(v uint64) *Int {
	return fromUnsigned(v, false)
}

// String renders x in decimal, with a leading '-' for negative nonzero
// values. The zero value renders as "0".
func (x *Int) String() string {
	return formatDecimal(x)
}

// MarshalText implements encoding.TextMarshaler.
func (x *Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) error {
	v, err := New(string(text))
	if err != nil {
		return err
	}
	*x = *v
	return nil
}

// Cmp compares x to y: -1, 0 or 1.
func (x *Int) Cmp(y *Int) int { return bigops.Cmp[*Int](x, y) }

// Add returns x + y.
func (x *Int) Add(y *Int) *Int { return bigops.Add[*Int](x, y) }

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int { return bigops.Sub[*Int](x, y) }

// Mul returns x * y.
func (x *Int) Mul(y *Int) *Int { return bigops.Mul[*Int](x, y) }

// Quo returns the truncated quotient x / y. It fails with
// *bigerr.DivisionByZeroError if y is zero.
func (x *Int) Quo(y *Int) (*Int, error) {
	q, _, err := bigops.QuoRem[*Int](x, y)
	return q, err
}

// Mod returns the remainder of truncated division, x - Quo(y)*y, with the
// sign of x. It fails with *bigerr.DivisionByZeroError if y is zero.
func (x *Int) Mod(y *Int) (*Int, error) {
	_, r, err := bigops.QuoRem[*Int](x, y)
	return r, err
}

// Neg returns -x.
func (x *Int) Neg() *Int { return bigops.Neg[*Int](x) }

// Abs returns |x|.
func (x *Int) Abs() *Int { return bigops.Abs[*Int](x) }

// Pow returns x raised to the unsigned power exp.
func (x *Int) Pow(exp uint64) *Int { return bigops.Pow[*Int](x, exp) }

// Isqrt returns floor(sqrt(x)). It fails with *bigerr.DomainError if x is
// negative.
func (x *Int) Isqrt() (*Int, error) { return bigops.Isqrt[*Int](x) }

// Inc returns x + 1.
func (x *Int) Inc() *Int { return bigops.Inc[*Int](x) }

// Dec returns x - 1.
func (x *Int) Dec() *Int { return bigops.Dec[*Int](x) }

// Uint64 returns x as a uint64, failing with *bigerr.OverflowError if x is
// negative or its magnitude exceeds 64 bits.
func (x *Int) Uint64() (uint64, error) {
	if x.neg && !x.IsZero() {
		return 0, &bigerr.OverflowError{Func: "binary.Int.Uint64", Type: "uint64"}
	}
	if x.bitLen() > 64 {
		return 0, &bigerr.OverflowError{Func: "binary.Int.Uint64", Type: "uint64"}
	}
	return x.toUint64(), nil
}

// Int64 returns x as an int64, failing with *bigerr.OverflowError if the
// value does not fit.
func (x *Int) Int64() (int64, error) {
	if x.bitLen() > 64 {
		return 0, &bigerr.OverflowError{Func: "binary.Int.Int64", Type: "int64"}
	}
	u := x.toUint64()
	if !x.neg {
		if u > 1<<63-1 {
			return 0, &bigerr.OverflowError{Func: "binary.Int.Int64", Type: "int64"}
		}
		return int64(u), nil
	}
	if u > 1<<63 {
		return 0, &bigerr.OverflowError{Func: "binary.Int.Int64", Type: "int64"}
	}
	return -int64(u - 1) - 1, nil
}

func unsignedBridge[T constraints.Unsigned](x *Int, typeName string) (T, error) {
	u, err := x.Uint64()
	if err != nil {
		return 0, err
	}
	if uint64(T(u)) != u {
		return 0, &bigerr.OverflowError{Func: "binary.Int", Type: typeName}
	}
	return T(u), nil
}

func signedBridge[T constraints.Signed](x *Int, typeName string) (T, error) {
	v, err := x.Int64()
	if err != nil {
		return 0, err
	}
	if int64(T(v)) != v {
		return 0, &bigerr.OverflowError{Func: "binary.Int", Type: typeName}
	}
	return T(v), nil
}

// Uint8 returns x as a uint8, failing with *bigerr.OverflowError if it does
// not fit.
func (x *Int) Uint8() (uint8, error) { return unsignedBridge[uint8](x, "uint8") }

// Uint16 returns x as a uint16, failing with *bigerr.OverflowError if it
// does not fit.
func (x *Int) Uint16() (uint16, error) { return unsignedBridge[uint16](x, "uint16") }

// Uint32 returns x as a uint32, failing with *bigerr.OverflowError if it
// does not fit.
func (x *Int) Uint32() (uint32, error) { return unsignedBridge[uint32](x, "uint32") }

// Int8 returns x as an int8, failing with *bigerr.OverflowError if it does
// not fit.
func (x *Int) Int8() (int8, error) { return signedBridge[int8](x, "int8") }

// Int16 returns x as an int16, failing with *bigerr.OverflowError if it does
// not fit.
func (x *Int) Int16() (int16, error) { return signedBridge[int16](x, "int16") }

// Int32 returns x as an int32, failing with *bigerr.OverflowError if it does
// not fit.
func (x *Int) Int32() (int32, error) { return signedBridge[int32](x, "int32") }

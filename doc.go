/*
Package bignum implements arbitrary-precision signed integer arithmetic in
two interchangeable representations.

Binary integers (package binary) store the magnitude as a little-endian
sequence of fixed-width words in base 2^8, the same layout a CPU uses for
multi-word arithmetic: parsing, comparison, add/subtract with carry or
borrow, shift-and-add multiplication and restoring long division are all
performed directly on the word sequence.

Factorial integers (package factorial) store the magnitude as a sequence of
bit-packed mixed-radix coefficients, N = sum(d_i * i!), with each
coefficient d_i bounded by i and bit-packed at a variable width. Addition
and subtraction are mixed-radix digit operations; multiplication and
division fall back to decimal-string arithmetic, since the factorial base
has no simple digit-wise algorithm for either.

Both representations satisfy the same bigops.Magnitude interface and share
the generic arithmetic dispatch in package bigops (comparison, sign-aware
add/subtract, multiply, truncated division, abs, pow, integer square root),
so the two are interchangeable wherever that interface is accepted.

The aliases in this package, Binary and Factorial, are thin re-exports for
callers that only need one representation and would rather not import the
subpackage directly:

	x, err := bignum.NewBinary("123456789012345678901234567890")
	y, err := bignum.NewFactorial("987654321")

Both implement fmt.Stringer, encoding.TextMarshaler and
encoding.TextUnmarshaler, and convert to and from the native signed and
unsigned integer types via explicit methods (Int64, Uint32, and so on) that
fail with *bigerr.OverflowError on truncation.
*/
package bignum

import (
	"github.com/nkuznetsov/bignum/binary"
	"github.com/nkuznetsov/bignum/factorial"
)

// Binary is an arbitrary-precision signed integer in binary (base 2^8)
// representation. See package binary for the full method set.
type Binary = binary.Int

// Factorial is an arbitrary-precision signed integer in factorial-base
// representation. See package factorial for the full method set.
type Factorial = factorial.Int

// NewBinary parses the signed decimal string s into a Binary. It fails with
// *bigerr.ParseError if s is not a valid signed decimal integer.
func NewBinary(s string) (*Binary, error) { return binary.New(s) }

// NewFactorial parses the signed decimal string s into a Factorial. It
// fails with *bigerr.ParseError if s is not a valid signed decimal integer.
func NewFactorial(s string) (*Factorial, error) { return factorial.New(s) }

// BinaryFromInt64 returns a new Binary with the value of v.
func BinaryFromInt64(v int64) *Binary { return binary.NewInt64(v) }

// FactorialFromInt64 returns a new Factorial with the value of v.
func FactorialFromInt64(v int64) *Factorial { return factorial.NewInt64(v) }

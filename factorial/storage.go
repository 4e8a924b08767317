// Package factorial implements the factorial-base representation of an
// arbitrary-precision signed integer: N = sum(d_i * i!) for i >= 0, with
// each coefficient d_i bit-packed at a variable width (0 <= d_i <= i).
// Coefficients are stored bit-addressably in a bitset.BitSet rather than a
// word slice, since consecutive coefficients do not fall on byte boundaries.
package factorial

import "github.com/bits-and-blooms/bitset"

// Int is an arbitrary-precision signed integer in factorial-base form. The
// zero value is not a valid Int; use New, NewInt64 or NewUint64.
type Int struct {
	bits *bitset.BitSet
	neg  bool
	// aux tracks the highest coefficient index written by put (the C++
	// original's Storage::value()); trim lowers it to the highest nonzero
	// coefficient, or 0 for zero. It doubles as the upper bound used by
	// extract, is_zero and comparison instead of scanning up to MaxIndex.
	aux uint64
}

func zero() *Int {
	return &Int{bits: bitset.New(0)}
}

// Sign reports whether x is negative.
func (x *Int) Sign() bool { return x.neg }

// SetSign sets the sign of x in place.
func (x *Int) SetSign(neg bool) { x.neg = neg }

// Zero returns a fresh Int set to 0.
func (x *Int) Zero() *Int { return zero() }

// One returns a fresh Int set to 1.
func (x *Int) One() *Int {
	r := zero()
	if err := r.put(1, 1); err != nil {
		panic(err)
	}
	return r
}

// Copy returns an independent deep copy of x.
func (x *Int) Copy() *Int {
	return &Int{bits: x.bits.Clone(), neg: x.neg, aux: x.aux}
}

// IsZero reports whether x is zero. Bounded by aux rather than MaxIndex, per
// the tracked highest-populated-index invariant maintained by put and trim.
func (x *Int) IsZero() bool {
	for idx := uint64(0); idx <= x.aux; idx++ {
		v, ok := x.extract(idx)
		if !ok {
			break
		}
		if v != 0 {
			return false
		}
	}
	return true
}

func (x *Int) validate() {
	if !debug {
		panic("validate called but debug is not set")
	}
	if x.IsZero() && x.neg {
		panic("factorial: negative zero")
	}
	if v, ok := x.extract(0); ok && v != 0 {
		panic("factorial: nonzero coefficient at index 0")
	}
}

// debug gates internal invariant checks, following the same convention as
// the binary package.
const debug = false

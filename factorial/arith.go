package factorial

import (
	"strconv"

	"github.com/bits-and-blooms/bitset"

	"github.com/nkuznetsov/bignum/decstr"
)

func maxUint64(a, b uint64) uint64 {
	if b > a {
		return b
	}
	return a
}

// CmpMag compares |x| to |y|: -1, 0 or 1. Implements bigops.Magnitude.
func (x *Int) CmpMag(y *Int) int {
	top := maxUint64(x.aux, y.aux)
	for i := top + 1; i > 0; i-- {
		idx := i - 1
		a, _ := x.extract(idx)
		b, _ := y.extract(idx)
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
	}
	return 0
}

// AddMag returns |x| + |y|, mixed-radix with base(i) = i+1 at position i.
// Implements bigops.Magnitude.
func (x *Int) AddMag(y *Int) *Int {
	result := zero()
	top := maxUint64(x.aux, y.aux)
	var carry uint64
	for idx := uint64(0); idx <= top || carry != 0; idx++ {
		a, _ := x.extract(idx)
		b, _ := y.extract(idx)
		base := idx + 1
		sum := a + b + carry
		carry = 0
		if sum >= base {
			carry = 1
			sum -= base
		}
		if err := result.put(idx, sum); err != nil {
			panic(err)
		}
	}
	result.trim()
	return result
}

// SubMag returns |x| - |y|, assuming |x| >= |y| (guaranteed by the
// sign-dispatch logic in package bigops, which only calls SubMag after
// comparing magnitudes). Implements bigops.Magnitude.
func (x *Int) SubMag(y *Int) *Int {
	result := zero()
	top := maxUint64(x.aux, y.aux)
	var borrow int64
	for idx := uint64(0); idx <= top; idx++ {
		a, _ := x.extract(idx)
		b, _ := y.extract(idx)
		base := int64(idx + 1)
		diff := int64(a) - int64(b) - borrow
		if diff < 0 {
			diff += base
			borrow = 1
		} else {
			borrow = 0
		}
		if err := result.put(idx, uint64(diff)); err != nil {
			panic(err)
		}
	}
	if borrow != 0 {
		panic("factorial: SubMag called with |x| < |y|")
	}
	result.trim()
	return result
}

// magnitudeString renders the unsigned magnitude of x in decimal via
// sum(d_i * i!), accumulated with two running decimal strings, mirroring the
// reference to_string implementation.
func magnitudeString(x *Int) string {
	sum := "0"
	fact := "1" // 0!
	for idx := uint64(0); idx <= x.aux; idx++ {
		coeff, ok := x.extract(idx)
		if !ok {
			break
		}
		if coeff != 0 {
			term := decstr.Mul(fact, strconv.FormatUint(coeff, 10))
			sum = decstr.Add(sum, term)
		}
		fact = decstr.Mul(fact, strconv.FormatUint(idx+1, 10))
	}
	return sum
}

// magnitudeFromDecimal converts an unsigned, leading-zero-free decimal
// string into factorial coefficients by repeated division: d_i is the
// remainder of dividing by (i+1).
func magnitudeFromDecimal(s string) (*Int, error) {
	x := zero()
	if s == "0" {
		return x, nil
	}
	for idx := uint64(0); s != "0"; idx++ {
		q, r, err := decstr.DivBySmall(s, idx+1)
		if err != nil {
			return nil, err
		}
		s = q
		if err := x.put(idx, r); err != nil {
			return nil, err
		}
	}
	x.trim()
	return x, nil
}

// trim recomputes aux to the highest nonzero coefficient and compacts
// storage, mirroring trim_leading_zeros in the reference implementation.
func (x *Int) trim() {
	hi := uint64(0)
	found := false
	for idx := uint64(0); idx <= x.aux; idx++ {
		v, ok := x.extract(idx)
		if !ok {
			break
		}
		if v != 0 {
			hi = idx
			found = true
		}
	}
	if !found {
		x.bits = bitset.New(0)
		x.aux = 0
		x.neg = false
		return
	}
	x.aux = hi
	x.bits.Compact()
}

// MulMag returns |x| * |y| by converting both magnitudes to decimal and
// delegating to decstr, matching the reference implementation's fallback
// for multiplication (mixed-radix multiplication has no simple digit-wise
// form). Implements bigops.Magnitude.
func (x *Int) MulMag(y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return zero()
	}
	product := decstr.Mul(magnitudeString(x), magnitudeString(y))
	r, err := magnitudeFromDecimal(product)
	if err != nil {
		panic(err)
	}
	return r
}

// QuoRemMag returns |x|/|y| and |x|%|y| by converting both magnitudes to
// decimal and delegating to decstr, matching the reference implementation's
// fallback for division. Implements bigops.Magnitude.
func (x *Int) QuoRemMag(y *Int) (quo, rem *Int, err error) {
	if x.IsZero() {
		return zero(), zero(), nil
	}
	q, r, err := decstr.Div(magnitudeString(x), magnitudeString(y))
	if err != nil {
		return nil, nil, err
	}
	quo, err = magnitudeFromDecimal(q)
	if err != nil {
		return nil, nil, err
	}
	rem, err = magnitudeFromDecimal(r)
	if err != nil {
		return nil, nil, err
	}
	return quo, rem, nil
}

package factorial

import "github.com/nkuznetsov/bignum/bigerr"

// MaxIndex is the largest coefficient index accepted by put, mirroring the
// reference implementation's FactorAccess::MAXINDEX.
const MaxIndex = uint64(1)<<63 - 1

// countBits returns the number of bits needed to represent v (0 for v==0).
func countBits(v uint64) uint64 {
	var w uint64
	for v != 0 {
		w++
		v >>= 1
	}
	return w
}

func log2Floor(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	return countBits(v) - 1
}

// totalBitsUpTo returns the bit offset at which coefficient index's slot
// begins, i.e. the sum of countBits(0..index-1). Indices 0 and 1 both begin
// at offset 0, since countBits(0) == 0 (coefficient 0 is always zero and
// needs no storage).
func totalBitsUpTo(index uint64) uint64 {
	if index == 0 || index == 1 {
		return 0
	}
	n := index - 1
	m := log2Floor(n)
	pow2 := uint64(1) << (m + 1)
	return n + m*n - (pow2 - m - 2)
}

// extract reads coefficient index. ok is false only when index exceeds
// x.aux (the highest index written by put, lowered by trim to the highest
// nonzero coefficient); a present coefficient that happens to be zero still
// reports ok == true.
func (x *Int) extract(index uint64) (value uint64, ok bool) {
	if index > x.aux {
		return 0, false
	}
	sizewd := countBits(index)
	if sizewd == 0 {
		return 0, true
	}
	pos := totalBitsUpTo(index)
	var result uint64
	for i := uint64(0); i < sizewd; i++ {
		if x.bits.Test(uint(pos + i)) {
			result |= 1 << i
		}
	}
	return result, true
}

// put writes value as coefficient index, growing storage and advancing aux
// as needed. It fails with *bigerr.OutOfRangeError if index exceeds
// MaxIndex, or *bigerr.InvalidCoefficientError if value is not below the base
// at this position (value must be <= index).
func (x *Int) put(index, value uint64) error {
	if index > MaxIndex {
		return &bigerr.OutOfRangeError{Func: "factorial.Int", Index: index}
	}
	if value > index {
		return &bigerr.InvalidCoefficientError{Func: "factorial.Int", Index: index, Value: value}
	}
	sizewd := countBits(index)
	if sizewd == 0 {
		return nil
	}
	if index > x.aux {
		x.aux = index
	}
	pos := totalBitsUpTo(index)
	for i := uint64(0); i < sizewd; i++ {
		bitIdx := uint(pos + i)
		if value&(1<<i) != 0 {
			x.bits.Set(bitIdx)
		} else {
			x.bits.Clear(bitIdx)
		}
	}
	return nil
}

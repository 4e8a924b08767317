// Package word implements overflow-aware addition and subtraction on fixed
// width unsigned integers, generic over any unsigned width so the binary
// kernel (and any future word width) shares one implementation.
package word

import "golang.org/x/exp/constraints"

// AddWithCarry computes a + b + carry modulo 2^bits(T), returning the sum
// and a carry-out of 1 iff the natural sum overflows T's width.
func AddWithCarry[T constraints.Unsigned](a, b, carry T) (sum, carryOut T) {
	sum = a + b + carry
	if sum < a || sum < b || (carry != 0 && sum == a) {
		carryOut = 1
	}
	return sum, carryOut
}

// SubWithBorrow computes a - b - borrow modulo 2^bits(T), returning the
// difference and a borrow-out of 1 iff a < b+borrow as naturals. The
// comparison is written as (a < b) || (a == b && borrow != 0) rather than
// a < b+borrow, since b+borrow can itself overflow T when b is already the
// type's maximum value.
func SubWithBorrow[T constraints.Unsigned](a, b, borrow T) (diff, borrowOut T) {
	diff = a - b - borrow
	if a < b || (a == b && borrow != 0) {
		borrowOut = 1
	}
	return diff, borrowOut
}

package binary

import wordpkg "github.com/nkuznetsov/bignum/word"

// CmpMag compares |x| to |y|: -1, 0 or 1. Implements bigops.Magnitude.
func (x *Int) CmpMag(y *Int) int {
	n := len(x.words)
	if len(y.words) > n {
		n = len(y.words)
	}
	for i := n - 1; i >= 0; i-- {
		xw, yw := x.wordAt(i), y.wordAt(i)
		if xw < yw {
			return -1
		}
		if xw > yw {
			return 1
		}
	}
	return 0
}

// AddMag returns |x| + |y|. Implements bigops.Magnitude.
func (x *Int) AddMag(y *Int) *Int {
	n := len(x.words)
	if len(y.words) > n {
		n = len(y.words)
	}
	out := make([]word, n)
	var carry word
	for i := 0; i < n; i++ {
		out[i], carry = wordpkg.AddWithCarry(x.wordAt(i), y.wordAt(i), carry)
	}
	if carry != 0 {
		out = append(out, carry)
	}
	r := &Int{words: out}
	r.trim()
	return r
}

// SubMag returns |x| - |y|, assuming |x| >= |y|. Implements bigops.Magnitude.
func (x *Int) SubMag(y *Int) *Int {
	n := len(x.words)
	if len(y.words) > n {
		n = len(y.words)
	}
	out := make([]word, n)
	var borrow word
	for i := 0; i < n; i++ {
		out[i], borrow = wordpkg.SubWithBorrow(x.wordAt(i), y.wordAt(i), borrow)
	}
	r := &Int{words: out}
	r.trim()
	return r
}

// bitLen returns the number of significant bits in the magnitude (0 for
// zero).
func (x *Int) bitLen() int {
	for i := len(x.words) - 1; i >= 0; i-- {
		if x.words[i] == 0 {
			continue
		}
		w := x.words[i]
		bits := 0
		for w != 0 {
			bits++
			w >>= 1
		}
		return i*wordBits + bits
	}
	return 0
}

// bit returns bit i of the magnitude (0 or 1).
func (x *Int) bit(i int) word {
	wi, bi := i/wordBits, uint(i%wordBits)
	return (x.wordAt(wi) >> bi) & 1
}

// shiftLeft returns the magnitude of x shifted left by n bits.
func (x *Int) shiftLeft(n int) *Int {
	if x.IsZero() || n == 0 {
		return x.Copy()
	}
	wordShift, bitShift := n/wordBits, uint(n%wordBits)
	out := make([]word, len(x.words)+wordShift)
	copy(out[wordShift:], x.words)
	if bitShift != 0 {
		var carry word
		for i := wordShift; i < len(out); i++ {
			cur := out[i]
			out[i] = (cur << bitShift) | carry
			carry = cur >> (wordBits - bitShift)
		}
		if carry != 0 {
			out = append(out, carry)
		}
	}
	r := &Int{words: out}
	r.trim()
	return r
}

// MulMag returns |x| * |y| via shift-and-add on the set bits of y.
// Implements bigops.Magnitude.
func (x *Int) MulMag(y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return zero()
	}
	result := zero()
	for wi, w := range y.words {
		for bi := 0; bi < wordBits; bi++ {
			if (w>>uint(bi))&1 == 0 {
				continue
			}
			pos := wi*wordBits + bi
			result = result.AddMag(x.shiftLeft(pos))
		}
	}
	result.trim()
	return result
}

// QuoRemMag returns |x|/|y| and |x|%|y| via restoring binary long division.
// Implements bigops.Magnitude.
func (x *Int) QuoRemMag(y *Int) (quo, rem *Int, err error) {
	if x.IsZero() {
		return zero(), zero(), nil
	}
	top := x.bitLen()
	quoWords := make([]word, (top+wordBits-1)/wordBits)
	if len(quoWords) == 0 {
		quoWords = []word{0}
	}
	r := zero()
	for i := top - 1; i >= 0; i-- {
		r = r.shiftLeft(1)
		if x.bit(i) != 0 {
			r = r.AddMag(&Int{words: []word{1}})
		}
		if r.CmpMag(y) >= 0 {
			r = r.SubMag(y)
			wi, bi := i/wordBits, uint(i%wordBits)
			if wi >= len(quoWords) {
				grown := make([]word, wi+1)
				copy(grown, quoWords)
				quoWords = grown
			}
			quoWords[wi] |= 1 << bi
		}
	}
	quo = &Int{words: quoWords}
	quo.trim()
	r.trim()
	return quo, r, nil
}

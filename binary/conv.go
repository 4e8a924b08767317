package binary

import (
	"strconv"
	"strings"

	"github.com/nkuznetsov/bignum/decstr"
)

// parseMagnitude converts an unsigned, leading-zero-free decimal string into
// a little-endian []word by repeated division by 2: each remainder becomes
// the next low bit of the current word.
func parseMagnitude(s string) []word {
	if s == "0" {
		return []word{0}
	}
	var words []word
	var w word
	bit := 0
	for s != "0" {
		q, r, _ := decstr.DivBySmall(s, 2)
		s = q
		w |= word(r) << uint(bit)
		bit++
		if bit == wordBits {
			words = append(words, w)
			w = 0
			bit = 0
		}
	}
	if bit != 0 {
		words = append(words, w)
	}
	if len(words) == 0 {
		words = []word{0}
	}
	return words
}

// maxWordsInUint64 is the number of W=8 words that fit in a uint64.
const maxWordsInUint64 = 64 / wordBits

// toUint64 packs the low maxWordsInUint64 words into a uint64. The caller
// must have already established that the magnitude fits.
func (x *Int) toUint64() uint64 {
	var v uint64
	shift := uint(0)
	for i := 0; i < len(x.words) && i < maxWordsInUint64; i++ {
		v |= uint64(x.words[i]) << shift
		shift += wordBits
	}
	return v
}

// formatDecimal renders x in decimal, prefixing '-' for a nonzero negative
// value. Magnitudes that fit in 64 bits are formatted directly; larger
// magnitudes are converted by iterating source bits high to low, doubling a
// little-endian base-10^9 chunk vector and adding the bit each step.
func formatDecimal(x *Int) string {
	if x.IsZero() {
		return "0"
	}
	if len(x.words) <= maxWordsInUint64 {
		s := strconv.FormatUint(x.toUint64(), 10)
		if x.neg {
			return "-" + s
		}
		return s
	}

	const base = 1_000_000_000
	chunks := []uint32{0}
	mulBy2 := func() {
		var carry uint64
		for i, d := range chunks {
			v := uint64(d)*2 + carry
			chunks[i] = uint32(v % base)
			carry = v / base
		}
		if carry != 0 {
			chunks = append(chunks, uint32(carry))
		}
	}
	addBit := func(bit word) {
		if bit == 0 {
			return
		}
		carry := uint64(1)
		for i := range chunks {
			v := uint64(chunks[i]) + carry
			chunks[i] = uint32(v % base)
			carry = v / base
			if carry == 0 {
				break
			}
		}
		if carry != 0 {
			chunks = append(chunks, uint32(carry))
		}
	}

	for wi := len(x.words) - 1; wi >= 0; wi-- {
		for bi := wordBits - 1; bi >= 0; bi-- {
			mulBy2()
			addBit((x.words[wi] >> uint(bi)) & 1)
		}
	}

	var sb strings.Builder
	if x.neg {
		sb.WriteByte('-')
	}
	sb.WriteString(strconv.FormatUint(uint64(chunks[len(chunks)-1]), 10))
	for i := len(chunks) - 2; i >= 0; i-- {
		part := strconv.FormatUint(uint64(chunks[i]), 10)
		sb.WriteString(strings.Repeat("0", 9-len(part)))
		sb.WriteString(part)
	}
	return sb.String()
}

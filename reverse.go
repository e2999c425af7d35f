package bitvec

import "github.com/hupe1980/bitvec/internal/word"

// Reverse reverses the bit order of the view in place: afterwards bit i
// holds what bit Len()-1-i held before. Zero- and one-bit views are
// no-ops.
//
// Two cursors converge from both ends one word per step: the word read
// at the low cursor, bit-reversed, lands at the high cursor and vice
// versa. Both reads happen before either write, so the step is correct
// even when the two windows overlap in the middle. The final span
// shorter than a word is reversed with a partial-word reverse that
// leaves bits outside the span untouched.
func (v MutVec) Reverse() {
	i, j := 0, v.n
	for j-i >= word.Bits {
		lo := v.readWord(i)
		hi := v.readWord(j - word.Bits)
		v.writeBits(i, word.Reverse(hi), word.Bits)
		v.writeBits(j-word.Bits, word.Reverse(lo), word.Bits)
		i += word.Bits
		j -= word.Bits
	}
	if w := j - i; w > 0 {
		v.writeBits(i, word.ReverseLow(v.readWord(i), w), w)
	}
}

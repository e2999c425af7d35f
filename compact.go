package bitvec

import "github.com/hupe1980/bitvec/internal/word"

// Select compacts, in original relative order, every bit of the view
// whose corresponding mask bit is set into the front of the view, and
// returns the number k of such bits. Bits at positions [k, n) are left
// unspecified afterwards; callers should slice the result to length k.
//
// Only the common prefix n = min(mask.Len(), v.Len()) participates.
func (v MutVec) Select(mask Vec) int {
	return v.compact(mask, false)
}

// Exclude is Select with the mask logically complemented: it keeps the
// bits where mask is zero and returns their count.
func (v MutVec) Exclude(mask Vec) int {
	return v.compact(mask, true)
}

// compact streams the view one word at a time through the single-word
// compress primitive, writing each packed sub-word at the output cursor.
// The output cursor never passes the input cursor, so writing back into
// the same storage cannot clobber unread data.
func (v MutVec) compact(mask Vec, invert bool) int {
	n := mask.n
	if v.n < n {
		n = v.n
	}
	out := 0
	for i := 0; i < n; i += word.Bits {
		k := n - i
		if k > word.Bits {
			k = word.Bits
		}
		sel := mask.readWord(i)
		if invert {
			sel = ^sel
		}
		// Out-of-range selector bits must never select data.
		sel &= word.Mask(k)
		packed, c := word.Compress(v.readWord(i), sel)
		if c > 0 {
			v.writeBits(out, packed, c)
			out += c
		}
	}
	return out
}

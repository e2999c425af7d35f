package bitvec

import "github.com/hupe1980/bitvec/internal/word"

// WordOp combines one source word with one destination word. It must act
// bitwise-independently across positions (AND/OR/XOR/ANDNOT style, no
// carries), so that applying it word-at-a-time equals applying it
// bit-at-a-time.
type WordOp func(src, dst uint64) uint64

// Word operators for Zip.
func OpAnd(src, dst uint64) uint64    { return dst & src }
func OpOr(src, dst uint64) uint64     { return dst | src }
func OpXor(src, dst uint64) uint64    { return dst ^ src }
func OpAndNot(src, dst uint64) uint64 { return dst &^ src }

// Zip applies op elementwise between src and the view, writing results
// back into the view: dst[i] = op(src[i], dst[i]) for i in
// [0, min(src.Len(), dst.Len())).
//
// Destination bits beyond the common length are unspecified: the engine
// may touch them as a side effect of word-granular processing. Callers
// needing a strict result slice both operands to the common length
// first.
//
// The destination is processed from low word index to high, one word
// per step; when the operands' offsets differ modulo the word width,
// each step merges two adjacent source words into one
// destination-aligned word. Aliasing src and dst over the same storage
// is safe only when the destination's word index never trails the
// source's at the same step.
func (v MutVec) Zip(op WordOp, src Vec) {
	n := src.n
	if v.n < n {
		n = v.n
	}
	if n == 0 {
		return
	}
	i := 0

	// Head: advance the destination cursor to a word boundary.
	if h := v.off & (word.Bits - 1); h != 0 {
		k := word.Bits - h
		if k > n {
			k = n
		}
		v.writeBits(i, op(src.readWord(i), v.readWord(i)), k)
		i += k
	}

	// Body: whole destination words.
	if n-i >= word.Bits {
		wi := (v.off + i) >> word.Shift
		si := (src.off + i) >> word.Shift
		if sh := uint(src.off+i) & (word.Bits - 1); sh == 0 {
			// Co-aligned: both operands walk the word grid.
			for ; n-i >= word.Bits; i, wi, si = i+word.Bits, wi+1, si+1 {
				v.arr.Store(wi, op(src.arr.Load(si), v.arr.Load(wi)))
			}
		} else {
			// Misaligned: assemble each destination-aligned source
			// word from the low bits of one source word and the high
			// bits of the next.
			cur := src.arr.Load(si)
			for ; n-i >= word.Bits; i, wi = i+word.Bits, wi+1 {
				si++
				nxt := src.arr.Load(si)
				v.arr.Store(wi, op(cur>>sh|nxt<<(word.Bits-sh), v.arr.Load(wi)))
				cur = nxt
			}
		}
	}

	// Tail: masked partial word.
	if i < n {
		v.writeBits(i, op(src.readWord(i), v.readWord(i)), n-i)
	}
}

// And sets v = v AND src over the common prefix. See Zip for the tail
// contract.
func (v MutVec) And(src Vec) { v.Zip(OpAnd, src) }

// Or sets v = v OR src over the common prefix.
func (v MutVec) Or(src Vec) { v.Zip(OpOr, src) }

// Xor sets v = v XOR src over the common prefix.
func (v MutVec) Xor(src Vec) { v.Zip(OpXor, src) }

// AndNot clears the bits of v that are set in src, over the common
// prefix.
func (v MutVec) AndNot(src Vec) { v.Zip(OpAndNot, src) }

// Invert complements every bit of the view in place. The effect is
// confined to the view's own bit range.
func (v MutVec) Invert() {
	n := v.n
	if n == 0 {
		return
	}
	i := 0
	if h := v.off & (word.Bits - 1); h != 0 {
		k := word.Bits - h
		if k > n {
			k = n
		}
		v.writeBits(i, ^v.readWord(i), k)
		i += k
	}
	wi := (v.off + i) >> word.Shift
	for ; n-i >= word.Bits; i, wi = i+word.Bits, wi+1 {
		v.arr.Store(wi, ^v.arr.Load(wi))
	}
	if i < n {
		v.writeBits(i, ^v.readWord(i), n-i)
	}
}

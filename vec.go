package bitvec

import (
	"math/bits"
	"strings"

	"github.com/hupe1980/bitvec/internal/word"
)

// Vec is a read-only view of a bit range: an (offset, length) window
// into a shared word array. Multiple views may alias the same storage
// over overlapping or disjoint ranges; a Vec never mutates storage.
type Vec struct {
	arr Array
	off int // offset into arr, in bits
	n   int // length, in bits
}

// MutVec is a mutable view. It embeds Vec, so all read-only operations
// are available on it directly.
//
// Mutating operations confine their effect to the view's own bit range
// (except where a contract explicitly leaves tail bits unspecified).
// Whether concurrent mutation is safe depends on the backing Array
// variant; see Words and AtomicWords.
type MutVec struct {
	Vec
}

// New allocates fresh plain storage for n bits and returns a mutable
// view covering all of it. Bits start zeroed; a negative n is treated
// as zero, preserving the length >= 0 view invariant.
func New(n int) MutVec {
	if n < 0 {
		n = 0
	}
	return MutVec{Vec{arr: wordsFor(n), off: 0, n: n}}
}

// NewAtomic is New backed by AtomicWords.
func NewAtomic(n int) MutVec {
	if n < 0 {
		n = 0
	}
	return MutVec{Vec{arr: atomicWordsFor(n), off: 0, n: n}}
}

// NewVec creates a read-only view of n bits starting at bit off of arr.
func NewVec(arr Array, off, n int) (Vec, error) {
	if off < 0 || n < 0 || off+n > word.BitCount(arr.Len()) {
		return Vec{}, ErrOutOfRange
	}
	return Vec{arr: arr, off: off, n: n}, nil
}

// NewMutVec creates a mutable view of n bits starting at bit off of arr.
func NewMutVec(arr Array, off, n int) (MutVec, error) {
	v, err := NewVec(arr, off, n)
	if err != nil {
		return MutVec{}, err
	}
	return MutVec{v}, nil
}

// Len returns the view's length in bits.
func (v Vec) Len() int { return v.n }

// Bit returns the bit at index i, or false if i is out of range.
func (v Vec) Bit(i int) bool {
	if i < 0 || i >= v.n {
		return false
	}
	a := v.off + i
	return v.arr.Load(a>>word.Shift)>>(uint(a)&(word.Bits-1))&1 != 0
}

// SetBit sets the bit at index i to b. Out-of-range indexes are ignored.
func (v MutVec) SetBit(i int, b bool) {
	if i < 0 || i >= v.n {
		return
	}
	a := v.off + i
	var w uint64
	if b {
		w = 1 << (uint(a) & (word.Bits - 1))
	}
	v.arr.MaskedStore(a>>word.Shift, w, 1<<(uint(a)&(word.Bits-1)))
}

// Slice returns the read-only sub-view [from, to).
func (v Vec) Slice(from, to int) (Vec, error) {
	if from < 0 || to < from || to > v.n {
		return Vec{}, ErrOutOfRange
	}
	return Vec{arr: v.arr, off: v.off + from, n: to - from}, nil
}

// Slice returns the mutable sub-view [from, to).
func (v MutVec) Slice(from, to int) (MutVec, error) {
	s, err := v.Vec.Slice(from, to)
	if err != nil {
		return MutVec{}, err
	}
	return MutVec{s}, nil
}

// RO returns the view downgraded to read-only.
func (v MutVec) RO() Vec { return v.Vec }

// OnesCount returns the number of set bits in the view.
func (v Vec) OnesCount() int {
	c := 0
	for i := 0; i < v.n; i += word.Bits {
		c += bits.OnesCount64(v.readWord(i))
	}
	return c
}

// Equal reports whether both views hold the same bit sequence. Physical
// offsets are irrelevant; only logical content and length matter.
func (v Vec) Equal(o Vec) bool {
	if v.n != o.n {
		return false
	}
	for i := 0; i < v.n; i += word.Bits {
		if v.readWord(i) != o.readWord(i) {
			return false
		}
	}
	return true
}

// stringCap bounds String output for very long views.
const stringCap = 256

// String renders the view LSB-first as "0101...", truncated past
// stringCap bits. Intended for debugging and test failure output.
func (v Vec) String() string {
	var b strings.Builder
	n := v.n
	if n > stringCap {
		n = stringCap
	}
	b.Grow(n + 1)
	for i := 0; i < n; i++ {
		if v.Bit(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	if v.n > stringCap {
		b.WriteByte('+')
	}
	return b.String()
}

// Span is a word-granular window into an Array: off and n count whole
// words. It is the word-side counterpart of a bit view.
type Span struct {
	Arr Array
	Off int
	N   int
}

// Bits reinterprets the word window as a mutable bit view. This cast is
// zero-copy and always succeeds.
func (s Span) Bits() MutVec {
	return MutVec{Vec{arr: s.Arr, off: word.BitCount(s.Off), n: word.BitCount(s.N)}}
}

// AsWords reinterprets the view as a word-granular window. The cast is
// zero-copy and succeeds iff both offset and length are word-aligned;
// otherwise ok is false and the caller should fall back to CloneWords.
func (v Vec) AsWords() (s Span, ok bool) {
	if !word.Aligned(v.off) || !word.Aligned(v.n) {
		return Span{}, false
	}
	return Span{Arr: v.arr, Off: v.off >> word.Shift, N: v.n >> word.Shift}, true
}

// CloneWords copies the view's bits into freshly allocated words,
// independent of the source storage. Any padding bits beyond the view's
// length in the final word are zero.
func (v Vec) CloneWords() []uint64 {
	out := make([]uint64, word.Count(v.n))
	for i := 0; i < v.n; i += word.Bits {
		out[i>>word.Shift] = v.readWord(i)
	}
	return out
}

// Clone copies the view into fresh plain storage and returns a mutable
// view over the copy.
func (v Vec) Clone() MutVec {
	return MutVec{Vec{arr: Words(v.CloneWords()), off: 0, n: v.n}}
}

// readWord returns 64 bits of the view starting at logical bit i,
// zero-padded past the view's end. This is the cross-word read
// primitive: a misaligned read shifts and merges two adjacent physical
// words.
func (v Vec) readWord(i int) uint64 {
	if i < 0 || i >= v.n {
		return 0
	}
	a := v.off + i
	wi, sh := a>>word.Shift, uint(a)&(word.Bits-1)
	w := v.arr.Load(wi) >> sh
	rem := v.n - i
	if rem >= word.Bits {
		if sh != 0 {
			w |= v.arr.Load(wi+1) << (word.Bits - sh)
		}
		return w
	}
	if sh != 0 && rem > word.Bits-int(sh) {
		w |= v.arr.Load(wi+1) << (word.Bits - sh)
	}
	return w & word.Mask(rem)
}

// writeBits writes the low k bits of w at logical bit i, merging at word
// boundaries so no bit outside [i, i+k) is touched. The caller
// guarantees 0 < k <= 64 and i+k <= v.n. On AtomicWords each affected
// word is updated by an atomic read-modify-write.
func (v MutVec) writeBits(i int, w uint64, k int) {
	a := v.off + i
	wi, sh := a>>word.Shift, uint(a)&(word.Bits-1)
	m := word.Mask(k)
	v.arr.MaskedStore(wi, w<<sh, m<<sh)
	if int(sh)+k > word.Bits {
		v.arr.MaskedStore(wi+1, w>>(word.Bits-sh), m>>(word.Bits-sh))
	}
}

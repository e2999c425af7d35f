package bitvec

import (
	"math"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bitvec/internal/word"
)

// Interchange with the ecosystem bitmap containers. These are in-memory
// conversions between container types; positions are the view's logical
// bit indexes, so physical offsets never leak out.

// ToRoaring returns a roaring bitmap holding the indexes of the view's
// set bits. Fails with ErrUniverseOverflow when the view is longer than
// the 32-bit universe roaring addresses.
func (v Vec) ToRoaring() (*roaring.Bitmap, error) {
	if uint64(v.n) > math.MaxUint32 {
		return nil, ErrUniverseOverflow
	}
	rb := roaring.New()
	for i := 0; i < v.n; i += word.Bits {
		for w := v.readWord(i); w != 0; w &= w - 1 {
			rb.Add(uint32(i + bits.TrailingZeros64(w)))
		}
	}
	return rb, nil
}

// FromRoaring materializes a roaring bitmap into a fresh n-bit mutable
// view. Members of rb at or beyond n yield ErrOutOfRange.
func FromRoaring(rb *roaring.Bitmap, n int) (MutVec, error) {
	v := New(n)
	it := rb.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if i >= n {
			return MutVec{}, ErrOutOfRange
		}
		v.SetBit(i, true)
	}
	return v, nil
}

// ToBitSet returns a bits-and-blooms bitset with the same length and
// set positions as the view.
func (v Vec) ToBitSet() *bitset.BitSet {
	bs := bitset.New(uint(v.n))
	for i := 0; i < v.n; i += word.Bits {
		for w := v.readWord(i); w != 0; w &= w - 1 {
			bs.Set(uint(i + bits.TrailingZeros64(w)))
		}
	}
	return bs
}

// FromBitSet materializes a bits-and-blooms bitset into a fresh n-bit
// mutable view. Members at or beyond n yield ErrOutOfRange.
func FromBitSet(bs *bitset.BitSet, n int) (MutVec, error) {
	v := New(n)
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		if int(i) >= n {
			return MutVec{}, ErrOutOfRange
		}
		v.SetBit(int(i), true)
	}
	return v, nil
}

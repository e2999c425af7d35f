// Package word provides single-word bit primitives for the view layer.
//
// Everything here operates on one uint64 at a time. The view layer in the
// root package composes these into operations over arbitrary bit ranges.
package word

import "math/bits"

const (
	// Bits is the number of bits per storage word.
	Bits = 64
	// Shift converts a bit index to a word index (i >> Shift).
	Shift = 6
)

// Mask returns a word with the low k bits set. k must be in [0, 64];
// Mask(64) is all ones.
func Mask(k int) uint64 {
	return uint64(1)<<uint(k) - 1
}

// Aligned reports whether the bit index i falls on a word boundary.
func Aligned(i int) bool {
	return i&(Bits-1) == 0
}

// Count returns the number of words needed to hold n bits (ceiling divide).
func Count(n int) int {
	return (n + Bits - 1) >> Shift
}

// BitCount returns the number of bits held by n words.
func BitCount(n int) int {
	return n << Shift
}

// Reverse returns w with the order of all 64 bits reversed.
func Reverse(w uint64) uint64 {
	return bits.Reverse64(w)
}

// Meld combines two words at a boundary: the low k bits come from lo, the
// remaining high bits from hi.
func Meld(lo, hi uint64, k int) uint64 {
	m := Mask(k)
	return lo&m | hi&^m
}

// ReverseLow reverses the order of the low k bits of w, leaving the high
// bits as supplied. ReverseLow(w, 64) is a full reversal; ReverseLow(w, 0)
// returns w unchanged.
func ReverseLow(w uint64, k int) uint64 {
	return Meld(bits.Reverse64(w)>>uint(Bits-k), w, k)
}

// Compress packs the bits of data selected by sel into the low-order
// positions of the result, preserving their relative order, and returns
// the packed word together with the population count of sel. This is a
// portable parallel-bit-extract (PEXT), linear in the selector's
// population count.
func Compress(data, sel uint64) (uint64, int) {
	var out uint64
	n := 0
	for s := sel; s != 0; s &= s - 1 {
		if data&s&-s != 0 {
			out |= 1 << uint(n)
		}
		n++
	}
	return out, n
}

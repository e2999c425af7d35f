package bitvec

import (
	"sync/atomic"

	"github.com/hupe1980/bitvec/internal/word"
)

// Array is the word-level storage contract shared by both concurrency
// variants. A view never touches storage except through these four
// methods, so the combine, compaction and reversal engines are written
// once and inherit the variant's safety properties.
//
// MaskedStore replaces exactly the bits of word i selected by mask with
// the corresponding bits of w; bits outside mask are preserved.
type Array interface {
	Len() int
	Load(i int) uint64
	Store(i int, w uint64)
	MaskedStore(i int, w, mask uint64)
}

// Words is the plain variant: a flat []uint64 with non-atomic access.
//
// All operations assume exclusive access to every word they touch.
// Two goroutines whose bit ranges are disjoint but share a word still
// race, because MaskedStore is a plain read-modify-write. Use
// AtomicWords when that discipline cannot be guaranteed externally.
type Words []uint64

// NewWords allocates a zeroed plain word array holding n words.
func NewWords(n int) (Words, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	return make(Words, n), nil
}

// Len returns the number of words.
func (a Words) Len() int { return len(a) }

// Load returns word i.
func (a Words) Load(i int) uint64 { return a[i] }

// Store sets word i.
func (a Words) Store(i int, w uint64) { a[i] = w }

// MaskedStore merges the masked bits of w into word i.
func (a Words) MaskedStore(i int, w, mask uint64) {
	a[i] = a[i]&^mask | w&mask
}

// AtomicWords is the thread-safe variant. Whole-word access is atomic
// and sub-word writes are compare-and-swap loops, so concurrent
// mutations of disjoint bit ranges that happen to share a word never
// clobber each other. Expect up to ~20% lower throughput than Words.
type AtomicWords struct {
	words []atomic.Uint64
}

// NewAtomicWords allocates a zeroed atomic word array holding n words.
func NewAtomicWords(n int) (*AtomicWords, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	return &AtomicWords{words: make([]atomic.Uint64, n)}, nil
}

// Len returns the number of words.
func (a *AtomicWords) Len() int { return len(a.words) }

// Load atomically returns word i.
func (a *AtomicWords) Load(i int) uint64 { return a.words[i].Load() }

// Store atomically sets word i. The caller must own all 64 bits.
func (a *AtomicWords) Store(i int, w uint64) { a.words[i].Store(w) }

// MaskedStore installs the masked bits of w into word i via a CAS loop.
// Bits outside mask always carry the latest concurrently-written value,
// so adjacent writers within one word cannot miss each other's updates.
func (a *AtomicWords) MaskedStore(i int, w, mask uint64) {
	for {
		old := a.words[i].Load()
		if a.words[i].CompareAndSwap(old, old&^mask|w&mask) {
			return
		}
	}
}

// Snapshot copies the current word values into a fresh []uint64.
func (a *AtomicWords) Snapshot() []uint64 {
	out := make([]uint64, len(a.words))
	for i := range a.words {
		out[i] = a.words[i].Load()
	}
	return out
}

var (
	_ Array = Words(nil)
	_ Array = (*AtomicWords)(nil)
)

// wordsFor allocates a plain array sized for n bits. n is non-negative.
func wordsFor(n int) Words {
	return make(Words, word.Count(n))
}

// atomicWordsFor allocates an atomic array sized for n bits. n is
// non-negative.
func atomicWordsFor(n int) *AtomicWords {
	return &AtomicWords{words: make([]atomic.Uint64, word.Count(n))}
}

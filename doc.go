// Package bitvec provides a word-packed bit vector with bulk in-place
// mutation at machine-word granularity.
//
// Architecture:
//   - Array substrate: flat uint64 storage in two variants, Words
//     (plain access, external synchronization) and AtomicWords
//     (CAS-based sub-word writes, safe for disjoint-range concurrency)
//   - View layer: Vec (read-only) and MutVec (mutable), each an
//     (offset, length, storage) triple; views alias storage freely and
//     cast to and from word granularity without copying when aligned
//   - Engines: cross-word combine (Zip with AND/OR/XOR/ANDNOT), in-place
//     complement, order-preserving compaction by selector mask, and
//     two-pointer in-place bit reversal
//
// All engines batch work one word at a time and handle arbitrary,
// mutually misaligned bit offsets by shifting and merging partial words
// at the boundaries. Operations are linear in bit length and never
// resize storage.
//
// Where two operands have different lengths, engines process the common
// prefix and leave destination bits beyond it unspecified; callers that
// need a strict result slice to the common length first. This is the
// documented price of word-at-a-time throughput.
package bitvec

// Package bitset provides a fast, dynamically sized bitset (bit vector)
// representing a set of non-negative integers as a slice of 64-bit words.
//
// Architecture:
//   - Flat storage: bit x lives in word x/64 at offset x%64, so membership
//     and set algebra run as word-wide bitwise operations
//   - Self-growing: capacity doubles on growth, mutation past the current
//     end is amortized O(1)
//   - Zero-extension: when two sets of different stored length are
//     combined, the shorter one is treated as padded with zero words
//
// The set algebra comes in three flavors: in-place methods (And, Or,
// AndNot, Xor) that mutate the receiver, allocating package functions
// (And, Or, AndNot, Xor) that build a fresh result, and fused
// combine-and-popcount cardinality methods (AndCardinality, ...) that
// compute the size of a result without materializing it.
//
// A BitSet is not safe for concurrent use. Readers and writers must be
// coordinated by the caller, or work on independent clones.
package bitset

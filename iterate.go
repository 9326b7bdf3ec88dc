package bitset

import (
	"iter"
	"math/bits"
)

// The scan loops below all use the same lowest-bit-isolation shape:
// TrailingZeros64 locates the lowest set bit of the working word, then
// w &= w-1 clears it. Work per word is O(popcount), not O(64), which is
// what keeps enumeration cheap on sparse sets.

// ToArray returns the members in ascending order.
func (b *BitSet) ToArray() []uint32 {
	out := make([]uint32, 0, b.Cardinality())
	for i, w := range b.words {
		base := uint32(i) * wordBits
		for w != 0 {
			out = append(out, base+uint32(bits.TrailingZeros64(w)))
			w &= w - 1
		}
	}
	return out
}

// ForEach calls fn on each member in ascending order. Traversal stops
// early when fn returns false.
func (b *BitSet) ForEach(fn func(x uint32) bool) {
	for i, w := range b.words {
		base := uint32(i) * wordBits
		for w != 0 {
			if !fn(base + uint32(bits.TrailingZeros64(w))) {
				return
			}
			w &= w - 1
		}
	}
}

// All returns an iterator over the members in ascending order, for use
// with range-over-func loops:
//
//	for x := range b.All() {
//	    ...
//	}
func (b *BitSet) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for i, w := range b.words {
			base := uint32(i) * wordBits
			for w != 0 {
				if !yield(base + uint32(bits.TrailingZeros64(w))) {
					return
				}
				w &= w - 1
			}
		}
	}
}

// Iterator is a pull-style cursor over a BitSet's members in ascending
// order. The cursor is the current word index plus the not-yet-consumed
// bits of that word. It is exhausted after one pass; obtain a fresh
// Iterator to scan again.
//
// The iterator reads the set's buffer directly. Mutating the set while
// iterating invalidates the cursor.
type Iterator struct {
	words []uint64
	idx   int
	word  uint64
}

// Iterator returns a new pull iterator positioned before the first member.
func (b *BitSet) Iterator() *Iterator {
	it := &Iterator{words: b.words}
	if len(b.words) > 0 {
		it.word = b.words[0]
	}
	return it
}

// HasNext reports whether another member remains, advancing the cursor
// past exhausted words.
func (it *Iterator) HasNext() bool {
	for it.word == 0 {
		if it.idx+1 >= len(it.words) {
			return false
		}
		it.idx++
		it.word = it.words[it.idx]
	}
	return true
}

// Next returns the next member and consumes it. It must be preceded by a
// HasNext call that returned true.
func (it *Iterator) Next() uint32 {
	x := uint32(it.idx)*wordBits + uint32(bits.TrailingZeros64(it.word))
	it.word &= it.word - 1
	return x
}

// NextSet returns the smallest member at or after x, and false when no
// such member exists. Useful for resumable scans without an Iterator.
func (b *BitSet) NextSet(x uint32) (uint32, bool) {
	i := int(x >> wordShift)
	if i >= len(b.words) {
		return 0, false
	}
	// Mask out bits below x in the first word.
	w := b.words[i] &^ (1<<(x&wordMask) - 1)
	for {
		if w != 0 {
			return uint32(i)*wordBits + uint32(bits.TrailingZeros64(w)), true
		}
		i++
		if i >= len(b.words) {
			return 0, false
		}
		w = b.words[i]
	}
}

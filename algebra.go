package bitset

import "math/bits"

// The binary operations treat operands of different stored word-length
// consistently: the shorter operand is zero-extended. Union and symmetric
// difference absorb the longer tail, intersection truncates it to zero,
// difference preserves the left operand's tail untouched.

// And removes from b every member not in o (set intersection, b &= o).
// b never grows; words of b past o's length are cleared.
func (b *BitSet) And(o *BitSet) {
	n := min(len(b.words), len(o.words))
	for i := 0; i < n; i++ {
		b.words[i] &= o.words[i]
	}
	clear(b.words[n:])
}

// Or adds every member of o to b (set union, b |= o). b grows to cover
// o's words; o is only read.
func (b *BitSet) Or(o *BitSet) {
	n := min(len(b.words), len(o.words))
	for i := 0; i < n; i++ {
		b.words[i] |= o.words[i]
	}
	if len(o.words) > n {
		b.growWords(len(o.words))
		copy(b.words[n:len(o.words)], o.words[n:])
	}
}

// AndNot removes from b every member of o (set difference, b &^= o).
// b never grows; words of b past o's length are left unchanged.
func (b *BitSet) AndNot(o *BitSet) {
	n := min(len(b.words), len(o.words))
	for i := 0; i < n; i++ {
		b.words[i] &^= o.words[i]
	}
}

// AndNotInto computes b AND NOT o and stores the result in o, reusing o's
// buffer. It is the mutate-right counterpart of AndNot, for callers that
// want the difference without giving up b. b is only read.
func (b *BitSet) AndNotInto(o *BitSet) {
	n := min(len(b.words), len(o.words))
	for i := 0; i < n; i++ {
		o.words[i] = b.words[i] &^ o.words[i]
	}
	if len(b.words) > n {
		o.growWords(len(b.words))
		copy(o.words[n:len(b.words)], b.words[n:])
		return
	}
	// o is longer than b: those members are absent from the difference.
	clear(o.words[n:])
}

// Xor keeps the members present in exactly one of b and o (symmetric
// difference, b ^= o). b grows to cover o's words; o is only read.
func (b *BitSet) Xor(o *BitSet) {
	n := min(len(b.words), len(o.words))
	for i := 0; i < n; i++ {
		b.words[i] ^= o.words[i]
	}
	if len(o.words) > n {
		b.growWords(len(o.words))
		copy(b.words[n:len(o.words)], o.words[n:])
	}
}

// And returns a new BitSet holding the intersection of a and b. Neither
// operand is modified.
func And(a, b *BitSet) *BitSet {
	n := min(len(a.words), len(b.words))
	words := make([]uint64, n)
	for i := range words {
		words[i] = a.words[i] & b.words[i]
	}
	return &BitSet{words: words}
}

// Or returns a new BitSet holding the union of a and b. Neither operand
// is modified.
func Or(a, b *BitSet) *BitSet {
	long, short := a.words, b.words
	if len(short) > len(long) {
		long, short = short, long
	}
	words := make([]uint64, len(long))
	for i := range short {
		words[i] = long[i] | short[i]
	}
	copy(words[len(short):], long[len(short):])
	return &BitSet{words: words}
}

// AndNot returns a new BitSet holding the difference a minus b. Neither
// operand is modified.
func AndNot(a, b *BitSet) *BitSet {
	words := make([]uint64, len(a.words))
	n := min(len(a.words), len(b.words))
	for i := 0; i < n; i++ {
		words[i] = a.words[i] &^ b.words[i]
	}
	copy(words[n:], a.words[n:])
	return &BitSet{words: words}
}

// Xor returns a new BitSet holding the symmetric difference of a and b.
// Neither operand is modified.
func Xor(a, b *BitSet) *BitSet {
	long, short := a.words, b.words
	if len(short) > len(long) {
		long, short = short, long
	}
	words := make([]uint64, len(long))
	for i := range short {
		words[i] = long[i] ^ short[i]
	}
	copy(words[len(short):], long[len(short):])
	return &BitSet{words: words}
}

// AndCardinality returns the size of the intersection of b and o without
// materializing it. Each word pair is combined and popcounted in a single
// pass with no allocation.
func (b *BitSet) AndCardinality(o *BitSet) int {
	n := min(len(b.words), len(o.words))
	count := 0
	for i := 0; i < n; i++ {
		count += bits.OnesCount64(b.words[i] & o.words[i])
	}
	return count
}

// OrCardinality returns the size of the union of b and o without
// materializing it. The longer operand's tail passes through unchanged
// into the conceptual result, so it is popcounted as-is.
func (b *BitSet) OrCardinality(o *BitSet) int {
	n := min(len(b.words), len(o.words))
	count := 0
	for i := 0; i < n; i++ {
		count += bits.OnesCount64(b.words[i] | o.words[i])
	}
	for _, w := range b.words[n:] {
		count += bits.OnesCount64(w)
	}
	for _, w := range o.words[n:] {
		count += bits.OnesCount64(w)
	}
	return count
}

// AndNotCardinality returns the size of the difference b minus o without
// materializing it.
func (b *BitSet) AndNotCardinality(o *BitSet) int {
	n := min(len(b.words), len(o.words))
	count := 0
	for i := 0; i < n; i++ {
		count += bits.OnesCount64(b.words[i] &^ o.words[i])
	}
	for _, w := range b.words[n:] {
		count += bits.OnesCount64(w)
	}
	return count
}

// XorCardinality returns the size of the symmetric difference of b and o
// without materializing it.
func (b *BitSet) XorCardinality(o *BitSet) int {
	n := min(len(b.words), len(o.words))
	count := 0
	for i := 0; i < n; i++ {
		count += bits.OnesCount64(b.words[i] ^ o.words[i])
	}
	for _, w := range b.words[n:] {
		count += bits.OnesCount64(w)
	}
	for _, w := range o.words[n:] {
		count += bits.OnesCount64(w)
	}
	return count
}

// Intersects reports whether b and o share at least one member. It
// returns as soon as an overlapping word pair has a non-zero AND.
func (b *BitSet) Intersects(o *BitSet) bool {
	n := min(len(b.words), len(o.words))
	for i := 0; i < n; i++ {
		if b.words[i]&o.words[i] != 0 {
			return true
		}
	}
	return false
}

// Equals reports whether b and o have identical membership. Sets stored
// with different word-lengths compare equal when every non-overlapping
// tail word is zero.
func (b *BitSet) Equals(o *BitSet) bool {
	n := min(len(b.words), len(o.words))
	for i := 0; i < n; i++ {
		if b.words[i] != o.words[i] {
			return false
		}
	}
	for _, w := range b.words[n:] {
		if w != 0 {
			return false
		}
	}
	for _, w := range o.words[n:] {
		if w != 0 {
			return false
		}
	}
	return true
}

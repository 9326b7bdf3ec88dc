package bitset

import (
	"math/bits"
	"strconv"
	"strings"
)

const (
	// wordBits is the number of bits per storage word.
	wordBits = 64

	// wordShift and wordMask convert a bit position into a word index
	// (x >> wordShift) and an intra-word offset (x & wordMask).
	wordShift = 6
	wordMask  = wordBits - 1
)

// BitSet is a dynamically sized set of uint32 values backed by a slice of
// 64-bit words.
//
// The slice length is the logical word count; the slice capacity may be
// larger to amortize growth. Words past the logical length are absent
// members and are never inspected. Every word strictly below the logical
// length holds live state, so there is no masking on read.
//
// The zero value is an empty set ready for use.
type BitSet struct {
	words []uint64
}

// New creates a new empty BitSet.
func New() *BitSet {
	return &BitSet{}
}

// Of creates a BitSet containing the given values.
func Of(values ...uint32) *BitSet {
	b := &BitSet{}
	for _, x := range values {
		b.Add(x)
	}
	return b
}

// FromWords creates a BitSet whose word sequence is exactly words: bit x
// of the set is bit x%64 of element x/64. The slice is copied, the caller
// keeps ownership of its argument.
func FromWords(words []uint64) *BitSet {
	w := make([]uint64, len(words))
	copy(w, words)
	return &BitSet{words: w}
}

// growWords ensures the logical word count is at least n, zero-filling any
// new words. Capacity doubles over the required count so repeated
// extending mutations are amortized O(1).
func (b *BitSet) growWords(n int) {
	if n <= len(b.words) {
		return
	}
	if n <= cap(b.words) {
		old := len(b.words)
		b.words = b.words[:n]
		clear(b.words[old:])
		return
	}
	words := make([]uint64, n, max(n, 2*cap(b.words)))
	copy(words, b.words)
	b.words = words
}

// grow ensures bit x is addressable.
func (b *BitSet) grow(x uint32) {
	b.growWords(int(x>>wordShift) + 1)
}

// Grow ensures the set can hold bit x without further allocation. Use it
// to pre-size a set when the maximum value is known up front.
func (b *BitSet) Grow(x uint32) {
	b.grow(x)
}

// Trim drops trailing zero words and shrinks the allocation to exactly the
// remaining word count. Membership is unchanged; only memory usage is.
// Idempotent.
func (b *BitSet) Trim() {
	n := len(b.words)
	for n > 0 && b.words[n-1] == 0 {
		n--
	}
	if n == 0 {
		b.words = nil
		return
	}
	if n == len(b.words) && n == cap(b.words) {
		return
	}
	words := make([]uint64, n)
	copy(words, b.words[:n])
	b.words = words
}

// Clear removes all members and releases the backing storage.
func (b *BitSet) Clear() {
	b.words = nil
}

// Contains reports whether x is a member. Reading past the current
// capacity returns false without growing the set.
func (b *BitSet) Contains(x uint32) bool {
	w := int(x >> wordShift)
	return w < len(b.words) && b.words[w]&(1<<(x&wordMask)) != 0
}

// Add inserts x, growing the set if needed. Idempotent.
func (b *BitSet) Add(x uint32) {
	b.grow(x)
	b.words[x>>wordShift] |= 1 << (x & wordMask)
}

// CheckedAdd inserts x and reports whether the set changed: true if x was
// newly added, false if it was already a member. Useful in deduplication
// loops that need the prior state.
func (b *BitSet) CheckedAdd(x uint32) bool {
	b.grow(x)
	mask := uint64(1) << (x & wordMask)
	w := &b.words[x>>wordShift]
	if *w&mask != 0 {
		return false
	}
	*w |= mask
	return true
}

// Remove deletes x. Removing a value past the current capacity is a no-op.
func (b *BitSet) Remove(x uint32) {
	w := int(x >> wordShift)
	if w >= len(b.words) {
		return
	}
	b.words[w] &^= 1 << (x & wordMask)
}

// Flip toggles membership of x, growing the set if needed.
func (b *BitSet) Flip(x uint32) {
	b.grow(x)
	b.words[x>>wordShift] ^= 1 << (x & wordMask)
}

// Cardinality returns the number of members. It is a full popcount scan
// over the logical words; no cached counter is maintained.
func (b *BitSet) Cardinality() int {
	count := 0
	for _, w := range b.words {
		if w != 0 {
			count += bits.OnesCount64(w)
		}
	}
	return count
}

// IsEmpty reports whether the set has no members. It short-circuits on the
// first non-zero word.
func (b *BitSet) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Len returns the number of addressable bits in the logical word sequence.
// It is a storage property, not the member count; see Cardinality.
func (b *BitSet) Len() int {
	return len(b.words) * wordBits
}

// Density returns the fraction of addressable bits that are set, as a
// diagnostic for choosing between dense and compressed representations.
func (b *BitSet) Density() float64 {
	if len(b.words) == 0 {
		return 0
	}
	return float64(b.Cardinality()) / float64(b.Len())
}

// Clone returns a deep copy with an independent buffer.
func (b *BitSet) Clone() *BitSet {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &BitSet{words: words}
}

// Words returns a copy of the logical word sequence, the raw
// representation accepted by FromWords.
func (b *BitSet) Words() []uint64 {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return words
}

// String returns the members as a comma-separated listing like {1,2,10}.
// It is for diagnostics only, not a parseable format.
func (b *BitSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	b.ForEach(func(x uint32) bool {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		sb.WriteString(strconv.FormatUint(uint64(x), 10))
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

package bitset

// AddRange inserts every value in the half-open interval [start, end).
// The interior words are set whole, only the two boundary words need a
// mask. A no-op when the interval is empty.
func (b *BitSet) AddRange(start, end uint32) {
	if start >= end {
		return
	}
	b.grow(end - 1)
	sw := int(start >> wordShift)
	ew := int((end - 1) >> wordShift)
	sm := ^uint64(0) << (start & wordMask)
	em := ^uint64(0) >> (wordMask - (end-1)&wordMask)
	if sw == ew {
		b.words[sw] |= sm & em
		return
	}
	b.words[sw] |= sm
	for w := sw + 1; w < ew; w++ {
		b.words[w] = ^uint64(0)
	}
	b.words[ew] |= em
}

// RemoveRange deletes every value in the half-open interval [start, end).
// The set never grows; the part of the interval past the current capacity
// is already absent. A no-op when the interval is empty.
func (b *BitSet) RemoveRange(start, end uint32) {
	if start >= end || len(b.words) == 0 {
		return
	}
	sw := int(start >> wordShift)
	if sw >= len(b.words) {
		return
	}
	ew := int((end - 1) >> wordShift)
	sm := ^uint64(0) << (start & wordMask)
	em := ^uint64(0) >> (wordMask - (end-1)&wordMask)
	if ew >= len(b.words) {
		ew, em = len(b.words)-1, ^uint64(0)
	}
	if sw == ew {
		b.words[sw] &^= sm & em
		return
	}
	b.words[sw] &^= sm
	for w := sw + 1; w < ew; w++ {
		b.words[w] = 0
	}
	b.words[ew] &^= em
}

package bitset

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidWordCount is returned when a serialized stream declares a
	// word count larger than any valid buffer.
	ErrInvalidWordCount = errors.New("bitset: invalid word count")
)

// maxWords is the largest useful logical word count: positions are uint32,
// so no bit past word 1<<26 is addressable.
const maxWords = 1 << (32 - wordShift)

// WriteTo writes the raw word sequence to w: a little-endian uint64 word
// count followed by the little-endian words. This is the only persisted
// representation; word width and bit order (bit 0 of word 0 is value 0)
// are fixed by the format.
func (b *BitSet) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(b.words))); err != nil {
		return 0, fmt.Errorf("bitset: write word count: %w", err)
	}
	n := int64(8)
	for i, word := range b.words {
		if err := binary.Write(w, binary.LittleEndian, word); err != nil {
			return n, fmt.Errorf("bitset: write word %d: %w", i, err)
		}
		n += 8
	}
	return n, nil
}

// ReadFrom replaces the set's contents with a word sequence produced by
// WriteTo. On error the set is left unchanged.
func (b *BitSet) ReadFrom(r io.Reader) (int64, error) {
	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return 0, fmt.Errorf("bitset: read word count: %w", err)
	}
	n := int64(8)
	if count > maxWords {
		return n, fmt.Errorf("%w: %d", ErrInvalidWordCount, count)
	}
	words := make([]uint64, count)
	for i := range words {
		if err := binary.Read(r, binary.LittleEndian, &words[i]); err != nil {
			return n, fmt.Errorf("bitset: read word %d: %w", i, err)
		}
		n += 8
	}
	b.words = words
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the WriteTo
// format.
func (b *BitSet) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(8 + 8*len(b.words))
	if _, err := b.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler using the WriteTo
// format.
func (b *BitSet) UnmarshalBinary(data []byte) error {
	_, err := b.ReadFrom(bytes.NewReader(data))
	return err
}

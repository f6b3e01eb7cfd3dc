package bitvec

import (
	"iter"
	"math/bits"
)

// MaxLen is the capacity of a BitVec64.
const MaxLen = 64

// BitVec64 is a fixed-length sequence of up to 64 bits stored in one word.
// content holds the bits right-aligned; bits above size are always zero.
// The zero value is the empty vector.
type BitVec64 struct {
	content uint64 // active bits in the low `size` positions
	size    uint8  // number of active bits, 0..64
}

// mask returns a word with the low n bits set.
func mask(n int) uint64 {
	if n >= MaxLen {
		return ^uint64(0)
	}
	return (uint64(1) << uint(n)) - 1
}

func checkLen(method string, size int) {
	if size < 0 || size > MaxLen {
		fail(method, ErrCapacity, "size=%d", size)
	}
}

// FromWord wraps word as a vector of the given length. Only the low size
// bits of word are kept; the most significant of them becomes index 0.
// Panics with ErrCapacity if size is outside [0, 64].
func FromWord(word uint64, size int) BitVec64 {
	checkLen("FromWord", size)
	return BitVec64{content: word & mask(size), size: uint8(size)}
}

// Zero returns an all-false vector of the given length.
func Zero(size int) BitVec64 {
	checkLen("Zero", size)
	return BitVec64{size: uint8(size)}
}

// FromBools packs bits left to right; bits[0] becomes the most significant bit.
// Panics with ErrCapacity if len(bits) > 64.
func FromBools(bits []bool) BitVec64 {
	checkLen("FromBools", len(bits))
	var v BitVec64
	for _, b := range bits {
		v = v.push(b)
	}
	return v
}

// Collect drains seq into a vector: every new bit shifts the previous ones
// left, so the first bit produced is the most significant.
// Panics with ErrCapacity once more than 64 bits have been produced.
func Collect(seq iter.Seq[bool]) BitVec64 {
	var v BitVec64
	for b := range seq {
		if v.size == MaxLen {
			fail("Collect", ErrCapacity, "size>%d", MaxLen)
		}
		v = v.push(b)
	}
	return v
}

// push appends b as the new least significant bit. Caller checks capacity.
func (v BitVec64) push(b bool) BitVec64 {
	v.content <<= 1
	if b {
		v.content |= 1
	}
	v.size++
	return v
}

// Len returns the number of bits in v.
func (v BitVec64) Len() int { return int(v.size) }

// Word returns the right-aligned backing word.
func (v BitVec64) Word() uint64 { return v.content }

// IsZero reports whether no bit of v is set.
func (v BitVec64) IsZero() bool { return v.content == 0 }

// shift converts a logical index into the bit position inside content.
func (v BitVec64) shift(i int) uint {
	return uint(int(v.size) - i - 1)
}

// Get returns the bit at logical index i (0 = leftmost).
// Panics with ErrOutOfRange if i is outside [0, Len()).
func (v BitVec64) Get(i int) bool {
	if i < 0 || i >= int(v.size) {
		fail("Get", ErrOutOfRange, "i=%d, len=%d", i, v.size)
	}
	return (v.content>>v.shift(i))&1 == 1
}

// Set assigns bit i in place.
// Panics with ErrOutOfRange if i is outside [0, Len()).
func (v *BitVec64) Set(i int, bit bool) {
	if i < 0 || i >= int(v.size) {
		fail("Set", ErrOutOfRange, "i=%d, len=%d", i, v.size)
	}
	m := uint64(1) << v.shift(i)
	if bit {
		v.content |= m
	} else {
		v.content &^= m
	}
}

// With returns a copy of v with bit i set to bit.
func (v BitVec64) With(i int, bit bool) BitVec64 {
	v.Set(i, bit)
	return v
}

// Slice returns bits [start, end) as a right-aligned integer, MSB-first.
// Requires 0 <= start < end <= Len(); panics with ErrOutOfRange otherwise.
func (v BitVec64) Slice(start, end int) uint64 {
	if start < 0 || start >= end || end > int(v.size) {
		fail("Slice", ErrOutOfRange, "start=%d, end=%d, len=%d", start, end, v.size)
	}
	low := uint(int(v.size) - end)
	return (v.content >> low) & mask(end-start)
}

// CountOnes returns the number of set bits.
func (v BitVec64) CountOnes() int { return bits.OnesCount64(v.content) }

// CountZeros returns the number of clear bits among the Len() active bits.
func (v BitVec64) CountZeros() int { return int(v.size) - v.CountOnes() }

// Equal reports whether v and other hold the same bits. Vectors of
// different length are never equal.
func (v BitVec64) Equal(other BitVec64) bool { return v == other }

// All yields the bits of v from index 0 to Len()-1. The sequence works on a
// copy of v and can be ranged over any number of times.
func (v BitVec64) All() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < int(v.size); i++ {
			if !yield((v.content>>v.shift(i))&1 == 1) {
				return
			}
		}
	}
}

// Bits yields (index, bit) pairs in logical order.
func (v BitVec64) Bits() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < int(v.size); i++ {
			if !yield(i, (v.content>>v.shift(i))&1 == 1) {
				return
			}
		}
	}
}

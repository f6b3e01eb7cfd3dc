package bitvec

func (v BitVec64) sameLen(method string, other BitVec64) {
	if v.size != other.size {
		fail(method, ErrSizeMismatch, "len=%d, other=%d", v.size, other.size)
	}
}

// And returns the bitwise conjunction of v and other.
// Panics with ErrSizeMismatch if the lengths differ.
func (v BitVec64) And(other BitVec64) BitVec64 {
	v.sameLen("And", other)
	return BitVec64{content: v.content & other.content, size: v.size}
}

// Or returns the bitwise disjunction of v and other.
// Panics with ErrSizeMismatch if the lengths differ.
func (v BitVec64) Or(other BitVec64) BitVec64 {
	v.sameLen("Or", other)
	return BitVec64{content: v.content | other.content, size: v.size}
}

// Xor returns the bitwise exclusive or of v and other.
// Panics with ErrSizeMismatch if the lengths differ.
func (v BitVec64) Xor(other BitVec64) BitVec64 {
	v.sameLen("Xor", other)
	return BitVec64{content: v.content ^ other.content, size: v.size}
}

// Not flips every active bit.
func (v BitVec64) Not() BitVec64 {
	return BitVec64{content: ^v.content & mask(int(v.size)), size: v.size}
}

// Distance returns the number of positions at which v and other differ.
// Panics with ErrSizeMismatch if the lengths differ.
func (v BitVec64) Distance(other BitVec64) int {
	v.sameLen("Distance", other)
	return v.Xor(other).CountOnes()
}

package bitvec

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Default alphabet used by String, MarshalText and UnmarshalText.
const (
	TrueRune  = '1'
	FalseRune = '0'
)

// Parse maps each rune of text onto one bit, left to right: t becomes 1,
// f becomes 0, and the first rune is the most significant bit.
// Returns ErrSameAlphabet if t == f, ErrCapacity if text holds more than
// 64 runes and ErrInvalidChar for any other rune.
func Parse(text string, t, f rune) (BitVec64, error) {
	if t == f {
		return BitVec64{}, ErrSameAlphabet
	}
	if n := utf8.RuneCountInString(text); n > MaxLen {
		return BitVec64{}, fmt.Errorf("bitvec.Parse(len=%d): %w", n, ErrCapacity)
	}
	var v BitVec64
	for pos, r := range text {
		switch r {
		case t:
			v = v.push(true)
		case f:
			v = v.push(false)
		default:
			return BitVec64{}, fmt.Errorf("bitvec.Parse: %q at byte %d: %w", r, pos, ErrInvalidChar)
		}
	}
	return v, nil
}

// FromString is Parse for trusted input: it panics instead of returning an error.
func FromString(text string, t, f rune) BitVec64 {
	v, err := Parse(text, t, f)
	if err != nil {
		panic(err)
	}
	return v
}

// Format renders exactly Len() runes, index 0 first, using t for set bits
// and f for clear ones. Parse(v.Format(t, f), t, f) returns v.
func (v BitVec64) Format(t, f rune) string {
	var sb strings.Builder
	sb.Grow(int(v.size) * max(utf8.RuneLen(t), utf8.RuneLen(f), 1))
	for b := range v.All() {
		if b {
			sb.WriteRune(t)
		} else {
			sb.WriteRune(f)
		}
	}
	return sb.String()
}

// String implements fmt.Stringer with the '1'/'0' alphabet.
func (v BitVec64) String() string {
	return v.Format(TrueRune, FalseRune)
}

// MarshalText implements encoding.TextMarshaler.
func (v BitVec64) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *BitVec64) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text), TrueRune, FalseRune)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Package bitvec provides BitVec64, an ordered sequence of at most 64
// booleans packed into a single machine word.
//
// What:
//
//   - BitVec64 is a comparable value type: copy it, use it as a map key,
//     compare it with ==.
//   - Bits are indexed MSB-first: index 0 is the leftmost character of the
//     string the vector was parsed from.
//   - Set algebra (And, Or, Xor, Not), popcounts and range extraction (Slice)
//     work on exactly Len() bits.
//
// Why:
//
//   - Pattern matching over short binary rows (mirror/reflection checks,
//     visited masks over small graphs) without per-bit allocation.
//
// Complexity:
//
//   - Every operation except parsing and formatting is O(1).
//   - Parse, Format and Collect are O(n), n ≤ 64.
//
// Errors:
//
//   - ErrCapacity: more than 64 bits requested.
//   - ErrOutOfRange: bit index or slice bounds outside [0, Len()).
//   - ErrSizeMismatch: binary operation on vectors of different length.
//   - ErrInvalidChar: rune outside the two-character alphabet.
//   - ErrSameAlphabet: true and false runes are identical.
//
// Misuse panics with an error wrapping one of the sentinels above; Parse and
// UnmarshalText return the same errors instead.
package bitvec

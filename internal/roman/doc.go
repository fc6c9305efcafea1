// Package roman implements the numeral conversion engine.
//
// The engine is the heart of the converter - it parses Roman numerals into
// integers, renders integers as canonical numerals, validates candidate
// strings against the standard grammar, and recognizes historical (additive)
// variants such as IIII for 4.
//
// DESIGN:
//
// Pure Functions Over Static Tables:
// Every operation is a pure function of its arguments and three module-scope
// read-only tables (symbol values, canonical decomposition, historical
// patterns). The engine holds no mutable state and performs no I/O, so all
// operations are safe to call from any goroutine.
//
// Two-Stage Validation:
// IsValid first applies syntactic checks (symbol set membership, repetition
// limits, forbidden subtractive pairs) and only then performs a full
// conversion to confirm the decoded value lies in [1, 3999]. The character
// and grammar checks are necessary but not sufficient; the range check is
// the final authority.
//
// Deterministic Historical Matching:
// Historical patterns are held in a slice ordered by descending value, which
// also places longer patterns before any pattern that is their suffix
// (VIIII before IIII). Detection and rewrite therefore never depend on map
// iteration order.
//
// Supported range is [1, 3999]. Roman numerals have no zero, no negatives,
// and no fractions; values of 4000 and above require overline notation that
// this engine does not model.
package roman

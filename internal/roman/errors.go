package roman

import (
	"errors"
	"fmt"
)

// InvalidNumeralError reports an unparseable character or a string that
// violates the standard numeral grammar.
type InvalidNumeralError struct {
	// Input is the original (untrimmed) candidate string.
	Input string

	// Symbol is the offending character, when a specific one was found.
	Symbol byte

	// Reason is a human-readable description of the violation.
	Reason string
}

// Error implements the error interface.
func (e *InvalidNumeralError) Error() string {
	if e.Symbol != 0 {
		return fmt.Sprintf("invalid numeral %q: unknown symbol %q", e.Input, string(e.Symbol))
	}
	if e.Reason != "" {
		return fmt.Sprintf("invalid numeral %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("invalid numeral %q", e.Input)
}

// OutOfRangeError reports an integer outside the representable range.
type OutOfRangeError struct {
	Value int
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value %d out of range [%d, %d]", e.Value, MinValue, MaxValue)
}

// EmptyInputError reports a blank or whitespace-only input string.
type EmptyInputError struct{}

// Error implements the error interface.
func (e *EmptyInputError) Error() string {
	return "empty input"
}

// IsInvalidNumeral returns true if the error is an InvalidNumeralError.
// Uses errors.As to handle wrapped errors.
func IsInvalidNumeral(err error) bool {
	var ie *InvalidNumeralError
	return errors.As(err, &ie)
}

// IsOutOfRange returns true if the error is an OutOfRangeError.
// Uses errors.As to handle wrapped errors.
func IsOutOfRange(err error) bool {
	var oe *OutOfRangeError
	return errors.As(err, &oe)
}

// IsEmptyInput returns true if the error is an EmptyInputError.
// Uses errors.As to handle wrapped errors.
func IsEmptyInput(err error) bool {
	var ee *EmptyInputError
	return errors.As(err, &ee)
}

// newUnknownSymbolError creates an InvalidNumeralError for a character
// outside the symbol set.
func newUnknownSymbolError(input string, sym byte) *InvalidNumeralError {
	return &InvalidNumeralError{Input: input, Symbol: sym}
}

// newGrammarError creates an InvalidNumeralError for a grammar violation.
func newGrammarError(input, reason string) *InvalidNumeralError {
	return &InvalidNumeralError{Input: input, Reason: reason}
}

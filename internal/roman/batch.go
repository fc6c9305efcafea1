package roman

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction selects what a batch item's raw string is converted into.
type Direction string

// Conversion directions.
const (
	// RomanToInt parses each input as a Roman numeral.
	RomanToInt Direction = "roman-to-int"

	// IntToRoman parses each input as a decimal integer.
	IntToRoman Direction = "int-to-roman"
)

// ParseDirection converts a user-supplied string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case RomanToInt:
		return RomanToInt, nil
	case IntToRoman:
		return IntToRoman, nil
	default:
		return "", fmt.Errorf("unknown direction %q: must be %q or %q", s, RomanToInt, IntToRoman)
	}
}

// Outcome is the per-item result of a batch conversion.
// Immutable once created; never mutated after construction.
type Outcome struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	OK     bool   `json:"ok"`
	Err    string `json:"error,omitempty"`
}

// ConvertBatch converts each input independently, producing one Outcome per
// input in input order.
//
// Partial-failure isolation is the core contract: a failed item (empty
// string, invalid numeral, out-of-range integer) yields an Outcome with
// OK=false and a descriptive error, and processing continues with the next
// item. ConvertBatch itself never fails.
func ConvertBatch(inputs []string, dir Direction, historical bool) []Outcome {
	outcomes := make([]Outcome, 0, len(inputs))
	for _, in := range inputs {
		outcomes = append(outcomes, convertOne(in, dir, historical))
	}
	return outcomes
}

// convertOne converts a single batch item, capturing any failure in the
// returned Outcome instead of propagating it.
func convertOne(input string, dir Direction, historical bool) Outcome {
	s := strings.TrimSpace(input)
	if s == "" {
		return Outcome{Input: input, Err: (&EmptyInputError{}).Error()}
	}

	switch dir {
	case RomanToInt:
		if !IsValid(s, historical) {
			return Outcome{Input: input, Err: fmt.Sprintf("invalid numeral %q", s)}
		}
		n, err := ToInt(s, historical)
		if err != nil {
			return Outcome{Input: input, Err: err.Error()}
		}
		return Outcome{Input: input, Output: strconv.Itoa(n), OK: true}

	case IntToRoman:
		n, err := strconv.Atoi(s)
		if err != nil {
			return Outcome{Input: input, Err: fmt.Sprintf("not an integer: %q", s)}
		}
		numeral, err := FromInt(n)
		if err != nil {
			return Outcome{Input: input, Err: err.Error()}
		}
		return Outcome{Input: input, Output: numeral, OK: true}

	default:
		return Outcome{Input: input, Err: fmt.Sprintf("unknown direction %q", dir)}
	}
}

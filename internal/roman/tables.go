package roman

import "strings"

// MinValue and MaxValue bound the representable range. Roman numerals have
// no zero or negative form, and values above 3999 require overline notation.
const (
	MinValue = 1
	MaxValue = 3999
)

// symbolValues maps each numeral symbol to its integer value.
// Immutable after init; read-only process-wide.
var symbolValues = map[byte]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// decompEntry pairs a value with the glyph group that encodes it.
type decompEntry struct {
	value  int
	glyphs string
}

// decompTable drives greedy integer-to-numeral generation. Order is the
// correctness invariant: entries run from largest to smallest value with
// the subtractive pairs (900, 400, 90, 40, 9, 4) interleaved so the greedy
// walk always emits the canonical, minimal-length form.
var decompTable = []decompEntry{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// historicalPattern is an additive-notation substring and the value it
// encodes (e.g. IIII for 4, as seen on clock faces and medieval inscriptions).
type historicalPattern struct {
	pattern string
	value   int
}

// historicalPatterns is ordered by descending value. The order is load
// bearing: it places each pattern before any pattern that is its suffix
// (VIIII before IIII, LXXXX before XXXX, DCCCC before CCCC), so the first
// match is always the longest applicable one and detection is deterministic.
var historicalPatterns = []historicalPattern{
	{"DCCCC", 900},
	{"CCCC", 400},
	{"LXXXX", 90},
	{"XXXX", 40},
	{"VIIII", 9},
	{"IIII", 4},
}

// findHistorical returns the first historical pattern contained in s,
// scanning in table order (descending value).
func findHistorical(s string) (historicalPattern, bool) {
	for _, p := range historicalPatterns {
		if strings.Contains(s, p.pattern) {
			return p, true
		}
	}
	return historicalPattern{}, false
}

package roman

import "strings"

// ToInt converts a Roman numeral to its integer value.
//
// Input is trimmed and uppercased before parsing. When historical is true
// and the string contains an additive-notation pattern (IIII, VIIII, ...),
// the first matching pattern in table order is rewritten to its standard
// subtractive form and the rewritten string is reparsed in standard mode.
//
// Parsing accumulates right to left: each symbol is added when its value is
// at least the previously seen symbol's value and subtracted when strictly
// less. This encodes subtractive pairs without explicit pair matching.
//
// ToInt performs no bounds check - callers wanting the [1, 3999] guarantee
// must additionally call IsValid.
func ToInt(text string, historical bool) (int, error) {
	s := strings.ToUpper(strings.TrimSpace(text))
	if s == "" {
		return 0, &EmptyInputError{}
	}

	if historical {
		if p, ok := findHistorical(s); ok {
			std, err := FromInt(p.value)
			if err != nil {
				return 0, err
			}
			// One rewrite per call; the recursive parse handles the rest
			// through plain right-to-left accumulation.
			return ToInt(strings.Replace(s, p.pattern, std, 1), false)
		}
	}

	total := 0
	prev := 0
	for i := len(s) - 1; i >= 0; i-- {
		v, ok := symbolValues[s[i]]
		if !ok {
			return 0, newUnknownSymbolError(text, s[i])
		}
		if v < prev {
			total -= v
		} else {
			total += v
		}
		prev = v
	}

	return total, nil
}

// FromInt renders an integer as its canonical Roman numeral.
//
// The result is always the minimal-length standard form: the greedy walk
// over decompTable emits glyph groups largest first, with the subtractive
// entries interleaved at the correct positions.
//
// Returns an OutOfRangeError for values outside [1, 3999].
func FromInt(n int) (string, error) {
	if n < MinValue || n > MaxValue {
		return "", &OutOfRangeError{Value: n}
	}

	var b strings.Builder
	rem := n
	for _, e := range decompTable {
		for rem >= e.value {
			b.WriteString(e.glyphs)
			rem -= e.value
		}
	}

	return b.String(), nil
}

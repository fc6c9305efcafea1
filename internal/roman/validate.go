package roman

import "strings"

// forbiddenPairs lists the subtractive pairs the standard grammar rejects.
// I may only precede V or X; V, L, and D are never subtracted; X may only
// precede L or C.
var forbiddenPairs = []string{
	"IL", "IC", "ID", "IM",
	"VL", "VC", "VD", "VM",
	"XD", "XM",
	"LC", "LD", "LM",
	"DM",
}

// IsValid reports whether text is a well-formed Roman numeral for a value
// in [1, 3999], after trimming and uppercasing.
//
// When historical is true, a string containing any historical additive
// pattern is accepted as-is: historical forms predate the standard grammar
// and bypass its repetition and subtractive-pair rules.
//
// Validation is two-stage. The syntactic checks (symbol set, repetition,
// forbidden pairs) are necessary but not sufficient; the string must also
// decode to an in-range value, and that semantic check is the final
// authority.
func IsValid(text string, historical bool) bool {
	s := strings.ToUpper(strings.TrimSpace(text))
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if _, ok := symbolValues[s[i]]; !ok {
			return false
		}
	}

	if historical {
		if _, ok := findHistorical(s); ok {
			return true
		}
	}

	if checkGrammar(text, s) != nil {
		return false
	}

	// The converter cannot fail here (all symbols are known), but the
	// decoded value can still fall outside range.
	n, err := ToInt(s, false)
	if err != nil {
		return false
	}
	return n >= MinValue && n <= MaxValue
}

// checkGrammar applies the standard-notation rejection rules to s, an
// uppercased trimmed candidate. Returns nil when no rule fires. The input
// argument is the caller's original string, carried for error reporting.
func checkGrammar(input, s string) error {
	run := 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			run++
			if run >= 4 {
				return newGrammarError(input, "four or more consecutive "+string(s[i])+" symbols")
			}
		} else {
			run = 1
		}
	}

	for _, pair := range forbiddenPairs {
		if strings.Contains(s, pair) {
			return newGrammarError(input, "forbidden subtractive pair "+pair)
		}
	}

	return nil
}

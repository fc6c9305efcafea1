package roman

import (
	"fmt"
	"strings"
)

// Period labels returned by Analyze.
const (
	PeriodClassical = "Classical"
	PeriodMedieval  = "Medieval"
	PeriodUnknown   = "Unknown"
)

// Analysis describes the historical character of a numeral.
type Analysis struct {
	// IsHistorical is true when the numeral contains additive-notation
	// patterns.
	IsHistorical bool `json:"is_historical"`

	// Period is a coarse label: Classical for standard notation, Medieval
	// when additive patterns are present, Unknown when the string could not
	// be interpreted.
	Period string `json:"period"`

	// Variations describes each historical pattern detected, one entry per
	// matched pattern in descending value order.
	Variations []string `json:"variations,omitempty"`

	// ModernEquivalent is the canonical standard-notation form.
	ModernEquivalent string `json:"modern_equivalent,omitempty"`
}

// Analyze reports whether a numeral uses historical additive notation and
// computes its modern canonical equivalent.
//
// Analyze is a best-effort diagnostic, not a validator: when the string
// cannot be interpreted as a numeral, it returns an Unknown-period result
// rather than an error.
func Analyze(text string) Analysis {
	s := strings.ToUpper(strings.TrimSpace(text))

	var variations []string
	for _, p := range historicalPatterns {
		if !strings.Contains(s, p.pattern) {
			continue
		}
		std, err := FromInt(p.value)
		if err != nil {
			continue
		}
		variations = append(variations, fmt.Sprintf("%s is the additive form of %s (%d)", p.pattern, std, p.value))
	}

	n, err := ToInt(s, true)
	if err != nil {
		return Analysis{Period: PeriodUnknown}
	}
	modern, err := FromInt(n)
	if err != nil {
		return Analysis{Period: PeriodUnknown}
	}

	a := Analysis{
		IsHistorical:     len(variations) > 0,
		Period:           PeriodClassical,
		Variations:       variations,
		ModernEquivalent: modern,
	}
	if a.IsHistorical {
		a.Period = PeriodMedieval
	}
	return a
}

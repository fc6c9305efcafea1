// Package scan rewrites numeral-shaped and integer-shaped substrings in
// free text.
//
// The scanner's only contract with the conversion engine is "pass candidate
// substring, receive validity and converted value". Candidates that fail
// validation or conversion are left untouched in the output and recorded as
// per-substring failures; a bad candidate never aborts the scan.
package scan

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/developerZohab/Roman-Numeral-Converter/internal/roman"
)

// Mode selects which substring kinds the scanner rewrites.
type Mode int

// Scanner modes.
const (
	// Both rewrites numeral and integer candidates.
	Both Mode = iota

	// NumeralsOnly rewrites only Roman numeral candidates.
	NumeralsOnly

	// IntegersOnly rewrites only decimal integer candidates.
	IntegersOnly
)

// Options configures a document scan.
type Options struct {
	// Historical enables additive-notation variants (IIII, VIIII, ...).
	Historical bool

	// Mode limits which candidate kinds are rewritten. Default Both.
	Mode Mode
}

// Summary counts the scan's replacements and collects per-substring
// failure messages in document order.
type Summary struct {
	Replacements int      `json:"replacements"`
	Failures     []string `json:"failures,omitempty"`
}

// Result is the rewritten document plus its processing summary.
type Result struct {
	Text    string  `json:"text"`
	Summary Summary `json:"summary"`
}

// candidateRe matches numeral-shaped and integer-shaped words in a single
// pass. One pass matters: replacing numerals first and integers second
// would convert freshly written digits straight back to numerals.
//
// Numeral candidates are uppercase-only; lowercase prose is full of words
// like "mix" and "did" that are technically parseable numerals.
var candidateRe = regexp.MustCompile(`\b([0-9]+|[IVXLCDM]+)\b`)

// Document scans text and substitutes conversions in place: Roman numeral
// candidates become integers and integer candidates become numerals.
//
// Text is NFC-normalized before matching so that decomposed characters do
// not split word boundaries. Surrounding prose is preserved byte for byte.
func Document(text string, opts Options) Result {
	var sum Summary

	out := candidateRe.ReplaceAllStringFunc(norm.NFC.String(text), func(match string) string {
		replacement, err := convertCandidate(match, opts)
		if err != nil {
			sum.Failures = append(sum.Failures, fmt.Sprintf("%q: %v", match, err))
			return match
		}
		if replacement == match {
			// Candidate kind filtered out by Mode.
			return match
		}
		sum.Replacements++
		return replacement
	})

	return Result{Text: out, Summary: sum}
}

// convertCandidate converts one matched substring. Returns the match
// unchanged (with nil error) when the candidate kind is filtered out.
func convertCandidate(match string, opts Options) (string, error) {
	if isDigits(match) {
		if opts.Mode == NumeralsOnly {
			return match, nil
		}
		n, err := strconv.Atoi(match)
		if err != nil {
			return "", fmt.Errorf("not an integer: %w", err)
		}
		return roman.FromInt(n)
	}

	if opts.Mode == IntegersOnly {
		return match, nil
	}
	if !roman.IsValid(match, opts.Historical) {
		return "", errors.New("invalid numeral")
	}
	n, err := roman.ToInt(match, opts.Historical)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// isDigits reports whether s consists solely of ASCII digits.
func isDigits(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) < 0 && s != ""
}

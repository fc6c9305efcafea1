package scan

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_RewritesBothDirections(t *testing.T) {
	res := Document("Built in MCMXC, restored in 2015.", Options{})

	assert.Equal(t, "Built in 1990, restored in MMXV.", res.Text)
	assert.Equal(t, 2, res.Summary.Replacements)
	assert.Empty(t, res.Summary.Failures)
}

func TestDocument_FailuresLeaveTextUntouched(t *testing.T) {
	res := Document("The plaque says MMMM here.", Options{})

	assert.Equal(t, "The plaque says MMMM here.", res.Text)
	assert.Equal(t, 0, res.Summary.Replacements)
	require.Len(t, res.Summary.Failures, 1)
	assert.Contains(t, res.Summary.Failures[0], "MMMM")
}

func TestDocument_OneBadCandidateDoesNotAbortScan(t *testing.T) {
	res := Document("IL and 42 and MMMM and X", Options{})

	assert.Equal(t, "IL and XLII and MMMM and 10", res.Text)
	assert.Equal(t, 2, res.Summary.Replacements)
	assert.Len(t, res.Summary.Failures, 2)
}

func TestDocument_HistoricalMode(t *testing.T) {
	standard := Document("Clock faces show IIII.", Options{})
	require.Len(t, standard.Summary.Failures, 1)
	assert.Equal(t, "Clock faces show IIII.", standard.Text)

	historical := Document("Clock faces show IIII.", Options{Historical: true})
	assert.Equal(t, "Clock faces show 4.", historical.Text)
	assert.Equal(t, 1, historical.Summary.Replacements)
	assert.Empty(t, historical.Summary.Failures)
}

func TestDocument_ModeFilters(t *testing.T) {
	const doc = "Year MCMXC, page 12."

	numerals := Document(doc, Options{Mode: NumeralsOnly})
	assert.Equal(t, "Year 1990, page 12.", numerals.Text)
	assert.Equal(t, 1, numerals.Summary.Replacements)
	assert.Empty(t, numerals.Summary.Failures)

	integers := Document(doc, Options{Mode: IntegersOnly})
	assert.Equal(t, "Year MCMXC, page XII.", integers.Text)
	assert.Equal(t, 1, integers.Summary.Replacements)
	assert.Empty(t, integers.Summary.Failures)
}

func TestDocument_LowercaseProseIgnored(t *testing.T) {
	// "mix" and "did" parse as numerals but are almost always English;
	// only uppercase runs are candidates.
	res := Document("did we mix the cement in MCMXC?", Options{})

	assert.Equal(t, "did we mix the cement in 1990?", res.Text)
	assert.Equal(t, 1, res.Summary.Replacements)
}

func TestDocument_SingleReplacementPass(t *testing.T) {
	// Freshly written digits must not be re-converted back to numerals.
	res := Document("XII", Options{})

	assert.Equal(t, "12", res.Text)
	assert.Equal(t, 1, res.Summary.Replacements)
}

func TestDocument_EmptyText(t *testing.T) {
	res := Document("", Options{})
	assert.Equal(t, "", res.Text)
	assert.Equal(t, 0, res.Summary.Replacements)
	assert.Empty(t, res.Summary.Failures)
}

func TestDocument_GoldenInscription(t *testing.T) {
	const doc = "The cornerstone reads MDCCCLXXXVIII and the clock face shows IIII.\n" +
		"Volume XVIIII was printed in 1523; volume XX followed in 1525.\n" +
		"A forged plaque claiming MMMM was rejected, as was the scribble IL."

	res := Document(doc, Options{Historical: true})

	out, err := json.MarshalIndent(res, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "inscription", out)
}

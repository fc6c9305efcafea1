package roman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"roman-to-int", RomanToInt, false},
		{"int-to-roman", IntToRoman, false},
		{" Roman-To-Int ", RomanToInt, false},
		{"both-ways", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertBatch_PartialFailureIsolation(t *testing.T) {
	outcomes := ConvertBatch([]string{"MCMXC", "", "INVALID", "1994"}, RomanToInt, false)

	require.Len(t, outcomes, 4)

	assert.True(t, outcomes[0].OK)
	assert.Equal(t, "1990", outcomes[0].Output)

	assert.False(t, outcomes[1].OK)
	assert.Equal(t, "empty input", outcomes[1].Err)

	assert.False(t, outcomes[2].OK)
	assert.Contains(t, outcomes[2].Err, "invalid numeral")

	// Digits are not numeral symbols in roman-to-int direction.
	assert.False(t, outcomes[3].OK)
	assert.NotEmpty(t, outcomes[3].Err)
}

func TestConvertBatch_IntToRoman(t *testing.T) {
	outcomes := ConvertBatch([]string{"1990", "444", "0", "4000", "abc", " 2750 "}, IntToRoman, false)

	require.Len(t, outcomes, 6)

	assert.True(t, outcomes[0].OK)
	assert.Equal(t, "MCMXC", outcomes[0].Output)

	assert.True(t, outcomes[1].OK)
	assert.Equal(t, "CDXLIV", outcomes[1].Output)

	assert.False(t, outcomes[2].OK)
	assert.Contains(t, outcomes[2].Err, "out of range")

	assert.False(t, outcomes[3].OK)
	assert.Contains(t, outcomes[3].Err, "out of range")

	assert.False(t, outcomes[4].OK)
	assert.Contains(t, outcomes[4].Err, "not an integer")

	assert.True(t, outcomes[5].OK)
	assert.Equal(t, "MMDCCL", outcomes[5].Output)
}

func TestConvertBatch_HistoricalMode(t *testing.T) {
	outcomes := ConvertBatch([]string{"IIII", "VIIII"}, RomanToInt, true)

	require.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].OK)
	assert.Equal(t, "4", outcomes[0].Output)
	assert.True(t, outcomes[1].OK)
	assert.Equal(t, "9", outcomes[1].Output)

	// Same inputs fail in standard mode.
	standard := ConvertBatch([]string{"IIII"}, RomanToInt, false)
	require.Len(t, standard, 1)
	assert.False(t, standard[0].OK)
}

func TestConvertBatch_PreservesInputOrderAndCount(t *testing.T) {
	inputs := []string{"I", "II", "III", "IV", "V"}
	outcomes := ConvertBatch(inputs, RomanToInt, false)

	require.Len(t, outcomes, len(inputs))
	for i, out := range outcomes {
		assert.Equal(t, inputs[i], out.Input)
		assert.True(t, out.OK)
	}
}

func TestConvertBatch_EmptySlice(t *testing.T) {
	outcomes := ConvertBatch(nil, RomanToInt, false)
	assert.NotNil(t, outcomes)
	assert.Empty(t, outcomes)
}

func TestConvertBatch_UnknownDirection(t *testing.T) {
	outcomes := ConvertBatch([]string{"X"}, Direction("sideways"), false)
	require.Len(t, outcomes, 1)
	assert.False(t, outcomes[0].OK)
	assert.Contains(t, outcomes[0].Err, "unknown direction")
}

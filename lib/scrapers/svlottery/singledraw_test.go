package svlottery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractSingleDraw(t *testing.T) {
	section := "Saturday | 14 February 2026 7 8 18 31 32 34 + 24 Next Jackpot: $39M"

	result := ExtractSingleDraw(section, "Lotto", 6)
	require.Equal(t, StatusFound, result.Status)

	record := result.Value
	require.Equal(t, "Lotto", record.Label)
	require.Contains(t, record.Date, "14 February 2026")
	require.Equal(t, []int{7, 8, 18, 31, 32, 34}, record.Numbers)
	require.NotNil(t, record.Bonus)
	require.Equal(t, 24, *record.Bonus)
	require.Contains(t, record.JackpotText, "$39M")
}

func TestExtractSingleDrawNoBonus(t *testing.T) {
	section := "Friday | 13 February 2026 5 9 12 20 28"

	result := ExtractSingleDraw(section, "Super Lotto", 5)
	require.Equal(t, StatusFound, result.Status)
	require.Equal(t, []int{5, 9, 12, 20, 28}, result.Value.Numbers)
	require.Nil(t, result.Value.Bonus)
	require.Empty(t, result.Value.JackpotText)
}

// jackpot digits must never be counted as drawn numbers, even when
// the section is short on real numbers
func TestExtractSingleDrawJackpotNotSwallowed(t *testing.T) {
	section := "Saturday | 14 February 2026 7 8 18 Next Jackpot: $39,000,000"

	result := ExtractSingleDraw(section, "Lotto", 6)
	require.Equal(t, StatusMalformed, result.Status)
	require.Nil(t, result.Value.Numbers)
}

func TestExtractSingleDrawTooFewNumbers(t *testing.T) {
	cases := []struct {
		name    string
		section string
	}{
		{"no numbers", "Saturday | 14 February 2026"},
		{"one short", "Saturday | 14 February 2026 7 8 18 31 32"},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			result := ExtractSingleDraw(test.section, "Lotto", 6)
			require.Equal(t, StatusMalformed, result.Status)
			require.Nil(t, result.Value.Numbers)
		})
	}
}

func TestExtractSingleDrawNoDate(t *testing.T) {
	result := ExtractSingleDraw("7 8 18 31 32 34", "Lotto", 6)
	require.Equal(t, StatusMalformed, result.Status)
}

// exactly N+1 numeric tokens: N main numbers in source order plus the
// (N+1)-th as bonus
func TestExtractSingleDrawTokenSplit(t *testing.T) {
	section := "Wednesday | 1 January 2025 1 2 3 4 5 6 7"

	result := ExtractSingleDraw(section, "Lotto", 6)
	require.Equal(t, StatusFound, result.Status)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, result.Value.Numbers)
	require.Equal(t, 7, *result.Value.Bonus)
}

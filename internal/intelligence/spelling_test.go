package intelligence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSpelling(t *testing.T) {
	rs := DefaultRuleSet()

	t.Run("repeated misspelling shares first offset", func(t *testing.T) {
		findings := rs.checkSpelling("malumot va malumot.")
		require.Len(t, findings, 2)
		for _, f := range findings {
			assert.Equal(t, 0, f.Offset)
			assert.Equal(t, FindingSpelling, f.Type)
			assert.Equal(t, `"malumot" - imlo xatosi`, f.Original)
			assert.Equal(t, `To'g'ri yozilishi: "ma'lumot"`, f.Suggestion)
			assert.Equal(t, `"malumot" so'zi "ma'lumot" shaklida yoziladi`, f.Explanation)
		}
	})

	t.Run("surrounding punctuation is trimmed", func(t *testing.T) {
		findings := rs.checkSpelling(`Bugun "imtixon" bo'ladi.`)
		require.Len(t, findings, 1)
		assert.Equal(t, `To'g'ri yozilishi: "imtihon"`, findings[0].Suggestion)
		assert.Equal(t, 7, findings[0].Offset)
	})

	t.Run("case folded", func(t *testing.T) {
		findings := rs.checkSpelling("XUJJAT tayyor")
		require.Len(t, findings, 1)
		assert.Equal(t, `"xujjat" - imlo xatosi`, findings[0].Original)
	})

	t.Run("inner apostrophe kept", func(t *testing.T) {
		assert.Empty(t, rs.checkSpelling("Bu ma'lumot to'g'ri."))
	})

	t.Run("Cyrillic homoglyph", func(t *testing.T) {
		findings := rs.checkSpelling("Yangi rej\u0430 tuzildi.")
		require.Len(t, findings, 1)
		assert.Equal(t, `To'g'ri yozilishi: "reja"`, findings[0].Suggestion)
		assert.Equal(t, 6, findings[0].Offset)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, rs.checkSpelling(""))
	})
}

func TestCorrectText(t *testing.T) {
	rs := DefaultRuleSet()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "dictionary and punctuation",
			input:    "hurmatli hamkasblar,iltimos xujjat  tayyorlang .rahmat",
			expected: "Hurmatli hamkasblar, iltimos hujjat tayyorlang. Rahmat",
		},
		{
			name:     "whole words only",
			input:    "Bu malumotlar",
			expected: "Bu malumotlar",
		},
		{
			name:     "case insensitive replacement",
			input:    "Xisobot tayyor",
			expected: "Hisobot tayyor",
		},
		{
			name:     "Cyrillic homoglyph",
			input:    "Yangi rej\u0430 tuzildi.",
			expected: "Yangi reja tuzildi.",
		},
		{
			name:     "glued to non-ASCII letter",
			input:    "Bu çxujjat",
			expected: "Bu çxujjat",
		},
		{
			name:     "every line start",
			input:    "birinchi qator\nikkinchi qator",
			expected: "Birinchi qator\nIkkinchi qator",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rs.correctText(tt.input))
		})
	}
}

func TestCorrectText_Idempotent(t *testing.T) {
	rs := DefaultRuleSet()
	inputs := []string{
		"hurmatli hamkasblar,iltimos xujjat  tayyorlang .rahmat",
		"bu malumot muhim .keyingi gap",
		sampleLetter,
	}

	for _, input := range inputs {
		once := rs.correctText(input)
		assert.Equal(t, once, rs.correctText(once))
	}
}

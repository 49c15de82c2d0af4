package intelligence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRepeatedWords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []int
	}{
		{"simple repetition", "bu bu xat", []int{0}},
		{"case insensitive", "Xat xat yuborildi", []int{0}},
		{"triple consumes pair", "va va va", []int{0}},
		{"two pairs", "va va ham ham", []int{0, 6}},
		{"punctuation breaks pair", "bu, bu", nil},
		{"apostrophe word", "o'z o'z vaqtida", []int{0}},
		{"across newline", "hujjat\nhujjat", []int{0}},
		{"different words", "bu xat", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, findRepeatedWords(tt.text))
		})
	}
}

func TestCheckGrammar_OrderedByRule(t *testing.T) {
	rs := DefaultRuleSet()
	findings := rs.checkGrammar("salom ,dunyo")

	require.Len(t, findings, 3)
	assert.Equal(t, "Verguldan oldin bo'sh joy", findings[0].Original)
	assert.Equal(t, 5, findings[0].Offset)
	assert.Equal(t, "Verguldan keyin bo'sh joy yo'q", findings[1].Original)
	assert.Equal(t, 6, findings[1].Offset)
	assert.Equal(t, "Gap kichik harf bilan boshlangan", findings[2].Original)
	assert.Equal(t, 0, findings[2].Offset)

	for _, f := range findings {
		assert.Equal(t, FindingGrammar, f.Type)
		assert.Equal(t, f.Suggestion, f.Explanation)
	}
}

func TestCheckGrammar_Rules(t *testing.T) {
	rs := DefaultRuleSet()

	tests := []struct {
		name     string
		text     string
		message  string
		expected FindingType
	}{
		{"space before period", "Tayyor .", "Nuqtadan oldin bo'sh joy", FindingGrammar},
		{"missing space after period", "Tayyor.Keyingi", "Nuqtadan keyin bo'sh joy yo'q", FindingGrammar},
		{"repeated whitespace", "Hujjat  tayyor", "Ortiqcha bo'sh joylar", FindingGrammar},
		{"lowercase after period", "Tayyor. keyingi", "Nuqtadan keyin kichik harf", FindingGrammar},
		{"shunday qi", "Shunday qi qaror qilindi", "'shunday qi' - noto'g'ri", FindingGrammar},
		{"bilan birga", "Xodimlar bilan birga", "'bilan birga' - ortiqcha", FindingGrammar},
		{"va ham", "Talabalar va ham xodimlar", "'va ham' - ortiqcha", FindingGrammar},
		{"lekin ammo", "Tayyor lekin ammo kech", "'lekin ammo' - takrorlanish", FindingGrammar},
		{"kerak emas", "Bu kerak emas", "'kerak emas' - noto'g'ri tartib", FindingGrammar},
		{"bo'ladi edi", "Yaxshi bo'ladi edi", "'bo'ladi edi' - noto'g'ri", FindingGrammar},
		{"informal men", "Men roziman", "Rasmiy hujjatda 'men' ishlatilgan", FindingStyle},
		{"informal siz", "Sizga siz aytgan", "'siz' ishlatilgan", FindingStyle},
		{"exclamation at line end", "Hurmatli hamkasblar!\nXat", "Undov belgisi ishlatilgan", FindingStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var found *GrammarFinding
			for _, f := range rs.checkGrammar(tt.text) {
				if f.Original == tt.message {
					found = &f
					break
				}
			}
			require.NotNil(t, found, "expected %q in findings for %q", tt.message, tt.text)
			assert.Equal(t, tt.expected, found.Type)
		})
	}
}

func TestCheckGrammar_AgarAgar(t *testing.T) {
	rs := DefaultRuleSet()
	findings := rs.checkGrammar("Agar agar kelsa")

	require.Len(t, findings, 2)
	assert.Equal(t, "'agar' takrorlangan", findings[0].Original)
	assert.Equal(t, "So'z takrorlangan", findings[1].Original)
}

func TestCheckGrammar_CleanText(t *testing.T) {
	rs := DefaultRuleSet()
	assert.Empty(t, rs.checkGrammar("Hujjat tayyorlandi. Natijalar yuborildi."))
}

func TestCheckGrammar_WordBoundaries(t *testing.T) {
	rs := DefaultRuleSet()
	// "mening" and "sizning" are not the bare pronouns
	assert.Empty(t, rs.checkGrammar("Mening fikrim sizning taklifingiz bilan mos."))
}

package intelligence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDocumentType(t *testing.T) {
	rs := DefaultRuleSet()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"order", "Buyruq: ish o'z vaqtida bajarilsin", DocTypeOrder},
		{"petition", "Ariza. Iltimos, ruxsat bering", DocTypePetition},
		{"contract", "Shartnoma tomonlar tomonidan imzoladilar", DocTypeContract},
		{"minutes", "Yig'ilish bayonnomasi: majlisda 20 kishi qatnashdi", DocTypeMinutes},
		{"report", "Hisobot: natijalar tahlil qilindi", DocTypeReport},
		{"recommendation", "Tavsiyanoma: nomzod munosib va loyiq", DocTypeRecommendation},
		{"tie keeps earlier type", "muddat", DocTypeOrder},
		{"nothing scores", "Salom", DocTypeLetter},
		{"empty", "", DocTypeLetter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rs.classifyDocumentType(strings.ToLower(tt.text)))
		})
	}
}

func TestClassifyDepartment(t *testing.T) {
	rs := DefaultRuleSet()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"finance", "Byudjet va xarajat rejasi", "Moliya"},
		{"students", "Talabalar yotoqxonasi", "Talabalar"},
		{"staff", "Malaka oshirish va attestatsiya", "Kadrlar"},
		{"tie keeps earlier department", "grant", "Ilmiy"},
		{"nothing scores", "Salom", DefaultDepartment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rs.classifyDepartment(strings.ToLower(tt.text)))
		})
	}
}

func TestClassifyUrgency(t *testing.T) {
	rs := DefaultRuleSet()

	tests := []struct {
		text     string
		expected Urgency
	}{
		{"darhol yuboring", UrgencyHigh},
		{"tez orada yuboring va imkon qadar", UrgencyMedium},
		{"tez orada, darhol", UrgencyHigh},
		{"reja asosida yuboring", UrgencyLow},
		{"", UrgencyLow},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := rs.classifyUrgency(tt.text)
			assert.Equal(t, tt.expected, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestClassifySentiment(t *testing.T) {
	rs := DefaultRuleSet()

	tests := []struct {
		name     string
		text     string
		urgency  Urgency
		expected Sentiment
	}{
		{"positive", "muvaffaqiyat va yutuq", UrgencyLow, SentimentPositive},
		{"negative", "muammo va kamchilik", UrgencyLow, SentimentNegative},
		{"balanced", "yaxshi natija, lekin muammo bor", UrgencyMedium, SentimentNeutral},
		{"no keywords", "xat", UrgencyLow, SentimentNeutral},
		{"high urgency wins", "muvaffaqiyat", UrgencyHigh, SentimentUrgent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rs.classifySentiment(tt.text, tt.urgency)
			assert.Equal(t, tt.expected, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestExtractTopics(t *testing.T) {
	rs := DefaultRuleSet()

	assert.Equal(t, []string{"Ta'lim jarayoni", "Moliyaviy masalalar"}, rs.extractTopics("ta'lim va byudjet"))
	assert.Equal(t, []string{DefaultTopic}, rs.extractTopics("salom"))
	assert.Equal(t, []string{DefaultTopic}, rs.extractTopics(""))
}

func TestScoreConfidence(t *testing.T) {
	tests := []struct {
		length   int
		errors   int
		expected int
	}{
		{0, 0, 85},
		{500, 0, 85},
		{501, 0, 90},
		{1001, 0, 95},
		{1001, 3, 89},
		{0, 5, 75},
		{10, 100, 65},
		{5000, 100, 75},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, scoreConfidence(tt.length, tt.errors), "length=%d errors=%d", tt.length, tt.errors)
	}
}

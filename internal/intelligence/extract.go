package intelligence

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	summaryFallbackRunes = 150
	summaryMaxRunes      = 200
	summaryMinSentence   = 10
	maxKeyEntities       = 5
	minKeywordRunes      = 5
)

// Letter number shapes: №123, No. 15, 01-12/345, raqami: 77
var letterNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)№\s*(\d+[-/]?\d*)`),
	regexp.MustCompile(`(?i)No\.?\s*(\d+[-/]?\d*)`),
	regexp.MustCompile(`(\d{1,2}[-/]\d{2,4}[-/]?\d*)`),
	regexp.MustCompile(`(?i)raqami?\s*[:.]?\s*(\d+[-/]?\d*)`),
}

const uzbekMonths = `(?:yanvar|fevral|mart|aprel|may|iyun|iyul|avgust|sentabr|oktabr|noyabr|dekabr)`

// Letter date shapes: 20.05.2024, 2024-05-20, 20 may 2024, sanasi: 20.05.2024, 2024 yil 20 may
var letterDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}[./]\d{1,2}[./]\d{2,4}`),
	regexp.MustCompile(`\d{4}[-.]\d{1,2}[-.]\d{1,2}`),
	regexp.MustCompile(`(?i)\d{1,2}\s*` + uzbekMonths + `\s*\d{4}`),
	regexp.MustCompile(`(?i)sana(?:si)?\s*[:.]?\s*\d{1,2}[./]\d{1,2}[./]\d{2,4}`),
	regexp.MustCompile(`(?i)\d{4}\s*(?:-\s*)?yil\s*\d{1,2}\s*-?\s*` + uzbekMonths),
}

var (
	sentenceSplit  = regexp.MustCompile(`[.!?]+`)
	paragraphSplit = regexp.MustCompile(`\n\s*\n`)
)

// keywordSeparators split words glued together by punctuation. Apostrophes
// stay inside a word (ma'lumot, o'quv).
var keywordSeparators = strings.NewReplacer(
	".", " ", ",", " ", "!", " ", "?", " ", ";", " ",
	":", " ", `"`, " ", "(", " ", ")", " ",
)

// ExtractLetterNumber returns the first letter-number token found in text,
// or an empty string
func ExtractLetterNumber(text string) string {
	for _, pattern := range letterNumberPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		if len(match) > 1 && match[1] != "" {
			return match[1]
		}
		return match[0]
	}
	return ""
}

// ExtractLetterDate returns the first date-shaped token found in text,
// or an empty string. Dates are not range-checked.
func ExtractLetterDate(text string) string {
	for _, pattern := range letterDatePatterns {
		if match := pattern.FindString(text); match != "" {
			return match
		}
	}
	return ""
}

// truncateRunes returns the first n runes of s
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// generateSummary joins the first two substantial sentences. Each sentence
// is trimmed so line breaks inside the source do not reach the summary.
func generateSummary(text string) string {
	var sentences []string
	for _, piece := range sentenceSplit.Split(text, -1) {
		piece = strings.TrimSpace(piece)
		if utf8.RuneCountInString(piece) > summaryMinSentence {
			sentences = append(sentences, piece)
		}
		if len(sentences) == 2 {
			break
		}
	}

	if len(sentences) == 0 {
		return truncateRunes(text, summaryFallbackRunes) + "..."
	}

	summary := strings.TrimSpace(strings.Join(sentences, ". "))
	if utf8.RuneCountInString(summary) > summaryMaxRunes {
		return truncateRunes(summary, summaryMaxRunes) + "..."
	}
	return summary + "."
}

// extractKeywords returns up to maxKeyEntities of the most frequent content
// words. Ties keep first-appearance order.
func (rs *RuleSet) extractKeywords(lower string) []string {
	type wordCount struct {
		word  string
		count int
	}

	var order []*wordCount
	seen := make(map[string]*wordCount)
	for _, token := range strings.Fields(keywordSeparators.Replace(lower)) {
		word := strings.Trim(token, "'")
		if utf8.RuneCountInString(word) < minKeywordRunes || rs.stopWords[word] {
			continue
		}
		if wc, ok := seen[word]; ok {
			wc.count++
			continue
		}
		wc := &wordCount{word: word, count: 1}
		seen[word] = wc
		order = append(order, wc)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})

	keywords := make([]string, 0, maxKeyEntities)
	for _, wc := range order {
		if len(keywords) == maxKeyEntities {
			break
		}
		keywords = append(keywords, wc.word)
	}
	return keywords
}

// computeStatistics counts words, sentences and paragraphs
func computeStatistics(text string) TextStatistics {
	stats := TextStatistics{Words: len(strings.Fields(text))}

	for _, s := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			stats.Sentences++
		}
	}
	for _, p := range paragraphSplit.Split(text, -1) {
		if strings.TrimSpace(p) != "" {
			stats.Paragraphs++
		}
	}
	return stats
}

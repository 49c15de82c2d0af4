package intelligence

import (
	"regexp"
	"strings"
)

// Words may contain inner apostrophes (o'z, ma'lumot)
var wordPattern = regexp.MustCompile(`\w+(?:'\w+)*`)

// checkGrammar applies every grammar rule to the full text. Findings are
// ordered by rule, then by match position within a rule.
func (rs *RuleSet) checkGrammar(text string) []GrammarFinding {
	var findings []GrammarFinding
	for _, rule := range rs.GrammarRules {
		for _, offset := range rule.offsets(text) {
			findings = append(findings, GrammarFinding{
				Original:    rule.Message,
				Suggestion:  rule.Suggestion,
				Explanation: rule.Suggestion,
				Type:        rule.Type,
				Offset:      offset,
			})
		}
	}
	return findings
}

// findRepeatedWords reports the offset of each word immediately followed,
// across whitespace only, by the same word (case-insensitive). A repeated
// word is consumed by its match and cannot open the next one.
func findRepeatedWords(text string) []int {
	words := wordPattern.FindAllStringIndex(text, -1)

	var offsets []int
	for i := 0; i+1 < len(words); i++ {
		cur, next := words[i], words[i+1]
		gap := text[cur[1]:next[0]]
		if gap == "" || strings.TrimSpace(gap) != "" {
			continue
		}
		if strings.EqualFold(text[cur[0]:cur[1]], text[next[0]:next[1]]) {
			offsets = append(offsets, cur[0])
			i++
		}
	}
	return offsets
}

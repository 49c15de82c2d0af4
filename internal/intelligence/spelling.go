package intelligence

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenPunctuation is trimmed from both ends of a token before lookup
const tokenPunctuation = `.,!?;:'"()`

var (
	spaceBeforeComma  = regexp.MustCompile(`\s+,`)
	missingSpaceComma = regexp.MustCompile(`,(\S)`)
	spaceBeforePeriod = regexp.MustCompile(`\s+\.`)
	missingSpaceDot   = regexp.MustCompile(`\.(\S)`)
	whitespaceRun     = regexp.MustCompile(`\s{2,}`)
	lineStartLower    = regexp.MustCompile(`(?m)^[a-z]`)
	sentenceStartLow  = regexp.MustCompile(`\. [a-z]`)
)

// cleanToken lowercases a whitespace-delimited token and trims punctuation
func cleanToken(token string) string {
	return strings.Trim(strings.ToLower(token), tokenPunctuation)
}

// checkSpelling looks up every token in the misspelling dictionary.
// Each hit points at the first occurrence of the word in the text, so a
// repeated misspelling yields several findings sharing one offset.
func (rs *RuleSet) checkSpelling(text string) []GrammarFinding {
	lower := strings.ToLower(text)

	var findings []GrammarFinding
	for _, token := range strings.Fields(lower) {
		word := cleanToken(token)
		if word == "" {
			continue
		}
		right, ok := rs.Correction(word)
		if !ok {
			continue
		}
		findings = append(findings, GrammarFinding{
			Original:    fmt.Sprintf(`"%s" - imlo xatosi`, word),
			Suggestion:  fmt.Sprintf(`To'g'ri yozilishi: "%s"`, right),
			Explanation: fmt.Sprintf(`"%s" so'zi "%s" shaklida yoziladi`, word, right),
			Type:        FindingSpelling,
			Offset:      strings.Index(lower, word),
		})
	}
	return findings
}

// correctText replaces dictionary misspellings, normalizes punctuation
// spacing and capitalizes sentence starts
func (rs *RuleSet) correctText(text string) string {
	corrected := text

	for i, pattern := range rs.spellingPatterns {
		corrected = replaceWholeWords(corrected, pattern, rs.Spelling[i].Right)
	}

	corrected = spaceBeforeComma.ReplaceAllString(corrected, ",")
	corrected = missingSpaceComma.ReplaceAllString(corrected, ", ${1}")
	corrected = spaceBeforePeriod.ReplaceAllString(corrected, ".")
	corrected = missingSpaceDot.ReplaceAllString(corrected, ". ${1}")
	corrected = whitespaceRun.ReplaceAllString(corrected, " ")

	corrected = lineStartLower.ReplaceAllStringFunc(corrected, strings.ToUpper)
	corrected = sentenceStartLow.ReplaceAllStringFunc(corrected, strings.ToUpper)

	return corrected
}

// replaceWholeWords replaces every match of pattern that is not glued to
// a neighbouring letter or digit. Unlike \b this treats non-ASCII letters
// as word characters.
func replaceWholeWords(text string, pattern *regexp.Regexp, replacement string) string {
	matches := pattern.FindAllStringIndex(text, -1)
	if matches == nil {
		return text
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		if !isWholeWord(text, m[0], m[1]) {
			continue
		}
		b.WriteString(text[last:m[0]])
		b.WriteString(replacement)
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

func isWholeWord(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

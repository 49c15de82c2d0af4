package intelligence

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// GrammarRule is one pattern-based punctuation, grammar or style check.
// Rules with a Matcher use it instead of Pattern.
type GrammarRule struct {
	Name       string
	Pattern    *regexp.Regexp
	Matcher    func(text string) []int
	Message    string
	Suggestion string
	Type       FindingType
}

// offsets returns the byte offsets of every non-overlapping match
func (r GrammarRule) offsets(text string) []int {
	if r.Matcher != nil {
		return r.Matcher(text)
	}
	if r.Pattern == nil {
		return nil
	}

	matches := r.Pattern.FindAllStringIndex(text, -1)
	offsets := make([]int, 0, len(matches))
	for _, m := range matches {
		offsets = append(offsets, m[0])
	}
	return offsets
}

// SpellingCorrection maps a known misspelling to its correct form
type SpellingCorrection struct {
	Wrong string `yaml:"wrong"`
	Right string `yaml:"right"`
}

// KeywordBucket is a named keyword list used for scoring
type KeywordBucket struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// RuleSet bundles every table the analyzer evaluates.
// A RuleSet is read-only once built and safe for concurrent use.
type RuleSet struct {
	GrammarRules []GrammarRule
	Spelling     []SpellingCorrection

	DocumentTypes []KeywordBucket
	Departments   []KeywordBucket
	Topics        []KeywordBucket

	HighUrgency   []string
	MediumUrgency []string

	PositiveWords     []string
	NegativeWords     []string
	SensitiveKeywords []string
	StopWords         []string

	spellingIndex    map[string]string
	spellingPatterns []*regexp.Regexp
	stopWords        map[string]bool
}

// DefaultRuleSet returns the built-in Uzbek administrative rule tables
func DefaultRuleSet() *RuleSet {
	rs := &RuleSet{
		GrammarRules:      getDefaultGrammarRules(),
		Spelling:          getDefaultSpellingCorrections(),
		DocumentTypes:     getDefaultDocumentTypes(),
		Departments:       getDefaultDepartments(),
		Topics:            getDefaultTopics(),
		HighUrgency:       getDefaultHighUrgencyKeywords(),
		MediumUrgency:     getDefaultMediumUrgencyKeywords(),
		PositiveWords:     getDefaultPositiveWords(),
		NegativeWords:     getDefaultNegativeWords(),
		SensitiveKeywords: getDefaultSensitiveKeywords(),
		StopWords:         getDefaultStopWords(),
	}
	rs.compile()
	return rs
}

// ruleSetFile is the on-disk shape of a rule extension file
type ruleSetFile struct {
	Version           string               `yaml:"version"`
	Description       string               `yaml:"description"`
	Spelling          []SpellingCorrection `yaml:"spelling"`
	DocumentTypes     []KeywordBucket      `yaml:"document_types"`
	Departments       []KeywordBucket      `yaml:"departments"`
	Topics            []KeywordBucket      `yaml:"topics"`
	HighUrgency       []string             `yaml:"high_urgency"`
	MediumUrgency     []string             `yaml:"medium_urgency"`
	SensitiveKeywords []string             `yaml:"sensitive_keywords"`
	StopWords         []string             `yaml:"stop_words"`
}

// LoadRuleSet reads a YAML rule extension file and returns the built-in
// tables extended by its contents
func LoadRuleSet(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	return ParseRuleSet(data)
}

// ParseRuleSet extends the built-in tables with a YAML rule extension document
func ParseRuleSet(data []byte) (*RuleSet, error) {
	var file ruleSetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	for i, sc := range file.Spelling {
		if strings.TrimSpace(sc.Wrong) == "" || strings.TrimSpace(sc.Right) == "" {
			return nil, fmt.Errorf("spelling entry %d: wrong and right must both be set", i)
		}
	}
	for _, group := range [][]KeywordBucket{file.DocumentTypes, file.Departments, file.Topics} {
		for i, b := range group {
			if strings.TrimSpace(b.Name) == "" {
				return nil, fmt.Errorf("keyword bucket %d: name cannot be empty", i)
			}
		}
	}

	rs := DefaultRuleSet()
	for _, sc := range file.Spelling {
		rs.Spelling = append(rs.Spelling, SpellingCorrection{
			Wrong: strings.ToLower(strings.TrimSpace(sc.Wrong)),
			Right: strings.TrimSpace(sc.Right),
		})
	}
	rs.DocumentTypes = mergeBuckets(rs.DocumentTypes, file.DocumentTypes)
	rs.Departments = mergeBuckets(rs.Departments, file.Departments)
	rs.Topics = mergeBuckets(rs.Topics, file.Topics)
	rs.HighUrgency = append(rs.HighUrgency, lowerAll(file.HighUrgency)...)
	rs.MediumUrgency = append(rs.MediumUrgency, lowerAll(file.MediumUrgency)...)
	rs.SensitiveKeywords = append(rs.SensitiveKeywords, lowerAll(file.SensitiveKeywords)...)
	rs.StopWords = append(rs.StopWords, lowerAll(file.StopWords)...)

	rs.compile()
	return rs, nil
}

// mergeBuckets appends keywords to existing buckets and adds new buckets
// after the built-in ones, keeping built-in tie-break order
func mergeBuckets(base, extra []KeywordBucket) []KeywordBucket {
	out := make([]KeywordBucket, len(base))
	for i, b := range base {
		out[i] = KeywordBucket{Name: b.Name, Keywords: append([]string(nil), b.Keywords...)}
	}

	for _, e := range extra {
		name := strings.TrimSpace(e.Name)
		merged := false
		for i := range out {
			if out[i].Name == name {
				out[i].Keywords = append(out[i].Keywords, lowerAll(e.Keywords)...)
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, KeywordBucket{Name: name, Keywords: lowerAll(e.Keywords)})
		}
	}
	return out
}

func lowerAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// compile builds the lookup indexes and correction patterns
func (rs *RuleSet) compile() {
	rs.spellingIndex = make(map[string]string, len(rs.Spelling))
	rs.spellingPatterns = make([]*regexp.Regexp, len(rs.Spelling))
	for i, sc := range rs.Spelling {
		if _, exists := rs.spellingIndex[sc.Wrong]; !exists {
			rs.spellingIndex[sc.Wrong] = sc.Right
		}
		rs.spellingPatterns[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(sc.Wrong))
	}

	rs.stopWords = make(map[string]bool, len(rs.StopWords))
	for _, w := range rs.StopWords {
		rs.stopWords[w] = true
	}
}

// Correction returns the correct form of a lowercased misspelling
func (rs *RuleSet) Correction(word string) (string, bool) {
	right, ok := rs.spellingIndex[word]
	return right, ok
}

package intelligence

import (
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// DefaultMaxContentLength caps analyzed text, in runes
const DefaultMaxContentLength = 100000

// AnalyzerConfig configures text preparation before the rule passes
type AnalyzerConfig struct {
	// MaxContentLength truncates input to this many runes; 0 disables the cap
	MaxContentLength int `json:"max_content_length"`
	// NormalizeText applies NFC and folds typographic apostrophes to '
	NormalizeText bool `json:"normalize_text"`
}

// DefaultAnalyzerConfig returns the default analyzer configuration
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MaxContentLength: DefaultMaxContentLength,
		NormalizeText:    true,
	}
}

// Analyzer runs the rule passes over document text. It holds no mutable
// state and is safe for concurrent use.
type Analyzer struct {
	rules  *RuleSet
	config AnalyzerConfig
}

// NewAnalyzer creates an analyzer with the built-in rules and default configuration
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(DefaultAnalyzerConfig(), nil)
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration and rules.
// A nil rule set selects the built-in rules.
func NewAnalyzerWithConfig(config AnalyzerConfig, rules *RuleSet) *Analyzer {
	if rules == nil {
		rules = DefaultRuleSet()
	}
	if config.MaxContentLength < 0 {
		config.MaxContentLength = 0
	}
	return &Analyzer{
		rules:  rules,
		config: config,
	}
}

// Rules returns the rule set the analyzer evaluates
func (a *Analyzer) Rules() *RuleSet {
	return a.rules
}

// Config returns the analyzer configuration
func (a *Analyzer) Config() AnalyzerConfig {
	return a.config
}

// apostropheFolder maps the typographic apostrophes used in Uzbek Latin
// (oʻ, gʻ, ʼ) onto the ASCII apostrophe the rule tables are written with
var apostropheFolder = strings.NewReplacer(
	"ʻ", "'",
	"ʼ", "'",
	"‘", "'",
	"’", "'",
	"`", "'",
)

// prepare truncates and normalizes text before analysis
func (a *Analyzer) prepare(text string) string {
	if a.config.MaxContentLength > 0 && utf8.RuneCountInString(text) > a.config.MaxContentLength {
		text = truncateRunes(text, a.config.MaxContentLength)
	}
	return a.normalize(text)
}

func (a *Analyzer) normalize(text string) string {
	if !a.config.NormalizeText {
		return text
	}
	return apostropheFolder.Replace(norm.NFC.String(text))
}

// Analyze classifies text and collects writing-quality findings.
// It never fails: degenerate input yields the documented defaults.
func (a *Analyzer) Analyze(text string) AnalysisResult {
	text = a.prepare(text)
	lower := strings.ToLower(text)

	findings := append(a.rules.checkGrammar(text), a.rules.checkSpelling(text)...)
	if findings == nil {
		findings = []GrammarFinding{}
	}

	urgency := a.rules.classifyUrgency(lower)

	return AnalysisResult{
		DocType:             a.rules.classifyDocumentType(lower),
		DocTypeConfidence:   scoreConfidence(utf8.RuneCountInString(text), len(findings)),
		DepartmentOrigin:    a.rules.classifyDepartment(lower),
		LetterNumber:        ExtractLetterNumber(text),
		LetterDate:          ExtractLetterDate(text),
		Summary:             generateSummary(text),
		Sentiment:           a.rules.classifySentiment(lower, urgency),
		Urgency:             urgency,
		GrammarErrors:       findings,
		ConfidentialityRisk: a.rules.detectConfidentialityRisk(lower),
		KeyEntities:         a.rules.extractKeywords(lower),
		Topics:              a.rules.extractTopics(lower),
		Statistics:          computeStatistics(text),
	}
}

// Correct returns a cleaned draft of text: dictionary misspellings replaced,
// punctuation spacing normalized and sentence starts capitalized.
// The whole text is corrected; MaxContentLength only bounds Analyze.
func (a *Analyzer) Correct(text string) string {
	return a.rules.correctText(a.normalize(text))
}

var (
	defaultAnalyzer     *Analyzer
	defaultAnalyzerOnce sync.Once
)

// Default returns the process-wide analyzer built from the built-in rules
func Default() *Analyzer {
	defaultAnalyzerOnce.Do(func() {
		defaultAnalyzer = NewAnalyzer()
	})
	return defaultAnalyzer
}

// Analyze analyzes text with the default analyzer
func Analyze(text string) AnalysisResult {
	return Default().Analyze(text)
}

// Correct corrects text with the default analyzer
func Correct(text string) string {
	return Default().Correct(text)
}

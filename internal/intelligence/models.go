package intelligence

// Urgency is the priority level inferred from deadline and tone keywords
type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// Sentiment is the overall tone of a document
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
	SentimentUrgent   Sentiment = "Urgent"
)

// FindingType categorizes a writing-quality finding
type FindingType string

const (
	FindingSpelling FindingType = "Spelling"
	FindingGrammar  FindingType = "Grammar"
	FindingStyle    FindingType = "Style"
)

// Document types recognized by the classifier
const (
	DocTypeOrder          = "Buyruq"
	DocTypeDecision       = "Qaror"
	DocTypePetition       = "Ariza"
	DocTypeLetter         = "Xat"
	DocTypeReport         = "Hisobot"
	DocTypeContract       = "Shartnoma"
	DocTypeMinutes        = "Bayonnoma"
	DocTypeInstruction    = "Ko'rsatma"
	DocTypePresentation   = "Taqdimnoma"
	DocTypeRecommendation = "Tavsiyanoma"
)

const (
	// DefaultDepartment is reported when no department keyword matches
	DefaultDepartment = "Umumiy"
	// DefaultTopic is reported when no topic keyword matches
	DefaultTopic = "Umumiy masalalar"
)

// GrammarFinding is one flagged issue with a human-readable label and a suggested fix
type GrammarFinding struct {
	Original    string      `json:"original"`
	Suggestion  string      `json:"suggestion"`
	Explanation string      `json:"explanation"`
	Type        FindingType `json:"type"`

	// Offset is the byte offset of the match in the analyzed text.
	// Spelling findings carry the first occurrence of the word.
	Offset int `json:"-"`
}

// TextStatistics holds simple counts over the analyzed text
type TextStatistics struct {
	Words      int `json:"words"`
	Sentences  int `json:"sentences"`
	Paragraphs int `json:"paragraphs"`
}

// AnalysisResult is the structured judgment derived from one document
type AnalysisResult struct {
	DocType             string           `json:"docType"`
	DocTypeConfidence   int              `json:"docTypeConfidence"`
	DepartmentOrigin    string           `json:"departmentOrigin"`
	LetterNumber        string           `json:"letterNumber,omitempty"`
	LetterDate          string           `json:"letterDate,omitempty"`
	Summary             string           `json:"summary"`
	Sentiment           Sentiment        `json:"sentiment"`
	Urgency             Urgency          `json:"urgency"`
	GrammarErrors       []GrammarFinding `json:"grammarErrors"`
	ConfidentialityRisk bool             `json:"confidentialityRisk"`
	KeyEntities         []string         `json:"keyEntities"`

	Topics     []string       `json:"topics"`
	Statistics TextStatistics `json:"statistics"`
}

// HasLetterNumber reports whether a letter number was extracted
func (r AnalysisResult) HasLetterNumber() bool {
	return r.LetterNumber != ""
}

// HasLetterDate reports whether a letter date was extracted
func (r AnalysisResult) HasLetterDate() bool {
	return r.LetterDate != ""
}

// FindingsByType counts findings per type
func (r AnalysisResult) FindingsByType() map[FindingType]int {
	counts := make(map[FindingType]int)
	for _, f := range r.GrammarErrors {
		counts[f.Type]++
	}
	return counts
}

// IsValid checks if the urgency is one of the known levels
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	default:
		return false
	}
}

// IsValid checks if the sentiment is one of the known values
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative, SentimentUrgent:
		return true
	default:
		return false
	}
}

// DocTypeDisplayName returns the English name of a document type
func DocTypeDisplayName(docType string) string {
	switch docType {
	case DocTypeOrder:
		return "Order"
	case DocTypeDecision:
		return "Decision"
	case DocTypePetition:
		return "Petition"
	case DocTypeLetter:
		return "Letter"
	case DocTypeReport:
		return "Report"
	case DocTypeContract:
		return "Contract"
	case DocTypeMinutes:
		return "Minutes"
	case DocTypeInstruction:
		return "Instruction"
	case DocTypePresentation:
		return "Presentation"
	case DocTypeRecommendation:
		return "Recommendation"
	default:
		return docType
	}
}

// AllDocTypes returns the built-in document types in classifier table order
func AllDocTypes() []string {
	return []string{
		DocTypeOrder,
		DocTypeDecision,
		DocTypePetition,
		DocTypeLetter,
		DocTypeReport,
		DocTypeContract,
		DocTypeMinutes,
		DocTypeInstruction,
		DocTypePresentation,
		DocTypeRecommendation,
	}
}

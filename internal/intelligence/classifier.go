package intelligence

import "strings"

// countKeywords returns how many distinct keywords occur as substrings of lower
func countKeywords(lower string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			count++
		}
	}
	return count
}

// containsAny reports whether any keyword occurs as a substring of lower
func containsAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// bestBucket returns the bucket with the strictly highest keyword score.
// Ties keep the earlier bucket; fallback is returned when nothing scores.
func bestBucket(lower string, buckets []KeywordBucket, fallback string) string {
	best := fallback
	maxScore := 0
	for _, bucket := range buckets {
		if score := countKeywords(lower, bucket.Keywords); score > maxScore {
			maxScore = score
			best = bucket.Name
		}
	}
	return best
}

// classifyDocumentType picks the document type by keyword score
func (rs *RuleSet) classifyDocumentType(lower string) string {
	return bestBucket(lower, rs.DocumentTypes, DocTypeLetter)
}

// classifyDepartment picks the originating department by keyword score
func (rs *RuleSet) classifyDepartment(lower string) string {
	return bestBucket(lower, rs.Departments, DefaultDepartment)
}

// classifyUrgency walks the urgency ladder: the first level with any
// keyword hit wins, Low otherwise
func (rs *RuleSet) classifyUrgency(lower string) Urgency {
	if containsAny(lower, rs.HighUrgency) {
		return UrgencyHigh
	}
	if containsAny(lower, rs.MediumUrgency) {
		return UrgencyMedium
	}
	return UrgencyLow
}

// classifySentiment compares distinct positive and negative keyword counts.
// High urgency always reads as Urgent.
func (rs *RuleSet) classifySentiment(lower string, urgency Urgency) Sentiment {
	if urgency == UrgencyHigh {
		return SentimentUrgent
	}

	positive := countKeywords(lower, rs.PositiveWords)
	negative := countKeywords(lower, rs.NegativeWords)

	switch {
	case positive > negative:
		return SentimentPositive
	case negative > positive:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// detectConfidentialityRisk reports whether any sensitive keyword is present
func (rs *RuleSet) detectConfidentialityRisk(lower string) bool {
	return containsAny(lower, rs.SensitiveKeywords)
}

// extractTopics returns every topic bucket with at least one keyword hit
func (rs *RuleSet) extractTopics(lower string) []string {
	var topics []string
	for _, bucket := range rs.Topics {
		if containsAny(lower, bucket.Keywords) {
			topics = append(topics, bucket.Name)
		}
	}
	if len(topics) == 0 {
		return []string{DefaultTopic}
	}
	return topics
}

// scoreConfidence derives the type confidence from text length and error count
func scoreConfidence(length, errorCount int) int {
	confidence := 85
	if length > 500 {
		confidence += 5
	}
	if length > 1000 {
		confidence += 5
	}

	confidence -= min(errorCount*2, 20)

	return max(50, min(95, confidence))
}
